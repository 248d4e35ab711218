package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/recommender"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   ErrorKind
		status int
	}{
		{KindValidation, http.StatusUnprocessableEntity},
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindServiceUnavailable, http.StatusServiceUnavailable},
		{KindBadGateway, http.StatusBadGateway},
		{KindInternal, http.StatusInternalServerError},
		{ErrorKind("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.status, (&APIError{Kind: tt.kind}).HTTPStatus())
		})
	}
}

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"missing track", apperrors.Wrap(apperrors.TrackNotFound("abc"), "load seed abc"), KindNotFound},
		{"invalid k", fmt.Errorf("%w: got 0", recommender.ErrInvalidK), KindBadRequest},
		{"no credentials", apperrors.ErrMissingCredentials, KindServiceUnavailable},
		{"catalog down", apperrors.Unavailable(stderrors.New("dial tcp: refused"), "search tracks"), KindServiceUnavailable},
		{"bad credentials", apperrors.Wrap(apperrors.ErrInvalidCredentials, "token"), KindBadGateway},
		{"upstream 400", apperrors.Wrapf(apperrors.ErrRequestFailed, "status %d", 400), KindBadGateway},
		{"unexpected", stderrors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromDomain(tt.err)
			assert.Equal(t, tt.kind, apiErr.Kind)
		})
	}
}

func TestFromDomainKeepsAPIErrors(t *testing.T) {
	original := NewValidationError("Validation failed", map[string]string{"k": "too large"})

	assert.Same(t, original, FromDomain(fmt.Errorf("wrapped: %w", original)))
	assert.Nil(t, FromDomain(nil))
}

func TestFromDomainHidesInternalDetail(t *testing.T) {
	apiErr := FromDomain(stderrors.New("pq: password authentication failed"))

	assert.Equal(t, "Internal server error", apiErr.Message)
}

func TestNotFoundMessageNamesTrack(t *testing.T) {
	apiErr := FromDomain(apperrors.TrackNotFound("4uLU6hMCjMI75M1A2tKUQC"))

	assert.Contains(t, apiErr.Message, "4uLU6hMCjMI75M1A2tKUQC")
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus())
}
