package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(TrackNotFound("4uLU6hMCjMI75M1A2tKUQC"), "load seed %s", "4uLU6hMCjMI75M1A2tKUQC")

	assert.True(t, stderrors.Is(err, ErrTrackNotFound))
	assert.False(t, stderrors.Is(err, ErrCatalogUnavailable))
	assert.Contains(t, err.Error(), "track not found")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
	assert.Nil(t, Unavailable(nil, "ignored"))
}

func TestUnavailableMatchesBothCauses(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := Unavailable(cause, "get track")

	assert.True(t, stderrors.Is(err, ErrCatalogUnavailable))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "get track: catalog unavailable: dial tcp: connection refused", err.Error())
}

func TestWrapAsMatchesKindAndCause(t *testing.T) {
	cause := stderrors.New("constraint violation")
	err := WrapAs(cause, ErrInsertFailed, "track %s", "t1")

	assert.ErrorIs(t, err, ErrInsertFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUpdateFailed)
	assert.Equal(t, "track t1: insert failed: constraint violation", err.Error())
	assert.Nil(t, WrapAs(nil, ErrInsertFailed, "ignored"))
}

func TestRequiredField(t *testing.T) {
	assert.EqualError(t, RequiredField("query"), "query is required")
}
