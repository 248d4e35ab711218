package migrate

import (
	"context"

	"go.uber.org/zap"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/repository"
)

// DefaultBatchSize is the number of tracks read from the source per page
const DefaultBatchSize = 500

// Summary reports the outcome of a catalog copy
type Summary struct {
	Copied   int
	Existing int
}

// CopyCatalog copies every track of src into dst in id order. Tracks already
// present in dst are counted but left untouched apart from their artist links.
func CopyCatalog(ctx context.Context, src, dst repository.CatalogDAO, batchSize int, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var summary Summary
	if err := dst.EnsureSchema(ctx); err != nil {
		return summary, apperrors.Wrap(err, "prepare destination schema")
	}

	for offset := 0; ; offset += batchSize {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		page, err := src.ListTracksPage(ctx, offset, batchSize)
		if err != nil {
			return summary, apperrors.Wrapf(err, "read source page at offset %d", offset)
		}
		if len(page) == 0 {
			break
		}

		for _, t := range page {
			full, err := src.GetTrack(ctx, t.ID)
			if err != nil {
				return summary, apperrors.Wrapf(err, "load source track %s", t.ID)
			}
			created, err := repository.PersistTrack(ctx, dst, *full)
			if err != nil {
				return summary, apperrors.Wrapf(err, "copy track %s", t.ID)
			}
			if created {
				summary.Copied++
			} else {
				summary.Existing++
			}
		}

		logger.Info("copied catalog page",
			zap.Int("offset", offset),
			zap.Int("tracks", len(page)),
			zap.Int("copied_total", summary.Copied),
		)

		if len(page) < batchSize {
			break
		}
	}

	return summary, nil
}
