// Package importer copies tracks from the remote catalog into the local store.
package importer

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"track-recommender/internal/app/cache"
	"track-recommender/internal/app/catalog/spotify"
	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/metrics"
	"track-recommender/internal/app/model"
	"track-recommender/internal/app/repository"
)

const (
	DefaultQuery    = "genre:pop"
	DefaultLimit    = 20
	DefaultParallel = 4
)

// Result is the outcome of importing one track
type Result struct {
	ID      string
	Name    string
	Created bool
	Err     error
}

// ImportSummary reports a bulk import
type ImportSummary struct {
	Query    string
	Created  int
	Existing int
	Failed   int
	Results  []Result
}

// Importer fetches tracks from the catalog service and persists them
type Importer struct {
	catalog  spotify.Catalog
	store    repository.CatalogDAO
	cache    cache.RecommendationCache
	progress ProgressConfig
	parallel int
	logger   *zap.Logger
}

// Option customises an Importer
type Option func(*Importer)

// WithProgress renders a progress bar during bulk imports
func WithProgress(config ProgressConfig) Option {
	return func(i *Importer) { i.progress = config }
}

// WithParallel bounds the number of tracks persisted concurrently
func WithParallel(n int) Option {
	return func(i *Importer) {
		if n > 0 {
			i.parallel = n
		}
	}
}

// NewImporter creates an importer. A nil cache disables invalidation.
func NewImporter(catalog spotify.Catalog, store repository.CatalogDAO, recCache cache.RecommendationCache, logger *zap.Logger, opts ...Option) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recCache == nil {
		recCache = cache.NoopCache{}
	}
	i := &Importer{
		catalog:  catalog,
		store:    store,
		cache:    recCache,
		parallel: DefaultParallel,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportTrack fetches one track by id and stores it with its album, artists,
// markets and external ids. It returns the stored track and whether it was new.
func (i *Importer) ImportTrack(ctx context.Context, id string) (*model.Track, bool, error) {
	obj, err := i.catalog.GetTrack(ctx, id)
	if err != nil {
		metrics.ImportedTracks.WithLabelValues("failed").Inc()
		return nil, false, apperrors.Wrapf(err, "fetch track %s", id)
	}

	created, err := i.persist(ctx, obj.ToModel())
	if err != nil {
		return nil, false, err
	}
	if created {
		i.invalidate(ctx)
	}

	stored, err := i.store.GetTrack(ctx, obj.ID)
	if err != nil {
		return nil, created, apperrors.Wrapf(err, "reload track %s", obj.ID)
	}
	return stored, created, nil
}

// ImportSearch searches the catalog and stores every result. Per-track
// failures are counted in the summary; only a failed search is an error.
func (i *Importer) ImportSearch(ctx context.Context, query string, limit int) (*ImportSummary, error) {
	if query == "" {
		query = DefaultQuery
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	items, err := i.catalog.SearchTracks(ctx, query, limit)
	if err != nil {
		return nil, apperrors.Wrapf(err, "search %q", query)
	}
	// search pages can repeat a track
	items = lo.UniqBy(items, func(t spotify.TrackObject) string { return t.ID })

	summary := &ImportSummary{Query: query, Results: make([]Result, len(items))}
	if len(items) == 0 {
		return summary, nil
	}

	manager := NewProgressManager(i.progress)
	bar := manager.CreateBar(len(items), "Importing tracks")

	var wg sync.WaitGroup
	sem := make(chan struct{}, i.parallel)

	for idx, item := range items {
		wg.Add(1)
		go func(idx int, item spotify.TrackObject) {
			defer wg.Done()
			start := time.Now()
			defer bar.Increment(start)

			sem <- struct{}{}
			created, err := i.persist(ctx, item.ToModel())
			<-sem

			summary.Results[idx] = Result{ID: item.ID, Name: item.Name, Created: created, Err: err}
		}(idx, item)
	}
	wg.Wait()
	bar.Complete()
	manager.Wait()

	for _, r := range summary.Results {
		switch {
		case r.Err != nil:
			summary.Failed++
			i.logger.Warn("track import failed", zap.String("track_id", r.ID), zap.Error(r.Err))
		case r.Created:
			summary.Created++
			i.logger.Info("added track", zap.String("track_id", r.ID), zap.String("name", r.Name))
		default:
			summary.Existing++
			i.logger.Info("track already exists", zap.String("track_id", r.ID), zap.String("name", r.Name))
		}
	}

	if summary.Created > 0 {
		i.invalidate(ctx)
	}
	return summary, nil
}

func (i *Importer) persist(ctx context.Context, track model.Track) (bool, error) {
	created, err := repository.PersistTrack(ctx, i.store, track)
	switch {
	case err != nil:
		metrics.ImportedTracks.WithLabelValues("failed").Inc()
		return false, apperrors.Wrapf(err, "store track %s", track.ID)
	case created:
		metrics.ImportedTracks.WithLabelValues("created").Inc()
	default:
		metrics.ImportedTracks.WithLabelValues("existing").Inc()
	}
	return created, nil
}

func (i *Importer) invalidate(ctx context.Context) {
	if err := i.cache.Invalidate(ctx); err != nil {
		i.logger.Warn("recommendation cache invalidation failed", zap.Error(err))
	}
}
