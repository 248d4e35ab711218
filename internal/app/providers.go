package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"track-recommender/internal/api/server"
	v1routes "track-recommender/internal/api/v1/routes"
	"track-recommender/internal/api/v1/services"
	"track-recommender/internal/app/cache"
	"track-recommender/internal/app/catalog/spotify"
	appconfig "track-recommender/internal/app/config"
	"track-recommender/internal/app/importer"
	"track-recommender/internal/app/recommender"
	"track-recommender/internal/app/repository"
	"track-recommender/internal/app/repository/pg"
	"track-recommender/internal/app/repository/sqlite"
	"track-recommender/internal/app/storage"
	"track-recommender/internal/config"
)

// Runtime bundles the components shared by the CLI commands and the API server.
// Catalog and Importer are nil when no catalog credentials are configured.
type Runtime struct {
	Config   *appconfig.AppConfig
	Logger   *zap.Logger
	Store    repository.CatalogDAO
	Cache    cache.RecommendationCache
	Catalog  spotify.Catalog
	Engine   *recommender.Engine
	Importer *importer.Importer
}

// RequireCatalog fails when the runtime was built without catalog credentials
func (r *Runtime) RequireCatalog() error {
	if r.Catalog == nil {
		return config.RequireSpotifyCredentials(nil)
	}
	return nil
}

// OpenStore opens the configured catalog store and ensures its schema exists
func OpenStore(cfg *appconfig.AppConfig) (repository.CatalogDAO, error) {
	return openStore(cfg.Database.Driver, cfg.Database.DSN)
}

func openStore(driver, dsn string) (repository.CatalogDAO, error) {
	var (
		db  *repository.CommonDB
		err error
	)
	switch driver {
	case pg.DriverName:
		db, err = pg.NewPostgresDB(dsn)
	case sqlite.DriverName:
		db, err = sqlite.NewSQLiteDB(resolveSQLitePath(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver '%s'", driver)
	}
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// resolveSQLitePath anchors relative database paths at the project root when one is found
func resolveSQLitePath(path string) string {
	if path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	root, err := config.GetProjectRoot()
	if err != nil {
		return path
	}
	return filepath.Join(root, path)
}

func provideStore(cfg *appconfig.AppConfig, logger *zap.Logger) (repository.CatalogDAO, func(), error) {
	store, err := OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("catalog store opened", zap.String("driver", cfg.Database.Driver))
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close catalog store", zap.Error(err))
		}
	}, nil
}

// provideCache connects to redis when enabled. An unreachable server degrades to no caching.
func provideCache(cfg *appconfig.AppConfig, logger *zap.Logger) (cache.RecommendationCache, func()) {
	if !cfg.Cache.Enabled {
		return cache.NoopCache{}, func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisCache, err := cache.Dial(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, cfg.Cache.TTL, logger)
	if err != nil {
		logger.Warn("recommendation cache disabled", zap.Error(err))
		return cache.NoopCache{}, func() {}
	}
	return redisCache, func() { redisCache.Close() }
}

// provideCatalog builds the catalog client, or returns nil without credentials
func provideCatalog(cfg *appconfig.AppConfig, logger *zap.Logger) (spotify.Catalog, error) {
	creds, err := config.GetSpotifyCredentials()
	if err != nil {
		return nil, err
	}
	if !creds.Configured() {
		logger.Info("catalog credentials not configured; search and import are disabled")
		return nil, nil
	}

	client, err := spotify.NewClient(spotify.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		BaseURL:      cfg.Spotify.BaseURL,
		TokenURL:     cfg.Spotify.TokenURL,
		Market:       cfg.Spotify.Market,
		Timeout:      cfg.Spotify.Timeout,
		RateLimit:    cfg.Spotify.RateLimit,
		Burst:        cfg.Spotify.Burst,
	}, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func provideEngine(store repository.CatalogDAO, logger *zap.Logger) *recommender.Engine {
	return recommender.NewEngine(store, logger)
}

func provideImporter(catalog spotify.Catalog, store repository.CatalogDAO, recCache cache.RecommendationCache, logger *zap.Logger) *importer.Importer {
	if catalog == nil {
		return nil
	}
	return importer.NewImporter(catalog, store, recCache, logger)
}

func provideServiceContainer(rt *Runtime) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		TrackService:          services.NewTrackService(rt.Store),
		RecommendationService: services.NewRecommendationService(rt.Engine, rt.Cache, rt.Config.Recommender.DefaultK, rt.Config.Recommender.MaxK),
		CatalogService:        services.NewCatalogService(rt.Catalog, rt.Importer),
	}
}

func provideServerConfig(cfg *appconfig.AppConfig) server.Config {
	return server.Config{
		Host:         cfg.Server.Host,
		Port:         strconv.Itoa(cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  2 * cfg.Server.WriteTimeout,
		Environment:  cfg.Server.Environment,
	}
}

// NewUploader builds the MinIO uploader used by exports
func NewUploader(cfg *appconfig.AppConfig) (storage.Uploader, error) {
	uploader, err := storage.NewMinioUploader(storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return uploader, nil
}
