//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"track-recommender/internal/api/server"
	appconfig "track-recommender/internal/app/config"
)

var runtimeSet = wire.NewSet(
	provideStore,
	provideCache,
	provideCatalog,
	provideEngine,
	provideImporter,
	wire.Struct(new(Runtime), "*"),
)

// InitializeRuntime opens the store, cache and catalog client described by cfg
func InitializeRuntime(cfg *appconfig.AppConfig, logger *zap.Logger) (*Runtime, func(), error) {
	wire.Build(runtimeSet)
	return &Runtime{}, nil, nil
}

// InitializeServer builds the API server and everything it serves
func InitializeServer(cfg *appconfig.AppConfig, logger *zap.Logger) (*server.Server, func(), error) {
	wire.Build(
		runtimeSet,
		provideServiceContainer,
		provideServerConfig,
		server.NewServer,
	)
	return &server.Server{}, nil, nil
}
