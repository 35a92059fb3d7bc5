//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"yolo-transcript/internal/app/metrics"
	"yolo-transcript/internal/app/progress"
	"yolo-transcript/internal/app/reconcile"
	"yolo-transcript/internal/app/repository"
	"yolo-transcript/internal/app/repository/pg"
	"yolo-transcript/internal/config"
)

var storeSet = wire.NewSet(
	providePostgres,
	wire.Bind(new(repository.Store), new(*pg.PostgresDB)),
)

var pollerSet = wire.NewSet(
	provideRedis,
	provideSpeechToText,
	provideDrive,
	providePoller,
	metrics.New,
)

// InitializeApplication wires the HTTP API and its background poller
func InitializeApplication(cfg *config.Config, logger *zap.Logger) (*Application, func(), error) {
	wire.Build(
		storeSet,
		pollerSet,
		providePricing,
		provideMediaStore,
		provideVerifier,
		provideLimiter,
		provideRouteOptions,
		provideServiceContainer,
		provideServer,
		newApplication,
	)
	return nil, nil, nil
}

// InitializeDatabase opens the database pool only
func InitializeDatabase(cfg *config.Config) (*pg.PostgresDB, func(), error) {
	wire.Build(providePostgres)
	return nil, nil, nil
}

// InitializeReconciler wires a one-shot status reconciler
func InitializeReconciler(cfg *config.Config, logger *zap.Logger, pm *progress.Manager) (*reconcile.Reconciler, func(), error) {
	wire.Build(storeSet, pollerSet, provideReconciler)
	return nil, nil, nil
}
