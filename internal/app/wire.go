//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	admin_parcels_get "swiftship/internal/handlers/rest/admin_parcels_get"
	available_parcels_get "swiftship/internal/handlers/rest/available_parcels_get"
	login_post "swiftship/internal/handlers/rest/login_post"
	parcel_create_post "swiftship/internal/handlers/rest/parcel_create_post"
	parcel_track_get "swiftship/internal/handlers/rest/parcel_track_get"
	parcels_get "swiftship/internal/handlers/rest/parcels_get"
	register_post "swiftship/internal/handlers/rest/register_post"
	status_update_post "swiftship/internal/handlers/rest/status_update_post"
	"swiftship/internal/handlers/tasks/status_metrics"
	"swiftship/internal/pkg/config"
	"swiftship/internal/pkg/factory/scan_handle"
	"swiftship/internal/pkg/token"

	parcelRepo "swiftship/internal/repository/parcel"
	trackingRepo "swiftship/internal/repository/tracking"
	userRepo "swiftship/internal/repository/user"
	identityService "swiftship/internal/service/identity"
	ledgerService "swiftship/internal/service/ledger"
	queryService "swiftship/internal/service/query"
	registryService "swiftship/internal/service/registry"
	scanService "swiftship/internal/service/scan"

	"swiftship/pkg/background"
	"swiftship/pkg/logger"
	"swiftship/pkg/querier"
	"swiftship/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatusMetricsInterval time.Duration
)

type Application struct {
	ServiceRegistry   ServiceRegistry
	ServiceLedger     ServiceLedger
	ServiceQuery      ServiceQuery
	ServiceIdentity   ServiceIdentity
	TokenManager      *token.Manager
	BackgroundWorkers *background.Worker
}

type ServiceRegistry interface {
	parcel_create_post.Service
}

type ServiceLedger interface {
	status_update_post.Service
}

type ServiceQuery interface {
	parcels_get.Service
	parcel_track_get.Service
	available_parcels_get.Service
	admin_parcels_get.Service
}

type ServiceIdentity interface {
	register_post.Service
	login_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTokenManager,
		provideStatusMetricsInterval,

		provideParcelRepository,
		provideTrackingRepository,
		provideUserRepository,

		provideServiceRegistry,
		provideServiceLedger,
		provideServiceQuery,
		provideServiceIdentity,

		provideStatusMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRegistry), new(*registryService.Registry)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Ledger)),
		wire.Bind(new(ServiceQuery), new(*queryService.Query)),
		wire.Bind(new(ServiceIdentity), new(*identityService.Identity)),

		wire.Bind(new(registryService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(registryService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(ledgerService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(ledgerService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(queryService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(queryService.TrackingRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(identityService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(identityService.TokenIssuer), new(*token.Manager)),

		wire.Bind(new(registryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),

		wire.Bind(new(status_metrics.Service), new(*queryService.Query)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ScanService *scanService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-parcel-scans)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideParcelRepository,
		provideTrackingRepository,

		provideServiceLedger,
		provideStatusHandlerFactory,
		provideScanService,

		wire.Bind(new(ledgerService.Repository), new(*trackingRepo.Repository)),
		wire.Bind(new(ledgerService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(ledgerService.TxManager), new(*tx.Manager)),

		wire.Bind(new(scanService.LedgerService), new(*ledgerService.Ledger)),
		wire.Bind(new(scanService.HandlerFactory), new(*scan_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.NewManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceRegistry(
	repository registryService.Repository,
	trackingRepository registryService.TrackingRepository,
	txManager registryService.TxManager,
) *registryService.Registry {
	return registryService.New(repository, trackingRepository, txManager)
}

func provideServiceLedger(
	repository ledgerService.Repository,
	parcelRepository ledgerService.ParcelRepository,
	txManager ledgerService.TxManager,
) *ledgerService.Ledger {
	return ledgerService.New(repository, parcelRepository, txManager)
}

func provideServiceQuery(
	repository queryService.Repository,
	trackingRepository queryService.TrackingRepository,
) *queryService.Query {
	return queryService.New(repository, trackingRepository)
}

func provideServiceIdentity(
	repository identityService.Repository,
	tokenIssuer identityService.TokenIssuer,
) *identityService.Identity {
	return identityService.New(repository, tokenIssuer)
}

func provideStatusMetricsInterval(cfg *config.Config) StatusMetricsInterval {
	return StatusMetricsInterval(cfg.Tasks.StatusMetricsInterval)
}

func provideStatusMetricsTask(
	queryService status_metrics.Service,
	interval StatusMetricsInterval,
) *status_metrics.StatusMetrics {
	return status_metrics.NewStatusMetrics(queryService, time.Duration(interval))
}

func provideTaskList(
	statusMetricsTask *status_metrics.StatusMetrics,
) []background.Task {
	return []background.Task{
		statusMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

// provideScanService создает scanService для обработки событий Kafka
func provideScanService(handlerFactory scanService.HandlerFactory) *scanService.Service {
	return scanService.New(handlerFactory)
}

func provideStatusHandlerFactory(ledgerService scanService.LedgerService) *scan_handle.StatusHandlerFactory {
	return scan_handle.NewStatusHandlerFactory(ledgerService)
}
