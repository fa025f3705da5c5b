//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch/internal/handlers/tasks/offer_sweep"
	"dispatch/internal/handlers/tasks/request_matching"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/request_handle"
	driverRepo "dispatch/internal/repository/driver"
	offerRepo "dispatch/internal/repository/offer"
	requestRepo "dispatch/internal/repository/request"
	assignmentService "dispatch/internal/service/assignment"
	matchingService "dispatch/internal/service/matching"
	requestService "dispatch/internal/service/request"
	requesteventService "dispatch/internal/service/requestevent"
	sweeperService "dispatch/internal/service/sweeper"
	"dispatch/pkg/logger"
	"dispatch/pkg/tx"
)

// InitializeApplication wires the HTTP service (cmd/service)
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
		provideMatchingPolicy,
		provideSweepInterval,
		provideMatchingInterval,

		provideRequestRepository,
		provideOfferRepository,
		provideDriverRepository,

		provideServiceRequest,
		provideServiceMatching,
		provideServiceAssignment,
		provideServiceSweeper,

		provideOfferSweepTask,
		provideRequestMatchingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRequest), new(*requestService.Request)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),

		wire.Bind(new(requestService.Repository), new(*requestRepo.Repository)),
		wire.Bind(new(requestService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(matchingService.RequestRepository), new(*requestRepo.Repository)),
		wire.Bind(new(matchingService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(matchingService.GeoIndex), new(*driverRepo.Repository)),
		wire.Bind(new(assignmentService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(assignmentService.RequestRepository), new(*requestRepo.Repository)),
		wire.Bind(new(sweeperService.OfferRepository), new(*offerRepo.Repository)),

		wire.Bind(new(requestService.TxManager), new(*tx.Manager)),

		wire.Bind(new(offer_sweep.Service), new(*sweeperService.Sweeper)),
		wire.Bind(new(request_matching.Service), new(*matchingService.Matching)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-request-status-changed)
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
		provideMatchingPolicy,

		provideRequestRepository,
		provideOfferRepository,
		provideDriverRepository,

		provideServiceRequest,
		provideServiceMatching,

		provideStatusHandlerFactory,
		provideEventService,

		wire.Bind(new(requestService.Repository), new(*requestRepo.Repository)),
		wire.Bind(new(requestService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(matchingService.RequestRepository), new(*requestRepo.Repository)),
		wire.Bind(new(matchingService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(matchingService.GeoIndex), new(*driverRepo.Repository)),

		wire.Bind(new(requestService.TxManager), new(*tx.Manager)),

		wire.Bind(new(request_handle.MatchingService), new(*matchingService.Matching)),
		wire.Bind(new(request_handle.RequestService), new(*requestService.Request)),
		wire.Bind(new(requesteventService.HandlerFactory), new(*request_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
