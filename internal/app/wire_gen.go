// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Injectors from wire.go:

// InitializeApplication wires the HTTP service (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideRequestRepository(querier)
	offerRepository := provideOfferRepository(querier)
	manager := provideTxManager(pool)
	request := provideServiceRequest(repository, offerRepository, manager)
	driverRepository := provideDriverRepository(querier)
	policy := provideMatchingPolicy(cfg)
	matching := provideServiceMatching(log, repository, offerRepository, driverRepository, policy)
	assignment := provideServiceAssignment(log, offerRepository, repository)
	sweeper := provideServiceSweeper(log, offerRepository)
	sweepInterval := provideSweepInterval(cfg)
	offerSweep := provideOfferSweepTask(log, sweeper, sweepInterval)
	matchingInterval := provideMatchingInterval(cfg)
	requestMatching := provideRequestMatchingTask(log, matching, matchingInterval)
	v := provideTaskList(offerSweep, requestMatching)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceRequest:    request,
		ServiceMatching:   matching,
		ServiceAssignment: assignment,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-request-status-changed)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideRequestRepository(querier)
	offerRepository := provideOfferRepository(querier)
	driverRepository := provideDriverRepository(querier)
	policy := provideMatchingPolicy(cfg)
	matching := provideServiceMatching(log, repository, offerRepository, driverRepository, policy)
	manager := provideTxManager(pool)
	request := provideServiceRequest(repository, offerRepository, manager)
	statusHandlerFactory := provideStatusHandlerFactory(matching, request)
	service := provideEventService(statusHandlerFactory)
	kafkaWorkerApp := &KafkaWorkerApp{
		EventService: service,
	}
	return kafkaWorkerApp, nil
}
