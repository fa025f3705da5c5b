package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch/internal/handlers/rest/offer_accept_post"
	"dispatch/internal/handlers/rest/offer_reject_post"
	"dispatch/internal/handlers/rest/request_get"
	"dispatch/internal/handlers/rest/request_offers_get"
	"dispatch/internal/handlers/rest/request_post"
	"dispatch/internal/handlers/rest/request_propose_post"
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
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
)

type (
	SweepInterval    time.Duration
	MatchingInterval time.Duration
)

type Application struct {
	ServiceRequest    ServiceRequest
	ServiceMatching   ServiceMatching
	ServiceAssignment ServiceAssignment
	BackgroundWorkers *background.Worker
}

type ServiceRequest interface {
	request_post.Service
	request_get.Service
	request_offers_get.Service
}

type ServiceMatching interface {
	request_propose_post.Service
}

type ServiceAssignment interface {
	offer_accept_post.Service
	offer_reject_post.Service
}

type KafkaWorkerApp struct {
	EventService *requesteventService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRequestRepository(querier *querier.Querier) *requestRepo.Repository {
	return requestRepo.New(querier)
}

func provideOfferRepository(querier *querier.Querier) *offerRepo.Repository {
	return offerRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideMatchingPolicy(cfg *config.Config) matchingService.Policy {
	return matchingService.Policy{
		RadiiMeters:    cfg.Matching.SearchRadiiMeters,
		CandidateLimit: cfg.Matching.CandidateLimit,
		OfferTTL:       cfg.Matching.OfferTTL,
	}
}

func provideServiceRequest(
	repository requestService.Repository,
	offers requestService.OfferRepository,
	txManager requestService.TxManager,
) *requestService.Request {
	return requestService.New(repository, offers, txManager)
}

func provideServiceMatching(
	log logger.Logger,
	requests matchingService.RequestRepository,
	offers matchingService.OfferRepository,
	geo matchingService.GeoIndex,
	policy matchingService.Policy,
) *matchingService.Matching {
	return matchingService.New(log, requests, offers, geo, policy)
}

func provideServiceAssignment(
	log logger.Logger,
	offers assignmentService.OfferRepository,
	requests assignmentService.RequestRepository,
) *assignmentService.Assignment {
	return assignmentService.New(log, offers, requests)
}

func provideServiceSweeper(
	log logger.Logger,
	offers sweeperService.OfferRepository,
) *sweeperService.Sweeper {
	return sweeperService.New(log, offers)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.OfferSweepInterval)
}

func provideMatchingInterval(cfg *config.Config) MatchingInterval {
	return MatchingInterval(cfg.Tasks.PendingMatchingInterval)
}

func provideOfferSweepTask(
	log logger.Logger,
	sweeperSvc offer_sweep.Service,
	interval SweepInterval,
) *offer_sweep.OfferSweep {
	return offer_sweep.NewOfferSweep(log, sweeperSvc, time.Duration(interval))
}

func provideRequestMatchingTask(
	log logger.Logger,
	matchingSvc request_matching.Service,
	interval MatchingInterval,
) *request_matching.RequestMatching {
	return request_matching.NewRequestMatching(log, matchingSvc, time.Duration(interval))
}

func provideTaskList(
	offerSweepTask *offer_sweep.OfferSweep,
	requestMatchingTask *request_matching.RequestMatching,
) []background.Task {
	return []background.Task{
		offerSweepTask,
		requestMatchingTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideStatusHandlerFactory(
	matchingSvc request_handle.MatchingService,
	requestSvc request_handle.RequestService,
) *request_handle.StatusHandlerFactory {
	return request_handle.NewStatusHandlerFactory(matchingSvc, requestSvc)
}

func provideEventService(handlerFactory requesteventService.HandlerFactory) *requesteventService.Service {
	return requesteventService.New(handlerFactory)
}
