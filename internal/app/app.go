// Package app wires repositories, providers and use cases from config. Both
// the HTTP server and dispatchctl build on it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch_service/internal/adapter/persistence/jobfile"
	"dispatch_service/internal/adapter/persistence/memory"
	"dispatch_service/internal/adapter/persistence/repository"
	appconfig "dispatch_service/internal/config"
	"dispatch_service/internal/domain/entities"
	"dispatch_service/internal/domain/geo"
	"dispatch_service/internal/infrastructure/database"
	"dispatch_service/internal/infrastructure/events"
	"dispatch_service/internal/infrastructure/routing"
	"dispatch_service/internal/usecase"
	"dispatch_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type App struct {
	Config appconfig.Config
	// DynamoDB is nil for the memory driver.
	DynamoDB *dynamodb.Client
	Broker   *events.Broker

	Jobs        interfaces.IJobCatalog
	Technicians usecase.ITechnicianUseCase
	Schedule    usecase.IScheduleUseCase
	Routes      usecase.IRouteUseCase
	Suggestions usecase.ISuggestionUseCase
	Sweeper     *usecase.SuggestionSweeper
}

type stores struct {
	technicians interfaces.ITechnicianRepository
	history     interfaces.ILocationHistoryRepository
	entries     interfaces.IScheduleEntryRepository
	suggestions interfaces.ISuggestionRepository
	jobs        interfaces.IJobCatalog
}

// New builds the application for cfg.StorageDriver and cfg.RoutingProvider.
func New(ctx context.Context, cfg appconfig.Config) (*App, error) {
	weights, err := appconfig.LoadScoringWeights(cfg.ScoringWeightsFile)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Broker: events.NewBroker()}

	var (
		s       stores
		awsCfg  aws.Config
		haveAWS bool
	)
	switch cfg.StorageDriver {
	case appconfig.StorageMemory:
		s, err = memoryStores(cfg)
		if err != nil {
			return nil, err
		}
	case appconfig.StorageDynamoDB:
		a.DynamoDB, awsCfg, err = database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		haveAWS = true
		s = dynamoStores(a.DynamoDB, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	estimator := geo.Estimator{AverageSpeedKmh: cfg.AverageSpeedKmh, RoadFactor: cfg.RoadDistanceFactor}
	provider, err := routingProvider(ctx, cfg, estimator, awsCfg, haveAWS)
	if err != nil {
		return nil, err
	}

	techUC := usecase.NewTechnicianUseCase(s.technicians, s.history, s.entries, a.Broker, usecase.TechnicianOptions{
		AutoApproveAvailability: cfg.AvailabilityAutoApprove,
		HistoryRetention:        cfg.LocationHistoryRetention,
	})
	scheduleUC := usecase.NewScheduleUseCase(s.entries, s.technicians, s.jobs, a.Broker, cfg.AssignMaxRetries)

	a.Jobs = s.jobs
	a.Technicians = techUC
	a.Schedule = scheduleUC
	a.Routes = usecase.NewRouteUseCase(scheduleUC, s.technicians, s.jobs, provider, usecase.RouteOptions{
		Estimator:     estimator,
		MaxIterations: cfg.OptimizerMaxIterations,
	})
	a.Suggestions = usecase.NewSuggestionUseCase(s.suggestions, techUC, s.entries, s.jobs, provider, scheduleUC, a.Broker, usecase.SuggestionOptions{
		Weights:            weights,
		Estimator:          estimator,
		TTL:                cfg.SuggestionTTL,
		AutoAssignMinScore: cfg.AutoAssignMinScore,
	})
	a.Sweeper = usecase.NewSuggestionSweeper(s.suggestions, cfg.SuggestionTTL, cfg.SweepBatchSize)

	slog.Info("application wired",
		"storage", cfg.StorageDriver,
		"routing", cfg.RoutingProvider,
		"scoring_weights", weights,
	)
	return a, nil
}

func memoryStores(cfg appconfig.Config) (stores, error) {
	var seed []entities.JobDetails
	if cfg.JobsSeedFile != "" {
		jobs, err := jobfile.Load(cfg.JobsSeedFile)
		if err != nil {
			return stores{}, err
		}
		seed = jobs
		slog.Info("job catalog seeded", "file", cfg.JobsSeedFile, "jobs", len(jobs))
	}
	return stores{
		technicians: memory.NewTechnicianRepository(),
		history:     memory.NewLocationHistoryRepository(),
		entries:     memory.NewScheduleEntryRepository(),
		suggestions: memory.NewSuggestionRepository(),
		jobs:        memory.NewJobCatalog(seed...),
	}, nil
}

func dynamoStores(ddb *dynamodb.Client, cfg appconfig.Config) stores {
	return stores{
		technicians: repository.NewTechnicianDynamoRepository(ddb, cfg.TechniciansTable),
		history:     repository.NewLocationHistoryDynamoRepository(ddb, cfg.LocationHistoryTable),
		entries:     repository.NewScheduleEntryDynamoRepository(ddb, cfg.ScheduleEntriesTable),
		suggestions: repository.NewSuggestionDynamoRepository(ddb, cfg.SuggestionsTable),
		jobs:        repository.NewJobCatalogDynamoRepository(ddb, cfg.JobsTable),
	}
}

// routingProvider picks the travel-time source. Every provider is wrapped
// with the timeout and retry policy.
func routingProvider(ctx context.Context, cfg appconfig.Config, est geo.Estimator, awsCfg aws.Config, haveAWS bool) (interfaces.IRoutingProvider, error) {
	var next interfaces.IRoutingProvider
	switch cfg.RoutingProvider {
	case appconfig.RoutingStraightLine:
		next = routing.StraightLine{Estimator: est}
	case appconfig.RoutingAWS:
		if !haveAWS {
			var err error
			awsCfg, err = database.LoadAWSConfig(ctx, cfg)
			if err != nil {
				return nil, fmt.Errorf("load aws config: %w", err)
			}
		}
		gw, err := routing.NewLocationGateway(awsCfg, cfg.RouteCalculatorName)
		if err != nil {
			return nil, err
		}
		next = gw
	default:
		return nil, fmt.Errorf("unknown routing provider %q", cfg.RoutingProvider)
	}
	return routing.NewResilient(next, cfg.RoutingTimeout, cfg.RoutingMaxRetries), nil
}
