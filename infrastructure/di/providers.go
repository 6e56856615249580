package di

import (
	"context"
	"fmt"

	"gardenbook/application/commands"
	"gardenbook/application/commands/bus"
	commands_handlers "gardenbook/application/commands/handlers"
	"gardenbook/application/ports"
	"gardenbook/application/queries"
	querybus "gardenbook/application/queries/bus"
	queries_handlers "gardenbook/application/queries/handlers"
	"gardenbook/infrastructure/config"
	"gardenbook/infrastructure/messaging/eventbridge"
	"gardenbook/infrastructure/messaging/noop"
	"gardenbook/infrastructure/persistence/dynamodb"
	"gardenbook/infrastructure/persistence/memory"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideGardenRepository creates a garden repository for the configured backend
func ProvideGardenRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.GardenRepository {
	if cfg.StorageBackend == "memory" {
		return memory.NewGardenRepository()
	}
	return dynamodb.NewGardenRepository(
		client,
		cfg.DynamoDBTable,
		cfg.OwnerIndex, // GSI1 for owner-scoped queries
		logger,
	)
}

// ProvideEventPublisher creates an event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	// Without a configured bus, events are dropped rather than failing writes.
	if cfg.EventBusName == "" {
		return noop.NewPublisher()
	}
	return eventbridge.NewPublisher(
		client,
		cfg.EventBusName,
		logger,
	)
}

// ProvideClock provides the wall clock used for entity timestamps
func ProvideClock() ports.Clock {
	return ports.SystemClock
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	gardenRepo ports.GardenRepository,
	eventPublisher ports.EventPublisher,
	clock ports.Clock,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()
	commandBus.Use(bus.LoggingMiddleware(&zapLoggerAdapter{logger}))

	// Register CreateGardenCommand handler
	createHandler := commands_handlers.NewCreateGardenHandler(gardenRepo, eventPublisher, clock, logger)
	commandBus.Register(commands.CreateGardenCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			createCmd, ok := cmd.(commands.CreateGardenCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := createHandler.Handle(ctx, createCmd)
			return err
		},
	})

	// Register UpdateGardenCommand handler
	updateHandler := commands_handlers.NewUpdateGardenHandler(gardenRepo, eventPublisher, clock, logger)
	commandBus.Register(commands.UpdateGardenCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			updateCmd, ok := cmd.(commands.UpdateGardenCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := updateHandler.Handle(ctx, updateCmd)
			return err
		},
	})

	// Register DeleteGardenCommand handler
	deleteHandler := commands_handlers.NewDeleteGardenHandler(gardenRepo, eventPublisher, clock, logger)
	commandBus.Register(commands.DeleteGardenCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteGardenCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := deleteHandler.Handle(ctx, deleteCmd)
			return err
		},
	})

	// Register AddPlantCommand handler
	addPlantHandler := commands_handlers.NewAddPlantHandler(gardenRepo, eventPublisher, clock, logger)
	commandBus.Register(commands.AddPlantCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			addCmd, ok := cmd.(commands.AddPlantCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := addPlantHandler.Handle(ctx, addCmd)
			return err
		},
	})

	// Register RemovePlantCommand handler
	removePlantHandler := commands_handlers.NewRemovePlantHandler(gardenRepo, eventPublisher, clock, logger)
	commandBus.Register(commands.RemovePlantCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			removeCmd, ok := cmd.(commands.RemovePlantCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := removePlantHandler.Handle(ctx, removeCmd)
			return err
		},
	})

	// Register UpdateImageCommand handler
	updateImageHandler := commands_handlers.NewUpdateImageHandler(gardenRepo, eventPublisher, clock, logger)
	commandBus.Register(commands.UpdateImageCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			imageCmd, ok := cmd.(commands.UpdateImageCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := updateImageHandler.Handle(ctx, imageCmd)
			return err
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	gardenRepo ports.GardenRepository,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	// Register GetGardenQuery handler
	getGardenHandler := queries_handlers.NewGetGardenHandler(gardenRepo, logger)
	queryBus.Register(queries.GetGardenQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetGardenQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getGardenHandler.Handle(ctx, getQuery)
		},
	})

	// Register ListGardensQuery handler
	listGardensHandler := queries_handlers.NewListGardensHandler(gardenRepo, logger)
	queryBus.Register(queries.ListGardensQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListGardensQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listGardensHandler.Handle(ctx, listQuery)
		},
	})

	// Register ListPlantsQuery handler
	listPlantsHandler := queries_handlers.NewListPlantsHandler(gardenRepo, logger)
	queryBus.Register(queries.ListPlantsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListPlantsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listPlantsHandler.Handle(ctx, listQuery)
		},
	})

	return queryBus
}

// zapLoggerAdapter adapts zap.Logger to the bus.Logger interface
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Debug(msg string, fields ...interface{}) {
	a.logger.Debug(msg, a.fieldsToZap(fields...)...)
}

func (a *zapLoggerAdapter) Info(msg string, fields ...interface{}) {
	a.logger.Info(msg, a.fieldsToZap(fields...)...)
}

func (a *zapLoggerAdapter) Error(msg string, fields ...interface{}) {
	a.logger.Error(msg, a.fieldsToZap(fields...)...)
}

func (a *zapLoggerAdapter) fieldsToZap(fields ...interface{}) []zap.Field {
	var zapFields []zap.Field
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			key, _ := fields[i].(string)
			zapFields = append(zapFields, zap.Any(key, fields[i+1]))
		}
	}
	return zapFields
}
