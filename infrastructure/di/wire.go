//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"gardenbook/application/commands/bus"
	"gardenbook/application/ports"
	querybus "gardenbook/application/queries/bus"
	"gardenbook/infrastructure/config"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	GardenRepo     ports.GardenRepository
	EventPublisher ports.EventPublisher
	Clock          ports.Clock
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideGardenRepository,
	ProvideEventPublisher,
	ProvideClock,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
