//go:build wireinject
// +build wireinject

package main

import (
	"github.com/ATenderholt/dockerlib"
	"github.com/croften/shout/internal/domain"
	"github.com/croften/shout/internal/http"
	"github.com/croften/shout/internal/service"
	"github.com/croften/shout/internal/settings"
	"github.com/google/wire"
)

var api = wire.NewSet(
	http.NewChiMux,
	http.NewEventHandler,
)

var pipeline = wire.NewSet(
	service.NewPipeline,
	service.NewLambdaInvoker,
	NewLambdaClient,
	wire.Bind(new(domain.FunctionInvoker), new(service.LambdaInvoker)),
	wire.Bind(new(service.Config), new(*settings.Config)),
	wire.Bind(new(service.AwsConfig), new(*settings.Config)),
)

func InjectApp(cfg *settings.Config) (App, error) {
	wire.Build(
		NewApp,
		api,
		pipeline,
		dockerlib.NewDockerController,
	)
	return App{}, nil
}
