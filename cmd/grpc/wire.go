//go:build wireinject
// +build wireinject

package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/controllers"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/server"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/tasks"
)

func wireApp(*conf.Bootstrap, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		repositories.ProviderSet,
		server.ProviderSet,
		services.ProviderSet,
		tasks.ProviderSet,
		controllers.ProviderSet,
		newApp,
	))
}
