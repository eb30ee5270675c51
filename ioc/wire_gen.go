// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/welcome/internal/welcome"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() *App {
	service := InitShopifyService()
	emailService := InitEmailService()
	verifier := InitProxyVerifier()
	module := welcome.InitModule(service, emailService, verifier)
	handler := module.Hdl
	component := initGinServer(handler)
	app := &App{
		Web: component,
	}
	return app
}

// wire.go:

var BaseSet = wire.NewSet(InitShopifyService, InitEmailService, InitProxyVerifier)
