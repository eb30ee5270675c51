// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package welcome

import (
	"github.com/ecodeclub/welcome/internal/email"
	"github.com/ecodeclub/welcome/internal/pkg/proxysign"
	"github.com/ecodeclub/welcome/internal/shopify"
	"github.com/ecodeclub/welcome/internal/welcome/internal/service"
	"github.com/ecodeclub/welcome/internal/welcome/internal/web"
	"github.com/gotomicro/ego/core/econf"
	"time"
)

// Injectors from wire.go:

func InitModule(shopifySvc shopify.Service, emailSvc email.Service, verifier *proxysign.Verifier) *Module {
	codeMinter := initCodeMinter(shopifySvc)
	service := initService(shopifySvc, codeMinter, emailSvc)
	handler := web.NewHandler(service, verifier)
	module := &Module{
		Hdl: handler,
		Svc: service,
	}
	return module
}

// wire.go:

// 冲突意味着换一个候选码重试，间隔只用来错峰，不需要长退避
func initCodeMinter(svc shopify.Service) *service.CodeMinter {
	const maxAttempts = 5
	return service.NewCodeMinter(svc, 10*time.Millisecond, 100*time.Millisecond, maxAttempts)
}

func initService(shopifySvc shopify.Service,
	minter *service.CodeMinter,
	emailSvc email.Service) service.Service {
	type Config struct {
		Sender string `yaml:"sender"`
	}
	var cfg Config
	err := econf.UnmarshalKey("welcome", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewService(shopifySvc, minter, emailSvc, cfg.Sender)
}
