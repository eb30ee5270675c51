//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/welcome/internal/welcome"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitShopifyService, InitEmailService, InitProxyVerifier)

func InitApp() *App {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		welcome.InitModule,
		wire.FieldsOf(new(*welcome.Module), "Hdl"),
		initGinServer)
	return new(App)
}
