package ioc

import (
	"github.com/ecodeclub/welcome/internal/pkg/proxysign"
	"github.com/gotomicro/ego/core/econf"
)

func InitProxyVerifier() *proxysign.Verifier {
	secret := econf.GetString("proxy.secret")
	if secret == "" {
		panic("proxy.secret 未配置")
	}
	return proxysign.NewVerifier(secret)
}
