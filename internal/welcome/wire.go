// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package welcome

import (
	"time"

	"github.com/ecodeclub/welcome/internal/email"
	"github.com/ecodeclub/welcome/internal/pkg/proxysign"
	"github.com/ecodeclub/welcome/internal/shopify"
	"github.com/ecodeclub/welcome/internal/welcome/internal/service"
	"github.com/ecodeclub/welcome/internal/welcome/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(shopifySvc shopify.Service,
	emailSvc email.Service,
	verifier *proxysign.Verifier) *Module {
	wire.Build(
		initCodeMinter,
		initService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

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
