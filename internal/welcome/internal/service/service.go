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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/welcome/internal/email"
	"github.com/ecodeclub/welcome/internal/shopify"
	"github.com/ecodeclub/welcome/internal/welcome/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	uuid "github.com/lithammer/shortuuid/v4"
)

// ErrAlreadyPurchased 邮箱名下已有订单，欢迎码仅限首次购买
var ErrAlreadyPurchased = errors.New("已存在历史订单")

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go -typed Service
type Service interface {
	// Claim 给邮箱发放一张一次性欢迎折扣码。
	// 已经发放过的情况下不会铸造第二张码，只把原码重发一遍。
	Claim(ctx context.Context, email string) (domain.Issuance, error)
}

type service struct {
	shopifySvc shopify.Service
	minter     *CodeMinter
	emailSvc   email.Service
	sender     string
	logger     *elog.Component
}

func NewService(shopifySvc shopify.Service, minter *CodeMinter,
	emailSvc email.Service, sender string) Service {
	return &service{
		shopifySvc: shopifySvc,
		minter:     minter,
		emailSvc:   emailSvc,
		sender:     sender,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Claim(ctx context.Context, addr string) (domain.Issuance, error) {
	tid := uuid.New()
	c, err := s.shopifySvc.FindOrCreateCustomer(ctx, addr)
	if err != nil {
		return domain.Issuance{}, fmt.Errorf("查找或创建客户失败: %w", err)
	}
	// 幂等：发放过就只重发邮件，绝不铸造第二张码
	if c.WelcomeCode != "" {
		if err = s.sendCode(ctx, addr, c.WelcomeCode); err != nil {
			return domain.Issuance{}, fmt.Errorf("重发欢迎码邮件失败: %w", err)
		}
		s.logger.Info("重发已有欢迎码",
			elog.String("tid", tid), elog.String("email", addr))
		return domain.Issuance{Email: addr, Code: c.WelcomeCode, Resent: true}, nil
	}
	hasOrder, err := s.shopifySvc.HasOrder(ctx, addr)
	if err != nil {
		return domain.Issuance{}, fmt.Errorf("查询历史订单失败: %w", err)
	}
	if hasOrder {
		return domain.Issuance{}, fmt.Errorf("%w: %s", ErrAlreadyPurchased, addr)
	}
	code, err := s.minter.Mint(ctx)
	if err != nil {
		return domain.Issuance{}, err
	}
	// 先落发放标记再发邮件。邮件失败不回滚标记，
	// 客户端重试会走上面的重发分支，拿到的还是同一张码
	if err = s.shopifySvc.SetWelcomeCode(ctx, c.ID, code); err != nil {
		return domain.Issuance{}, fmt.Errorf("写入发放标记失败: %w", err)
	}
	if err = s.sendCode(ctx, addr, code); err != nil {
		return domain.Issuance{}, fmt.Errorf("发送欢迎码邮件失败: %w", err)
	}
	s.logger.Info("发放欢迎码成功",
		elog.String("tid", tid), elog.String("email", addr))
	return domain.Issuance{Email: addr, Code: code}, nil
}

const mailSubject = "Your 10% welcome discount"

func (s *service) sendCode(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(`<p>Thanks for joining us!</p>
<p>Use code <strong>%s</strong> at checkout to get 10%% off your first order.</p>`, code)
	return s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.sender,
		To:      to,
		Subject: mailSubject,
		Body:    []byte(body),
	})
}
