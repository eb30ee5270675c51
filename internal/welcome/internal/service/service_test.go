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
	"strings"
	"testing"

	"github.com/ecodeclub/welcome/internal/email"
	emailmocks "github.com/ecodeclub/welcome/internal/email/mocks"
	"github.com/ecodeclub/welcome/internal/shopify"
	shopifymocks "github.com/ecodeclub/welcome/internal/shopify/mocks"
	"github.com/ecodeclub/welcome/internal/welcome/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testEmail      = "shopper@example.com"
	testCustomerID = "gid://shopify/Customer/7"
)

func TestService_Claim(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) (shopify.Service, email.Service)
		want       domain.Issuance
		requireErr func(t *testing.T, err error)
	}{
		{
			name: "全新邮箱走完整发放流程",
			mock: func(ctrl *gomock.Controller) (shopify.Service, email.Service) {
				shopifySvc := shopifymocks.NewMockService(ctrl)
				shopifySvc.EXPECT().FindOrCreateCustomer(gomock.Any(), testEmail).
					Return(shopify.Customer{ID: testCustomerID, Email: testEmail}, nil)
				shopifySvc.EXPECT().HasOrder(gomock.Any(), testEmail).Return(false, nil)
				shopifySvc.EXPECT().CreateDiscountCode(gomock.Any(), gomock.Any()).
					Return("WELCOME-1A2B3C", nil)
				shopifySvc.EXPECT().SetWelcomeCode(gomock.Any(), testCustomerID, "WELCOME-1A2B3C").
					Return(nil)
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, mail email.Mail) error {
						assert.Equal(t, testEmail, mail.To)
						assert.Equal(t, "Demo Store", mail.From)
						assert.True(t, strings.Contains(string(mail.Body), "WELCOME-1A2B3C"))
						return nil
					})
				return shopifySvc, emailSvc
			},
			want: domain.Issuance{Email: testEmail, Code: "WELCOME-1A2B3C"},
			requireErr: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "已发放过只重发原码，不再铸码",
			mock: func(ctrl *gomock.Controller) (shopify.Service, email.Service) {
				shopifySvc := shopifymocks.NewMockService(ctrl)
				shopifySvc.EXPECT().FindOrCreateCustomer(gomock.Any(), testEmail).
					Return(shopify.Customer{
						ID:          testCustomerID,
						Email:       testEmail,
						WelcomeCode: "WELCOME-ABC123",
					}, nil)
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, mail email.Mail) error {
						assert.True(t, strings.Contains(string(mail.Body), "WELCOME-ABC123"))
						return nil
					})
				return shopifySvc, emailSvc
			},
			want: domain.Issuance{Email: testEmail, Code: "WELCOME-ABC123", Resent: true},
			requireErr: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "已有历史订单直接拒绝，不铸码不发邮件",
			mock: func(ctrl *gomock.Controller) (shopify.Service, email.Service) {
				shopifySvc := shopifymocks.NewMockService(ctrl)
				shopifySvc.EXPECT().FindOrCreateCustomer(gomock.Any(), testEmail).
					Return(shopify.Customer{ID: testCustomerID, Email: testEmail}, nil)
				shopifySvc.EXPECT().HasOrder(gomock.Any(), testEmail).Return(true, nil)
				return shopifySvc, emailmocks.NewMockService(ctrl)
			},
			requireErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrAlreadyPurchased)
			},
		},
		{
			name: "查找客户失败",
			mock: func(ctrl *gomock.Controller) (shopify.Service, email.Service) {
				shopifySvc := shopifymocks.NewMockService(ctrl)
				shopifySvc.EXPECT().FindOrCreateCustomer(gomock.Any(), testEmail).
					Return(shopify.Customer{}, errors.New("平台返回错误"))
				return shopifySvc, emailmocks.NewMockService(ctrl)
			},
			requireErr: func(t *testing.T, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "铸码耗尽重试预算",
			mock: func(ctrl *gomock.Controller) (shopify.Service, email.Service) {
				shopifySvc := shopifymocks.NewMockService(ctrl)
				shopifySvc.EXPECT().FindOrCreateCustomer(gomock.Any(), testEmail).
					Return(shopify.Customer{ID: testCustomerID, Email: testEmail}, nil)
				shopifySvc.EXPECT().HasOrder(gomock.Any(), testEmail).Return(false, nil)
				shopifySvc.EXPECT().CreateDiscountCode(gomock.Any(), gomock.Any()).
					Return("", shopify.ErrCodeTaken).Times(5)
				return shopifySvc, emailmocks.NewMockService(ctrl)
			},
			requireErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMintExhausted)
			},
		},
		{
			name: "标记写入成功但邮件失败，不回滚",
			mock: func(ctrl *gomock.Controller) (shopify.Service, email.Service) {
				shopifySvc := shopifymocks.NewMockService(ctrl)
				shopifySvc.EXPECT().FindOrCreateCustomer(gomock.Any(), testEmail).
					Return(shopify.Customer{ID: testCustomerID, Email: testEmail}, nil)
				shopifySvc.EXPECT().HasOrder(gomock.Any(), testEmail).Return(false, nil)
				shopifySvc.EXPECT().CreateDiscountCode(gomock.Any(), gomock.Any()).
					Return("WELCOME-1A2B3C", nil)
				// 只允许写入一次，邮件失败后不能有删除或覆盖动作
				shopifySvc.EXPECT().SetWelcomeCode(gomock.Any(), testCustomerID, "WELCOME-1A2B3C").
					Return(nil).Times(1)
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					Return(errors.New("邮件服务不可用"))
				return shopifySvc, emailSvc
			},
			requireErr: func(t *testing.T, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			shopifySvc, emailSvc := tc.mock(ctrl)
			svc := NewService(shopifySvc, newTestMinter(shopifySvc), emailSvc, "Demo Store")
			got, err := svc.Claim(context.Background(), testEmail)
			tc.requireErr(t, err)
			if tc.want != (domain.Issuance{}) {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
