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

package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecodeclub/welcome/internal/pkg/proxysign"
	"github.com/ecodeclub/welcome/internal/welcome/internal/domain"
	"github.com/ecodeclub/welcome/internal/welcome/internal/service"
	svcmocks "github.com/ecodeclub/welcome/internal/welcome/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "shpss_test_secret"

// signedURL 返回带合法代理签名的请求路径
func signedURL(params string) string {
	h := hmac.New(sha256.New, []byte(testSecret))
	h.Write([]byte(params))
	return fmt.Sprintf("/welcome/claim?%s&signature=%s", params, hex.EncodeToString(h.Sum(nil)))
}

func TestHandler_Claim(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		method   string
		url      string
		body     string
		wantCode int
		wantBody Result
	}{
		{
			name: "缺少签名返回401",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			method:   http.MethodPost,
			url:      "/welcome/claim?shop=demo-store.myshopify.com",
			body:     `{"email":"shopper@example.com"}`,
			wantCode: http.StatusUnauthorized,
			wantBody: Result{Message: "invalid signature"},
		},
		{
			name: "签名不合法时连请求体都不看",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			method:   http.MethodPost,
			url:      "/welcome/claim?shop=demo-store.myshopify.com&signature=deadbeef",
			body:     `{"email":`,
			wantCode: http.StatusUnauthorized,
			wantBody: Result{Message: "invalid signature"},
		},
		{
			name: "非POST返回400",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			method:   http.MethodGet,
			url:      signedURL("shop=demo-store.myshopify.com"),
			wantCode: http.StatusBadRequest,
			wantBody: Result{Message: "only POST is supported"},
		},
		{
			name: "邮箱非法返回400",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			method:   http.MethodPost,
			url:      signedURL("shop=demo-store.myshopify.com"),
			body:     `{"email":"not-an-email"}`,
			wantCode: http.StatusBadRequest,
			wantBody: Result{Message: "a valid email address is required"},
		},
		{
			name: "邮箱缺失返回400",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			method:   http.MethodPost,
			url:      signedURL("shop=demo-store.myshopify.com"),
			body:     `{}`,
			wantCode: http.StatusBadRequest,
			wantBody: Result{Message: "a valid email address is required"},
		},
		{
			name: "已有历史订单返回409",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Claim(gomock.Any(), "shopper@example.com").
					Return(domain.Issuance{},
						fmt.Errorf("%w: shopper@example.com", service.ErrAlreadyPurchased))
				return svc
			},
			method:   http.MethodPost,
			url:      signedURL("shop=demo-store.myshopify.com"),
			body:     `{"email":"shopper@example.com"}`,
			wantCode: http.StatusConflict,
			wantBody: Result{Message: "the welcome discount is for first purchases only"},
		},
		{
			name: "系统错误返回500且不泄露细节",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Claim(gomock.Any(), "shopper@example.com").
					Return(domain.Issuance{}, errors.New("平台返回非预期状态码 500: internal token leaked"))
				return svc
			},
			method:   http.MethodPost,
			url:      signedURL("shop=demo-store.myshopify.com"),
			body:     `{"email":"shopper@example.com"}`,
			wantCode: http.StatusInternalServerError,
			wantBody: Result{Message: "something went wrong, please try again later"},
		},
		{
			name: "发放成功返回200",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Claim(gomock.Any(), "shopper@example.com").
					Return(domain.Issuance{
						Email: "shopper@example.com",
						Code:  "WELCOME-1A2B3C",
					}, nil)
				return svc
			},
			method:   http.MethodPost,
			url:      signedURL("shop=demo-store.myshopify.com"),
			body:     `{"email":"shopper@example.com"}`,
			wantCode: http.StatusOK,
			wantBody: Result{OK: true, Message: "your welcome code has been sent to shopper@example.com"},
		},
		{
			name: "重发已有欢迎码同样返回200",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Claim(gomock.Any(), "shopper@example.com").
					Return(domain.Issuance{
						Email:  "shopper@example.com",
						Code:   "WELCOME-ABC123",
						Resent: true,
					}, nil)
				return svc
			},
			method:   http.MethodPost,
			url:      signedURL("shop=demo-store.myshopify.com"),
			body:     `{"email":"shopper@example.com"}`,
			wantCode: http.StatusOK,
			wantBody: Result{OK: true, Message: "your welcome code has been sent to shopper@example.com"},
		},
	}

	gin.SetMode(gin.ReleaseMode)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.New()
			h := NewHandler(tc.mock(ctrl), proxysign.NewVerifier(testSecret))
			h.PublicRoutes(server)

			req, err := http.NewRequest(tc.method, tc.url,
				strings.NewReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			server.ServeHTTP(resp, req)

			assert.Equal(t, tc.wantCode, resp.Code)
			var got Result
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			assert.Equal(t, tc.wantBody, got)
			// 详细错误绝不能出现在响应体里
			assert.False(t, strings.Contains(resp.Body.String(), "internal token leaked"))
		})
	}
}
