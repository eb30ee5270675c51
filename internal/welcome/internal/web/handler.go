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
	"errors"
	"net/http"

	"github.com/ecodeclub/welcome/internal/pkg/proxysign"
	"github.com/ecodeclub/welcome/internal/welcome/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc      service.Service
	verifier *proxysign.Verifier
	logger   *elog.Component
}

func NewHandler(svc service.Service, verifier *proxysign.Verifier) *Handler {
	return &Handler{
		svc:      svc,
		verifier: verifier,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 签名校验在最前面，没有合法代理签名的请求直接 401
	server.Any("/welcome/claim", h.verifier.Middleware(), h.Claim)
}

func (h *Handler) Claim(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		ctx.JSON(http.StatusBadRequest, Result{Message: "only POST is supported"})
		return
	}
	var req ClaimReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, Result{Message: "a valid email address is required"})
		return
	}
	issuance, err := h.svc.Claim(ctx.Request.Context(), req.Email)
	switch {
	case errors.Is(err, service.ErrAlreadyPurchased):
		ctx.JSON(http.StatusConflict,
			Result{Message: "the welcome discount is for first purchases only"})
	case err != nil:
		// 详细错误只进日志，不回给调用方
		h.logger.Error("发放欢迎码失败",
			elog.FieldErr(err), elog.String("email", req.Email))
		ctx.JSON(http.StatusInternalServerError,
			Result{Message: "something went wrong, please try again later"})
	default:
		ctx.JSON(http.StatusOK, Result{
			OK:      true,
			Message: "your welcome code has been sent to " + issuance.Email,
		})
	}
}
