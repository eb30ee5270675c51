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
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/welcome/internal/shopify"
	"github.com/gotomicro/ego/core/elog"
)

// ErrMintExhausted 连续命中重复折扣码，重试预算耗尽
var ErrMintExhausted = errors.New("无法铸造唯一欢迎码")

const codePrefix = "WELCOME-"

// CodeMinter 负责生成候选欢迎码并在平台注册为折扣码。
// 候选码是固定前缀加 6 位大写十六进制字符（3 字节随机数），
// 单次冲突概率约 1/16777216，命中冲突时换一个候选码重试。
type CodeMinter struct {
	svc             shopify.Service
	initialInterval time.Duration
	maxInterval     time.Duration
	maxAttempts     int32
	logger          *elog.Component
}

func NewCodeMinter(svc shopify.Service, initialInterval, maxInterval time.Duration, maxAttempts int32) *CodeMinter {
	return &CodeMinter{
		svc:             svc,
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
		maxAttempts:     maxAttempts,
		logger:          elog.DefaultLogger,
	}
}

// Mint 返回平台最终落库的折扣码。
// 只在命名冲突（shopify.ErrCodeTaken）时换码重试，其余错误立即上抛。
func (m *CodeMinter) Mint(ctx context.Context) (string, error) {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(
		m.initialInterval, m.maxInterval, m.maxAttempts-1)
	if err != nil {
		return "", fmt.Errorf("创建重试策略失败: %w", err)
	}
	for {
		candidate, err := m.generate()
		if err != nil {
			return "", fmt.Errorf("生成候选欢迎码失败: %w", err)
		}
		code, err := m.svc.CreateDiscountCode(ctx, candidate)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, shopify.ErrCodeTaken) {
			return "", err
		}
		m.logger.Warn("候选欢迎码与已有折扣码冲突，换码重试",
			elog.String("candidate", candidate))
		next, ok := strategy.Next()
		if !ok {
			return "", fmt.Errorf("%w: 连续 %d 次命中冲突", ErrMintExhausted, m.maxAttempts)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(next):
		}
	}
}

func (m *CodeMinter) generate() (string, error) {
	var buf [3]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return codePrefix + strings.ToUpper(hex.EncodeToString(buf[:])), nil
}
