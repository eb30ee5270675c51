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

package shopify

import (
	"context"
	"errors"
)

// ErrCodeTaken 折扣码命名冲突：平台侧已存在同名折扣码。
// 铸码器依赖这个错误决定是否换一个候选码重试，
// 其余错误一律原样上抛。
var ErrCodeTaken = errors.New("折扣码已被占用")

// Customer 平台侧的客户记录。WelcomeCode 为空表示尚未发放过欢迎码。
type Customer struct {
	ID          string
	Email       string
	WelcomeCode string
}

//go:generate mockgen -source=./type.go -package=shopifymocks -destination=./mocks/shopify.mock.go -typed Service
type Service interface {
	// HasOrder 判断邮箱名下是否存在任何订单，不区分履约状态
	HasOrder(ctx context.Context, email string) (bool, error)
	// FindOrCreateCustomer 按邮箱查找客户，不存在则创建一条最小客户记录
	FindOrCreateCustomer(ctx context.Context, email string) (Customer, error)
	// CreateDiscountCode 注册一张单次使用、10% off 的折扣码。
	// 返回平台最终落库的码值，以平台返回为准，可能和候选值不同。
	// 命名冲突返回 ErrCodeTaken
	CreateDiscountCode(ctx context.Context, candidate string) (string, error)
	// SetWelcomeCode 把欢迎码写入客户的发放标记（metafield welcome.code）
	SetWelcomeCode(ctx context.Context, customerID, code string) error
}
