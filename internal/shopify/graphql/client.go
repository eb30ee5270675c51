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

package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/welcome/internal/shopify"
)

// HTTPClient HTTP 客户端接口，用于执行 HTTP 请求
// 便于测试时 mock
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client Shopify Admin GraphQL API 客户端。
// 四个操作走同一个 endpoint，认证使用 X-Shopify-Access-Token 请求头。
// 平台返回的 errors 和 userErrors 都会被拼接进一个错误里上抛。
type Client struct {
	endpoint string
	token    string
	client   HTTPClient
}

// 编译时验证 Client 实现了 shopify.Service 接口
var _ shopify.Service = (*Client)(nil)

func NewClient(domain, apiVersion, token string, client HTTPClient) *Client {
	return &Client{
		endpoint: fmt.Sprintf("https://%s/admin/api/%s/graphql.json", domain, apiVersion),
		token:    token,
		client:   client,
	}
}

const orderQuery = `query($q: String!) {
  orders(first: 1, query: $q) {
    edges { node { id } }
  }
}`

// HasOrder 任何状态的订单都算数，未履约的也会挡住发放
func (c *Client) HasOrder(ctx context.Context, email string) (bool, error) {
	var data struct {
		Orders struct {
			Edges []struct {
				Node struct {
					ID string `json:"id"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"orders"`
	}
	err := c.execute(ctx, orderQuery, map[string]any{"q": "email:" + email}, &data)
	if err != nil {
		return false, fmt.Errorf("查询历史订单失败: %w", err)
	}
	return len(data.Orders.Edges) > 0, nil
}

const customerQuery = `query($q: String!) {
  customers(first: 1, query: $q) {
    edges {
      node {
        id
        email
        metafield(namespace: "welcome", key: "code") { value }
      }
    }
  }
}`

const customerCreateMutation = `mutation($input: CustomerInput!) {
  customerCreate(input: $input) {
    customer { id email }
    userErrors { field message }
  }
}`

func (c *Client) FindOrCreateCustomer(ctx context.Context, email string) (shopify.Customer, error) {
	var data struct {
		Customers struct {
			Edges []struct {
				Node struct {
					ID        string `json:"id"`
					Email     string `json:"email"`
					Metafield *struct {
						Value string `json:"value"`
					} `json:"metafield"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"customers"`
	}
	err := c.execute(ctx, customerQuery, map[string]any{"q": "email:" + email}, &data)
	if err != nil {
		return shopify.Customer{}, fmt.Errorf("查询客户失败: %w", err)
	}
	if len(data.Customers.Edges) > 0 {
		node := data.Customers.Edges[0].Node
		res := shopify.Customer{ID: node.ID, Email: node.Email}
		if node.Metafield != nil {
			res.WelcomeCode = node.Metafield.Value
		}
		return res, nil
	}
	return c.createCustomer(ctx, email)
}

func (c *Client) createCustomer(ctx context.Context, email string) (shopify.Customer, error) {
	var data struct {
		CustomerCreate struct {
			Customer *struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"customer"`
			UserErrors []userError `json:"userErrors"`
		} `json:"customerCreate"`
	}
	err := c.execute(ctx, customerCreateMutation,
		map[string]any{"input": map[string]any{"email": email}}, &data)
	if err != nil {
		return shopify.Customer{}, fmt.Errorf("创建客户失败: %w", err)
	}
	if err = c.userErrorsToError(data.CustomerCreate.UserErrors); err != nil {
		return shopify.Customer{}, fmt.Errorf("创建客户失败: %w", err)
	}
	if data.CustomerCreate.Customer == nil {
		return shopify.Customer{}, errors.New("创建客户失败: 平台未返回客户记录")
	}
	return shopify.Customer{
		ID:    data.CustomerCreate.Customer.ID,
		Email: data.CustomerCreate.Customer.Email,
	}, nil
}

const discountCreateMutation = `mutation($basicCodeDiscount: DiscountCodeBasicInput!) {
  discountCodeBasicCreate(basicCodeDiscount: $basicCodeDiscount) {
    codeDiscountNode {
      codeDiscount {
        ... on DiscountCodeBasic {
          codes(first: 1) { nodes { code } }
        }
      }
    }
    userErrors { field code message }
  }
}`

// CreateDiscountCode 注册一张单次使用、10% off、每客户最多一次的折扣码：
// 立即生效、不过期、适用于全部商品和全部客户（凭码使用）。
func (c *Client) CreateDiscountCode(ctx context.Context, candidate string) (string, error) {
	input := map[string]any{
		"title":                  candidate,
		"code":                   candidate,
		"startsAt":               time.Now().UTC().Format(time.RFC3339),
		"usageLimit":             1,
		"appliesOncePerCustomer": true,
		"customerSelection":      map[string]any{"all": true},
		"customerGets": map[string]any{
			"value": map[string]any{"percentage": 0.1},
			"items": map[string]any{"all": true},
		},
	}
	var data struct {
		DiscountCodeBasicCreate struct {
			CodeDiscountNode *struct {
				CodeDiscount struct {
					Codes struct {
						Nodes []struct {
							Code string `json:"code"`
						} `json:"nodes"`
					} `json:"codes"`
				} `json:"codeDiscount"`
			} `json:"codeDiscountNode"`
			UserErrors []userError `json:"userErrors"`
		} `json:"discountCodeBasicCreate"`
	}
	err := c.execute(ctx, discountCreateMutation,
		map[string]any{"basicCodeDiscount": input}, &data)
	if err != nil {
		return "", fmt.Errorf("创建折扣码失败: %w", err)
	}
	uerrs := data.DiscountCodeBasicCreate.UserErrors
	if isCodeTaken(uerrs) {
		return "", fmt.Errorf("%w: %s", shopify.ErrCodeTaken, candidate)
	}
	if err = c.userErrorsToError(uerrs); err != nil {
		return "", fmt.Errorf("创建折扣码失败: %w", err)
	}
	node := data.DiscountCodeBasicCreate.CodeDiscountNode
	if node != nil && len(node.CodeDiscount.Codes.Nodes) > 0 {
		// 以平台落库的码值为准
		return node.CodeDiscount.Codes.Nodes[0].Code, nil
	}
	return candidate, nil
}

const metafieldsSetMutation = `mutation($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    metafields { id }
    userErrors { field code message }
  }
}`

func (c *Client) SetWelcomeCode(ctx context.Context, customerID, code string) error {
	metafields := []map[string]any{
		{
			"ownerId":   customerID,
			"namespace": "welcome",
			"key":       "code",
			"type":      "single_line_text_field",
			"value":     code,
		},
	}
	var data struct {
		MetafieldsSet struct {
			UserErrors []userError `json:"userErrors"`
		} `json:"metafieldsSet"`
	}
	err := c.execute(ctx, metafieldsSetMutation, map[string]any{"metafields": metafields}, &data)
	if err != nil {
		return fmt.Errorf("写入发放标记失败: %w", err)
	}
	if err = c.userErrorsToError(data.MetafieldsSet.UserErrors); err != nil {
		return fmt.Errorf("写入发放标记失败: %w", err)
	}
	return nil
}

type userError struct {
	Field   []string `json:"field"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// execute 执行一次查询或变更，把 data 字段解析到 out 里。
// 非 2xx 状态码、GraphQL errors 都会合并成一个错误返回。
func (c *Client) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return fmt.Errorf("序列化请求失败: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("构造请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("请求平台失败: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("平台返回非预期状态码 %d: %s", resp.StatusCode, respBody)
	}
	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err = json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	if len(envelope.Errors) > 0 {
		msgs := slice.Map(envelope.Errors, func(idx int, src graphQLError) string {
			return src.Message
		})
		return fmt.Errorf("平台返回错误: %s", strings.Join(msgs, "; "))
	}
	if out != nil && len(envelope.Data) > 0 {
		if err = json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("解析数据失败: %w", err)
		}
	}
	return nil
}

func (c *Client) userErrorsToError(errs []userError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := slice.Map(errs, func(idx int, src userError) string {
		return src.Message
	})
	return errors.New(strings.Join(msgs, "; "))
}

// isCodeTaken 判断是否命名冲突。优先看结构化的错误码，
// 老版本 API 不返回 code 字段，退化为匹配错误信息。
func isCodeTaken(errs []userError) bool {
	for _, ue := range errs {
		if ue.Code == "TAKEN" || strings.Contains(ue.Message, "has already been taken") {
			return true
		}
	}
	return false
}
