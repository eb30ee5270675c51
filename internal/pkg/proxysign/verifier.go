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

package proxysign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// Verifier 校验店铺代理转发请求的签名。
// 代理会在原始查询参数之外追加一个 signature 参数，
// 其值是用共享密钥对剩余查询串（保持原始参数顺序）做
// HMAC-SHA256 后的十六进制编码。
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify 返回签名是否有效。URL 非法或者缺少 signature 一律返回 false，不会 panic。
func (v *Verifier) Verify(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.RawQuery == "" {
		return false
	}
	var signature string
	pairs := strings.Split(u.RawQuery, "&")
	rest := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if val, ok := strings.CutPrefix(pair, "signature="); ok {
			signature = val
			continue
		}
		rest = append(rest, pair)
	}
	if signature == "" {
		return false
	}
	h := hmac.New(sha256.New, v.secret)
	h.Write([]byte(strings.Join(rest, "&")))
	expected := hex.EncodeToString(h.Sum(nil))
	// hmac.Equal 是常数时间比较
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Middleware 给公开路由用，签名不合法直接以 401 终止请求，后续 handler 不会执行。
func (v *Verifier) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !v.Verify(ctx.Request.URL.String()) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":      false,
				"message": "invalid signature",
			})
			return
		}
		ctx.Next()
	}
}
