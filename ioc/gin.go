package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/welcome/internal/welcome"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinServer(welcomeHdl *welcome.Hdl) *egin.Component {
	storeDomain := econf.GetString("cors.storeDomain")
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许店铺域名过来的
			return storeDomain != "" && strings.Contains(origin, storeDomain)
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	welcomeHdl.PublicRoutes(res.Engine)
	return res
}
