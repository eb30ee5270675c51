package welcome

import (
	"github.com/ecodeclub/welcome/internal/welcome/internal/service"
	"github.com/ecodeclub/welcome/internal/welcome/internal/web"
)

type Module struct {
	Hdl *Hdl
	Svc Svc
}

type Hdl = web.Handler
type Svc = service.Service
