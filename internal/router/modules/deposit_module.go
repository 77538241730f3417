package modules

import (
	"github.com/gin-gonic/gin"

	handlers "betpix-backend/internal/interface/http"
)

// DepositModule exposes deposit initiation. The endpoint is deliberately
// public: charges are initiated before the payer has an authenticated session.
type DepositModule struct {
	Handler *handlers.DepositHandler
}

func NewDepositModule(h *handlers.DepositHandler) *DepositModule {
	return &DepositModule{Handler: h}
}

func (m *DepositModule) Register(rg *gin.RouterGroup) {
	rg.POST("/deposit", m.Handler.CreateDeposit)
}
