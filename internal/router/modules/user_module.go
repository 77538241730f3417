package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "betpix-backend/internal/interface/http"
	"betpix-backend/internal/interface/middleware"
	"betpix-backend/pkg/helpers"
)

// UserModule wires the authenticated account endpoints behind the bearer guard.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
	Logger  *logrus.Logger
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager, logger *logrus.Logger) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens, Logger: logger}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens, m.Logger))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
