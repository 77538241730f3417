package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "betpix-backend/internal/application"
	"betpix-backend/internal/interface/middleware"
	"betpix-backend/pkg/response"
)

type UserHandler struct {
	Svc    *userapp.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Me GET /me — returns the authenticated caller's own record.
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetSelf(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, userapp.ErrAccountNotFound) {
			response.Error(c, http.StatusNotFound, "account not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"user": gin.H{"id": u.ID, "email": u.Email, "balance": u.Balance},
	})
}
