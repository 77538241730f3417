package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "betpix-backend/internal/application"
	"betpix-backend/pkg/response"
	"betpix-backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *userapp.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *userapp.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrEmailAlreadyExists) {
			response.Error(c, http.StatusBadRequest, "email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"user":  gin.H{"id": u.ID, "email": u.Email},
		"token": token,
	})
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"user":  gin.H{"id": u.ID, "email": u.Email, "balance": u.Balance},
		"token": token,
	})
}
