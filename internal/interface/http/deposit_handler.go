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

type DepositHandler struct {
	Svc    *userapp.DepositService
	Logger *logrus.Logger
}

func NewDepositHandler(svc *userapp.DepositService, logger *logrus.Logger) *DepositHandler {
	return &DepositHandler{Svc: svc, Logger: logger}
}

type depositRequest struct {
	Amount float64 `json:"amount"`
	Email  string  `json:"email"`
	UserID string  `json:"userId"`
}

// CreateDeposit POST /deposit — initiates a PIX charge on the gateway and
// returns its QR payload. No balance is credited here.
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	res, err := h.Svc.CreateDeposit(c.Request.Context(), req.Amount, req.Email, req.UserID)
	if err != nil {
		if errors.Is(err, userapp.ErrAmountBelowMinimum) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "payment gateway error")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"id":       res.PaymentID,
		"qrCode":   res.QRCode,
		"qrBase64": res.QRCodeBase64,
	})
}
