package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Status GET / — liveness probe.
func (h *HealthHandler) Status(c *gin.Context) {
	c.String(http.StatusOK, "API ONLINE!")
}
