package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/intent-service/internal/usecase"
)

// ServiceHandler serves the unauthenticated service endpoints
type ServiceHandler struct {
	name         string
	env          string
	predictionUC usecase.PredictionUsecase
}

// NewServiceHandler creates a new service handler announcing name and the runtime mode
func NewServiceHandler(name, env string, predictionUC usecase.PredictionUsecase) *ServiceHandler {
	return &ServiceHandler{name: name, env: env, predictionUC: predictionUC}
}

// Root handles GET /
func (h *ServiceHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s is running in %s mode", h.name, h.env),
	})
}

// Status handles GET /status. Store failures are reported in the body, not the status code.
func (h *ServiceHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.predictionUC.Status(c.Request.Context()))
}
