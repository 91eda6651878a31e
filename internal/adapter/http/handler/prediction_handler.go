package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/intent-service/internal/usecase"
)

// PredictionHandler handles classification requests
type PredictionHandler struct {
	predictionUC usecase.PredictionUsecase
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionUC usecase.PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{predictionUC: predictionUC}
}

// Predict handles POST /predict. The owner is resolved by the auth middleware.
func (h *PredictionHandler) Predict(c *gin.Context) {
	text, err := ParseText(c)
	if err != nil {
		_ = c.Error(err)
		HandleInvalidRequest(c, "text is required")
		return
	}

	output, err := h.predictionUC.Predict(c.Request.Context(), &usecase.PredictInput{
		Text:  text,
		Owner: c.GetString(OwnerKey),
	})
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// ModelsOutput lists the loaded models
type ModelsOutput struct {
	Models []string `json:"models"`
	Count  int      `json:"count"`
}

// Models handles GET /models
func (h *PredictionHandler) Models(c *gin.Context) {
	names := h.predictionUC.Models()
	if names == nil {
		names = []string{}
	}
	respondSuccess(c, http.StatusOK, ModelsOutput{Models: names, Count: len(names)})
}
