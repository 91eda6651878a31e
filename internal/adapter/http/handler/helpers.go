package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ressKim-io/intent-service/internal/usecase"
)

type textBody struct {
	Text *string `json:"text"`
}

// ParseText extracts the text to classify. The query parameter wins;
// a JSON body {"text": ...} is the fallback. An empty text is valid,
// an absent one is ErrInvalidRequest.
func ParseText(c *gin.Context) (string, error) {
	if text, ok := c.GetQuery("text"); ok {
		return text, nil
	}

	if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
		return "", fmt.Errorf("%w: text is required", usecase.ErrInvalidRequest)
	}

	var body textBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return "", fmt.Errorf("%w: %w", usecase.ErrInvalidRequest, err)
	}
	if body.Text == nil {
		return "", fmt.Errorf("%w: text is required", usecase.ErrInvalidRequest)
	}
	return *body.Text, nil
}
