package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ressKim-io/intent-service/internal/domain/service"
	"github.com/ressKim-io/intent-service/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "authentication failed",
			err:                service.ErrAuthenticationFailed,
			expectedStatusCode: http.StatusUnauthorized,
			expectedCode:       "UNAUTHORIZED",
			expectedMessage:    "Authentication failed",
		},
		{
			name:               "invalid request",
			err:                usecase.ErrInvalidRequest,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
			expectedMessage:    "invalid request",
		},
		{
			name:               "wrapped inference failure",
			err:                fmt.Errorf("%w: model %q: %w", usecase.ErrInferenceFailed, "m1", errors.New("tensor mismatch")),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INFERENCE_ERROR",
			expectedMessage:    "prediction failed",
		},
		{
			name:               "wrapped storage failure",
			err:                fmt.Errorf("%w: %w", usecase.ErrStorageFailed, errors.New("connection reset")),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "STORAGE_ERROR",
			expectedMessage:    "failed to store prediction",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectedMessage, result.Message)
		})
	}
}

func TestHandleUsecaseError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	err := fmt.Errorf("%w: dial tcp 10.0.0.5:27017: refused", usecase.ErrStorageFailed)

	HandleUsecaseError(c, err)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "STORAGE_ERROR")
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Len(t, c.Errors, 1)
}

func TestHandleInvalidRequest(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleInvalidRequest(c, "text is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "text is required")
}
