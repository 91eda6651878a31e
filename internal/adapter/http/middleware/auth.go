package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/intent-service/internal/domain/service"
)

// RequireOwner resolves the request owner through gate and stores it under "owner".
// Requests the gate rejects are answered with 401.
func RequireOwner(gate service.AuthGate, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, err := gate.ResolveOwner(c.Request.Context(), ExtractBearerToken(c.GetHeader("Authorization")))
		if err != nil {
			logger.Debug("Request not authenticated",
				zap.String("request_id", c.GetString("request_id")),
				zap.Error(err),
			)
			_ = c.Error(err)
			abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication failed")
			return
		}

		c.Set("owner", owner)
		c.Next()
	}
}

// ExtractBearerToken returns the token of a "Bearer <token>" header value, or ""
func ExtractBearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
