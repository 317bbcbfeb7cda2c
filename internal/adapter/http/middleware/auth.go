package middleware

import (
	"net/http"
	"strings"

	"github.com/Artem310/TaskManagerProject/internal/core/domain"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"
	"github.com/Artem310/TaskManagerProject/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller's claims in the gin context.
func AuthMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		claims, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			zap.L().Debug("rejected bearer token", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func GetClaims(c *gin.Context) (domain.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return domain.Claims{}, false
	}
	claims, ok := value.(domain.Claims)
	return claims, ok
}

// GetCallerEmail returns the email of the authenticated caller, or "" outside
// AuthMiddleware.
func GetCallerEmail(c *gin.Context) string {
	claims, _ := GetClaims(c)
	return claims.Email
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
