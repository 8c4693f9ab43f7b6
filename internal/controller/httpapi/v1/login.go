package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/usecase/auth"
	"github.com/smart-parking/console/pkg/logger"
)

// ClaimsKey is the gin context key holding the verified *auth.Claims.
const ClaimsKey = "admin"

type LoginRoute struct {
	a auth.Feature
	l logger.Interface
}

func NewLoginRoute(a auth.Feature, l logger.Interface) *LoginRoute {
	return &LoginRoute{a: a, l: l}
}

func (lr LoginRoute) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)

		return
	}

	resp, err := lr.a.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			abort(c, http.StatusUnauthorized, msgInvalidCredentials)

			return
		}

		lr.l.Error(err, "http - v1 - login")
		abort(c, http.StatusInternalServerError, msgInternal)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// JWTAuthMiddleware rejects requests without a valid bearer token.
func (lr LoginRoute) JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// "Bearer <token>"; the scheme word itself is not checked
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) < 2 {
			abort(c, http.StatusUnauthorized, msgTokenRequired)

			return
		}

		claims, err := lr.a.Verify(parts[1])
		if err != nil {
			lr.l.Debug("http - v1 - JWTAuthMiddleware: " + err.Error())
			abort(c, http.StatusForbidden, msgInvalidToken)

			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
