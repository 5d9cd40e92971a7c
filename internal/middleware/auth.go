package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"catalog-service/pkg/apperror"
)

const maxClockSkew = 30 * time.Second

// ContextKeyUserID is the gin context key holding the authenticated subject.
const ContextKeyUserID = "user_id"

// Auth validates HS256 Bearer tokens. Failures are attached as 401
// application errors and rendered by the terminal error handler. When auth
// is disabled in config the middleware is a pass-through.
func (m Middleware) Auth() gin.HandlerFunc {
	if !m.auth.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		tokenStr, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.abortUnauthorized(c, "missing or malformed authorization header")
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			return []byte(m.auth.JWTSecret), nil
		},
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithIssuer(m.auth.Issuer),
			jwt.WithLeeway(maxClockSkew),
		)
		if err != nil || !token.Valid {
			m.abortUnauthorized(c, "invalid or expired token")
			return
		}

		if sub, subErr := token.Claims.GetSubject(); subErr == nil && sub != "" {
			c.Set(ContextKeyUserID, sub)
		}
		c.Next()
	}
}

func (m Middleware) abortUnauthorized(c *gin.Context, msg string) {
	_ = c.Error(apperror.New(http.StatusUnauthorized, msg))
	c.Abort()
}

func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
