package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/crud/internal/logger"
	"github.com/joefazee/crud/internal/security"
)

const (
	// AuthCookieName carries the token issued by TokenResult
	AuthCookieName = "Auth-Key"

	// TokenPayloadKey is the context key holding the verified token payload
	TokenPayloadKey = "token_payload"
)

// ResponseHeader sets a fixed header on every response of the group
func ResponseHeader(key, value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(key, value)
		c.Next()
	}
}

// FeatureDisabled short-circuits with 501 while disabled is true
func FeatureDisabled(disabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disabled {
			NotImplementedResponse(c, "This feature is currently disabled")
			c.Abort()
			return
		}
		c.Next()
	}
}

// TokenResult issues a fresh auth cookie after a successful response
func TokenResult(maker security.Maker, subject string, ttl time.Duration, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _, err := maker.CreateToken(subject, ttl, security.TokenScopeAccess)
		if err != nil {
			log.Error(err, logger.Fields{"path": c.FullPath()})
			c.Next()
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(AuthCookieName, token, int(ttl.Seconds()), "/", "", false, true)
		c.Next()
	}
}

// TokenAuthorization rejects requests without a valid auth cookie
func TokenAuthorization(maker security.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || token == "" {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := maker.VerifyToken(token)
		if err != nil {
			UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(TokenPayloadKey, payload)
		c.Next()
	}
}

// ErrorHandling recovers from panics, logs them and answers with a generic 500
func ErrorHandling(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}
		log.Error(err, logger.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
		InternalErrorResponse(c, "Error occurred")
		c.Abort()
	})
}

// RequestLogger writes one structured entry per request
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logger.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			log.Error(errors.New(c.Errors.String()), fields)
			return
		}
		log.Info("request completed", fields)
	}
}
