package api

import (
	"candidate-notes/auth"
	"candidate-notes/contract"
	"candidate-notes/domain"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// Authenticate admits the request through the gatekeeper and stores the
// resolved user on the gin context.
func Authenticate(gatekeeper contract.IGatekeeper) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := auth.CredentialFromRequest(c.Request, false)
		user, err := gatekeeper.Validate(c.Request.Context(), credential)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c *gin.Context) domain.User {
	value, _ := c.Get(userContextKey)
	if user, ok := value.(domain.User); ok {
		return user
	}
	return domain.User{}
}

// CORS answers for the configured origins. "*" allows any origin.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originsSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originsSet[strings.TrimSpace(o)] = struct{}{}
	}
	_, allowAll := originsSet["*"]

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := originsSet[origin]; ok || (allowAll && origin != "") {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, "+auth.HeaderAuthToken)
			c.Header("Access-Control-Max-Age", "86400")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Recovery turns a handler panic into a 500 response.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Handler panic",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			}
		}()
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
