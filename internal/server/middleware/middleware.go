package middleware

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"strings"
	authErrors "taskTracker/internal/server/auth/autherrors"
	auth "taskTracker/internal/server/auth/user_auth"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	CtxUserID = "userID"
	CtxEmail  = "email"

	// MaxDecompressedBody - предел распакованного тела запроса.
	MaxDecompressedBody = 1 << 20
)

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// AuthMiddleware пускает дальше только с валидным "Authorization: Bearer <token>".
// В контекст кладет userID и email из токена.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := auth.ExtractBearer(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrors.ErrMissingAccessToken.Error()})
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			if errors.Is(err, authErrors.ErrTokenExpired) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrors.ErrTokenExpired.Error()})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrors.ErrTokenMalformed.Error()})
			return
		}

		ctx.Set(CtxUserID, identity.UserID)
		ctx.Set(CtxEmail, identity.Email)
		ctx.Next()
	}
}

func GzipDecompressMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := c.GetHeader("Content-Encoding")
		if strings.Contains(encoding, "gzip") {
			gr, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "invalid gzip body",
				})
				return
			}
			defer func(gr *gzip.Reader) {
				if err = gr.Close(); err != nil {
					log.Warn().Err(err).Msg("failed to close gzip body")
				}
			}(gr)
			c.Request.Body = http.MaxBytesReader(c.Writer, io.NopCloser(gr), MaxDecompressedBody)
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		}
		c.Next()
	}
}

// CORS - открытые заголовки для браузерных клиентов, preflight отвечаем сразу.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Content-Encoding")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestLogger пишет одну строку на запрос через глобальный zerolog.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}
