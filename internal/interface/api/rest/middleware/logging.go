package middleware

import (
	"bytes"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const maxLogBodySize = 1 << 12 // 4 KB

// matches a JSON password member, also when the body was cut short
var passwordRe = regexp.MustCompile(`("password"\s*:\s*)("(?:[^"\\]|\\.)*"?|null)`)

func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request != nil && c.Request.Body != nil {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, io.LimitReader(c.Request.Body, maxLogBodySize))
			rest := c.Request.Body
			c.Request.Body = readCloser{
				Reader: io.MultiReader(bytes.NewReader(buf.Bytes()), rest),
				Closer: rest,
			}
			body = MaskPasswords(buf.String())
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if uid := c.GetString(CtxUserID); uid != "" {
			fields = append(fields, zap.String("user_id", uid))
		}
		if logger.Core().Enabled(zap.DebugLevel) {
			fields = append(fields, zap.String("body", body))
		}

		logger.Info("HTTP request", fields...)
	}
}

func MaskPasswords(body string) string {
	return passwordRe.ReplaceAllString(body, `${1}"***"`)
}

type readCloser struct {
	io.Reader
	io.Closer
}
