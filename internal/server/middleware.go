package server

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

const adminSubjectKey = "admin_subject"

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, err error) {
	status := errors.StatusOf(err)
	body := &errorBody{Code: errors.CodeAppError, Message: err.Error()}

	appErr, isApp := errors.AppErrorOf(err)
	if isApp {
		body.Code = appErr.Code
		body.Message = appErr.Message
	}
	var vErr *errors.ValidationError
	if stderrors.As(err, &vErr) {
		body.Field = vErr.Field
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		if !isApp {
			body.Message = http.StatusText(status)
		}
	}
	c.AbortWithStatusJSON(status, envelope{Success: false, Error: body})
}

func unavailable(c *gin.Context, name string) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, envelope{
		Success: false,
		Error:   &errorBody{Code: errors.CodeService, Message: name + " is not configured"},
	})
}

func requestLogger(logger *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		m.ObserveHTTP(c.Request.Method, route, strconv.Itoa(status), elapsed)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case status >= 500:
			logger.Error("HTTP request failed", fields...)
		case route == "/healthz" || route == "/metrics":
			logger.Debug("HTTP request", fields...)
		default:
			logger.Info("HTTP request", fields...)
		}
	}
}

func requireAdmin(auth *AdminAuth) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth == nil || !auth.Enabled() {
			unavailable(c, "admin console")
			return
		}
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			fail(c, errors.NewAuthError("missing bearer token"))
			return
		}
		subject, err := auth.Verify(strings.TrimSpace(token))
		if err != nil {
			fail(c, err)
			return
		}
		c.Set(adminSubjectKey, subject)
		c.Next()
	}
}
