package guidctl

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/VitamPoc/VitamCommon/pkg/errors"
	"github.com/VitamPoc/VitamCommon/pkg/guid"
	infralogger "github.com/VitamPoc/VitamCommon/pkg/infra/logger"
	"github.com/VitamPoc/VitamCommon/pkg/utils/response"
)

// HeaderXRequestID carries the request id.
const HeaderXRequestID = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID reuses an incoming X-Request-ID or stamps a fresh identifier
// from gen, and attaches it to the request's logging context.
func RequestID(gen func() *guid.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderXRequestID)
		if id == "" {
			id = gen().Generate()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderXRequestID, id)
		c.Request = c.Request.WithContext(infralogger.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Recovery turns a panic into an internal error response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				infralogger.GetLogger(c.Request.Context()).Errorw("Panic recovered",
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
				writer(c).Fail(errors.ErrInternal.WithMessagef("panic: %v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// AccessLog logs one line per request. Paths in skip are not logged.
func AccessLog(skip ...string) gin.HandlerFunc {
	skipPaths := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipPaths[p] = true
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipPaths[path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"remote_addr", c.ClientIP(),
			"latency", latency.String(),
			"latency_ms", latency.Milliseconds(),
		}
		if id := GetRequestID(c); id != "" {
			fields = append(fields, "request_id", id)
		}
		logger.Infow("HTTP Request", fields...)
	}
}

func writer(c *gin.Context) *response.Writer {
	return response.NewWriter(c).
		WithRequestID(GetRequestID(c)).
		WithLang(c.GetHeader("Accept-Language")).
		WithTimestamp()
}
