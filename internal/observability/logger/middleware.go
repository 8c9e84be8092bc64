package logger

import (
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

type MiddlewareConfig struct {
	// Node generates request ids; a random UUID is used when nil.
	Node      *snowflake.Node
	SkipPaths []string
}

// GinMiddleware assigns a request id, echoes it in the response header,
// and logs one completion line per request with secrets masked.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = newRequestID(cfg.Node)
		}
		c.Header(requestIDHeader, requestID)
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		if _, ok := skip[c.FullPath()]; ok {
			return
		}

		log := FromContext(c.Request.Context()).With(
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Any("headers", MaskHeaders(c.Request.Header)),
		)
		if len(c.Errors) > 0 {
			log.Error("request failed", zap.String("errors", c.Errors.String()))
			return
		}
		log.Info("request completed")
	}
}

func newRequestID(node *snowflake.Node) string {
	if node != nil {
		return strconv.FormatInt(node.Generate().Int64(), 10)
	}
	return uuid.NewString()
}
