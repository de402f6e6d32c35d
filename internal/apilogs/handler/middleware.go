package handler

import (
	"context"
	"sync"
	"time"

	"adventure-server/internal/apilogs/processor"
	"adventure-server/internal/observability"

	"github.com/gin-gonic/gin"
)

const recordTimeout = 5 * time.Second

// RequestRecorder persists one completed request
type RequestRecorder interface {
	Record(ctx context.Context, req processor.RecordRequest) error
}

// RequestLogger writes an api_logs row for every request once the response
// has been produced. Writes happen off the request path.
type RequestLogger struct {
	recorder RequestRecorder
	logger   *observability.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewRequestLogger(recorder RequestRecorder, logger *observability.Logger) *RequestLogger {
	return &RequestLogger{
		recorder: recorder,
		logger:   logger,
		timeout:  recordTimeout,
	}
}

// Middleware returns the gin middleware that records each request
func (l *RequestLogger) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		req := processor.RecordRequest{
			Endpoint:     c.Request.RequestURI,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
			IPAddress:    observability.GetRealClientIP(c),
			UserAgent:    c.Request.UserAgent(),
		}
		if req.Endpoint == "" {
			req.Endpoint = c.Request.URL.RequestURI()
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), l.timeout)
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			defer cancel()
			if err := l.recorder.Record(ctx, req); err != nil {
				l.logger.Error(ctx, "failed to record api log", err)
			}
		}()
	}
}

// Wait blocks until all pending log writes have finished
func (l *RequestLogger) Wait() {
	l.wg.Wait()
}
