package middleware

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type AccessLogMiddleware struct {
	logger *log.Logger
	quiet  []string
}

// NewAccessLogMiddleware logs one line per request. Successful requests
// under a quiet prefix (health checks, media downloads) are not logged.
func NewAccessLogMiddleware(logger *log.Logger, quiet ...string) *AccessLogMiddleware {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &AccessLogMiddleware{logger: logger, quiet: quiet}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		// the client sends its own id so both sides log the same value
		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDHeader, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		if status < fiber.StatusBadRequest && m.isQuiet(c.Path()) {
			return err
		}

		m.logger.Printf("[HTTP] access rid=%s method=%s path=%s status=%d latency=%s user=%d ip=%s resp_bytes=%d",
			rid, c.Method(), c.OriginalURL(), status, time.Since(start).Round(time.Microsecond),
			UserID(c), c.IP(), len(c.Response().Body()))
		return err
	}
}

func (m *AccessLogMiddleware) isQuiet(path string) bool {
	for _, p := range m.quiet {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
