package httpcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/taskhub/backend/pkg/logger"
)

// Key is the type of context value keys set by Attach.
type Key string

const (
	KeyRemoteAddr Key = "remote_addr"
	KeyUserAgent  Key = "user_agent"
)

// Adapter derives a deadline-bound stdlib context from a fasthttp request so
// repositories and usecases never outlive the request deadline.
type Adapter struct {
	timeout time.Duration
}

func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{timeout: timeout}
}

// Attach builds the request-scoped context: a per-request deadline, the
// correlation ID (echoed back on X-Request-ID), and caller metadata.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	reqID := requestID(ctx)
	stdCtx = appLogger.ContextWithRequestID(stdCtx, reqID)
	ctx.Response.Header.Set("X-Request-ID", reqID)

	if addr := ctx.RemoteAddr(); addr != nil {
		stdCtx = context.WithValue(stdCtx, KeyRemoteAddr, addr.String())
	}
	if ua := string(ctx.Request.Header.UserAgent()); ua != "" {
		stdCtx = context.WithValue(stdCtx, KeyUserAgent, ua)
	}

	return stdCtx, cancel
}

// requestID reuses the caller-provided X-Request-ID when it is a valid UUID,
// otherwise mints a fresh one. Arbitrary caller strings never reach the logs.
func requestID(ctx *fasthttp.RequestCtx) string {
	if ctx != nil {
		header := string(ctx.Request.Header.Peek("X-Request-ID"))
		if _, err := uuid.Parse(header); err == nil {
			return header
		}
	}
	return uuid.NewString()
}
