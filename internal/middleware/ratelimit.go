package middleware

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/taskhub/backend/api/transport"
)

// RateLimit applies a per-client token bucket to the wrapped handler.
// Clients are keyed by remote IP; the bucket map is pruned lazily when it
// grows past maxClients.
func RateLimit(rps float64, burst int, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	const maxClients = 10_000

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if len(limiters) > maxClients {
			limiters = make(map[string]*rate.Limiter)
		}
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[ip] = lim
		}
		return lim
	}

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ip := clientIP(ctx)
			if !limiterFor(ip).Allow() {
				logger.Warn("rate limit exceeded", zap.String("ip", ip))
				ctx.Response.Header.SetContentType("application/json")
				ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
				body, _ := json.Marshal(transport.NewError("RATE_LIMIT_EXCEEDED", "Too many requests, please try again later", nil))
				ctx.SetBody(body)
				return
			}
			next(ctx)
		}
	}
}

func clientIP(ctx *fasthttp.RequestCtx) string {
	addr := ctx.RemoteAddr().String()
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
