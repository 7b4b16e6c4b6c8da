package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	var served int
	handler := RateLimit(1, 3, nil)(func(ctx *fasthttp.RequestCtx) {
		served++
		ctx.SetStatusCode(fasthttp.StatusOK)
	})

	for i := 0; i < 3; i++ {
		var ctx fasthttp.RequestCtx
		handler(&ctx)
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	}
	require.Equal(t, 3, served)
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	handler := RateLimit(0.001, 1, nil)(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
	})

	var first fasthttp.RequestCtx
	handler(&first)
	require.Equal(t, fasthttp.StatusOK, first.Response.StatusCode())

	var second fasthttp.RequestCtx
	handler(&second)
	require.Equal(t, fasthttp.StatusTooManyRequests, second.Response.StatusCode())
	require.Contains(t, string(second.Response.Body()), "RATE_LIMIT_EXCEEDED")
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
	})

	var ctx fasthttp.RequestCtx
	handler(&ctx)

	require.Equal(t, "nosniff", string(ctx.Response.Header.Peek("X-Content-Type-Options")))
	require.Equal(t, "DENY", string(ctx.Response.Header.Peek("X-Frame-Options")))
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"http://localhost:3000"})(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.Set("Origin", "http://localhost:3000")
	handler(&ctx)
	require.Equal(t, "http://localhost:3000", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))

	var other fasthttp.RequestCtx
	other.Request.Header.Set("Origin", "http://evil.example")
	handler(&other)
	require.Empty(t, other.Response.Header.Peek("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	var served bool
	handler := CORS([]string{"http://localhost:3000"})(func(ctx *fasthttp.RequestCtx) {
		served = true
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodOptions)
	ctx.Request.Header.Set("Origin", "http://localhost:3000")
	handler(&ctx)

	require.False(t, served)
	require.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
}
