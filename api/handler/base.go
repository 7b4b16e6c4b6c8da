package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhub/backend/api/transport"
	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/pkg/httpcontext"
	"github.com/taskhub/backend/repository"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}, message string) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, message))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code := mapError(err)
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), nil))
}

func (h baseHandler) respondValidation(ctx *fasthttp.RequestCtx, details []transport.FieldError) {
	h.respondJSON(ctx, http.StatusBadRequest,
		transport.NewError(string(domain.ErrCodeValidation), "Validation failed", details))
}

// mapError is the single place translating domain error codes into HTTP
// statuses and wire codes.
func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	case domain.IsDomainError(err, domain.ErrCodeValidation):
		return http.StatusBadRequest, string(domain.ErrCodeValidation)
	case domain.IsDomainError(err, domain.ErrCodeDupEmail):
		return http.StatusConflict, string(domain.ErrCodeDupEmail)
	case domain.IsDomainError(err, domain.ErrCodeDuplicate):
		return http.StatusConflict, string(domain.ErrCodeDuplicate)
	case domain.IsDomainError(err, domain.ErrCodeForeignKey):
		return http.StatusNotFound, string(domain.ErrCodeForeignKey)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeServer)
	}
}

// parseID reads a positive integer path parameter; a malformed value is a
// validation failure, not a server error.
func (h baseHandler) parseID(ctx *fasthttp.RequestCtx, name string) (int64, bool) {
	raw, _ := ctx.UserValue(name).(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		h.respondValidation(ctx, []transport.FieldError{
			{Field: name, Message: "must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}

func (h baseHandler) parseListParams(ctx *fasthttp.RequestCtx) repository.ListParams {
	params := repository.ListParams{
		Page:  parseInt(string(ctx.QueryArgs().Peek("page")), repository.DefaultPage),
		Limit: parseInt(string(ctx.QueryArgs().Peek("limit")), repository.DefaultLimit),
	}
	return params.Normalize()
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}

func parseInt64(value string) int64 {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
