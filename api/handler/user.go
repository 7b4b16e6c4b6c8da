package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhub/backend/api/transport"
	"github.com/taskhub/backend/domain"
	"github.com/taskhub/backend/pkg/httpcontext"
	"github.com/taskhub/backend/repository"
	userUC "github.com/taskhub/backend/usecase/user"
)

type UserHandler struct {
	baseHandler
	uc *userUC.UseCase
}

func NewUserHandler(uc *userUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create user
// @Tags users
// @Router /api/users [post]
func (h *UserHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateUserRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondValidation(ctx, []transport.FieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}
	if details := transport.Validate(req); details != nil {
		h.respondValidation(ctx, details)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, req.Email, req.Password, req.Name)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created, "User created successfully")
}

// @Summary Get user by id
// @Tags users
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user, "")
}

// @Summary List users
// @Tags users
// @Router /api/users [get]
func (h *UserHandler) List(ctx *fasthttp.RequestCtx) {
	params := h.parseListParams(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, total, err := h.uc.List(stdCtx, params)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"users":      users,
		"pagination": domain.NewPagination(params.Page, params.Limit, total),
	}, "")
}

// @Summary Update user
// @Tags users
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var req transport.UpdateUserRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondValidation(ctx, []transport.FieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}
	if details := transport.Validate(req); details != nil {
		h.respondValidation(ctx, details)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, id, repository.UserUpdate{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated, "User updated successfully")
}

// @Summary Delete user
// @Tags users
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.Delete(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if !deleted {
		h.respondError(ctx, domain.ErrUserNotFound)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil, "User deleted successfully")
}
