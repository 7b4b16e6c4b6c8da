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
	projectUC "github.com/taskhub/backend/usecase/project"
)

type ProjectHandler struct {
	baseHandler
	uc *projectUC.UseCase
}

func NewProjectHandler(uc *projectUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create project
// @Tags projects
// @Router /api/projects [post]
func (h *ProjectHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateProjectRequest
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

	created, err := h.uc.Create(stdCtx, &domain.Project{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created, "Project created successfully")
}

// @Summary Get project by id
// @Tags projects
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	project, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, project, "")
}

// @Summary List projects
// @Tags projects
// @Router /api/projects [get]
func (h *ProjectHandler) List(ctx *fasthttp.RequestCtx) {
	params := h.parseListParams(ctx)
	filter := repository.ProjectFilter{
		UserID: parseInt64(string(ctx.QueryArgs().Peek("user_id"))),
		Status: string(ctx.QueryArgs().Peek("status")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	projects, total, err := h.uc.List(stdCtx, filter, params)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"projects":   projects,
		"pagination": domain.NewPagination(params.Page, params.Limit, total),
	}, "")
}

// @Summary List projects of a user
// @Tags projects
// @Router /api/projects/user/{userId} [get]
func (h *ProjectHandler) ListByUser(ctx *fasthttp.RequestCtx) {
	userID, ok := h.parseID(ctx, "userId")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	projects, err := h.uc.ListByUser(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	h.respondSuccess(ctx, http.StatusOK, projects, "")
}

// @Summary Update project
// @Tags projects
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.parseID(ctx, "id")
	if !ok {
		return
	}

	var req transport.UpdateProjectRequest
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

	updated, err := h.uc.Update(stdCtx, id, repository.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated, "Project updated successfully")
}

// @Summary Delete project
// @Tags projects
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(ctx *fasthttp.RequestCtx) {
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
		h.respondError(ctx, domain.ErrProjectNotFound)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil, "Project deleted successfully")
}
