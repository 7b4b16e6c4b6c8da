package router

import (
	"encoding/json"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskhub/backend/api/handler"
	"github.com/taskhub/backend/api/transport"
	"github.com/taskhub/backend/domain"
)

type Handlers struct {
	User    *apiHandler.UserHandler
	Project *apiHandler.ProjectHandler
	Task    *apiHandler.TaskHandler
	Health  *apiHandler.HealthHandler
}

// Middleware wraps the /api subtree only; /health stays unthrottled so
// orchestrators can always probe it.
func New(handlers Handlers, api func(fasthttp.RequestHandler) fasthttp.RequestHandler, logger *zap.Logger) *router.Router {
	r := router.New()

	r.NotFound = notFound
	r.MethodNotAllowed = notFound
	r.PanicHandler = panicHandler(logger)

	r.GET("/health", handlers.Health.Check)

	// Users
	r.POST("/api/users", api(handlers.User.Create))
	r.GET("/api/users", api(handlers.User.List))
	r.GET("/api/users/{id}", api(handlers.User.Get))
	r.PUT("/api/users/{id}", api(handlers.User.Update))
	r.DELETE("/api/users/{id}", api(handlers.User.Delete))

	// Projects
	r.POST("/api/projects", api(handlers.Project.Create))
	r.GET("/api/projects", api(handlers.Project.List))
	r.GET("/api/projects/user/{userId}", api(handlers.Project.ListByUser))
	r.GET("/api/projects/{id}", api(handlers.Project.Get))
	r.PUT("/api/projects/{id}", api(handlers.Project.Update))
	r.DELETE("/api/projects/{id}", api(handlers.Project.Delete))

	// Tasks
	r.POST("/api/tasks", api(handlers.Task.Create))
	r.GET("/api/tasks", api(handlers.Task.List))
	r.GET("/api/tasks/project/{projectId}", api(handlers.Task.ListByProject))
	r.GET("/api/tasks/{id}", api(handlers.Task.Get))
	r.PUT("/api/tasks/{id}", api(handlers.Task.Update))
	r.DELETE("/api/tasks/{id}", api(handlers.Task.Delete))

	return r
}

func notFound(ctx *fasthttp.RequestCtx) {
	writeEnvelope(ctx, fasthttp.StatusNotFound,
		transport.NewError(string(domain.ErrCodeNotFound), "Route not found", nil))
}

func panicHandler(logger *zap.Logger) func(*fasthttp.RequestCtx, interface{}) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx *fasthttp.RequestCtx, rcv interface{}) {
		logger.Error("panic in handler", zap.Any("panic", rcv), zap.ByteString("path", ctx.Path()))
		writeEnvelope(ctx, fasthttp.StatusInternalServerError,
			transport.NewError(string(domain.ErrCodeServer), "Internal server error", nil))
	}
}

func writeEnvelope(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}
