package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskdeck/backend/api/handler"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, accessLog func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/v1/tasks", accessLog(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", accessLog(handlers.Task.CreateTask))
	r.POST("/api/v1/tasks/{id}/complete", accessLog(handlers.Task.CompleteTask))
	r.DELETE("/api/v1/tasks/{id}", accessLog(handlers.Task.DeleteTask))
	r.POST("/api/v1/undo", accessLog(handlers.Task.Undo))

	return r
}
