// Package transport provides a new server-entity(by ginext) for serve-mode operability with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/UnendingLoop/GrepLite/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

// TaskProcessor - поисковый движок с точки зрения транспорта
type TaskProcessor interface {
	ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchReply
}

func NewSearchServer(addr string, proc TaskProcessor) *http.Server {
	engine := ginext.New("release")
	engine.GET("/ping", HealthCheck)
	engine.POST("/search", ReceiveTask(proc))

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func HealthCheck(ctx *ginext.Context) {
	log.Println("Received a healthcheck request!")
	ctx.Status(200)
}

func ReceiveTask(proc TaskProcessor) func(ctx *ginext.Context) {
	return func(ctx *ginext.Context) {
		var task model.SearchTask

		if err := ctx.ShouldBindJSON(&task); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"failed to parse task from body: ": err.Error()})
			return
		}

		log.Printf("Received task: %q", task.TaskID)

		res := proc.ProcessTask(ctx.Request.Context(), &task)
		log.Printf("Task %q done: %d matching lines", res.TaskID, res.Count)

		ctx.JSON(http.StatusOK, res)
	}
}
