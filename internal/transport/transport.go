// Package transport provides a new server-entity(by ginext) for search-node with handlers to serve endpoints
package transport

import (
	"context"
	"net/http"

	"github.com/UnendingLoop/srep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

type Processor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handler struct {
	proc Processor
	log  *zap.Logger
}

func NewNodeServer(addr string, proc Processor, log *zap.Logger) *http.Server {
	if log == nil {
		log = zap.NewNop()
	}
	h := handler{proc: proc, log: log}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handler) HealthCheck(ctx *ginext.Context) {
	h.log.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handler) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		h.log.Warn("failed to parse task", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	// без tid клиенту не с чем сверять ответ - выдаем свой
	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	h.log.Info("received task",
		zap.String("tid", task.TaskID),
		zap.Int("contents_bytes", len(task.Contents)),
		zap.Bool("ignore_case", task.IgnoreCase),
	)

	res := h.proc.ProcessInput(ctx.Request.Context(), &task)
	h.log.Info("task done", zap.String("tid", res.TaskID), zap.Int("matches", len(res.Matches)), zap.Uint64("digest", res.Digest))

	ctx.JSON(http.StatusOK, res)
}
