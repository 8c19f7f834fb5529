package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-employee-api/internal/core/employee"
	"go.uber.org/zap"
)

// NewRouter は社員 API のルーティングを構築します。
// basePath は "" または "/api/v1" のように正規化済みであることを前提とします。
func NewRouter(svc employee.UseCase, logger *zap.Logger, basePath string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(accessLog(logger), recovery(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := NewEmployeeHTTPHandler(svc)
	group := r.Group(basePath)
	group.GET("/employee", h.ListEmployees)
	group.POST("/employee", h.CreateEmployee)
	group.GET("/employee/:id", h.GetEmployee)
	group.PATCH("/employee/:id", h.UpdateEmployee)
	group.DELETE("/employee/:id", h.DeleteEmployee)

	return r
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			logger.Error("request failed", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	})
}
