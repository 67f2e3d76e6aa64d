package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aapchat/gateway/internal/middleware"
)

// NewRouter wires the gateway's routes onto a gin engine.
func NewRouter(job *JobHandler, chat *ChatHandler, ws *WSHandler) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.SetupCORS())
	router.Use(middleware.RequestID())

	router.GET("/health", job.HealthCheck)
	router.GET("/job-templates", job.ListJobTemplates)
	router.GET("/job-templates/:id", job.GetJobTemplate)
	router.POST("/launch", job.LaunchJob)
	router.GET("/jobs/:id", job.GetJob)
	router.POST("/cancel/:id", job.CancelJob)

	router.POST("/chat", chat.Chat)
	router.GET("/ws/chat", ws.HandleWS)

	return router
}
