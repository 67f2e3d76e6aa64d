package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aapchat/gateway/internal/infrastructure/aap"
	"github.com/aapchat/gateway/internal/models"
)

// JobHandler exposes the automation platform's job API. Every route is a
// passthrough: the platform's JSON goes back to the caller untouched, and any
// client failure becomes a 500 with the stringified error as detail.
type JobHandler struct {
	client *aap.Client
}

func NewJobHandler(client *aap.Client) *JobHandler {
	return &JobHandler{client: client}
}

// ListJobTemplates handles GET /job-templates
func (h *JobHandler) ListJobTemplates(c *gin.Context) {
	result, err := h.client.ListJobTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetJobTemplate handles GET /job-templates/:id
func (h *JobHandler) GetJobTemplate(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	result, err := h.client.GetJobTemplate(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// LaunchJob handles POST /launch
func (h *JobHandler) LaunchJob(c *gin.Context) {
	var req models.LaunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.client.LaunchJob(c.Request.Context(), req.TemplateID, req.ExtraVars)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	result, err := h.client.GetJob(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelJob handles POST /cancel/:id
func (h *JobHandler) CancelJob(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	result, err := h.client.CancelJob(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// HealthCheck handles GET /health. It must stay reachable when the platform
// is down, so it never touches the client.
func (h *JobHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name + ": must be an integer"})
		return 0, false
	}
	return value, true
}
