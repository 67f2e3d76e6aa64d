package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aapchat/gateway/internal/models"
	"github.com/aapchat/gateway/internal/services"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /chat. Dispatch failures come back inside the 200 reply;
// only a malformed request body is an HTTP error.
func (h *ChatHandler) Chat(c *gin.Context) {
	var msg models.ChatMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.Dispatch(c.Request.Context(), msg))
}
