package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/aapchat/gateway/internal/models"
	"github.com/aapchat/gateway/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // same allow-all posture as the CORS layer
	},
}

// WSHandler serves chat over a websocket. Each connection is an independent
// read-dispatch-write loop; no state is shared between connections.
type WSHandler struct {
	service *services.ChatService
}

func NewWSHandler(service *services.ChatService) *WSHandler {
	return &WSHandler{service: service}
}

// HandleWS handles GET /ws/chat. Every JSON frame is a ChatMessage and gets
// the same reply payload POST /chat would return.
func (h *WSHandler) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WS: failed to upgrade: %v", err)
		return
	}
	defer conn.Close()
	log.Println("WS: client connected")

	for {
		var msg models.ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WS: read error: %v", err)
			}
			return
		}

		reply := h.service.Dispatch(c.Request.Context(), msg)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("WS: write error: %v", err)
			return
		}
	}
}
