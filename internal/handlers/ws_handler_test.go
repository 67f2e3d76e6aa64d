package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/aapchat/gateway/internal/models"
)

func TestWebsocketChat(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// A conversational frame gets the mock fallback.
	if err := conn.WriteJSON(models.ChatMessage{User: "u", Message: "hi"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var reply models.ChatReply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read: %v", err)
	}
	if reply.Assistant != "[grok-mock] I received: u: hi" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	// Commands run on the same connection.
	if err := conn.WriteJSON(models.ChatMessage{User: "u", Message: "list templates"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read: %v", err)
	}
	if reply.Assistant != "listed_templates" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}
