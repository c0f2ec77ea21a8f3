package handlers

import (
	"log"
	"net/http"

	"github.com/n-tawaki/quiz-system/internal/session"
	"github.com/n-tawaki/quiz-system/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub    *ws.Hub
	holder *session.Holder
}

func NewWSHandler(hub *ws.Hub, holder *session.Holder) *WSHandler {
	return &WSHandler{hub: hub, holder: holder}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for state updates
// @Description  Receives the current phase on connect and every state change thereafter. Inbound messages are ignored.
// @Tags         websocket
// @Router       /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.Add(conn)
	defer h.hub.Remove(conn)

	// Initial snapshot carries the phase as of this moment.
	h.hub.Send(conn, ws.Snapshot{State: h.holder.Get().Phase})

	// Inbound messages are drained for liveness only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
