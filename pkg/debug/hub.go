package debug

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/terrawalls/pkg/models/message"
)

const writeWait = time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans envelopes out to every connected websocket client.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// HandleWS registers the client and reads until it goes away. Anything the
// client sends is ignored.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logx.Errorf("websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	logx.Infof("event feed client %s connected", conn.RemoteAddr())

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Push sends each envelope as one text message. It fits pusher.WithPushLogic.
func (h *Hub) Push(envs ...message.Envelope) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, env := range envs {
		data, err := env.Marshal()
		if err != nil {
			return err
		}
		for conn := range h.clients {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logx.Errorf("event feed client %s dropped: %v", conn.RemoteAddr(), err)
				_ = conn.Close()
				delete(h.clients, conn)
			}
		}
	}
	return nil
}
