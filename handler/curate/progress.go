package curate

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mager/crossfade/curator"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, you should validate the origin of the request
		return true
	},
}

// ProgressHandler streams curation progress snapshots over a WebSocket.
type ProgressHandler struct {
	log     *zap.SugaredLogger
	curator *curator.Curator
}

func (*ProgressHandler) Pattern() string {
	return "/curate/progress"
}

// NewProgressHandler builds a new ProgressHandler.
func NewProgressHandler(log *zap.SugaredLogger, c *curator.Curator) *ProgressHandler {
	return &ProgressHandler{log: log, curator: c}
}

func (h *ProgressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorw("Error upgrading connection to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	h.log.Info("progress client connected")

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		progress := h.curator.Progress()
		if err := conn.WriteJSON(progress); err != nil {
			// Client likely disconnected
			h.log.Infow("progress client gone", "error", err)
			return
		}
		if progress.Done {
			return
		}
	}
}
