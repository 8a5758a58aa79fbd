package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeTimeout bounds a single WebSocket send so one stalled client cannot
// block a publishing task.
const writeTimeout = 10 * time.Second

// Registry maps task IDs to live WebSocket connections. Process-global,
// encapsulated behind register/unregister/push; entries are removed when
// disconnects are detected. Absence of a client is normal — tasks are
// autonomous and never block on delivery. Messages carry the originating
// request ID so clients can correlate runs.
type Registry struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{connections: make(map[string]*websocket.Conn)}
}

// Register associates a connection with a task ID, replacing any previous
// connection for that task.
func (r *Registry) Register(taskID string, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections[taskID] = conn
}

// Unregister removes the connection for a task ID. The given conn must
// still be the registered one; a replaced connection is left alone.
func (r *Registry) Unregister(taskID string, conn *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.connections[taskID] == conn {
		delete(r.connections, taskID)
	}
}

// Push sends a message to the connection registered for taskID, if any.
// Send failures unregister the connection; delivery is best-effort.
func (r *Registry) Push(taskID string, msg Message) {
	r.mu.RLock()
	conn := r.connections[taskID]
	r.mu.RUnlock()
	if conn == nil {
		return
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		slog.Error("Failed to marshal WebSocket message", "task_id", taskID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
		slog.Debug("WebSocket write failed, unregistering connection",
			"task_id", taskID, "error", err)
		r.Unregister(taskID, conn)
	}
}
