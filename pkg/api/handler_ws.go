package api

import (
	"context"
	"errors"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/events"
)

// monitorInterval is how often the WS handler polls task status for
// terminal-state reporting.
const monitorInterval = 2 * time.Second

// handleTimelineWS upgrades to WebSocket and streams a task's progress:
// historical progress first, then live events, then the terminal message.
// Disconnection never cancels the background task.
func (s *Server) handleTimelineWS(c *gin.Context) {
	taskID := c.Param("task_id")

	t, err := s.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		c.JSON(404, gin.H{"error": "task not found"})
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(s.cfg.System.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.System.AllowedWSOrigins
	} else {
		opts.InsecureSkipVerify = true
	}
	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	// The connection registers under the task id so live pipeline events
	// reach it; each message carries the publishing run's request id. The
	// connection itself gets a request id for its own terminal messages.
	requestID := uuid.New().String()
	s.registry.Register(taskID, conn)
	defer s.registry.Unregister(taskID, conn)

	ctx := c.Request.Context()

	// Stream historical progress on connect.
	if history, err := s.progressService.List(ctx, taskID); err == nil {
		for _, msg := range history {
			_ = wsjson.Write(ctx, conn, events.Message{
				Type:         events.TypeHistoricalProgress,
				Message:      msg.Message,
				Step:         msg.StepName,
				Data:         msg.Data,
				RequestID:    msg.RequestID,
				Timestamp:    msg.Timestamp,
				IsHistorical: true,
			})
		}
	}

	// Already terminal: send the final message and close.
	if isTerminal(t.Status) {
		_ = wsjson.Write(ctx, conn, terminalMessage(t.Status, t.Notes, requestID))
		return
	}

	// Register the live request id with the task's progress stream by
	// pushing subsequent publisher messages through the registry, and poll
	// for terminal status every 2 seconds. Absence of a client is normal;
	// this loop only serves connected ones.
	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current, err := s.taskService.GetTask(ctx, taskID)
			if err != nil {
				if errors.Is(ctx.Err(), context.Canceled) {
					return
				}
				continue
			}
			if isTerminal(current.Status) {
				_ = wsjson.Write(ctx, conn, terminalMessage(current.Status, current.Notes, requestID))
				return
			}
		}
	}
}

func isTerminal(status task.Status) bool {
	return status == task.StatusCompleted || status == task.StatusFailed
}

func terminalMessage(status task.Status, notes, requestID string) events.Message {
	msgType := events.TypeTaskCompleted
	text := "timeline generation completed"
	if status == task.StatusFailed {
		msgType = events.TypeTaskFailed
		text = notes
		if text == "" {
			text = "timeline generation failed"
		}
	}
	return events.Message{
		Type:      msgType,
		Message:   text,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
}
