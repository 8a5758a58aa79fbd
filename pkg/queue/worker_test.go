package queue

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/config"
)

func TestTerminalNotesTruncation(t *testing.T) {
	long := strings.Repeat("x", 600)
	notes := terminalNotes(&ExecutionResult{Status: task.StatusFailed, Notes: long})
	assert.Len(t, notes, 500)
	assert.True(t, strings.HasSuffix(notes, "..."))
}

func TestTerminalNotesFallsBackToError(t *testing.T) {
	notes := terminalNotes(&ExecutionResult{
		Status: task.StatusFailed,
		Error:  errors.New("upstream exploded"),
	})
	assert.Equal(t, "upstream exploded", notes)

	assert.Empty(t, terminalNotes(&ExecutionResult{Status: task.StatusCompleted}))
}

func TestPollIntervalJitterBounds(t *testing.T) {
	w := NewWorker("w-0", "pod", nil, &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 200 * time.Millisecond,
	}, nil, nil)

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	w := NewWorker("w-0", "pod", nil, &config.QueueConfig{PollInterval: time.Second}, nil, nil)
	assert.Equal(t, time.Second, w.pollInterval())
}
