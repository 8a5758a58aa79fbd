package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id           string
	podID        string
	client       *ent.Client
	config       *config.QueueConfig
	taskExecutor TaskExecutor
	pool         TaskRegistry
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for task
// registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		taskExecutor: executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the base interval with random jitter applied so
// workers across pods do not poll in lockstep.
func (w *Worker) pollInterval() time.Duration {
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return w.config.PollInterval
	}
	offset := time.Duration(rand.Int64N(int64(2*jitter))) - jitter
	return w.config.PollInterval + offset
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Task.Query().
		Where(task.StatusEQ(task.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	// 2. Claim next task
	claimed, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", claimed.ID, "worker_id", w.id)
	log.Info("Task claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create task context with timeout
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterTask(claimed.ID, cancelTask)
	defer w.pool.UnregisterTask(claimed.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// 6. Execute task
	result := w.taskExecutor.Execute(taskCtx, claimed)
	if result == nil {
		result = &ExecutionResult{
			Status: task.StatusFailed,
			Notes:  "executor returned no result",
		}
		if errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
			result.Notes = "task timed out"
		}
	}

	// 7. Write terminal status
	if err := w.updateTaskTerminalStatus(ctx, claimed, result); err != nil {
		log.Error("Failed to update task terminal status", "error", err)
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.lastActivity = time.Now()
	w.mu.Unlock()

	log.Info("Task finished", "status", result.Status)
	return nil
}

// claimNextTask atomically claims the oldest pending task using
// SELECT ... FOR UPDATE SKIP LOCKED for multi-worker safety.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Order by created_at for FIFO processing
	t, err := tx.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Order(ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			err = ErrNoTasksAvailable
			return nil, err
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	// Claim: set processing, pod_id, started_at, last_interaction_at
	now := time.Now()
	t, err = t.Update().
		SetStatus(task.StatusProcessing).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return t, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Task.UpdateOneID(taskID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// updateTaskTerminalStatus writes the final task status. The executor only
// returns the terminal state; this is where it is written to the task row.
func (w *Worker) updateTaskTerminalStatus(ctx context.Context, t *ent.Task, result *ExecutionResult) error {
	now := time.Now()
	update := w.client.Task.UpdateOneID(t.ID).
		SetStatus(result.Status).
		SetCompletedAt(now)

	if t.StartedAt != nil {
		update = update.SetProcessingDuration(now.Sub(*t.StartedAt).Seconds())
	}
	if result.ViewpointID != nil {
		update = update.SetViewpointID(*result.ViewpointID)
	}
	if notes := terminalNotes(result); notes != "" {
		update = update.SetNotes(notes)
	}
	return update.Exec(ctx)
}

// terminalNotes merges the result notes and error into the bounded notes
// column.
func terminalNotes(result *ExecutionResult) string {
	notes := result.Notes
	if notes == "" && result.Error != nil {
		notes = result.Error.Error()
	}
	if len(notes) > 500 {
		notes = notes[:497] + "..."
	}
	return notes
}

func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
