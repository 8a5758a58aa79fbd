// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/progressstep"
	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes terminal tasks older than the retention horizon
//   - Removes progress steps past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"progress_step_ttl", s.config.ProgressStepTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce performs a single cleanup pass.
func (s *Service) runOnce(ctx context.Context) {
	taskHorizon := time.Now().AddDate(0, 0, -s.config.TaskRetentionDays)
	stepHorizon := time.Now().Add(-s.config.ProgressStepTTL)

	oldTasks, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed),
			task.CreatedAtLT(taskHorizon),
		).
		IDs(ctx)
	if err != nil {
		slog.Error("Cleanup: querying old tasks failed", "error", err)
		return
	}

	if len(oldTasks) > 0 {
		if _, err := s.client.ProgressStep.Delete().
			Where(progressstep.TaskIDIn(oldTasks...)).
			Exec(ctx); err != nil {
			slog.Error("Cleanup: deleting progress steps failed", "error", err)
			return
		}
		deleted, err := s.client.Task.Delete().
			Where(task.IDIn(oldTasks...)).
			Exec(ctx)
		if err != nil {
			slog.Error("Cleanup: deleting tasks failed", "error", err)
			return
		}
		slog.Info("Cleanup: removed old tasks", "count", deleted)
	}

	// Progress steps past their TTL expire independently of task status.
	expired, err := s.client.ProgressStep.Delete().
		Where(progressstep.EventTimestampLT(stepHorizon)).
		Exec(ctx)
	if err != nil {
		slog.Error("Cleanup: expiring progress steps failed", "error", err)
		return
	}
	if expired > 0 {
		slog.Info("Cleanup: expired progress steps", "count", expired)
	}
}
