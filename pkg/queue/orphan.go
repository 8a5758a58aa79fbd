package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chronicle-dev/chronicle/ent"
	"github.com/chronicle-dev/chronicle/ent/task"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds processing tasks with stale heartbeats and
// marks them failed (terminal state).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusProcessing),
			task.LastInteractionAtNotNil(),
			task.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	failed := 0
	for _, t := range orphans {
		if err := p.recoverOrphanedTask(ctx, t); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", t.ID, "error", err)
			failed++
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	if failed > 0 {
		slog.Warn("Orphan recovery completed with failures",
			"total_orphans", len(orphans),
			"recovered", recovered,
			"failed", failed)
	}
	return nil
}

// recoverOrphanedTask marks a single orphaned task as failed.
func (p *WorkerPool) recoverOrphanedTask(ctx context.Context, t *ent.Task) error {
	log := slog.With("task_id", t.ID, "old_pod_id", t.PodID)

	lastHeartbeat := "unknown"
	if t.LastInteractionAt != nil {
		lastHeartbeat = t.LastInteractionAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if t.PodID != nil {
		podID = *t.PodID
	}

	notes := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)
	if len(notes) > 500 {
		notes = notes[:500]
	}
	if err := p.client.Task.UpdateOneID(t.ID).
		SetStatus(task.StatusFailed).
		SetCompletedAt(time.Now()).
		SetNotes(notes).
		Exec(ctx); err != nil {
		return err
	}

	log.Warn("Orphaned task marked as failed", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of tasks owned by this
// pod that were processing when the pod previously crashed. Called once
// during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusProcessing),
			task.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))

	for _, t := range orphans {
		if err := client.Task.UpdateOneID(t.ID).
			SetStatus(task.StatusFailed).
			SetCompletedAt(time.Now()).
			SetNotes("Interrupted by pod restart").
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to fail startup orphan %s: %w", t.ID, err)
		}
	}
	return nil
}
