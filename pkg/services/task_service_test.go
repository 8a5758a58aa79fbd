package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/ent/task"
	"github.com/chronicle-dev/chronicle/pkg/models"
	testdb "github.com/chronicle-dev/chronicle/test/database"
)

func TestTaskService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.CreateTaskRequest{
		TopicText: "The Apollo program",
		Config:    map[string]any{"article_limit": 5},
	}, task.TaskTypeSyntheticViewpoint)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, task.StatusPending, created.Status)
	assert.False(t, created.IsPublic)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Apollo program", got.TopicText)
}

func TestTaskService_GetMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)

	_, err := svc.GetTask(context.Background(), "no-such-task")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_UpdateSharing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.CreateTaskRequest{TopicText: "topic"}, task.TaskTypeSyntheticViewpoint)
	require.NoError(t, err)

	updated, err := svc.UpdateSharing(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsPublic)
}

func TestTaskService_ListPublicCompleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()

	pub := true
	visible, err := svc.CreateTask(ctx, models.CreateTaskRequest{TopicText: "public done", IsPublic: &pub}, task.TaskTypeSyntheticViewpoint)
	require.NoError(t, err)
	require.NoError(t, client.Task.UpdateOneID(visible.ID).SetStatus(task.StatusCompleted).Exec(ctx))

	// Public but pending: excluded.
	_, err = svc.CreateTask(ctx, models.CreateTaskRequest{TopicText: "public pending", IsPublic: &pub}, task.TaskTypeSyntheticViewpoint)
	require.NoError(t, err)

	// Private completed: excluded.
	private, err := svc.CreateTask(ctx, models.CreateTaskRequest{TopicText: "private done"}, task.TaskTypeSyntheticViewpoint)
	require.NoError(t, err)
	require.NoError(t, client.Task.UpdateOneID(private.ID).SetStatus(task.StatusCompleted).Exec(ctx))

	listed, err := svc.ListPublicCompleted(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "public done", listed[0].TopicText)
}
