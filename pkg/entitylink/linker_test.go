package entitylink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/chronicle-dev/chronicle/test/database"
)

func TestBatchGetOrCreatePreservesOrderAndDeduplicates(t *testing.T) {
	client := testdb.NewTestClient(t)
	linker := NewLinker(client.Client, nil)
	ctx := context.Background()

	requests := []Request{
		{Name: "Napoleon", Type: "person", Language: "en"},
		{Name: "Austerlitz", Type: "location", Language: "en"},
		{Name: "Napoleon", Type: "person", Language: "fr"}, // duplicate (name, type)
	}

	responses, err := linker.BatchGetOrCreate(ctx, requests, "wikipedia")
	require.NoError(t, err)
	require.Len(t, responses, 3)

	assert.NotEmpty(t, responses[0].EntityID)
	assert.NotEmpty(t, responses[1].EntityID)
	// Duplicate occurrences share the resolved entity.
	assert.Equal(t, responses[0].EntityID, responses[2].EntityID)
	assert.NotEqual(t, responses[0].EntityID, responses[1].EntityID)

	// Only two entities were created.
	count, err := client.Entity.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBatchGetOrCreateReusesExisting(t *testing.T) {
	client := testdb.NewTestClient(t)
	linker := NewLinker(client.Client, nil)
	ctx := context.Background()

	first, err := linker.BatchGetOrCreate(ctx, []Request{{Name: "Rome", Type: "location"}}, "wikipedia")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 201, first[0].StatusCode)

	second, err := linker.BatchGetOrCreate(ctx, []Request{{Name: "Rome", Type: "location"}}, "wikipedia")
	require.NoError(t, err)
	assert.Equal(t, 200, second[0].StatusCode)
	assert.Equal(t, first[0].EntityID, second[0].EntityID)
}

func TestBatchGetOrCreateRejectsEmptyName(t *testing.T) {
	client := testdb.NewTestClient(t)
	linker := NewLinker(client.Client, nil)

	responses, err := linker.BatchGetOrCreate(context.Background(), []Request{{Name: "", Type: "person"}}, "wikipedia")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, 400, responses[0].StatusCode)
	assert.Empty(t, responses[0].EntityID)
}

type stubVerifier struct{}

func (stubVerifier) VerifyEntity(_ context.Context, name, _, _ string) (bool, []string, error) {
	return name == "Atlantis", nil, nil
}

func TestBatchGetOrCreateRecordsVerification(t *testing.T) {
	client := testdb.NewTestClient(t)
	linker := NewLinker(client.Client, stubVerifier{})
	ctx := context.Background()

	responses, err := linker.BatchGetOrCreate(ctx, []Request{{Name: "Atlantis", Type: "location"}}, "wikipedia")
	require.NoError(t, err)
	require.NotEmpty(t, responses[0].EntityID)
	require.NotNil(t, responses[0].IsVerifiedExistent)
	assert.True(t, *responses[0].IsVerifiedExistent)
}
