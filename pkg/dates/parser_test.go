package dates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/pkg/llm/llmtest"
)

func TestParseBatch(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Contains: []string{"date strings"},
		Response: `[
			{"id": "0", "original_text": "July 20, 1969", "display_text": "July 20, 1969",
			 "precision": "day", "start_year": 1969, "start_month": 7, "start_day": 20,
			 "end_year": 1969, "end_month": 7, "end_day": 20, "is_bce": false},
			{"id": "1", "original_text": "sometime long ago", "display_text": "",
			 "precision": "unknown", "start_year": null, "start_month": null, "start_day": null,
			 "end_year": null, "end_month": null, "end_day": null, "is_bce": false}
		]`,
	})
	parser := NewParser(client)

	results, err := parser.ParseBatch(context.Background(), []BatchItem{
		{ID: "0", DateStr: "July 20, 1969"},
		{ID: "1", DateStr: "sometime long ago"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	day := results["0"]
	require.NotNil(t, day)
	assert.Equal(t, PrecisionDay, day.Precision)
	require.NotNil(t, day.StartYear)
	assert.Equal(t, 1969, *day.StartYear)

	vague := results["1"]
	require.NotNil(t, vague)
	assert.Equal(t, PrecisionUnknown, vague.Precision)
	assert.Nil(t, vague.StartYear)
}

func TestParseBatchEmptyInput(t *testing.T) {
	client := llmtest.NewScripted()
	parser := NewParser(client)

	results, err := parser.ParseBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, client.CallCount())
}

func TestParseSingleEmptyString(t *testing.T) {
	client := llmtest.NewScripted()
	parser := NewParser(client)

	pd, err := parser.ParseSingle(context.Background(), "  ")
	require.NoError(t, err)
	assert.Nil(t, pd)
	assert.Zero(t, client.CallCount())
}

func TestParseBatchInvalidPrecisionNormalized(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Response: `[{"id": "0", "original_text": "x", "precision": "fortnight", "is_bce": false}]`,
	})
	parser := NewParser(client)

	results, err := parser.ParseBatch(context.Background(), []BatchItem{{ID: "0", DateStr: "x"}})
	require.NoError(t, err)
	require.NotNil(t, results["0"])
	assert.Equal(t, PrecisionUnknown, results["0"].Precision)
}
