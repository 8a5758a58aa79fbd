package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlainObject(t *testing.T) {
	var v map[string]any
	require.NoError(t, ExtractJSON(`{"a": 1}`, &v))
	assert.Equal(t, float64(1), v["a"])
}

func TestExtractJSONMarkdownFences(t *testing.T) {
	raw := "```json\n{\"key\": \"value\"}\n```"
	var v map[string]string
	require.NoError(t, ExtractJSON(raw, &v))
	assert.Equal(t, "value", v["key"])
}

func TestExtractJSONLeadingProse(t *testing.T) {
	raw := `Sure! Here is the result you asked for: {"score": 0.8} hope that helps`
	var v map[string]float64
	require.NoError(t, ExtractJSON(raw, &v))
	assert.Equal(t, 0.8, v["score"])
}

func TestExtractJSONArray(t *testing.T) {
	raw := "Result:\n[{\"id\": 1}, {\"id\": 2}] trailing chatter"
	var v []map[string]int
	require.NoError(t, ExtractJSON(raw, &v))
	require.Len(t, v, 2)
	assert.Equal(t, 2, v[1]["id"])
}

func TestExtractJSONTrailingGarbageAfterBalance(t *testing.T) {
	raw := `{"done": true}}}}`
	var v map[string]bool
	require.NoError(t, ExtractJSON(raw, &v))
	assert.True(t, v["done"])
}

func TestExtractJSONRepairsTruncatedObject(t *testing.T) {
	raw := `{"items": [{"name": "a"}, {"name": "b"`
	var v struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, ExtractJSON(raw, &v))
	require.Len(t, v.Items, 2)
	assert.Equal(t, "b", v.Items[1].Name)
}

func TestExtractJSONRepairsUnterminatedString(t *testing.T) {
	raw := `{"text": "cut off here`
	var v map[string]string
	require.NoError(t, ExtractJSON(raw, &v))
	assert.Equal(t, "cut off here", v["text"])
}

func TestExtractJSONNoPayload(t *testing.T) {
	var v map[string]any
	err := ExtractJSON("no json here at all", &v)
	require.Error(t, err)
}

func TestExtractJSONEscapedBracesInsideStrings(t *testing.T) {
	raw := `{"desc": "a } inside \" quotes {", "n": 3}`
	var v struct {
		Desc string `json:"desc"`
		N    int    `json:"n"`
	}
	require.NoError(t, ExtractJSON(raw, &v))
	assert.Equal(t, 3, v.N)
}
