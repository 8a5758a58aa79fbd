package keywords

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/pkg/llm/llmtest"
)

func TestExtract(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Response: `{
			"detected_language": "zh",
			"original_keywords": ["二战", "太平洋战场"],
			"english_keywords": ["World War II", "Pacific Theater"],
			"translated_viewpoint": "The Pacific theater of World War II"
		}`,
	})

	result, err := NewExtractor(client).Extract(context.Background(), "二战太平洋战场")
	require.NoError(t, err)
	assert.Equal(t, "zh", result.DetectedLanguage)
	assert.Equal(t, []string{"二战", "太平洋战场"}, result.OriginalKeywords)
	assert.Equal(t, []string{"World War II", "Pacific Theater"}, result.EnglishKeywords)
	assert.Equal(t, "The Pacific theater of World War II", result.TranslatedViewpoint)
}

// The alignment invariant: mismatched keyword list lengths empty both lists.
func TestExtractLengthMismatchClearsBothLists(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Response: `{
			"detected_language": "fr",
			"original_keywords": ["révolution", "Bastille"],
			"english_keywords": ["revolution"],
			"translated_viewpoint": "The French Revolution"
		}`,
	})

	result, err := NewExtractor(client).Extract(context.Background(), "la Révolution française")
	require.NoError(t, err)
	assert.Empty(t, result.OriginalKeywords)
	assert.Empty(t, result.EnglishKeywords)
}

func TestExtractDefaultsLanguage(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Response: `{"detected_language": "", "original_keywords": [], "english_keywords": [], "translated_viewpoint": ""}`,
	})

	result, err := NewExtractor(client).Extract(context.Background(), "Apollo program")
	require.NoError(t, err)
	assert.Equal(t, "en", result.DetectedLanguage)
}
