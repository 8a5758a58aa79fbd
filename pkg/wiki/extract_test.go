package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `
<div class="mw-parser-output">
  <div class="shortdescription">Short description noise</div>
  <table class="infobox"><tr><td>Infobox noise</td></tr></table>
  <p>The Apollo program was a human spaceflight program.<sup class="reference">[1]</sup></p>
  <h2>History<span class="mw-editsection">[edit]</span></h2>
  <p>It achieved the first crewed Moon landing in 1969.</p>
  <div class="navbox">Navbox noise</div>
  <ol class="references"><li>Reference noise</li></ol>
  <script>var x = "script noise";</script>
</div>`

func TestExtractArticleText(t *testing.T) {
	text, err := ExtractArticleText(sampleHTML)
	require.NoError(t, err)

	assert.Contains(t, text, "The Apollo program was a human spaceflight program.")
	assert.Contains(t, text, "History")
	assert.Contains(t, text, "first crewed Moon landing in 1969")

	assert.NotContains(t, text, "Infobox noise")
	assert.NotContains(t, text, "Navbox noise")
	assert.NotContains(t, text, "Reference noise")
	assert.NotContains(t, text, "script noise")
	assert.NotContains(t, text, "[1]")
	assert.NotContains(t, text, "[edit]")
	assert.NotContains(t, text, "Short description noise")
}

func TestExtractArticleTextFallsBackWithoutContainer(t *testing.T) {
	text, err := ExtractArticleText(`<html><body><p>Bare paragraph.</p></body></html>`)
	require.NoError(t, err)
	assert.Contains(t, text, "Bare paragraph.")
}

func TestCanonicalPageURL(t *testing.T) {
	assert.Equal(t, "https://en.wikipedia.org/?curid=12345", CanonicalPageURL("en", 12345))
	assert.Equal(t, "https://zh.wikipedia.org/?curid=7", CanonicalPageURL("zh", 7))
}

func TestCollapseBlankLines(t *testing.T) {
	out := collapseBlankLines("a\n\n\n  b  \n\nc")
	assert.Equal(t, "a\nb\nc", out)
}
