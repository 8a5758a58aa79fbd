package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPgvectorLiteral(t *testing.T) {
	assert.Equal(t, "[0.1,0.2,0.3]", PgvectorLiteral([]float32{0.1, 0.2, 0.3}))
	assert.Equal(t, "[]", PgvectorLiteral(nil))
	assert.Equal(t, "[1,-2,0]", PgvectorLiteral([]float32{1, -2, 0}))
}

func TestNormalizeVector(t *testing.T) {
	v := normalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(v[1]), 1e-6)

	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestNormalizeZeroVectorUnchanged(t *testing.T) {
	v := normalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, v)
}

func TestCacheKeyDistinguishesNormalization(t *testing.T) {
	assert.NotEqual(t, cacheKey("text", true), cacheKey("text", false))
	assert.Equal(t, cacheKey("text", true), cacheKey("text", true))
}
