package splines

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.True(t, IsFinite(1.5))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(P(0, 0)) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	x, y := p.F()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, "(3,2)", p.String())
}

func TestPairDistance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 5.0, P(0, 0).Distance(P(3, 4)), 1e-12)
	assert.InDelta(t, math.Sqrt2, P(1, 1).Distance(P(2, 2)), 1e-12)
	assert.True(t, P(1, 1).Coincides(P(1, 1)))
	assert.True(t, P(0, 0).Coincides(P(0, 0)))
	assert.True(t, P(1e6, 1).Coincides(P(1e6, 1+1e-9)))
	assert.False(t, P(1, 1).Coincides(P(1, 1+1e-9)))
	assert.False(t, P(0, 0).Coincides(P(1e-8, 0)))
	assert.False(t, P(1e-8, 0).Coincides(P(2e-8, 1e-8)))
	assert.InDelta(t, 5.0, P(3, -4).Magnitude(), 1e-12)
}

func TestPairFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, P(1, -1).IsFinite())
	assert.False(t, P(math.NaN(), 0).IsFinite())
	assert.False(t, P(0, math.Inf(1)).IsFinite())
}

func TestBlend(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mid := Blend(P(0, 0), 0.5, P(2, 4), 0.5)
	assert.True(t, mid.Equal(P(1, 2)), "mid = %v", mid)
	assert.True(t, P(1, -2).Scaled(3).Equal(P(3, -6)))
}
