package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRegionGrid(t *testing.T) {
	tests := []struct {
		x, y float64
		want string
	}{
		{0, 0, "top-left"},
		{50, 50, "center"},
		{100, 100, "bottom-right"},
		{80, 10, "top-right"},
		{10, 80, "bottom-left"},
		{50, 10, "top-center"},
		{10, 50, "middle-left"},
		{80, 50, "middle-right"},
		{50, 90, "bottom-center"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveRegion(TapPoint{X: tt.x, Y: tt.y}).String(),
			"x=%v y=%v", tt.x, tt.y)
	}
}

func TestResolveRegionBandBoundaries(t *testing.T) {
	// 33 belongs to the low band, 34 to the middle; 66 to the middle, 67 to
	// the high band. Pinned on both axes.
	assert.Equal(t, "left", ResolveRegion(TapPoint{X: 33, Y: 50}).Horizontal)
	assert.Equal(t, "center", ResolveRegion(TapPoint{X: 34, Y: 50}).Horizontal)
	assert.Equal(t, "center", ResolveRegion(TapPoint{X: 66, Y: 50}).Horizontal)
	assert.Equal(t, "right", ResolveRegion(TapPoint{X: 67, Y: 50}).Horizontal)

	assert.Equal(t, "top", ResolveRegion(TapPoint{X: 50, Y: 33}).Vertical)
	assert.Equal(t, "middle", ResolveRegion(TapPoint{X: 50, Y: 34}).Vertical)
	assert.Equal(t, "middle", ResolveRegion(TapPoint{X: 50, Y: 66}).Vertical)
	assert.Equal(t, "bottom", ResolveRegion(TapPoint{X: 50, Y: 67}).Vertical)
}

func TestResolveRegionClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "top-left", ResolveRegion(TapPoint{X: -20, Y: -5}).String())
	assert.Equal(t, "bottom-right", ResolveRegion(TapPoint{X: 140, Y: 101}).String())
}

func TestResolveRegionAlwaysOneOfNine(t *testing.T) {
	valid := map[string]bool{}
	for _, h := range []string{"left", "center", "right"} {
		for _, v := range []string{"top", "middle", "bottom"} {
			valid[RegionLabel{Horizontal: h, Vertical: v}.String()] = true
		}
	}
	for x := 0.0; x <= 100; x += 7 {
		for y := 0.0; y <= 100; y += 7 {
			got := ResolveRegion(TapPoint{X: x, Y: y}).String()
			assert.True(t, valid[got], "x=%v y=%v -> %q", x, y, got)
		}
	}
}
