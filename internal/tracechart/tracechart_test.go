package tracechart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		name   string
		widths []uint8
		xs, ys []int
	}{
		{name: "empty"},
		{name: "single", widths: []uint8{9}, xs: []int{0}, ys: []int{9}},
		{name: "flat", widths: []uint8{9, 9, 9, 9}, xs: []int{0, 3}, ys: []int{9, 9}},
		{
			name:   "grow",
			widths: []uint8{9, 9, 9, 10, 10, 11},
			xs:     []int{0, 2, 3, 4, 5},
			ys:     []int{9, 9, 10, 10, 11},
		},
		{
			name:   "grow-first",
			widths: []uint8{9, 10},
			xs:     []int{0, 1},
			ys:     []int{9, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys := Steps(tt.widths)
			assert.Equal(t, tt.xs, xs)
			assert.Equal(t, tt.ys, ys)
		})
	}
}

func TestRender(t *testing.T) {
	widths := make([]uint8, 0, 2000)
	for i := 0; i < 2000; i++ {
		widths = append(widths, uint8(9+i/600))
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "text.txt", widths))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderSingleCode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "", []uint8{9}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, "", nil), errEmptyTrace)
	assert.Zero(t, buf.Len())
}
