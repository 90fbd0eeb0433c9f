package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	content := "a\nb\nc\nd\ne"

	tests := []struct {
		name       string
		offset     int
		height     int
		want       string
		wantOffset int
	}{
		{"fits", 3, 10, content, 0},
		{"no height", 2, 0, content, 0},
		{"top", 0, 2, "a\nb", 0},
		{"middle", 1, 2, "b\nc", 1},
		{"clamped to last page", 9, 2, "d\ne", 3},
		{"negative offset", -4, 3, "a\nb\nc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, off := Window(content, tt.offset, tt.height)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOffset, off)
		})
	}
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.Contains(t, RenderMinSizeMessage(40, 10), "Current: 40 x 10")
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 0, ContentHeight(1))
	assert.Equal(t, 30-HeaderHeight-FooterHeight, ContentHeight(30))
}

func TestRenderFooterDropsMiddleHints(t *testing.T) {
	hints := []KeyHint{
		{"1-5", "Answer"},
		{"Enter", "Answer"},
		{"PgDn", "Scroll"},
		{"Ctrl+C", "Quit"},
	}

	wide := RenderFooter(hints, 120)
	assert.Contains(t, wide, "PgDn")

	narrow := RenderFooter(hints, 34)
	assert.Contains(t, narrow, "1-5")
	assert.Contains(t, narrow, "Ctrl+C")
	assert.NotContains(t, narrow, "PgDn")
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Personality Test", "3/120 answered", 80)
	assert.Contains(t, out, "Big Five")
	assert.Contains(t, out, "Personality Test")
	assert.Contains(t, out, "3/120 answered")
}
