package components

import "strings"

const (
	scrollTrack = "│"
	scrollThumb = "█"
)

// RenderScrollbar renders a 1-column vertical scrollbar of viewHeight lines
// for contentHeight lines scrolled down by yOffset. When everything fits it
// renders a blank gutter so the layout width stays the same.
func RenderScrollbar(viewHeight, contentHeight, yOffset int) string {
	if viewHeight <= 0 {
		return ""
	}
	if contentHeight <= viewHeight {
		return strings.TrimSuffix(strings.Repeat(" \n", viewHeight), "\n")
	}

	thumbSize := max(viewHeight*viewHeight/contentHeight, 1)
	thumbMaxTop := viewHeight - thumbSize
	maxYOffset := contentHeight - viewHeight
	thumbTop := min(max(yOffset*thumbMaxTop/maxYOffset, 0), thumbMaxTop)

	lines := make([]string, viewHeight)
	for i := range lines {
		if i >= thumbTop && i < thumbTop+thumbSize {
			lines[i] = scrollThumb
		} else {
			lines[i] = scrollTrack
		}
	}
	return strings.Join(lines, "\n")
}
