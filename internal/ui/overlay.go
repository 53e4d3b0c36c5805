package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces a rectangular region of a rendered view with
// overlay lines placed at (anchorX, anchorY). ANSI-aware truncation
// keeps escape sequences on both sides of the overlay intact.
func spliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	// Grow the view so a dialog fits even before the first resize.
	for len(viewLines) < anchorY+len(overlayLines) {
		viewLines = append(viewLines, "")
	}

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		var result strings.Builder
		if anchorX > 0 {
			prefix := ansi.Truncate(viewLine, anchorX, "")
			result.WriteString(prefix)
			if pad := anchorX - ansi.StringWidth(prefix); pad > 0 {
				result.WriteString(strings.Repeat(" ", pad))
			}
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// centerAnchor returns the top-left corner that centers a block of the
// given size on the screen, clamped to the origin.
func centerAnchor(screenWidth, screenHeight, blockWidth, blockHeight int) (int, int) {
	anchorX := (screenWidth - blockWidth) / 2
	anchorY := (screenHeight - blockHeight) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return anchorX, anchorY
}
