package ui

import (
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes escape sequences so display width can be measured.
func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

// displayWidth returns the terminal cell width of a string.
func displayWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

// compositeOver draws a styled block on top of host content inside a
// width x height cell area. Rows and columns around the block keep the host
// content, re-rendered with dimStyle so the block visually floats above it.
// The host content is treated as plain text; its own styling is stripped.
func compositeOver(background, block string, x, y, width, height int, dimStyle lipgloss.Style, noColor bool) string {
	bgLines := strings.Split(stripANSI(background), "\n")
	if len(bgLines) > height {
		bgLines = bgLines[:height]
	}
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	blockLines := strings.Split(block, "\n")
	blockWidth := 0
	for _, l := range blockLines {
		if w := displayWidth(l); w > blockWidth {
			blockWidth = w
		}
	}

	dim := func(s string) string {
		if noColor || s == "" {
			return s
		}
		return dimStyle.Render(s)
	}

	out := make([]string, len(bgLines))
	for row, line := range bgLines {
		if runewidth.StringWidth(line) > width {
			line = runewidth.Truncate(line, width, "")
		}
		bi := row - y
		if bi < 0 || bi >= len(blockLines) {
			out[row] = dim(line)
			continue
		}

		if runewidth.StringWidth(line) < x+blockWidth {
			line += strings.Repeat(" ", x+blockWidth-runewidth.StringWidth(line))
		}
		left := runewidth.Truncate(line, x, "")
		right := truncateLeft(line, x+blockWidth)
		over := blockLines[bi]
		if pad := blockWidth - displayWidth(over); pad > 0 {
			over += strings.Repeat(" ", pad)
		}
		out[row] = dim(left) + over + dim(right)
	}
	return strings.Join(out, "\n")
}

// truncateLeft drops the first width cells of a string.
func truncateLeft(s string, width int) string {
	skipped := 0
	for i, r := range s {
		if skipped >= width {
			return s[i:]
		}
		skipped += runewidth.RuneWidth(r)
	}
	return ""
}
