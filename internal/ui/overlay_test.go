package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Render("hello")
	assert.Equal(t, "hello", stripANSI(styled))
	assert.Equal(t, "plain", stripANSI("plain"))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, displayWidth("hello"))
	assert.Equal(t, 2, displayWidth("世"))
	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	assert.Equal(t, 2, displayWidth(styled))
}

func TestCompositeOverSplicesBlock(t *testing.T) {
	background := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc\ndddddddddd"
	block := "XX\nYY"

	out := compositeOver(background, block, 4, 1, 10, 4, lipgloss.NewStyle(), true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "aaaaaaaaaa", lines[0])
	assert.Equal(t, "bbbbXXbbbb", lines[1])
	assert.Equal(t, "ccccYYcccc", lines[2])
	assert.Equal(t, "dddddddddd", lines[3])
}

func TestCompositeOverPadsShortBackground(t *testing.T) {
	out := compositeOver("one line", "BB", 2, 2, 8, 4, lipgloss.NewStyle(), true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "one line", lines[0])
	assert.Equal(t, "  BB", lines[2])
}

func TestCompositeOverTruncatesWideBackground(t *testing.T) {
	out := compositeOver("0123456789abcdef", "X", 0, 0, 10, 1, lipgloss.NewStyle(), true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "X123456789", lines[0])
}

func TestCompositeOverKeepsBlockStyling(t *testing.T) {
	styledBlock := lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Render("HI")
	out := compositeOver("..........", styledBlock, 3, 0, 10, 1, lipgloss.NewStyle().Faint(true), false)

	assert.Contains(t, out, styledBlock, "block keeps its own escape sequences")
	assert.Equal(t, "...HI.....", stripANSI(out))
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "cdef", truncateLeft("abcdef", 2))
	assert.Equal(t, "", truncateLeft("ab", 5))
	assert.Equal(t, "abc", truncateLeft("abc", 0))
}
