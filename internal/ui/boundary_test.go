package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryChromeNodes(t *testing.T) {
	b := newBoundary("panel", "confirm-button")

	require.NotNil(t, b.node("panel"))
	require.NotNil(t, b.node("confirm-button"))
	assert.Nil(t, b.node("missing"))
	assert.Equal(t, "panel", b.node("panel").role)
}

func TestBoundarySlots(t *testing.T) {
	b := newBoundary()

	assert.Equal(t, "", b.Slot("title"))
	b.SetSlot("title", "Hello")
	assert.Equal(t, "Hello", b.Slot("title"))

	// Slots are positional: new content replaces, never appends.
	b.SetSlot("title", "Replaced")
	assert.Equal(t, "Replaced", b.Slot("title"))
}

func TestBoundaryDefaultSlot(t *testing.T) {
	b := newBoundary()

	assert.Equal(t, "", b.DefaultSlot())
	b.SetDefaultSlot("body text")
	assert.Equal(t, "body text", b.DefaultSlot())
}

func TestBoundarySlotContentKeptVerbatim(t *testing.T) {
	b := newBoundary()
	raw := "  spaces  and\ttabs kept \n second line "
	b.SetDefaultSlot(raw)
	assert.Equal(t, raw, b.DefaultSlot())
}
