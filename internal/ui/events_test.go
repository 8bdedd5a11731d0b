package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitterDeliversToAllListeners(t *testing.T) {
	e := NewEmitter()
	var a, b int
	e.Listen(func(Event) { a++ })
	e.Listen(func(Event) { b++ })

	e.Emit(Event{Type: EventConfirm})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, e.Len())
}

func TestEmitterWithNoListeners(t *testing.T) {
	e := NewEmitter()
	// Fire-and-forget: emitting into the void must not panic.
	e.Emit(Event{Type: EventCancel})
	assert.Equal(t, 0, e.Len())
}

func TestSubscriptionRemove(t *testing.T) {
	e := NewEmitter()
	var fired int
	sub := e.Listen(func(Event) { fired++ })

	e.Emit(Event{Type: EventConfirm})
	require.Equal(t, 1, fired)

	sub.Remove()
	e.Emit(Event{Type: EventConfirm})
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, e.Len())

	// Removing twice is harmless.
	sub.Remove()
	assert.Equal(t, 0, e.Len())
}

func TestSubscriptionRemoveIsIndependent(t *testing.T) {
	// The handle identifies the exact registration, so removing one of two
	// identical listeners never detaches the other.
	e := NewEmitter()
	var fired int
	fn := func(Event) { fired++ }
	first := e.Listen(fn)
	e.Listen(fn)

	first.Remove()
	e.Emit(Event{Type: EventCancel})
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, e.Len())
}

func TestEmitterEventTypes(t *testing.T) {
	e := NewEmitter()
	var types []string
	e.Listen(func(ev Event) { types = append(types, ev.Type) })

	e.Emit(Event{Type: EventConfirm})
	e.Emit(Event{Type: EventCancel})
	assert.Equal(t, []string{EventConfirm, EventCancel}, types)
}
