package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeStoreSetAndGet(t *testing.T) {
	s := NewAttributeStore()

	_, ok := s.Get("open")
	assert.False(t, ok)

	s.Set("open", "true")
	v, ok := s.Get("open")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	s.Remove("open")
	_, ok = s.Get("open")
	assert.False(t, ok)
}

func TestAttributeStoreObserverFiresOnChange(t *testing.T) {
	s := NewAttributeStore()
	type change struct{ name, old, new string }
	var seen []change
	s.Observe("text", func(name, oldValue, newValue string) {
		seen = append(seen, change{name, oldValue, newValue})
	})

	s.Set("text", "a")
	s.Set("text", "b")
	s.Remove("text")

	require.Len(t, seen, 3)
	assert.Equal(t, change{"text", "", "a"}, seen[0])
	assert.Equal(t, change{"text", "a", "b"}, seen[1])
	assert.Equal(t, change{"text", "b", ""}, seen[2])
}

func TestAttributeStoreSameValueIsNoOp(t *testing.T) {
	s := NewAttributeStore()
	var fired int
	s.Observe("open", func(string, string, string) { fired++ })

	s.Set("open", "true")
	s.Set("open", "true")
	s.Set("open", "true")
	assert.Equal(t, 1, fired)

	s.Remove("open")
	s.Remove("open")
	assert.Equal(t, 2, fired, "removing an absent attribute must not notify")
}

func TestAttributeStoreUnobservedNamesAreSilent(t *testing.T) {
	s := NewAttributeStore()
	var fired int
	s.Observe("open", func(string, string, string) { fired++ })

	s.Set("data-extra", "1")
	s.Remove("data-extra")
	assert.Equal(t, 0, fired)
}

func TestTruthyAttr(t *testing.T) {
	tests := []struct {
		value   string
		present bool
		want    bool
	}{
		{"", false, false},
		{"", true, true}, // bare presence counts as true
		{"true", true, true},
		{"open", true, true},
		{"false", true, false},
		{"FALSE", true, false},
		{"0", true, false},
		{"no", true, false},
		{"off", true, false},
		{" false ", true, false},
		{"1", true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TruthyAttr(tt.value, tt.present), "value=%q present=%v", tt.value, tt.present)
	}
}
