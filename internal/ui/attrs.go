package ui

import "strings"

// AttrObserver is the synchronous hook invoked when an observed attribute
// changes. It receives the attribute name, the previous value, and the new
// value ("" with present=false means the attribute is absent).
type AttrObserver func(name, oldValue, newValue string)

// AttributeStore holds a widget's declarative configuration surface. It
// mirrors the observed-attribute pattern: writes to observed names invoke
// the registered hook synchronously, and writing the current value again is
// a no-op so redundant host updates never re-trigger presentation work.
type AttributeStore struct {
	values   map[string]string
	present  map[string]bool
	observed map[string]AttrObserver
}

// NewAttributeStore creates an empty store.
func NewAttributeStore() *AttributeStore {
	return &AttributeStore{
		values:   make(map[string]string),
		present:  make(map[string]bool),
		observed: make(map[string]AttrObserver),
	}
}

// Observe registers the change hook for an attribute name. A single hook
// per name; later registrations replace earlier ones.
func (s *AttributeStore) Observe(name string, fn AttrObserver) {
	s.observed[name] = fn
}

// Set writes an attribute value. Setting the value already stored is a
// strict no-op: the observer is not invoked.
func (s *AttributeStore) Set(name, value string) {
	if s.present[name] && s.values[name] == value {
		return
	}
	old := s.values[name]
	s.values[name] = value
	s.present[name] = true
	if fn, ok := s.observed[name]; ok {
		fn(name, old, value)
	}
}

// reset drops a stored attribute without notifying its observer. Widgets
// use it after an internal state change so the next host write of the same
// value still registers as a change.
func (s *AttributeStore) reset(name string) {
	delete(s.values, name)
	delete(s.present, name)
}

// Remove deletes an attribute. Removing an absent attribute is a no-op.
func (s *AttributeStore) Remove(name string) {
	if !s.present[name] {
		return
	}
	old := s.values[name]
	delete(s.values, name)
	delete(s.present, name)
	if fn, ok := s.observed[name]; ok {
		fn(name, old, "")
	}
}

// Get returns the attribute value and whether it is present.
func (s *AttributeStore) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok && s.present[name]
}

// TruthyAttr interprets a boolean-like attribute value the declarative
// surface uses for visibility flags: an absent attribute is false, and a
// present one is true unless it spells out a negative.
func TruthyAttr(value string, present bool) bool {
	if !present {
		return false
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "false", "0", "no", "off":
		return false
	default:
		return true
	}
}
