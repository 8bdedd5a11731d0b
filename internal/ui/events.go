package ui

// Event names emitted by the confirm modal.
const (
	EventConfirm = "confirm"
	EventCancel  = "cancel"
)

// Event is a semantic outcome announced to host listeners. Events carry no
// payload: "why it closed" is the whole message.
type Event struct {
	Type string
}

// Listener receives emitted events.
type Listener func(Event)

// Subscription is the stable handle returned when a listener is registered.
// Removal goes through the handle rather than a second function value, so
// the classic unbind-a-fresh-wrapper mismatch cannot happen.
type Subscription struct {
	emitter *Emitter
	id      int
}

// Remove unregisters the listener. Removing twice is a no-op.
func (s *Subscription) Remove() {
	if s.emitter == nil {
		return
	}
	delete(s.emitter.listeners, s.id)
	s.emitter = nil
}

// Emitter delivers events to zero or more listeners, fire-and-forget.
// It neither knows nor cares whether anything is listening.
type Emitter struct {
	listeners map[int]Listener
	nextID    int
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[int]Listener)}
}

// Listen registers a listener and returns its subscription handle.
func (e *Emitter) Listen(fn Listener) *Subscription {
	e.nextID++
	id := e.nextID
	e.listeners[id] = fn
	return &Subscription{emitter: e, id: id}
}

// Emit delivers an event to every registered listener synchronously, in
// registration order not guaranteed. There is no error path: delivery is
// fire-and-forget.
func (e *Emitter) Emit(ev Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}

// Len reports the number of registered listeners.
func (e *Emitter) Len() int {
	return len(e.listeners)
}
