package bramble

// Reserved lifecycle event names emitted by game objects.
const (
	// EventDestroy fires once, at the start of Destroy, before the object is
	// detached from its scene. Listeners may still query Scene().
	EventDestroy = "destroy"
	// EventAddedToScene fires when the object joins a scene's display list.
	EventAddedToScene = "addedtoscene"
	// EventRemovedFromScene fires when the object leaves a scene's display list.
	EventRemovedFromScene = "removedfromscene"
)

// Loader event names.
const (
	// EventFileComplete fires per file after a successful load. Args: key.
	EventFileComplete = "filecomplete"
	// EventFileError fires per file when a load fails. Args: key, error.
	EventFileError = "loaderror"
	// EventLoadComplete fires once when the loader queue drains.
	EventLoadComplete = "complete"
)

// Handler is an event callback. Arguments depend on the event; lifecycle
// events pass the emitting *GameObject as the first argument.
type Handler func(args ...any)

// EventEmitter is a minimal synchronous publish/subscribe capability.
// Emission runs handlers in registration order on the caller's goroutine.
// The zero value is ready to use.
type EventEmitter struct {
	listeners map[string][]eventListener
}

type eventListener struct {
	fn   Handler
	once bool
}

// On registers a handler for the named event.
func (e *EventEmitter) On(event string, fn Handler) {
	if e.listeners == nil {
		e.listeners = make(map[string][]eventListener)
	}
	e.listeners[event] = append(e.listeners[event], eventListener{fn: fn})
}

// Once registers a handler that is removed after its first invocation.
func (e *EventEmitter) Once(event string, fn Handler) {
	if e.listeners == nil {
		e.listeners = make(map[string][]eventListener)
	}
	e.listeners[event] = append(e.listeners[event], eventListener{fn: fn, once: true})
}

// Emit invokes all handlers registered for the named event.
// Returns true if at least one handler ran.
func (e *EventEmitter) Emit(event string, args ...any) bool {
	ls := e.listeners[event]
	if len(ls) == 0 {
		return false
	}
	// Handlers may register or remove listeners while running; iterate a
	// snapshot so emission order stays stable.
	snapshot := make([]eventListener, len(ls))
	copy(snapshot, ls)

	kept := ls[:0]
	for _, l := range ls {
		if !l.once {
			kept = append(kept, l)
		}
	}
	e.listeners[event] = kept

	for _, l := range snapshot {
		l.fn(args...)
	}
	return true
}

// ListenerCount returns the number of handlers registered for the event.
func (e *EventEmitter) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// RemoveListeners removes every handler registered for the named event.
func (e *EventEmitter) RemoveListeners(event string) {
	delete(e.listeners, event)
}

// RemoveAllListeners removes every handler for every event.
func (e *EventEmitter) RemoveAllListeners() {
	e.listeners = nil
}
