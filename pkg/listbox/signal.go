package listbox

// HandlerID identifies a connected signal handler.
type HandlerID uint64

type signalHandler[T any] struct {
	id HandlerID
	fn func(T)
}

// Signal is a synchronous notification list. Handlers run in connection
// order on the goroutine that emits.
type Signal[T any] struct {
	handlers []signalHandler[T]
	nextID   HandlerID
}

// Connect registers fn and returns an id for Disconnect.
func (s *Signal[T]) Connect(fn func(T)) HandlerID {
	s.nextID++
	s.handlers = append(s.handlers, signalHandler[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Disconnect removes a handler. It returns false if id was not connected.
func (s *Signal[T]) Disconnect(id HandlerID) bool {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Handlers returns the number of connected handlers.
func (s *Signal[T]) Handlers() int {
	return len(s.handlers)
}

// emit snapshots the handler list so handlers may connect or disconnect
// while it runs.
func (s *Signal[T]) emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	handlers := make([]signalHandler[T], len(s.handlers))
	copy(handlers, s.handlers)
	for _, h := range handlers {
		h.fn(v)
	}
}

func (s *Signal[T]) disconnectAll() {
	s.handlers = nil
}
