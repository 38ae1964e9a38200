package game

import "github.com/go-gl/mathgl/mgl32"

type EventType int

const (
	EventStep EventType = iota
	EventBump
	EventRegenerate
)

type Event struct {
	Type     EventType
	Position mgl32.Vec3
	Seed     uint64 // EventRegenerate only
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
