package system

import "github.com/milk9111/glitchknight/ecs"

// EventSystem drains the world queue at the end of the pipeline and hands
// each event to every handler.
type EventSystem struct {
	Handlers []func(ecs.Event)
}

func NewEventSystem(handlers ...func(ecs.Event)) *EventSystem {
	return &EventSystem{Handlers: handlers}
}

// Subscribe registers a handler.
func (s *EventSystem) Subscribe(h func(ecs.Event)) {
	if s == nil || h == nil {
		return
	}
	s.Handlers = append(s.Handlers, h)
}

func (s *EventSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		for _, h := range s.Handlers {
			if h != nil {
				h(evt)
			}
		}
	}
}
