// Package eventbus is a small in-process pub/sub used by the host
// application to observe widget activity without coupling to it.
package eventbus

import (
	"log"
	"runtime/debug"
	"sync"
)

// EventType identifies a kind of widget event
type EventType string

const (
	EventSelectionMoved  EventType = "selection_moved"
	EventContentReplaced EventType = "content_replaced"
	EventEntryChosen     EventType = "entry_chosen"
	EventQuit            EventType = "quit"
)

// WidgetEvent is implemented by every published event
type WidgetEvent interface {
	Type() EventType
}

// SelectionMovedEvent reports a change of the absolute selection index
type SelectionMovedEvent struct {
	OldIndex int
	NewIndex int
}

func (SelectionMovedEvent) Type() EventType { return EventSelectionMoved }

// ContentReplacedEvent reports a wholesale content replacement
type ContentReplacedEvent struct {
	Count int
}

func (ContentReplacedEvent) Type() EventType { return EventContentReplaced }

// EntryChosenEvent reports the final accepted selection
type EntryChosenEvent struct {
	Index int
	Entry string
}

func (EntryChosenEvent) Type() EventType { return EventEntryChosen }

// QuitEvent reports that the user backed out without choosing
type QuitEvent struct{}

func (QuitEvent) Type() EventType { return EventQuit }

// EventHandler is a function that handles widget events
type EventHandler func(WidgetEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event WidgetEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type registration struct {
	handler EventHandler
}

type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]*registration
	eventChan chan WidgetEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	once      sync.Once
}

// New creates a new event bus and starts its dispatcher
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]*registration),
		eventChan: make(chan WidgetEvent, 64),
		quit:      make(chan struct{}),
	}
	b.wg.Add(1)
	go b.dispatch()
	return b
}

// Publish publishes an event to all subscribers. A full channel drops the
// event rather than blocking the UI loop.
func (b *bus) Publish(event WidgetEvent) {
	select {
	case b.eventChan <- event:
	default:
		log.Printf("event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe registers a handler for an event type and returns an
// unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	reg := &registration{handler: handler}
	b.handlers[eventType] = append(b.handlers[eventType], reg)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		handlers := b.handlers[eventType]
		for i, r := range handlers {
			if r == reg {
				b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher after draining pending events
func (b *bus) Close() {
	b.once.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)
		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event WidgetEvent) {
	b.mu.RLock()
	handlers := make([]*registration, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, reg := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("event handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
				}
			}()
			reg.handler(event)
		}()
	}
}
