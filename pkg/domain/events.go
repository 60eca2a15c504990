package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGenerationStart    EventType = "generation_start"
	EventTransition         EventType = "transition"
	EventGenerationComplete EventType = "generation_complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// GenerationEvent describes the start or the end of one sweep.
// Counters are only filled on EventGenerationComplete.
type GenerationEvent struct {
	EventBase
	Generation  int           `json:"generation"`
	Height      int           `json:"height"`
	Width       int           `json:"width"`
	Queries     int           `json:"queries,omitempty"`
	Transitions int           `json:"transitions,omitempty"`
	Births      int           `json:"births,omitempty"`
	Deaths      int           `json:"deaths,omitempty"`
	Population  int           `json:"population,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
}

// TransitionEvent is fired for every StateTransition recorded by the driver.
type TransitionEvent struct {
	EventBase
	Generation int       `json:"generation"`
	Coord      Coord     `json:"coord"`
	From       CellState `json:"from"`
	To         CellState `json:"to"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnGenerationStart    func(context.Context, *GenerationEvent)
	OnTransition         func(context.Context, *TransitionEvent)
	OnGenerationComplete func(context.Context, *GenerationEvent)
}

// Change records a cell whose state differs between two generations.
type Change struct {
	Coord Coord     `json:"coord"`
	From  CellState `json:"from"`
	To    CellState `json:"to"`
}
