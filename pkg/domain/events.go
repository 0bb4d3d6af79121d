package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateEnter EventType = "state_enter"
	EventTrap       EventType = "trap"
	EventDecision   EventType = "decision"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton,omitempty"`
}

// StateEvent represents entry into a state.
type StateEvent struct {
	EventBase
	State    *State `json:"-"`
	Label    string `json:"state"`
	Position int    `json:"position"` // index of the consumed symbol, -1 for the start entry
}

// TrapEvent represents an undefined transition that halted the walk.
type TrapEvent struct {
	EventBase
	From     string `json:"from"`
	Symbol   string `json:"symbol"`
	Position int    `json:"position"`
}

// DecisionEvent carries the final verdict of an evaluation.
type DecisionEvent struct {
	EventBase
	InputLength int  `json:"input_length"`
	Accepted    bool `json:"accepted"`
	Trapped     bool `json:"trapped"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStateEnter func(context.Context, *StateEvent)
	OnTrap       func(context.Context, *TrapEvent)
	OnDecision   func(context.Context, *DecisionEvent)
}
