package domain

import "fmt"

// MessageKind tags the shape of a Message.
type MessageKind string

const (
	KindQuery      MessageKind = "query"
	KindTransition MessageKind = "transition"
	KindComplete   MessageKind = "complete"
)

// Message is what a suspended routine hands to its driver.
// The driver only understands StateQuery, StateTransition and GenerationComplete.
type Message interface {
	Kind() MessageKind
}

// StateQuery asks the driver for the current state at a coordinate.
// The driver resumes the routine with a CellState.
type StateQuery struct {
	Coord
}

func (StateQuery) Kind() MessageKind { return KindQuery }

func (q StateQuery) String() string {
	return fmt.Sprintf("query%s", q.Coord)
}

// StateTransition carries the next state of a cell.
// The driver resumes the routine with nil.
type StateTransition struct {
	Coord
	State CellState `json:"state"`
}

func (StateTransition) Kind() MessageKind { return KindTransition }

func (t StateTransition) String() string {
	return fmt.Sprintf("transition%s=%s", t.Coord, t.State)
}

type generationComplete struct{}

func (generationComplete) Kind() MessageKind { return KindComplete }

func (generationComplete) String() string { return "generation complete" }

// GenerationComplete is emitted once after every cell of a sweep was stepped.
// Compare against it by identity.
var GenerationComplete Message = generationComplete{}
