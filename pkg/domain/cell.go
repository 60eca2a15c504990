package domain

import "fmt"

// CellState is the state of a single cell.
type CellState byte

const (
	// Alive marks a live cell.
	Alive CellState = '*'
	// Empty marks a dead cell.
	Empty CellState = '-'
)

// Valid reports whether s is one of the two known states.
func (s CellState) Valid() bool {
	return s == Alive || s == Empty
}

// IsAlive reports whether s counts as alive for the rule.
// Anything that is not Alive is treated as not alive.
func (s CellState) IsAlive() bool {
	return s == Alive
}

func (s CellState) String() string {
	return string(rune(s))
}

// ParseCellState converts a grid character into a CellState.
func ParseCellState(r rune) (CellState, error) {
	switch CellState(r) {
	case Alive:
		return Alive, nil
	case Empty:
		return Empty, nil
	}
	return Empty, fmt.Errorf("invalid cell state %q", r)
}

// MarshalText encodes the state as its grid character.
func (s CellState) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}

// UnmarshalText decodes a single grid character.
func (s *CellState) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("invalid cell state %q", text)
	}
	state, err := ParseCellState(rune(text[0]))
	if err != nil {
		return err
	}
	*s = state
	return nil
}
