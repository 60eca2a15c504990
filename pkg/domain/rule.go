package domain

// Next applies the birth/survival rule to a cell with the given number of
// live neighbours.
//
//	Alive with 2 or 3 neighbours survives, otherwise it dies.
//	Empty with exactly 3 neighbours is born, otherwise it stays empty.
func Next(state CellState, neighbors int) CellState {
	if state.IsAlive() {
		if neighbors < 2 || neighbors > 3 {
			return Empty
		}
		return Alive
	}
	if neighbors == 3 {
		return Alive
	}
	return Empty
}
