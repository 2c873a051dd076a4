package rules

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
every other combination is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case !alive && neighbors == 3:
		return true
	default:
		return false
	}
}
