package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= MaxNeighbors; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Fatalf("alive cell with %d neighbors: got %v, want %v", neighbors, got, wantAlive)
		}

		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Fatalf("dead cell with %d neighbors: got %v, want %v", neighbors, got, wantBorn)
		}
	}
}
