package domain

import "testing"

func TestLandingPosition(t *testing.T) {
	tests := []struct {
		name  string
		start int
		steps int
		size  int
		want  int
	}{
		{name: "no wrap", start: 3, steps: 4, size: 24, want: 7},
		{name: "wrap once", start: 20, steps: 7, size: 24, want: 3},
		{name: "land on start", start: 22, steps: 2, size: 24, want: 0},
		{name: "full lap", start: 5, steps: 24, size: 24, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LandingPosition(tt.start, tt.steps, tt.size)
			if got != tt.want {
				t.Fatalf("LandingPosition() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountStartPasses(t *testing.T) {
	tests := []struct {
		name  string
		start int
		steps int
		size  int
		want  int
	}{
		{name: "short walk no pass", start: 3, steps: 4, size: 24, want: 0},
		{name: "single pass", start: 22, steps: 5, size: 24, want: 1},
		{name: "landing exactly on zero counts", start: 20, steps: 4, size: 24, want: 1},
		{name: "start at zero does not count departure", start: 0, steps: 24, size: 24, want: 1},
		{name: "two laps", start: 1, steps: 48, size: 24, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountStartPasses(tt.start, tt.steps, tt.size)
			if got != tt.want {
				t.Fatalf("CountStartPasses() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountStartPassesMatchesStepWalk(t *testing.T) {
	// The pass count and landing position must agree with a literal
	// one-tile-at-a-time walk for every dice-reachable step count.
	size := 24
	for start := 0; start < size; start++ {
		for steps := 2; steps <= 12; steps++ {
			pos := start
			passes := 0
			for i := 0; i < steps; i++ {
				next := StepForward(pos, size)
				if pos != 0 && next == 0 {
					passes++
				}
				pos = next
			}
			if got := LandingPosition(start, steps, size); got != pos {
				t.Fatalf("LandingPosition(%d,%d) = %d, walk = %d", start, steps, got, pos)
			}
			if got := CountStartPasses(start, steps, size); got != passes {
				t.Fatalf("CountStartPasses(%d,%d) = %d, walk = %d", start, steps, got, passes)
			}
		}
	}
}

func TestBoardTileWraps(t *testing.T) {
	b := Board{Tiles: []Tile{
		{Index: 0, Kind: TileStart, Name: "origin"},
		{Index: 1, Kind: TileBlank, Name: "road"},
		{Index: 2, Kind: TileState, Name: "state"},
	}}

	if got := b.Tile(4).Name; got != "road" {
		t.Fatalf("Tile(4) = %q, want road", got)
	}
	if got := b.Tile(0).Kind; got != TileStart {
		t.Fatalf("Tile(0).Kind = %q, want start", got)
	}
}
