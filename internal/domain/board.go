package domain

// TileKind classifies what happens when a player lands on a tile.
type TileKind string

const (
	// TileStart is the ring origin; passing it grants a meat bonus.
	TileStart TileKind = "start"
	// TileState opens a trial question.
	TileState TileKind = "state"
	// TileFate opens a fate card draw.
	TileFate TileKind = "fate"
	// TileChance opens a chance card draw.
	TileChance TileKind = "chance"
	// TileEvent resolves by exact tile name against the event table.
	TileEvent TileKind = "event"
	// TileBlank has no action; the turn advances after a short delay.
	TileBlank TileKind = "blank"
)

// Tile is a single position on the fixed ring. Immutable during play.
type Tile struct {
	Index int      `json:"index"`
	Kind  TileKind `json:"kind"`
	Name  string   `json:"name"`
}

// Board is the ordered tile ring.
type Board struct {
	Tiles []Tile `json:"tiles"`
}

// Size returns the number of tiles on the ring.
func (b Board) Size() int {
	return len(b.Tiles)
}

// Tile returns the tile at the given ring position (wrapped).
func (b Board) Tile(index int) Tile {
	return b.Tiles[((index%len(b.Tiles))+len(b.Tiles))%len(b.Tiles)]
}

// StepForward returns the next ring position after a single step.
func StepForward(pos, size int) int {
	return (pos + 1) % size
}

// LandingPosition returns the position after walking steps tiles forward.
func LandingPosition(start, steps, size int) int {
	return (start + steps) % size
}

// CountStartPasses returns how many times a walk of steps tiles from start
// crosses the ring origin. A walk that begins exactly at 0 does not count
// its own departure.
func CountStartPasses(start, steps, size int) int {
	passes := 0
	pos := start
	for i := 0; i < steps; i++ {
		next := StepForward(pos, size)
		if pos != 0 && next == 0 {
			passes++
		}
		pos = next
	}
	return passes
}
