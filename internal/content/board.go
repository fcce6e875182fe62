package content

import "sagetrail/internal/domain"

// DefaultBoard returns the built-in 24-tile journey ring. Tile 0 is the
// start; the four named event tiles must match the event table keys.
func DefaultBoard() domain.Board {
	names := []struct {
		kind domain.TileKind
		name string
	}{
		{domain.TileStart, "State of Lu"},
		{domain.TileState, "State of Wei"},
		{domain.TileChance, "Chance"},
		{domain.TileState, "State of Cao"},
		{domain.TileEvent, "Trapped at Kuang"},
		{domain.TileState, "State of Song"},
		{domain.TileFate, "Fate"},
		{domain.TileBlank, "Roadside Rest"},
		{domain.TileState, "State of Zheng"},
		{domain.TileEvent, "Zheng City Gate"},
		{domain.TileChance, "Chance"},
		{domain.TileState, "State of Chen"},
		{domain.TileBlank, "River Crossing"},
		{domain.TileFate, "Fate"},
		{domain.TileEvent, "Between Chen and Cai"},
		{domain.TileState, "State of Cai"},
		{domain.TileChance, "Chance"},
		{domain.TileState, "City of Ye"},
		{domain.TileEvent, "Duke of She Asks About Governance"},
		{domain.TileFate, "Fate"},
		{domain.TileState, "State of Chu"},
		{domain.TileChance, "Chance"},
		{domain.TileState, "State of Qi"},
		{domain.TileBlank, "Mountain Pass"},
	}

	tiles := make([]domain.Tile, len(names))
	for i, n := range names {
		tiles[i] = domain.Tile{Index: i, Kind: n.kind, Name: n.name}
	}
	return domain.Board{Tiles: tiles}
}
