package domain

// Player holds the mutable state for one participant. The turn engine is the
// only writer; positions and meat counts never change concurrently.
type Player struct {
	ID          string `json:"id"`
	Character   string `json:"character"`
	AvatarIndex int    `json:"avatar_index"`
	Color       string `json:"color"`

	Position int  `json:"position"`
	Meat     int  `json:"meat"`
	IsAI     bool `json:"is_ai"`

	IsPaused      bool `json:"is_paused"`
	TurnsToSkip   int  `json:"turns_to_skip"`
	HasProtection bool `json:"has_protection"`
}

// AddMeat applies a signed meat delta, clamping the total at zero.
func (p *Player) AddMeat(delta int) {
	p.Meat += delta
	if p.Meat < 0 {
		p.Meat = 0
	}
}

// NextIndex returns the player index whose turn follows cur.
func NextIndex(cur, count int) int {
	return (cur + 1) % count
}

// FindWinner returns the index of the first player at or above the goal,
// or -1 when nobody has won yet.
func FindWinner(players []*Player, goal int) int {
	for i, p := range players {
		if p.Meat >= goal {
			return i
		}
	}
	return -1
}

// FindCharacter returns the index of the player with the given character
// label, or -1 when that character is not in the game.
func FindCharacter(players []*Player, character string) int {
	for i, p := range players {
		if p.Character == character {
			return i
		}
	}
	return -1
}
