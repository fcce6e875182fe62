package domain

// SpecialEffect tags the one-of special rule a fate or chance card can carry.
type SpecialEffect string

const (
	// SpecialGrantProtection sets the player's protection flag.
	SpecialGrantProtection SpecialEffect = "grant_protection"
	// SpecialSwapWithTarget swaps positions with the configured target
	// character, or resets to the start tile when that character is absent.
	SpecialSwapWithTarget SpecialEffect = "swap_with_target"
	// SpecialRollOddEven resolves by the parity of an extra die roll.
	SpecialRollOddEven SpecialEffect = "roll_odd_even"
)

// CardEffect is the composable effect block shared by fate and chance cards.
type CardEffect struct {
	Meat          int           `json:"meat,omitempty"`
	Pause         bool          `json:"pause,omitempty"`
	ForcePosition *int          `json:"force_position,omitempty"`
	Special       SpecialEffect `json:"special,omitempty"`
}

// TrialCard is a multiple-choice question tied to state tiles.
type TrialCard struct {
	Prompt      string    `json:"prompt"`
	Options     [4]string `json:"options"`
	AnswerIndex int       `json:"answer_index"`
	Explanation string    `json:"explanation"`
}

// FateCard is a randomly drawn narrative card with a composable effect.
type FateCard struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Effect      CardEffect `json:"effect"`
}

// ChanceCard is a randomly drawn challenge card with a composable effect.
type ChanceCard struct {
	Title     string     `json:"title"`
	Challenge string     `json:"challenge"`
	Effect    CardEffect `json:"effect"`
}

// EventEffectType is the fixed effect of a named event tile.
type EventEffectType string

const (
	EventPause    EventEffectType = "PAUSE"
	EventLoseMeat EventEffectType = "LOSE_MEAT"
	EventGainMeat EventEffectType = "GAIN_MEAT"
)

// EventDetail is the static content shown for a named event tile.
type EventDetail struct {
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	EffectLabel string          `json:"effect_label"`
	EffectType  EventEffectType `json:"effect_type"`
}
