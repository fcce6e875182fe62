package app

import (
	"sagetrail/internal/bot"
	"sagetrail/internal/domain"
)

// EventKind identifies emitted engine events for dispatch to clients.
type EventKind string

const (
	EventLog                  EventKind = "log"
	EventGameStarted          EventKind = "game_started"
	EventGameReset            EventKind = "game_reset"
	EventDiceRolled           EventKind = "dice_rolled"
	EventPieceMoved           EventKind = "piece_moved"
	EventTileLanded           EventKind = "tile_landed"
	EventIntroShown           EventKind = "intro_shown"
	EventModalOpened          EventKind = "modal_opened"
	EventTrialRevealed        EventKind = "trial_revealed"
	EventEffectRequested      EventKind = "effect_requested"
	EventCue                  EventKind = "cue"
	EventPauseShown           EventKind = "pause_shown"
	EventRecoveryShown        EventKind = "recovery_shown"
	EventTurnStarted          EventKind = "turn_started"
	EventTurnSkipped          EventKind = "turn_skipped"
	EventAIDecided            EventKind = "ai_decided"
	EventAwaitingConfirmation EventKind = "awaiting_confirmation"
	EventGameWon              EventKind = "game_won"
)

// Event is a single engine output. All events are broadcast; the game has no
// hidden information.
type Event struct {
	Kind    EventKind
	Payload any
}

// Audio cue names, matching the client's effect bank.
const (
	CueDiceRoll        = "dice_roll"
	CueMove            = "move"
	CueGetMeat         = "get_meat"
	CueCardFlip        = "card_flip"
	CueCorrectAnswer   = "correct_answer"
	CueIncorrectAnswer = "incorrect_answer"
	CueWinGame         = "win_game"
	CueClick           = "click"
	CueTurnStart       = "turn_start"
)

type LogPayload struct {
	Text string `json:"text"`
}

type GameStartedPayload struct {
	Goal    int              `json:"goal"`
	Mode    domain.Mode      `json:"mode"`
	First   int              `json:"first"`
	Players []*domain.Player `json:"players"`
}

type DiceRolledPayload struct {
	PlayerIndex int `json:"player_index"`
	D1          int `json:"d1"`
	D2          int `json:"d2"`
}

type PieceMovedPayload struct {
	PlayerIndex int  `json:"player_index"`
	Position    int  `json:"position"`
	Final       bool `json:"final"`
}

type TileLandedPayload struct {
	PlayerIndex int    `json:"player_index"`
	TileIndex   int    `json:"tile_index"`
	TileName    string `json:"tile_name"`
}

type IntroShownPayload struct {
	Modal domain.Modal `json:"modal"`
}

type ModalOpenedPayload struct {
	Modal  domain.Modal        `json:"modal"`
	Trial  *domain.TrialCard   `json:"trial,omitempty"`
	Fate   *domain.FateCard    `json:"fate,omitempty"`
	Chance *domain.ChanceCard  `json:"chance,omitempty"`
	Event  *domain.EventDetail `json:"event,omitempty"`
}

type TrialRevealedPayload struct {
	Selected int  `json:"selected"`
	ByAI     bool `json:"by_ai"`
}

type EffectRequestedPayload struct {
	ID          string `json:"id"`
	PlayerIndex int    `json:"player_index"`
	Amount      int    `json:"amount"`
}

type CuePayload struct {
	Name string `json:"name"`
}

type PauseShownPayload struct {
	PlayerIndex    int  `json:"player_index"`
	TurnsRemaining int  `json:"turns_remaining"`
	Visible        bool `json:"visible"`
}

type RecoveryShownPayload struct {
	PlayerIndex int  `json:"player_index"`
	Visible     bool `json:"visible"`
}

type TurnStartedPayload struct {
	PlayerIndex int `json:"player_index"`
}

type TurnSkippedPayload struct {
	PlayerIndex    int `json:"player_index"`
	TurnsRemaining int `json:"turns_remaining"`
}

type AIDecidedPayload struct {
	PlayerIndex int          `json:"player_index"`
	Decision    bot.Decision `json:"decision"`
}

type AwaitingConfirmationPayload struct {
	PlayerIndex int          `json:"player_index"`
	Decision    bot.Decision `json:"decision"`
}

type GameWonPayload struct {
	Winner  int              `json:"winner"`
	Players []*domain.Player `json:"players"`
}
