package domain

// Phase represents the lifecycle stage of a game session.
type Phase string

const (
	// PhaseLobby is the pre-game state where the roster is assembled.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active game state.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a player has won.
	PhaseEnded Phase = "ended"
)

// Mode selects how simulated players resolve their decisions.
type Mode string

const (
	// ModeQuick applies AI decisions immediately after the thinking delay.
	ModeQuick Mode = "quick"
	// ModeNormal holds AI decisions until a human confirms them.
	ModeNormal Mode = "normal"
)

// Modal identifies the single overlay that may be open at a time.
type Modal string

const (
	ModalNone        Modal = ""
	ModalTrial       Modal = "TRIAL"
	ModalFate        Modal = "FATE"
	ModalChance      Modal = "CHANCE"
	ModalEventDetail Modal = "EVENT_DETAIL"
	ModalWin         Modal = "WIN"
)

// TrialSelection tracks the chosen option on an open trial card.
// Selected is -1 while nothing has been picked.
type TrialSelection struct {
	Selected int  `json:"selected"`
	Revealed bool `json:"revealed"`
}

// Rand is the injectable uniform randomness source for dice and card draws.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Session is the authoritative state for one game. It is owned by the turn
// engine and mutated only on the match loop's logical thread.
type Session struct {
	Phase   Phase
	Mode    Mode
	Players []*Player
	WinGoal int

	Current   int
	DiceRolls [2]int

	Rolling bool
	Moving  bool

	ActiveModal  Modal
	ActiveTrial  *TrialCard
	ActiveFate   *FateCard
	ActiveChance *ChanceCard
	ActiveEvent  *EventDetail

	TrialSelection         TrialSelection
	ShowingIntro           Modal
	ShowingPause           bool
	ShowingRecovery        bool
	WaitingForConfirmation bool

	Winner int
}

// NewSession returns an empty lobby-phase session.
func NewSession() *Session {
	return &Session{
		Phase:          PhaseLobby,
		Mode:           ModeNormal,
		TrialSelection: TrialSelection{Selected: -1},
		Winner:         -1,
	}
}

// CurrentPlayer returns the player whose turn it is, or nil before setup.
func (s *Session) CurrentPlayer() *Player {
	if s.Current < 0 || s.Current >= len(s.Players) {
		return nil
	}
	return s.Players[s.Current]
}

// Won reports whether the win overlay is active. Once true, every mutating
// path in the engine becomes a no-op.
func (s *Session) Won() bool {
	return s.ActiveModal == ModalWin
}

// ClearCardState discards any stale drawn card and trial selection before a
// new tile resolution begins.
func (s *Session) ClearCardState() {
	s.ActiveTrial = nil
	s.ActiveFate = nil
	s.ActiveChance = nil
	s.ActiveEvent = nil
	s.TrialSelection = TrialSelection{Selected: -1}
}
