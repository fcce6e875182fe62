package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"sagetrail/internal/bot"
	"sagetrail/internal/config"
	"sagetrail/internal/content"
	"sagetrail/internal/domain"
)

var (
	ErrNoPlayers      = errors.New("roster needs at least one player")
	ErrAlreadyStarted = errors.New("game already started")
)

// PlayerSetup is one roster entry supplied by the consumer at game start.
type PlayerSetup struct {
	ID          string `json:"id"`
	Character   string `json:"character"`
	IsAI        bool   `json:"is_ai"`
	AvatarIndex int    `json:"avatar_index"`
	Color       string `json:"color"`
}

// Options configures a new engine.
type Options struct {
	Tables     content.Tables
	Pacing     config.Pacing
	Rng        domain.Rand
	Brain      bot.Brain
	SwapTarget string
	// AutoPresent makes meat effects complete immediately instead of
	// waiting for a client acknowledgement. Used headless and in tests.
	AutoPresent bool
}

// Engine is the turn/resolution state machine. It owns the session and is
// the only writer of player state. It is not goroutine safe: the Nakama
// match loop (or a test) drives it from a single logical thread, with all
// delays expressed as tick-scheduled tasks.
type Engine struct {
	tables     content.Tables
	pacing     config.Pacing
	rng        domain.Rand
	brain      bot.Brain
	swapTarget string
	autoEffect bool

	sess  *domain.Session
	sched scheduler

	pendingDecision *bot.Decision
	armedKey        string
	armSeq          uint64

	effects map[string]func()
	events  []Event
}

// New constructs an engine. A nil Rng gets a time-seeded source; a nil Brain
// gets the uniform random brain over the same source.
func New(opts Options) *Engine {
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	brain := opts.Brain
	if brain == nil {
		brain = bot.NewRandomBrain(rng)
	}
	if len(opts.Tables.Board.Tiles) == 0 {
		opts.Tables = content.Default()
	}
	if opts.Pacing.TickRate == 0 {
		opts.Pacing = config.DefaultPacing()
	}
	swapTarget := opts.SwapTarget
	if swapTarget == "" {
		swapTarget = "Zilu"
	}
	return &Engine{
		tables:     opts.Tables,
		pacing:     opts.Pacing,
		rng:        rng,
		brain:      brain,
		swapTarget: swapTarget,
		autoEffect: opts.AutoPresent,
		sess:       domain.NewSession(),
		effects:    make(map[string]func()),
	}
}

// Session exposes the authoritative state for snapshots. Callers must not
// mutate it.
func (e *Engine) Session() *domain.Session {
	return e.sess
}

// StartGame installs the roster and begins play with the first entry as the
// current player. The roster must not be empty; the goal must be positive.
func (e *Engine) StartGame(roster []PlayerSetup, goal int, mode domain.Mode) ([]Event, error) {
	if e.sess.Phase == domain.PhasePlaying {
		return nil, ErrAlreadyStarted
	}
	if len(roster) == 0 {
		return nil, ErrNoPlayers
	}
	if goal < 1 {
		goal = 1
	}
	if mode != domain.ModeQuick {
		mode = domain.ModeNormal
	}

	players := make([]*domain.Player, len(roster))
	for i, entry := range roster {
		players[i] = &domain.Player{
			ID:          entry.ID,
			Character:   entry.Character,
			IsAI:        entry.IsAI,
			AvatarIndex: entry.AvatarIndex,
			Color:       entry.Color,
		}
	}

	e.sched.cancelAll()
	e.clearEffects()
	e.armedKey = ""
	e.pendingDecision = nil

	e.sess = domain.NewSession()
	e.sess.Phase = domain.PhasePlaying
	e.sess.Mode = mode
	e.sess.Players = players
	e.sess.WinGoal = goal
	e.sess.DiceRolls = [2]int{1, 1}

	e.emit(EventGameStarted, GameStartedPayload{
		Goal:    goal,
		Mode:    mode,
		First:   0,
		Players: players,
	})
	e.logf("The journey begins. Mode: %s. First to %d meat wins. %s opens the game.",
		mode, goal, players[0].Character)
	e.armAI()
	return e.drain(), nil
}

// Reset hard-cancels everything and returns the session to the lobby phase.
func (e *Engine) Reset() []Event {
	e.sched.cancelAll()
	e.clearEffects()
	e.armedKey = ""
	e.pendingDecision = nil
	e.sess = domain.NewSession()
	e.emit(EventGameReset, nil)
	e.logf("The game has been reset.")
	return e.drain()
}

// Tick advances the scheduler to the given match tick, runs every due task,
// and re-arms the AI gate after each one.
func (e *Engine) Tick(now int64) []Event {
	e.sched.now = now
	for e.sched.runNext(now) {
		e.armAI()
	}
	e.armAI()
	return e.drain()
}

// RequestRoll starts the current player's roll if the guard admits it.
// Rejected requests change nothing.
func (e *Engine) RequestRoll() []Event {
	e.requestRoll()
	e.armAI()
	return e.drain()
}

func (e *Engine) requestRoll() {
	s := e.sess
	if !e.canRoll() {
		if p := s.CurrentPlayer(); p != nil && p.IsPaused && p.TurnsToSkip > 0 {
			e.logf("%s is in quiet reflection and cannot roll this turn.", p.Character)
		}
		return
	}

	p := s.CurrentPlayer()
	if !p.IsAI {
		e.cue(CueClick)
	}
	e.cue(CueDiceRoll)
	s.Rolling = true

	e.sched.schedule(e.ticks(e.pacing.RollMs), func() {
		d1 := e.rng.Intn(6) + 1
		d2 := e.rng.Intn(6) + 1
		s.DiceRolls = [2]int{d1, d2}
		s.Rolling = false
		e.emit(EventDiceRolled, DiceRolledPayload{PlayerIndex: s.Current, D1: d1, D2: d2})
		e.logf("%s rolls %d+%d=%d and sets out.", p.Character, d1, d2, d1+d2)
		e.movePlayer(d1+d2, s.Current)
	})
}

// canRoll is the roll-availability guard of the pipeline.
func (e *Engine) canRoll() bool {
	s := e.sess
	if s.Phase != domain.PhasePlaying || s.Won() {
		return false
	}
	if s.Rolling || s.Moving || s.ActiveModal != domain.ModalNone ||
		s.ShowingIntro != domain.ModalNone || s.ShowingRecovery || s.ShowingPause ||
		s.WaitingForConfirmation {
		return false
	}
	// A parked presentation still owns the turn until its ack arrives.
	if len(e.effects) > 0 {
		return false
	}
	p := s.CurrentPlayer()
	if p == nil {
		return false
	}
	if p.IsPaused && p.TurnsToSkip > 0 {
		return false
	}
	return true
}

// presentMeat routes a signed meat change through the effect presenter and
// resumes done exactly once when the presentation completes. A zero amount
// bypasses presentation entirely.
func (e *Engine) presentMeat(target, amount int, done func()) {
	if amount == 0 {
		done()
		return
	}
	if e.sess.Won() {
		return
	}

	if amount > 0 {
		e.cue(CueGetMeat)
	}
	id := uuid.NewString()
	gate := e.sched.gate()
	e.emit(EventEffectRequested, EffectRequestedPayload{ID: id, PlayerIndex: target, Amount: amount})

	if e.autoEffect {
		done()
		return
	}
	e.effects[id] = func() {
		if !gate() {
			return
		}
		done()
	}
}

// EffectCompleted resumes the pipeline parked behind the identified effect
// presentation. Unknown ids are ignored.
func (e *Engine) EffectCompleted(id string) []Event {
	if resume, ok := e.effects[id]; ok {
		delete(e.effects, id)
		resume()
	}
	e.armAI()
	return e.drain()
}

func (e *Engine) clearEffects() {
	e.effects = make(map[string]func())
}

// checkWin scans for a winner and, when found, freezes the whole machine:
// win modal up, phase ended, every timer and parked continuation orphaned.
func (e *Engine) checkWin() bool {
	s := e.sess
	if s.Won() {
		return true
	}
	idx := domain.FindWinner(s.Players, s.WinGoal)
	if idx < 0 {
		return false
	}

	winner := s.Players[idx]
	e.logf("%s is first to gather %d meat and completes the journey!", winner.Character, winner.Meat)
	e.cue(CueWinGame)
	s.ActiveModal = domain.ModalWin
	s.Winner = idx
	s.Phase = domain.PhaseEnded
	e.sched.cancelAll()
	e.clearEffects()
	e.armedKey = ""
	e.pendingDecision = nil
	e.emit(EventGameWon, GameWonPayload{Winner: idx, Players: s.Players})
	return true
}

func (e *Engine) ticks(ms int) int64 {
	return e.pacing.Ticks(ms)
}

func (e *Engine) emit(kind EventKind, payload any) {
	e.events = append(e.events, Event{Kind: kind, Payload: payload})
}

func (e *Engine) cue(name string) {
	e.emit(EventCue, CuePayload{Name: name})
}

func (e *Engine) logf(format string, args ...any) {
	e.emit(EventLog, LogPayload{Text: fmt.Sprintf(format, args...)})
}

func (e *Engine) drain() []Event {
	out := e.events
	e.events = nil
	return out
}
