package app

import "sagetrail/internal/domain"

// advanceTurn hands play to the next seat. It is the hard cut between two
// turns: every outstanding timer, parked effect and armed AI trigger from the
// finishing turn is orphaned before the next player is announced.
func (e *Engine) advanceTurn() {
	s := e.sess
	if s.Won() {
		return
	}

	e.sched.cancelAll()
	e.clearEffects()
	e.armedKey = ""
	e.pendingDecision = nil

	s.Rolling = false
	s.Moving = false
	s.ActiveModal = domain.ModalNone
	s.ShowingIntro = domain.ModalNone
	s.ShowingPause = false
	s.ShowingRecovery = false
	s.WaitingForConfirmation = false
	s.ClearCardState()

	s.Current = domain.NextIndex(s.Current, len(s.Players))
	e.cue(CueTurnStart)

	next := s.CurrentPlayer()
	if next.IsPaused && next.TurnsToSkip > 0 {
		e.skipPausedTurn(next)
		return
	}

	e.emit(EventTurnStarted, TurnStartedPayload{PlayerIndex: s.Current})
	e.logf("It is %s's turn.", next.Character)
}

// skipPausedTurn consumes one skip from a paused player, shows the pause
// overlay for its beat, then advances again.
func (e *Engine) skipPausedTurn(p *domain.Player) {
	s := e.sess

	p.TurnsToSkip--
	remaining := p.TurnsToSkip
	if remaining == 0 {
		p.IsPaused = false
	}

	e.logf("%s is resting this turn (%d more to sit out).", p.Character, remaining)
	e.emit(EventTurnSkipped, TurnSkippedPayload{PlayerIndex: s.Current, TurnsRemaining: remaining})

	s.ShowingPause = true
	e.emit(EventPauseShown, PauseShownPayload{PlayerIndex: s.Current, TurnsRemaining: remaining, Visible: true})

	cur := s.Current
	e.sched.schedule(e.ticks(e.pacing.PauseOverlayMs), func() {
		s.ShowingPause = false
		e.emit(EventPauseShown, PauseShownPayload{PlayerIndex: cur, TurnsRemaining: remaining, Visible: false})
		if remaining == 0 {
			e.showRecovery(cur)
			return
		}
		e.advanceTurn()
	})
}

// showRecovery announces that a player has served their pause and will act on
// their next turn.
func (e *Engine) showRecovery(playerIndex int) {
	s := e.sess
	s.ShowingRecovery = true
	e.emit(EventRecoveryShown, RecoveryShownPayload{PlayerIndex: playerIndex, Visible: true})
	e.logf("%s has recovered and rejoins the journey.", s.Players[playerIndex].Character)

	e.sched.schedule(e.ticks(e.pacing.PauseOverlayMs), func() {
		s.ShowingRecovery = false
		e.emit(EventRecoveryShown, RecoveryShownPayload{PlayerIndex: playerIndex, Visible: false})
		e.advanceTurn()
	})
}
