package app

import "sagetrail/internal/domain"

// moveState tracks one step-by-step walk along the ring. Landing tile and
// pass count are settled up front; the steps only animate the way there.
type moveState struct {
	target    int
	remaining int
	landing   int
	passes    int
}

// movePlayer walks the target player forward one tile per step beat. Cards
// can move a player other than the current one; such a walk skips landing
// resolution and just advances the turn when it finishes.
func (e *Engine) movePlayer(steps, target int) {
	if e.sess.Won() || steps <= 0 {
		return
	}
	if target < 0 || target >= len(e.sess.Players) {
		return
	}
	p := e.sess.Players[target]
	size := e.tables.Board.Size()

	e.sess.Moving = true
	mv := &moveState{
		target:    target,
		remaining: steps,
		landing:   domain.LandingPosition(p.Position, steps, size),
		passes:    domain.CountStartPasses(p.Position, steps, size),
	}
	e.scheduleStep(mv)
}

func (e *Engine) scheduleStep(mv *moveState) {
	e.sched.schedule(e.ticks(e.pacing.StepMs), func() { e.step(mv) })
}

func (e *Engine) step(mv *moveState) {
	s := e.sess
	p := s.Players[mv.target]

	p.Position = domain.StepForward(p.Position, e.tables.Board.Size())
	mv.remaining--

	e.cue(CueMove)
	e.emit(EventPieceMoved, PieceMovedPayload{
		PlayerIndex: mv.target,
		Position:    p.Position,
		Final:       mv.remaining == 0,
	})

	if mv.remaining > 0 {
		e.scheduleStep(mv)
		return
	}
	e.finishMove(mv)
}

func (e *Engine) finishMove(mv *moveState) {
	s := e.sess
	landing := mv.landing

	land := func() {
		s.Moving = false
		if mv.target == s.Current {
			e.handleLanding(landing)
		} else {
			e.advanceTurn()
		}
	}

	// The pass-start bonus applies only to the current player's own walk,
	// and it settles before the landing tile resolves.
	if mv.passes > 0 && mv.target == s.Current {
		p := s.Players[mv.target]
		e.logf("%s passes the home altar of Lu and collects %d meat.", p.Character, mv.passes)
		passes := mv.passes
		e.presentMeat(mv.target, passes, func() {
			p.AddMeat(passes)
			if e.checkWin() {
				s.Moving = false
				return
			}
			land()
		})
		return
	}

	e.sched.schedule(e.ticks(e.pacing.LandingMs), land)
}
