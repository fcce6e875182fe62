package app

import "sagetrail/internal/domain"

// SelectTrialOption records the human player's pick on the open trial card.
func (e *Engine) SelectTrialOption(option int) []Event {
	s := e.sess
	if e.humanModal(domain.ModalTrial) && s.ActiveTrial != nil &&
		option >= 0 && option < len(s.ActiveTrial.Options) {
		s.TrialSelection = domain.TrialSelection{Selected: option, Revealed: true}
		e.cue(CueClick)
		e.emit(EventTrialRevealed, TrialRevealedPayload{Selected: option, ByAI: false})
	}
	e.armAI()
	return e.drain()
}

// ConfirmTrial resolves the open trial card against the recorded selection.
func (e *Engine) ConfirmTrial() []Event {
	s := e.sess
	if e.humanModal(domain.ModalTrial) && s.TrialSelection.Selected >= 0 {
		if s.ActiveTrial == nil {
			e.missingCardFallback()
		} else {
			e.resolveTrial(s.TrialSelection.Selected == s.ActiveTrial.AnswerIndex, s.TrialSelection.Selected)
		}
	}
	e.armAI()
	return e.drain()
}

// ResolveFate applies the open fate card.
func (e *Engine) ResolveFate() []Event {
	if e.humanModal(domain.ModalFate) {
		e.resolveFate()
	}
	e.armAI()
	return e.drain()
}

// ResolveChance applies the open chance card.
func (e *Engine) ResolveChance() []Event {
	if e.humanModal(domain.ModalChance) {
		e.resolveChance()
	}
	e.armAI()
	return e.drain()
}

// ResolveEvent applies the open event detail.
func (e *Engine) ResolveEvent() []Event {
	if e.humanModal(domain.ModalEventDetail) {
		e.resolveEvent()
	}
	e.armAI()
	return e.drain()
}

// humanModal admits a human-triggered resolution of the given modal. AI
// resolutions travel through the decision gate instead, and nothing resolves
// while a confirmation is pending.
func (e *Engine) humanModal(modal domain.Modal) bool {
	s := e.sess
	if s.Won() || s.ActiveModal != modal || s.WaitingForConfirmation {
		return false
	}
	p := s.CurrentPlayer()
	return p != nil && !p.IsAI
}

// missingCardFallback recovers from a resolver invoked with no active card:
// close the modal and advance rather than leave the table stuck.
func (e *Engine) missingCardFallback() {
	e.sess.ActiveModal = domain.ModalNone
	e.advanceTurn()
}

// resolveTrial settles a trial answer. A correct answer grants exactly one
// meat to the answering player; a wrong one changes nothing.
func (e *Engine) resolveTrial(correct bool, chosen int) {
	s := e.sess
	if s.Won() {
		return
	}
	p := s.CurrentPlayer()
	if s.ActiveTrial == nil {
		e.missingCardFallback()
		return
	}
	s.ActiveTrial = nil

	choice := "no answer"
	if chosen >= 0 {
		choice = string(rune('A' + chosen))
	}

	s.ActiveModal = domain.ModalNone
	if correct {
		e.logf("%s answers %s. Correct! One meat is granted.", p.Character, choice)
		cur := s.Current
		e.sched.schedule(e.ticks(e.pacing.TrialEffectMs), func() {
			e.presentMeat(cur, 1, func() {
				s.Players[cur].AddMeat(1)
				if e.checkWin() {
					return
				}
				e.cue(CueCorrectAnswer)
				e.sched.schedule(e.ticks(e.pacing.AdvanceShortMs), e.advanceTurn)
			})
		})
		return
	}

	e.logf("%s answers %s. Wrong — more study is needed.", p.Character, choice)
	e.cue(CueIncorrectAnswer)
	e.sched.schedule(e.ticks(e.pacing.AdvanceShortMs), e.advanceTurn)
}

// resolveFate applies the open fate card's composable effect block.
func (e *Engine) resolveFate() {
	s := e.sess
	if s.Won() {
		return
	}
	e.cue(CueClick)
	card := s.ActiveFate
	if card == nil {
		e.missingCardFallback()
		return
	}
	s.ActiveFate = nil
	s.ActiveModal = domain.ModalNone

	p := s.CurrentPlayer()
	e.logf("%s draws fate: %s — %s", p.Character, card.Title, card.Description)
	e.applyEffect(card.Effect, true)
}

// resolveChance applies the open chance card, including the odd/even
// sub-roll special.
func (e *Engine) resolveChance() {
	s := e.sess
	if s.Won() {
		return
	}
	e.cue(CueClick)
	card := s.ActiveChance
	if card == nil {
		e.missingCardFallback()
		return
	}
	s.ActiveChance = nil
	s.ActiveModal = domain.ModalNone

	p := s.CurrentPlayer()
	e.logf("%s draws chance: %s — %s", p.Character, card.Title, card.Challenge)

	eff := card.Effect
	if eff.Special == domain.SpecialRollOddEven {
		roll := e.rng.Intn(6) + 1
		if roll%2 == 0 {
			e.logf("The die shows %d — the moment is seized!", roll)
			cur := s.Current
			e.presentMeat(cur, 1, func() {
				s.Players[cur].AddMeat(1)
				if e.checkWin() {
					return
				}
				// The windfall carries the same player three tiles
				// onward; that walk's landing owns the turn advance.
				e.sched.schedule(e.ticks(e.pacing.PostGrantMoveMs), func() {
					e.movePlayer(3, cur)
				})
			})
			return
		}
		e.logf("The die shows %d — the encounter turns sour.", roll)
		eff.Pause = true
		eff.Meat = -1
		eff.Special = ""
	}

	e.applyEffect(eff, false)
}

// applyEffect settles a fate/chance effect block: meat through the
// presenter, then pause/protection/reposition, then win check and advance.
// A forced reposition re-enters landing resolution instead of advancing.
func (e *Engine) applyEffect(eff domain.CardEffect, allowSwap bool) {
	s := e.sess
	cur := s.Current

	finalize := func(meat int) {
		p := s.Players[cur]
		p.AddMeat(meat)
		if eff.Pause {
			p.IsPaused = true
			p.TurnsToSkip++
		}
		if eff.Special == domain.SpecialGrantProtection {
			p.HasProtection = true
			e.logf("%s is under Heaven's protection.", p.Character)
		}

		advance := true
		if allowSwap && eff.Special == domain.SpecialSwapWithTarget {
			idx := domain.FindCharacter(s.Players, e.swapTarget)
			if idx >= 0 {
				p.Position, s.Players[idx].Position = s.Players[idx].Position, p.Position
				e.logf("%s trades places with %s.", p.Character, e.swapTarget)
			} else {
				p.Position = 0
				e.logf("%s is not in this game; %s returns to the start.", e.swapTarget, p.Character)
				e.sched.schedule(e.ticks(e.pacing.ReentryMs), func() { e.handleLanding(0) })
				advance = false
			}
		} else if eff.ForcePosition != nil {
			dest := *eff.ForcePosition
			p.Position = dest
			e.sched.schedule(e.ticks(e.pacing.ReentryMs), func() { e.handleLanding(dest) })
			advance = false
		}

		if e.checkWin() {
			return
		}
		if advance {
			e.advanceTurn()
		}
	}

	if eff.Meat != 0 {
		amount := eff.Meat
		e.presentMeat(cur, amount, func() { finalize(amount) })
		return
	}
	finalize(0)
}

// resolveEvent applies the open event detail's fixed effect.
func (e *Engine) resolveEvent() {
	s := e.sess
	if s.Won() {
		return
	}
	detail := s.ActiveEvent
	if detail == nil {
		e.missingCardFallback()
		return
	}
	s.ActiveEvent = nil
	s.ActiveModal = domain.ModalNone

	p := s.CurrentPlayer()
	cur := s.Current

	switch detail.EffectType {
	case domain.EventGainMeat, domain.EventLoseMeat:
		amount := 1
		verb := "gains"
		if detail.EffectType == domain.EventLoseMeat {
			amount = -1
			verb = "loses"
		}
		e.logf("%s %s one meat at %s.", p.Character, verb, detail.Title)
		e.presentMeat(cur, amount, func() {
			s.Players[cur].AddMeat(amount)
			if e.checkWin() {
				return
			}
			e.advanceTurn()
		})

	case domain.EventPause:
		e.logf("%s must pause and reflect after %s.", p.Character, detail.Title)
		p.IsPaused = true
		p.TurnsToSkip++
		e.sched.schedule(e.ticks(e.pacing.AdvanceShortMs), e.advanceTurn)

	default:
		e.sched.schedule(e.ticks(e.pacing.AdvanceShortMs), e.advanceTurn)
	}
}
