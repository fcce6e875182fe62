package app

import (
	"sagetrail/internal/bot"
	"sagetrail/internal/domain"
)

// armAI inspects the session after every state change and keeps exactly one
// AI trigger armed. The armed key names the situation ("roll for seat X",
// "decide modal M for seat X"); when the situation changes, the old trigger's
// sequence number goes stale and its timer fizzles.
func (e *Engine) armAI() {
	key := e.aiTriggerKey()
	if key == e.armedKey {
		return
	}
	e.armedKey = key
	e.armSeq++
	if key == "" {
		return
	}

	seq := e.armSeq
	s := e.sess

	switch {
	case key == "roll:"+s.CurrentPlayer().ID:
		e.sched.schedule(e.ticks(e.pacing.AIRollMs), func() {
			if seq != e.armSeq || e.aiTriggerKey() != key {
				return
			}
			e.armedKey = ""
			e.requestRoll()
		})
	default:
		modal := s.ActiveModal
		e.sched.schedule(e.ticks(e.pacing.AIThinkMs), func() {
			if seq != e.armSeq || e.aiTriggerKey() != key {
				return
			}
			e.armedKey = ""
			e.decideAI(modal)
		})
	}
}

// aiTriggerKey derives the trigger the current state calls for, or "" when no
// AI action is due.
func (e *Engine) aiTriggerKey() string {
	s := e.sess
	p := s.CurrentPlayer()
	if p == nil || !p.IsAI || s.Phase != domain.PhasePlaying || s.Won() {
		return ""
	}
	if s.WaitingForConfirmation || e.pendingDecision != nil {
		return ""
	}
	switch s.ActiveModal {
	case domain.ModalTrial, domain.ModalFate, domain.ModalChance, domain.ModalEventDetail:
		if s.ShowingIntro != domain.ModalNone {
			return ""
		}
		// A revealed answer means the decision is already in flight.
		if s.ActiveModal == domain.ModalTrial && s.TrialSelection.Revealed {
			return ""
		}
		return "decide:" + p.ID + ":" + string(s.ActiveModal)
	case domain.ModalNone:
		if e.canRoll() {
			return "roll:" + p.ID
		}
	}
	return ""
}

// decideAI asks the brain for a decision on the open modal, reveals it, and
// either applies it (quick mode) or parks it behind a human confirmation
// (normal mode).
func (e *Engine) decideAI(modal domain.Modal) {
	s := e.sess
	if s.Won() || s.ActiveModal != modal {
		return
	}
	p := s.CurrentPlayer()
	if p == nil || !p.IsAI {
		return
	}

	d := e.brain.Decide(s)
	e.emit(EventAIDecided, AIDecidedPayload{PlayerIndex: s.Current, Decision: d})

	if d.Kind == bot.DecisionTrial {
		s.TrialSelection = domain.TrialSelection{Selected: d.Choice, Revealed: true}
		e.logf("%s ponders the question and answers %s.", p.Character, string(rune('A'+d.Choice)))
		e.emit(EventTrialRevealed, TrialRevealedPayload{Selected: d.Choice, ByAI: true})
	} else {
		e.logf("%s accepts what the card holds.", p.Character)
	}

	if s.Mode == domain.ModeQuick {
		if d.Kind == bot.DecisionTrial {
			// Hold the revealed answer on screen before settling it.
			e.sched.schedule(e.ticks(e.pacing.AIQuickHoldMs), func() {
				e.applyDecision(d)
			})
			return
		}
		e.applyDecision(d)
		return
	}

	e.pendingDecision = &d
	s.WaitingForConfirmation = true
	e.logf("Waiting for a player to confirm %s's action.", p.Character)
	e.emit(EventAwaitingConfirmation, AwaitingConfirmationPayload{PlayerIndex: s.Current, Decision: d})
}

// ConfirmAIAction applies the parked AI decision. Any connected human may
// confirm; the call is a no-op unless a confirmation is actually pending.
func (e *Engine) ConfirmAIAction() []Event {
	s := e.sess
	if s.WaitingForConfirmation && !s.Won() && s.Mode == domain.ModeNormal && e.pendingDecision != nil {
		p := s.CurrentPlayer()
		if p != nil && p.IsAI {
			d := *e.pendingDecision
			e.pendingDecision = nil
			s.WaitingForConfirmation = false
			e.cue(CueClick)
			e.applyDecision(d)
		}
	}
	e.armAI()
	return e.drain()
}

// applyDecision settles an AI decision against the modal it was made for. A
// modal mismatch means the situation changed underneath it; drop the decision.
func (e *Engine) applyDecision(d bot.Decision) {
	s := e.sess
	if s.Won() || s.ActiveModal != d.Modal {
		return
	}
	switch d.Modal {
	case domain.ModalTrial:
		if s.ActiveTrial == nil {
			e.missingCardFallback()
			return
		}
		e.resolveTrial(d.Choice == s.ActiveTrial.AnswerIndex, d.Choice)
	case domain.ModalFate:
		e.resolveFate()
	case domain.ModalChance:
		e.resolveChance()
	case domain.ModalEventDetail:
		e.resolveEvent()
	}
}
