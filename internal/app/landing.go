package app

import (
	"sagetrail/internal/content"
	"sagetrail/internal/domain"
)

// handleLanding dispatches the tile the current player just occupied. It
// clears stale card state first so a re-entered resolution never sees the
// previous draw.
func (e *Engine) handleLanding(tileIndex int) {
	s := e.sess
	p := s.CurrentPlayer()
	if p == nil || s.Won() {
		return
	}
	tile := e.tables.Board.Tile(tileIndex)

	e.cue(CueCardFlip)
	s.ClearCardState()
	e.emit(EventTileLanded, TileLandedPayload{PlayerIndex: s.Current, TileIndex: tile.Index, TileName: tile.Name})
	e.logf("%s arrives at %s.", p.Character, tile.Name)

	switch tile.Kind {
	case domain.TileState:
		card := e.tables.Trials[e.rng.Intn(len(e.tables.Trials))]
		s.ActiveTrial = &card
		s.ActiveModal = domain.ModalTrial
		e.emit(EventModalOpened, ModalOpenedPayload{Modal: domain.ModalTrial, Trial: &card})

	case domain.TileFate:
		e.openWithIntro(domain.ModalFate)

	case domain.TileChance:
		e.openWithIntro(domain.ModalChance)

	case domain.TileEvent:
		detail, ok := content.EventByTileName(tile.Name)
		if !ok {
			e.sched.schedule(e.ticks(e.pacing.EventAdvanceMs), e.advanceTurn)
			return
		}
		s.ActiveEvent = &detail
		s.ActiveModal = domain.ModalEventDetail
		e.emit(EventModalOpened, ModalOpenedPayload{Modal: domain.ModalEventDetail, Event: &detail})

	default:
		// Start and blank tiles have no action of their own.
		e.sched.schedule(e.ticks(e.pacing.BlankAdvanceMs), e.advanceTurn)
	}
}

// openWithIntro shows the full-screen icon for fate/chance, then opens the
// modal with a fresh draw. A win during the intro delay suppresses the open.
func (e *Engine) openWithIntro(modal domain.Modal) {
	s := e.sess
	s.ShowingIntro = modal
	e.emit(EventIntroShown, IntroShownPayload{Modal: modal})

	e.sched.schedule(e.ticks(e.pacing.IntroMs), func() {
		if s.Won() {
			return
		}
		s.ShowingIntro = domain.ModalNone
		switch modal {
		case domain.ModalFate:
			card := e.tables.Fates[e.rng.Intn(len(e.tables.Fates))]
			s.ActiveFate = &card
			s.ActiveModal = domain.ModalFate
			e.emit(EventModalOpened, ModalOpenedPayload{Modal: domain.ModalFate, Fate: &card})
		case domain.ModalChance:
			card := e.tables.Chances[e.rng.Intn(len(e.tables.Chances))]
			s.ActiveChance = &card
			s.ActiveModal = domain.ModalChance
			e.emit(EventModalOpened, ModalOpenedPayload{Modal: domain.ModalChance, Chance: &card})
		}
	})
}
