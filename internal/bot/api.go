package bot

import "sagetrail/internal/domain"

// DecisionKind tags the payload a simulated player produced for a modal.
type DecisionKind string

const (
	// DecisionTrial carries a chosen option index for an open trial card.
	DecisionTrial DecisionKind = "trial"
	// DecisionProceed acknowledges a fate, chance, or event modal.
	DecisionProceed DecisionKind = "proceed"
)

// Decision is what a brain produced for the currently open modal. In normal
// mode it is held until a human confirms it; in quick mode it is applied as
// soon as the thinking delay elapses.
type Decision struct {
	Kind   DecisionKind `json:"kind"`
	Modal  domain.Modal `json:"modal"`
	Choice int          `json:"choice"`
}

// Brain computes a decision for the modal currently open in the session.
type Brain interface {
	Decide(s *domain.Session) Decision
}
