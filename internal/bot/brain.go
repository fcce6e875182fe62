package bot

import "sagetrail/internal/domain"

// RandomBrain picks a uniformly random option on trial cards and simply
// proceeds on every other modal. There is no skill modeling.
type RandomBrain struct {
	Rng domain.Rand
}

// NewRandomBrain constructs a brain over the given randomness source.
func NewRandomBrain(rng domain.Rand) *RandomBrain {
	return &RandomBrain{Rng: rng}
}

// Decide computes the decision for the session's open modal.
func (b *RandomBrain) Decide(s *domain.Session) Decision {
	if s.ActiveModal == domain.ModalTrial && s.ActiveTrial != nil {
		return Decision{
			Kind:   DecisionTrial,
			Modal:  domain.ModalTrial,
			Choice: b.Rng.Intn(len(s.ActiveTrial.Options)),
		}
	}
	return Decision{Kind: DecisionProceed, Modal: s.ActiveModal}
}
