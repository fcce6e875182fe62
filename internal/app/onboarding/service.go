package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"sagetrail/internal/ports"
)

const (
	defaultWelcomeHonor = 100
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
	// WelcomeBonusGranted is false when the bonus was already claimed earlier.
	WelcomeBonusGranted bool
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	bonuses  ports.WelcomeBonusPort
	honor    int64
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/bonuses must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, bonuses ports.WelcomeBonusPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		bonuses:  bonuses,
		honor:    defaultWelcomeHonor,
		rng:      rng,
	}
}

// WithWelcomeHonor overrides the welcome grant amount. Non-positive values
// keep the default.
func (s *Service) WithWelcomeHonor(amount int64) *Service {
	if amount > 0 {
		s.honor = amount
	}
	return s
}

// OnboardNewUser initializes profile and honor ledger for a newly created
// account. Returns a Result with any non-fatal issues and an error if the
// welcome honor cannot be granted.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.bonuses == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	displayName := s.generateFriendlyName()
	if err := s.accounts.UpdateProfile(ctx, userID, displayName, displayName); err != nil {
		// Profile updates are best-effort; the honor grant matters more.
		result.ProfileUpdateErr = err
	}

	granted, err := s.bonuses.GrantWelcomeBonusOnce(ctx, userID, s.honor, map[string]interface{}{
		"reason": "welcome_bonus",
	})
	if err != nil {
		return result, fmt.Errorf("failed to grant welcome honor: %w", err)
	}
	result.WelcomeBonusGranted = granted

	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Earnest", "Learned", "Steadfast", "Humble", "Upright", "Diligent", "Patient", "Gracious", "Resolute", "Mindful"}
	nouns := []string{"Scholar", "Traveler", "Scribe", "Disciple", "Archer", "Sage", "Envoy", "Musician", "Pupil", "Wanderer"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
