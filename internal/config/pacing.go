package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Pacing holds the presentation delays, in milliseconds, that space out the
// turn pipeline. None of these are timeouts; they pace client animation.
type Pacing struct {
	TickRate int `json:"tick_rate"`

	RollMs          int `json:"roll_ms"`
	StepMs          int `json:"step_ms"`
	LandingMs       int `json:"landing_ms"`
	IntroMs         int `json:"intro_ms"`
	AdvanceShortMs  int `json:"advance_short_ms"`
	BlankAdvanceMs  int `json:"blank_advance_ms"`
	EventAdvanceMs  int `json:"event_advance_ms"`
	PauseOverlayMs  int `json:"pause_overlay_ms"`
	TrialEffectMs   int `json:"trial_effect_ms"`
	ReentryMs       int `json:"reentry_ms"`
	PostGrantMoveMs int `json:"post_grant_move_ms"`
	AIThinkMs       int `json:"ai_think_ms"`
	AIRollMs        int `json:"ai_roll_ms"`
	AIQuickHoldMs   int `json:"ai_quick_hold_ms"`
}

// DefaultPacing mirrors the pacing of the reference client.
func DefaultPacing() Pacing {
	return Pacing{
		TickRate:        10,
		RollMs:          600,
		StepMs:          500,
		LandingMs:       500,
		IntroMs:         1200,
		AdvanceShortMs:  500,
		BlankAdvanceMs:  1000,
		EventAdvanceMs:  1200,
		PauseOverlayMs:  2000,
		TrialEffectMs:   400,
		ReentryMs:       100,
		PostGrantMoveMs: 600,
		AIThinkMs:       2000,
		AIRollMs:        1500,
		AIQuickHoldMs:   2000,
	}
}

// Ticks converts a millisecond delay to match-loop ticks, never below one.
func (p Pacing) Ticks(ms int) int64 {
	rate := p.TickRate
	if rate <= 0 {
		rate = DefaultPacing().TickRate
	}
	ticks := int64(ms) * int64(rate) / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

var (
	pacing     Pacing
	pacingOnce sync.Once
	pacingErr  error
)

// LoadPacing loads pacing overrides from the given path. Only the first call
// reads the file; later calls return the first result.
func LoadPacing(path string) error {
	pacingOnce.Do(func() {
		pacing = DefaultPacing()

		data, err := os.ReadFile(path)
		if err != nil {
			pacingErr = fmt.Errorf("failed to read pacing config: %w", err)
			return
		}

		var p Pacing
		if err := json.Unmarshal(data, &p); err != nil {
			pacingErr = fmt.Errorf("failed to unmarshal pacing config: %w", err)
			return
		}
		if p.TickRate == 0 {
			p.TickRate = DefaultPacing().TickRate
		}
		pacing = p
	})
	return pacingErr
}

// GetPacing returns the active pacing configuration.
func GetPacing() Pacing {
	if pacing.TickRate == 0 {
		return DefaultPacing()
	}
	return pacing
}
