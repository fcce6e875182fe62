package config

import "testing"

func TestFromRuntimeEnvDefaults(t *testing.T) {
	cfg, err := FromRuntimeEnv(map[string]string{})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !cfg.BotsEnabled {
		t.Fatalf("BotsEnabled = false, want true by default")
	}
	if cfg.SwapTarget != "Zilu" {
		t.Fatalf("SwapTarget = %q, want Zilu", cfg.SwapTarget)
	}
	if cfg.DefaultGoal != 10 {
		t.Fatalf("DefaultGoal = %d, want 10", cfg.DefaultGoal)
	}
	if cfg.DefaultMode != "normal" {
		t.Fatalf("DefaultMode = %q, want normal", cfg.DefaultMode)
	}
}

func TestFromRuntimeEnvOverrides(t *testing.T) {
	cfg, err := FromRuntimeEnv(map[string]string{
		"SAGETRAIL_BOTS_ENABLED": "false",
		"SAGETRAIL_SWAP_TARGET":  "Yan Hui",
		"SAGETRAIL_DEFAULT_GOAL": "3",
		"SAGETRAIL_DEFAULT_MODE": "quick",
		"SAGETRAIL_VOICE_SECRET": "s3cret",
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if cfg.BotsEnabled {
		t.Fatalf("BotsEnabled = true, want false")
	}
	if cfg.SwapTarget != "Yan Hui" {
		t.Fatalf("SwapTarget = %q, want Yan Hui", cfg.SwapTarget)
	}
	if cfg.DefaultGoal != 3 {
		t.Fatalf("DefaultGoal = %d, want 3", cfg.DefaultGoal)
	}
	if cfg.VoiceSecret != "s3cret" {
		t.Fatalf("VoiceSecret = %q, want s3cret", cfg.VoiceSecret)
	}
}

func TestFromRuntimeEnvRejectsZeroGoal(t *testing.T) {
	cfg, err := FromRuntimeEnv(map[string]string{"SAGETRAIL_DEFAULT_GOAL": "0"})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if cfg.DefaultGoal != 10 {
		t.Fatalf("DefaultGoal = %d, want fallback 10", cfg.DefaultGoal)
	}
}

func TestPacingTicks(t *testing.T) {
	p := DefaultPacing() // 10 ticks per second

	tests := []struct {
		ms   int
		want int64
	}{
		{ms: 500, want: 5},
		{ms: 1200, want: 12},
		{ms: 2000, want: 20},
		{ms: 50, want: 1}, // never below one tick
	}

	for _, tt := range tests {
		if got := p.Ticks(tt.ms); got != tt.want {
			t.Fatalf("Ticks(%d) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}
