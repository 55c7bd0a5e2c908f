package config

import (
	"math"
	"testing"
)

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultInvadersConfig()

	easy := DefaultInvadersConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives <= base.Gameplay.Lives {
		t.Error("easy should give more lives")
	}
	if easy.Formation.MarchInterval <= base.Formation.MarchInterval {
		t.Error("easy should march slower")
	}

	hard := DefaultInvadersConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Bolt.Rate >= base.Bolt.Rate {
		t.Error("hard should fire more often")
	}
	if err := Validate(hard); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	fixed := DefaultInvadersConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed should disable progression")
	}
}

func TestMarchIntervalProgression(t *testing.T) {
	cfg := DefaultInvadersConfig()

	if got := MarchInterval(cfg, 1); got != cfg.Formation.MarchInterval {
		t.Errorf("wave 1 interval = %v, expected base %v", got, cfg.Formation.MarchInterval)
	}

	w2 := MarchInterval(cfg, 2)
	expected := cfg.Formation.MarchInterval * cfg.Difficulty.Speedup
	if math.Abs(w2-expected) > 1e-9 {
		t.Errorf("wave 2 interval = %v, expected %v", w2, expected)
	}

	if got := MarchInterval(cfg, 100); got != cfg.Difficulty.MinMarchInterval {
		t.Errorf("late waves should hit the floor %v, got %v", cfg.Difficulty.MinMarchInterval, got)
	}

	cfg.Difficulty.Enabled = false
	if got := MarchInterval(cfg, 10); got != cfg.Formation.MarchInterval {
		t.Errorf("disabled progression should keep base interval, got %v", got)
	}
}
