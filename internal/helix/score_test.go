package helix

import (
	"testing"

	"github.com/vovakirdan/helix-drop/internal/config"
)

func TestPassThroughAwards(t *testing.T) {
	cfg := config.DefaultHelixConfig().Scoring
	s := NewScoreKeeper(cfg)
	b := &Ball{}

	// pass, combo -> award
	expected := []int{
		10 + 5*1,        // first pass: no chain bonus
		10 + 5*2 + 10*2, // chain of 2
		10 + 5*3 + 10*3, // chain of 3
	}
	total := 0
	for i, want := range expected {
		got := s.OnPassThrough(b)
		total += want
		if got != want {
			t.Errorf("pass %d: award = %d, expected %d", i+1, got, want)
		}
		if b.ConsecutivePasses != i+1 {
			t.Errorf("pass %d: ConsecutivePasses = %d", i+1, b.ConsecutivePasses)
		}
		if s.Combo() != i+1 {
			t.Errorf("pass %d: Combo = %d", i+1, s.Combo())
		}
		if s.Timer() != cfg.ComboWindow {
			t.Errorf("pass %d: timer = %f, expected %f", i+1, s.Timer(), cfg.ComboWindow)
		}
	}
	if s.Score() != total {
		t.Errorf("Score = %d, expected %d", s.Score(), total)
	}
}

func TestComboResetsOnlyWhenTimerExpires(t *testing.T) {
	cfg := config.DefaultHelixConfig().Scoring // window 1.5 s
	s := NewScoreKeeper(cfg)
	b := &Ball{}

	s.OnPassThrough(b)
	if s.Tick(1.0) {
		t.Fatal("Combo should survive 1.0 s of a 1.5 s window")
	}

	// An intervening pass restarts the window.
	s.OnPassThrough(b)
	if s.Tick(1.0) {
		t.Fatal("Combo should survive after the window was restarted")
	}
	if s.Combo() != 2 {
		t.Fatalf("Combo = %d, expected 2", s.Combo())
	}

	if !s.Tick(0.5) {
		t.Fatal("Combo should reset when the timer reaches zero")
	}
	if s.Combo() != 0 {
		t.Errorf("Combo = %d, expected 0", s.Combo())
	}
	if b.ConsecutivePasses != 2 {
		t.Errorf("Timer expiry must not touch ConsecutivePasses, got %d", b.ConsecutivePasses)
	}
	if s.Tick(10) {
		t.Error("A zero combo cannot reset again")
	}
}

func TestScoreAddIgnoresNegative(t *testing.T) {
	s := NewScoreKeeper(config.DefaultHelixConfig().Scoring)
	s.Add(30)
	s.Add(-100)
	if s.Score() != 30 {
		t.Errorf("Score = %d, expected 30", s.Score())
	}
	s.Reset()
	if s.Score() != 0 || s.Combo() != 0 {
		t.Errorf("Reset should clear score and combo")
	}
}
