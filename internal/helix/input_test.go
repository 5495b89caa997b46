package helix

import (
	"math"
	"testing"

	"github.com/vovakirdan/helix-drop/internal/config"
)

func TestRotationInputAcceleratesAndDamps(t *testing.T) {
	cfg := config.DefaultHelixConfig().Input
	r := NewRotationInput(cfg)
	dt := 1.0 / 120.0

	r.Feed(1)
	delta := r.Integrate(dt)

	expected := cfg.RotationGain * math.Pow(cfg.DampingFactor, dt*60)
	if math.Abs(r.Velocity()-expected) > 1e-12 {
		t.Errorf("Velocity = %f, expected %f", r.Velocity(), expected)
	}
	if math.Abs(delta-expected*dt) > 1e-12 {
		t.Errorf("Delta = %f, expected %f", delta, expected*dt)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending drag should be consumed, got %f", r.Pending())
	}

	prev := r.Velocity()
	r.Integrate(dt)
	if r.Velocity() >= prev {
		t.Errorf("Velocity should decay without input: %f -> %f", prev, r.Velocity())
	}
}

func TestRotationInputClampsSpeed(t *testing.T) {
	cfg := config.DefaultHelixConfig().Input
	r := NewRotationInput(cfg)

	tests := []struct {
		name string
		drag float64
	}{
		{"positive", 1000},
		{"negative", -1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r.Reset()
			r.Feed(tc.drag)
			r.Integrate(1.0 / 120.0)
			if math.Abs(r.Velocity()) > cfg.MaxRotationSpeed {
				t.Errorf("Velocity %f exceeds max %f", r.Velocity(), cfg.MaxRotationSpeed)
			}
			if math.Abs(r.Velocity()) != cfg.MaxRotationSpeed {
				t.Errorf("Velocity should saturate at %f, got %f", cfg.MaxRotationSpeed, r.Velocity())
			}
		})
	}
}

func TestRotationInputIdleIsStill(t *testing.T) {
	r := NewRotationInput(config.DefaultHelixConfig().Input)
	for i := 0; i < 10; i++ {
		if d := r.Integrate(1.0 / 120.0); d != 0 {
			t.Fatalf("Idle input should not rotate, got %f", d)
		}
	}
}

func TestRotationInputSetSensitivity(t *testing.T) {
	cfg := config.DefaultHelixConfig().Input
	r := NewRotationInput(cfg)

	cfg.MaxRotationSpeed = 1
	r.SetSensitivity(cfg)
	r.Feed(100)
	r.Integrate(1.0 / 120.0)

	if r.Velocity() != 1 {
		t.Errorf("New max speed should apply, velocity = %f", r.Velocity())
	}
}
