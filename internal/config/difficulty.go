package config

import "math"

// SpeedRamp calculates the survival move cooldown from the score.
// The ramp only ever tightens: a lower score never raises the cooldown again.
type SpeedRamp struct {
	cfg   SurvivalConfig
	base  float64
	level int
}

// NewSpeedRamp creates a ramp starting at the base cooldown.
func NewSpeedRamp(cfg SurvivalConfig, base float64) *SpeedRamp {
	return &SpeedRamp{cfg: cfg, base: base}
}

// Enabled reports whether the ramp can change the cooldown at all.
func (r *SpeedRamp) Enabled() bool {
	return r.cfg.Every > 0 && r.cfg.Step > 0
}

// Level returns the number of ramp steps taken so far.
func (r *SpeedRamp) Level() int {
	return r.level
}

// Observe records a score and returns the resulting cooldown.
func (r *SpeedRamp) Observe(score int) float64 {
	if r.Enabled() {
		r.level = max(r.level, score/r.cfg.Every)
	}
	return r.Cooldown()
}

// Cooldown returns the current cooldown, never below the configured floor.
func (r *SpeedRamp) Cooldown() float64 {
	if !r.Enabled() {
		return r.base
	}
	floor := math.Max(1, r.cfg.MinCooldown)
	return clampF(r.base-float64(r.level)*r.cfg.Step, floor, math.Max(floor, r.base))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
