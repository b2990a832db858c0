// Package config provides YAML-based game configuration loading and
// difficulty presets for letterfall.
package config

import (
	"fmt"

	"github.com/letterfall/letterfall/internal/engine"
)

// Config contains all tuning for the letterfall game.
type Config struct {
	Pool       PoolConfig       `yaml:"pool"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Fairness   FairnessConfig   `yaml:"fairness"`
	Catch      CatchConfig      `yaml:"catch"`
	Difficulty DifficultyLevels `yaml:"difficulty"`
}

// PoolConfig sizes the letter entity pool.
type PoolConfig struct {
	InitialSize       int `yaml:"initial_size"`
	MaxSize           int `yaml:"max_size"`
	CleanupEveryTicks int `yaml:"cleanup_every_ticks"`
}

// SpawnConfig defines spawn cadence and fall physics per speed setting.
type SpawnConfig struct {
	Intervals      SpeedValues `yaml:"intervals"`   // Seconds between bursts
	FallSpeeds     SpeedValues `yaml:"fall_speeds"` // Cells per second
	MaxBurst       int         `yaml:"max_burst"`
	VelocityJitter float64     `yaml:"velocity_jitter"`
}

// SpeedValues holds one value per speed setting.
type SpeedValues struct {
	Slow   float64 `yaml:"slow"`
	Normal float64 `yaml:"normal"`
	Fast   float64 `yaml:"fast"`
}

// For returns the value for a speed setting.
func (v SpeedValues) For(s Speed) float64 {
	switch s {
	case SpeedSlow:
		return v.Slow
	case SpeedFast:
		return v.Fast
	default:
		return v.Normal
	}
}

// FairnessConfig tunes the starvation guard.
type FairnessConfig struct {
	StarvationSeconds float64 `yaml:"starvation_seconds"`
	PulseSeconds      float64 `yaml:"pulse_seconds"`
}

// CatchConfig defines the hit area around an input point, in cells.
type CatchConfig struct {
	RadiusX float64 `yaml:"radius_x"`
	RadiusY float64 `yaml:"radius_y"`
}

// Speed is the letter fall speed setting.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DifficultyLevels maps each preset to its round parameters.
type DifficultyLevels struct {
	Easy   DifficultyParams `yaml:"easy"`
	Normal DifficultyParams `yaml:"normal"`
	Hard   DifficultyParams `yaml:"hard"`
}

// DifficultyParams is the difficulty-derived mapping the engine consumes:
// fall speed setting, noise ratio, starting credits, and miss penalty.
type DifficultyParams struct {
	Speed           Speed   `yaml:"speed"`
	NoiseLevel      float64 `yaml:"noise_level"`
	StartingCredits int     `yaml:"starting_credits"`
	MissPenalty     int     `yaml:"miss_penalty"`
}

// For returns the parameters for a preset. Unknown presets fall back to
// normal, matching the CLI's default.
func (d DifficultyLevels) For(preset DifficultyPreset) DifficultyParams {
	switch preset {
	case DifficultyEasy:
		return d.Easy
	case DifficultyHard:
		return d.Hard
	default:
		return d.Normal
	}
}

// ParsePreset validates a difficulty preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch name {
	case "":
		return DifficultyNormal, nil
	case string(DifficultyEasy), string(DifficultyNormal), string(DifficultyHard):
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", name)
	}
}

// EngineParams resolves the config and a difficulty preset into the flat
// engine tuning for a field of the given size.
func (c Config) EngineParams(preset DifficultyPreset, fieldW, fieldH float64) engine.Params {
	d := c.Difficulty.For(preset)

	return engine.Params{
		FieldW:            fieldW,
		FieldH:            fieldH,
		SpawnInterval:     c.Spawn.Intervals.For(d.Speed),
		MaxBurst:          c.Spawn.MaxBurst,
		BaseFallSpeed:     c.Spawn.FallSpeeds.For(d.Speed),
		VelocityJitter:    c.Spawn.VelocityJitter,
		NoiseLevel:        d.NoiseLevel,
		StarvationTime:    c.Fairness.StarvationSeconds,
		PulseTime:         c.Fairness.PulseSeconds,
		HitRadiusX:        c.Catch.RadiusX,
		HitRadiusY:        c.Catch.RadiusY,
		StartingCredits:   d.StartingCredits,
		MissPenalty:       d.MissPenalty,
		PoolInitial:       c.Pool.InitialSize,
		PoolMax:           c.Pool.MaxSize,
		CleanupEveryTicks: c.Pool.CleanupEveryTicks,
	}
}
