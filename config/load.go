package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a tuning file holds values the simulation
// cannot run with.
var ErrInvalid = errors.New("config: invalid tuning")

// Tuning is a complete set of tuning values. A YAML file only needs to name
// the fields it overrides; everything else keeps its current value.
type Tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  SpeedProfile  `yaml:"player"`
	Frames  FrameData     `yaml:"frames"`
	Combat  CombatConfig  `yaml:"combat"`
	Sim     SimConfig     `yaml:"sim"`
	Input   InputConfig   `yaml:"input"`
}

// Current returns the tuning values in effect.
func Current() Tuning {
	return Tuning{
		Physics: Physics,
		Player:  Player,
		Frames:  Frames,
		Combat:  Combat,
		Sim:     Sim,
		Input:   Input,
	}
}

// Load reads a YAML overlay from path on top of the values currently in
// effect. The result is validated but not applied.
func Load(path string) (Tuning, error) {
	return LoadOver(Current(), path)
}

// LoadOver reads a YAML overlay from path on top of base.
func LoadOver(base Tuning, path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(base, data)
}

// Parse decodes a YAML overlay on top of base.
func Parse(base Tuning, data []byte) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values that would stall or destabilize the simulation.
func (t Tuning) Validate() error {
	switch {
	case t.Sim.TickRate <= 0:
		return fmt.Errorf("%w: sim.tick_rate must be positive, got %d", ErrInvalid, t.Sim.TickRate)
	case t.Sim.PoolCapacity < 0:
		return fmt.Errorf("%w: sim.pool_capacity must not be negative, got %d", ErrInvalid, t.Sim.PoolCapacity)
	case t.Sim.MaxPlayers <= 0:
		return fmt.Errorf("%w: sim.max_players must be positive, got %d", ErrInvalid, t.Sim.MaxPlayers)
	case t.Player.TerminalFall <= 0 || t.Player.FastFallTerminal <= 0:
		return fmt.Errorf("%w: player terminal fall speeds must be positive", ErrInvalid)
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return fmt.Errorf("%w: player collision box must have positive size", ErrInvalid)
	case t.Physics.GroundDecay < 0 || t.Physics.GroundDecay > 1 ||
		t.Physics.AirDecay < 0 || t.Physics.AirDecay > 1:
		return fmt.Errorf("%w: decay must be within [0, 1]", ErrInvalid)
	case t.Physics.CollisionEpsilon < 0:
		return fmt.Errorf("%w: physics.collision_epsilon must not be negative", ErrInvalid)
	}
	return nil
}

// Apply installs t as the values in effect. It must not be called while a
// tick is running.
func (t Tuning) Apply() {
	Physics = t.Physics
	Player = t.Player
	Frames = t.Frames
	Combat = t.Combat
	Sim = t.Sim
	Input = t.Input
}
