// Package config loads the simulation core's configuration via viper.
// Unlike the teacher application, the core is an embeddable library, so it
// has no process-wide singleton; callers construct and own a *Config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default returns a Config populated with the reference values the spec's
// scheduler, physics, and control sections recommend.
func Default() *Config {
	return &Config{
		World: World{MaxEntities: 4096},
		Scheduler: Scheduler{
			Frequencies: map[string]float64{
				"physics":         60,
				"thrusters":       60,
				"control":         60,
				"scripted_flight": 60,
				"collision":       20,
				"ai":              5,
				"camera":          60,
			},
			MaxCatchUp: 4,
			AIMinHz:    2,
			AIMaxHz:    10,
		},
		Physics: Physics{
			MaxLinearSpeed:    1e4,
			MaxAngularSpeed:   1e2,
			QuaternionEpsilon: 1e-3,
		},
		Control: Control{
			DefaultSensitivity:          1.0,
			DefaultFlightAssistStrength: 0.5,
		},
		Logging: Logging{Level: "info"},
	}
}

// Load reads a YAML config file at path, layering it over Default() so a
// caller only needs to specify the values they want to override.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	def := Default()
	setDefaults(v, def)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, def *Config) {
	v.SetDefault("world.max_entities", def.World.MaxEntities)
	v.SetDefault("scheduler.frequencies", def.Scheduler.Frequencies)
	v.SetDefault("scheduler.max_catch_up", def.Scheduler.MaxCatchUp)
	v.SetDefault("scheduler.ai_min_hz", def.Scheduler.AIMinHz)
	v.SetDefault("scheduler.ai_max_hz", def.Scheduler.AIMaxHz)
	v.SetDefault("physics.max_linear_speed", def.Physics.MaxLinearSpeed)
	v.SetDefault("physics.max_angular_speed", def.Physics.MaxAngularSpeed)
	v.SetDefault("physics.quaternion_epsilon", def.Physics.QuaternionEpsilon)
	v.SetDefault("control.default_sensitivity", def.Control.DefaultSensitivity)
	v.SetDefault("control.default_flight_assist_strength", def.Control.DefaultFlightAssistStrength)
	v.SetDefault("logging.level", def.Logging.Level)
}

// Validate checks the fields the core relies on to build a World and
// Scheduler that won't immediately misbehave.
func (cfg *Config) Validate() error {
	if cfg.World.MaxEntities <= 0 {
		return fmt.Errorf("world.max_entities must be positive")
	}
	if cfg.Scheduler.MaxCatchUp <= 0 {
		return fmt.Errorf("scheduler.max_catch_up must be positive")
	}
	if cfg.Control.DefaultSensitivity < 0.1 || cfg.Control.DefaultSensitivity > 5.0 {
		return fmt.Errorf("control.default_sensitivity must be in [0.1, 5.0]")
	}
	if cfg.Scheduler.AIMinHz <= 0 || cfg.Scheduler.AIMaxHz < cfg.Scheduler.AIMinHz {
		return fmt.Errorf("scheduler.ai_min_hz/ai_max_hz must form a valid range")
	}
	return nil
}
