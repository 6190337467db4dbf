// Package config loads vehicle and host configuration from YAML and builds
// the runtime objects it describes.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/fcs/internal/core/control"
	"github.com/zeusync/fcs/internal/core/control/feedback"
	"github.com/zeusync/fcs/internal/core/observability/log"
	"github.com/zeusync/fcs/internal/core/propulsion"
	"github.com/zeusync/fcs/internal/telemetry"
	"github.com/zeusync/fcs/pkg/axis"
)

// File is the top-level document read by the simulation host.
type File struct {
	Log       log.Config `json:"log" yaml:"log"`
	Telemetry Telemetry  `json:"telemetry" yaml:"telemetry"`
	Sim       Sim        `json:"sim" yaml:"sim"`
	Vehicles  []Vehicle  `json:"vehicles" yaml:"vehicles"`
}

type Telemetry struct {
	// Addr is the listen address; empty disables the server.
	Addr             string `json:"addr,omitempty" yaml:"addr,omitempty"`
	telemetry.Config `yaml:",inline"`
}

type Sim struct {
	Step        time.Duration `json:"step" yaml:"step"`
	Duration    time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
	Parallelism int           `json:"parallelism,omitempty" yaml:"parallelism,omitempty"`
	// Workers, when positive, ticks vehicles on a pool of that many
	// long-lived workers instead of per-tick goroutines.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// Vehicle describes one airframe: mass, propulsion layout and control setup.
type Vehicle struct {
	Name    string                    `json:"name" yaml:"name"`
	Mass    float64                   `json:"mass" yaml:"mass"`
	Inertia *axis.Dimension3[float64] `json:"inertia,omitempty" yaml:"inertia,omitempty"`
	Mounts  []Mount                   `json:"mounts" yaml:"mounts"`
	Control Control                   `json:"control" yaml:"control"`
}

type Mount struct {
	Name       string     `json:"name" yaml:"name"`
	MaxSize    string     `json:"max_size" yaml:"max_size"`
	Location   [3]float64 `json:"location,omitempty" yaml:"location,omitempty"`
	Directions []string   `json:"directions" yaml:"directions"`
	Thruster   *Thruster  `json:"thruster,omitempty" yaml:"thruster,omitempty"`
}

type Thruster struct {
	MaxThrust float64 `json:"max_thrust" yaml:"max_thrust"`
	Size      string  `json:"size" yaml:"size"`
}

type Control struct {
	Mode             string       `json:"mode" yaml:"mode"`
	LinearAssist     bool         `json:"linear_assist" yaml:"linear_assist"`
	RotationalAssist bool         `json:"rotational_assist" yaml:"rotational_assist"`
	MaxVelocity      axis.Vector6 `json:"max_velocity" yaml:"max_velocity"`
	GSafety          GSafety      `json:"g_safety" yaml:"g_safety"`
	Feedback         Feedback     `json:"feedback" yaml:"feedback"`
}

type GSafety struct {
	Enabled bool        `json:"enabled" yaml:"enabled"`
	Limits  axis.Budget `json:"limits" yaml:"limits"`
	// Unit is "mps2" (default) or "g".
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

type Feedback struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Target is "velocity" (default) or "position".
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Trim is "clamp" (default) or "scale".
	Trim       string         `json:"trim,omitempty" yaml:"trim,omitempty"`
	Linear     feedback.Gains `json:"linear" yaml:"linear"`
	Rotational feedback.Gains `json:"rotational" yaml:"rotational"`
}

// Load reads and validates a YAML file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML decodes and validates a YAML document. Unknown keys are errors.
func LoadYAML(r io.Reader) (*File, error) {
	cfg := &File{Log: log.DefaultConfig(), Telemetry: Telemetry{Config: telemetry.DefaultConfig()}}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found, joined, each wrapping
// ErrInvalidConfig.
func (f *File) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(f.Log.Level); err != nil {
		errs = append(errs, invalid("log.level", err))
	}
	if f.Sim.Workers < 0 || f.Sim.Parallelism < 0 {
		errs = append(errs, invalid("sim", errors.New("workers and parallelism must not be negative")))
	}
	if f.Sim.Step < 0 {
		errs = append(errs, invalid("sim.step", fmt.Errorf("negative step %s", f.Sim.Step)))
	}
	if len(f.Vehicles) == 0 {
		errs = append(errs, invalid("vehicles", errors.New("at least one vehicle is required")))
	}
	seen := make(map[string]bool, len(f.Vehicles))
	for i := range f.Vehicles {
		v := &f.Vehicles[i]
		if seen[v.Name] {
			errs = append(errs, invalid(fmt.Sprintf("vehicles[%d].name", i), fmt.Errorf("duplicate name %q", v.Name)))
		}
		seen[v.Name] = true
		if err := v.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks one vehicle, trying to build every part so that the same
// rules apply here and at build time.
func (v *Vehicle) Validate() error {
	var errs []error
	at := func(field string) string { return fmt.Sprintf("vehicle %q: %s", v.Name, field) }

	if v.Name == "" {
		errs = append(errs, invalid(at("name"), errors.New("required")))
	}
	if !(v.Mass > 0) || math.IsInf(v.Mass, 0) {
		errs = append(errs, invalid(at("mass"), fmt.Errorf("%v is not a positive number", v.Mass)))
	}
	if v.Inertia != nil {
		if err := propulsion.ValidateInertia(*v.Inertia); err != nil {
			errs = append(errs, invalid(at("inertia"), err))
		}
	}
	if _, err := v.mountPoints(); err != nil {
		errs = append(errs, invalid(at("mounts"), err))
	}
	for _, k := range axis.Kinds {
		for _, c := range axis.Components {
			mv := v.Control.MaxVelocity.At(k, c)
			if mv < 0 || math.IsNaN(mv) || math.IsInf(mv, 0) {
				errs = append(errs, invalid(at(fmt.Sprintf("control.max_velocity.%s.%s", k, c)), fmt.Errorf("%v is not a finite non-negative number", mv)))
			}
		}
	}
	if _, err := v.ControlConfig(); err != nil {
		errs = append(errs, invalid(at("control"), err))
	}
	if _, err := v.Bank(); err != nil {
		errs = append(errs, invalid(at("control.feedback"), err))
	}
	return errors.Join(errs...)
}

func invalid(field string, err error) error {
	return fmt.Errorf("%s: %w: %w", field, ErrInvalidConfig, err)
}

// parseMode reports whether the mode name selects autonomous mode.
func parseMode(s string) (bool, error) {
	switch s {
	case "", "pilot":
		return false, nil
	case "autonomous":
		return true, nil
	}
	return false, fmt.Errorf("unknown mode %q", s)
}

func parseTarget(s string) (control.FeedbackTarget, error) {
	switch s {
	case "", "velocity":
		return control.TargetVelocity, nil
	case "position":
		return control.TargetPosition, nil
	}
	return 0, fmt.Errorf("unknown feedback target %q", s)
}
