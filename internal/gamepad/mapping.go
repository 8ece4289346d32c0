// Package gamepad defines the controller-mapping artifact the game loads at
// startup, produced by the interactive setup tool.
package gamepad

import (
	"encoding/json"
	"fmt"
	"os"
)

// AxisDeadzone is the stick deflection below which input is treated as
// resting drift. Triggers on some pads rest at -1.0 rather than 0.0, so
// consumers compare against a captured baseline, not absolute zero.
const AxisDeadzone = 0.5

// DPad identifies the hat that drives directional movement.
type DPad struct {
	HatIndex int `json:"hat_index"`
}

// Analog identifies the stick axes. Invert flags are set when the physical
// axis reports the opposite sign from the game's convention (up is negative
// in SDL, so YInvert is common).
type Analog struct {
	XAxis   int  `json:"x_axis"`
	XInvert bool `json:"x_invert"`
	YAxis   int  `json:"y_axis"`
	YInvert bool `json:"y_invert"`
}

// Mapping binds game actions to controller inputs. DPad and Analog are
// optional: pads without a hat, or with fewer than two axes, omit them.
type Mapping struct {
	ControllerName string  `json:"controller_name"`
	Shoot          int     `json:"shoot"`
	Jump           int     `json:"jump"`
	Dash           int     `json:"dash"`
	DPad           *DPad   `json:"dpad,omitempty"`
	Analog         *Analog `json:"analog,omitempty"`
}

// Load reads and validates a mapping file.
func Load(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse controller mapping from '%s': %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid controller mapping in '%s': %w", path, err)
	}
	return &m, nil
}

// Save writes the mapping as indented JSON, matching the setup tool output.
func (m *Mapping) Save(path string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Validate checks index ranges and that no two actions share a button.
func (m *Mapping) Validate() error {
	if m.ControllerName == "" {
		return fmt.Errorf("controller_name is required")
	}

	buttons := map[string]int{
		"shoot": m.Shoot,
		"jump":  m.Jump,
		"dash":  m.Dash,
	}
	seen := make(map[int]string, len(buttons))
	for action, idx := range buttons {
		if idx < 0 {
			return fmt.Errorf("%s button index must not be negative, got %d", action, idx)
		}
		if other, dup := seen[idx]; dup {
			return fmt.Errorf("button %d bound to both %s and %s", idx, other, action)
		}
		seen[idx] = action
	}

	if m.DPad != nil && m.DPad.HatIndex < 0 {
		return fmt.Errorf("dpad hat index must not be negative, got %d", m.DPad.HatIndex)
	}

	if m.Analog != nil {
		if m.Analog.XAxis < 0 || m.Analog.YAxis < 0 {
			return fmt.Errorf("analog axis indices must not be negative")
		}
		if m.Analog.XAxis == m.Analog.YAxis {
			return fmt.Errorf("analog x and y must use distinct axes, both are %d", m.Analog.XAxis)
		}
	}

	return nil
}
