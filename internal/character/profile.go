// Package character defines the per-character pipeline configuration: which
// clips to convert, the POI tag convention, hand-authored override tables,
// and the optional shoot-overlay map. Profiles are immutable configuration
// passed into the engine at construction time; there is no process-wide
// mutable state.
package character

import (
	"fmt"

	"github.com/megagame/spritec/pkg/core"
)

// POIConfig selects which tagged anchor point a character's frames use.
type POIConfig struct {
	// PrimaryTag is the tag of the anchor to emit (the empty string is a
	// valid tag in the editor's export and is used by one character family).
	PrimaryTag string `yaml:"primary_tag"`

	// FallbackTag, when non-empty, supplies the anchor for frames with no
	// primary match.
	FallbackTag string `yaml:"fallback_tag"`
}

// AnimationEntry names one clip and the export file it is read from.
// Entry order is emission order in the artifacts.
type AnimationEntry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Box is a hand-authored attack box override.
type Box struct {
	W  int `yaml:"w"`
	H  int `yaml:"h"`
	OX int `yaml:"ox"`
	OY int `yaml:"oy"`
}

// Core converts the override box to the compiled representation.
func (b Box) Core() core.Box {
	return core.Box{W: b.W, H: b.H, OX: b.OX, OY: b.OY}
}

// Overrides are hand-authored corrections keyed by animation name and
// zero-based frame index. An override completely replaces the derived value;
// there is no blending or partial merge.
type Overrides struct {
	// Durations replaces computed frame durations (in game frames). The
	// editor's idle "hold" frames are tuned for preview, not gameplay
	// pacing, and run 3-15x too long for combat timing.
	Durations map[string]map[int]int `yaml:"durations"`

	// AttackBoxes replaces computed attack boxes, including supplying one
	// where the source has no authored hitbox.
	AttackBoxes map[string]map[int]Box `yaml:"attack_boxes"`
}

// Profile is one character's complete pipeline configuration.
type Profile struct {
	ID            string            `yaml:"id"`
	Spritesheet   string            `yaml:"spritesheet"`
	POI           POIConfig         `yaml:"poi"`
	Animations    []AnimationEntry  `yaml:"animations"`
	ShootOverlays map[string]string `yaml:"shoot_overlays"`
	Overrides     Overrides         `yaml:"overrides"`
}

// Validate checks the profile's internal consistency. Override frame
// indices are validated later against actual clip lengths by the engine;
// everything checkable without source files is checked here.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile missing 'id' field")
	}
	if len(p.Animations) == 0 {
		return fmt.Errorf("profile '%s' declares no animations", p.ID)
	}

	names := make(map[string]bool, len(p.Animations))
	for i, entry := range p.Animations {
		if entry.Name == "" || entry.File == "" {
			return fmt.Errorf("profile '%s': animation #%d missing name or file", p.ID, i)
		}
		if names[entry.Name] {
			return fmt.Errorf("profile '%s': duplicate animation '%s'", p.ID, entry.Name)
		}
		names[entry.Name] = true
	}

	if !names[core.IdleState] {
		return fmt.Errorf("profile '%s' has no '%s' animation; the lookup fallback depends on it", p.ID, core.IdleState)
	}

	for base, overlay := range p.ShootOverlays {
		if !names[base] {
			return fmt.Errorf("profile '%s': shoot overlay base '%s' is not a declared animation", p.ID, base)
		}
		if !names[overlay] {
			return fmt.Errorf("profile '%s': shoot overlay '%s' (for '%s') is not a declared animation", p.ID, overlay, base)
		}
	}

	for anim, frames := range p.Overrides.Durations {
		if !names[anim] {
			return fmt.Errorf("profile '%s': duration override targets unknown animation '%s'", p.ID, anim)
		}
		for idx, dur := range frames {
			if dur < 1 {
				return fmt.Errorf("profile '%s': duration override %s[%d] must be at least 1, got %d", p.ID, anim, idx, dur)
			}
		}
	}
	for anim := range p.Overrides.AttackBoxes {
		if !names[anim] {
			return fmt.Errorf("profile '%s': attack-box override targets unknown animation '%s'", p.ID, anim)
		}
	}

	return nil
}
