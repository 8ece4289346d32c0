// Package core holds the compiled animation types shared across the
// pipeline. These are plain structs with no storage or transport concerns.
package core

// IdleState is the one animation state every character table must define.
// Resolve falls back to it unconditionally, so its absence is a
// construction-time error, never a lookup-time one.
const IdleState = "idle"

// Box is a compiled attack box in game pixels, offset from the character's
// feet-center anchor. OX is authored facing right; the renderer mirrors it
// by facing direction at playback time.
type Box struct {
	W  int `json:"w"`
	H  int `json:"h"`
	OX int `json:"ox"`
	OY int `json:"oy"`
}

// Frame is one compiled animation frame. Optional fields are omitted from
// serialized output entirely rather than emitted as zero/null: a missing
// ox/oy tells the renderer to use its default offset path, and missing
// hx/hy suppresses anchor-dependent behavior (no projectile spawn).
type Frame struct {
	// Source rectangle on the spritesheet, in integer pixels.
	SX int `json:"sx"`
	SY int `json:"sy"`
	SW int `json:"sw"`
	SH int `json:"sh"`

	// Dur is the frame duration in game frames at 60 fps, always >= 1.
	Dur int `json:"dur"`

	// Per-frame rendering offset. Each axis is omitted when it rounds to 0.
	OX int `json:"ox,omitempty"`
	OY int `json:"oy,omitempty"`

	// Anchor position (projectile spawn / weapon muzzle) relative to
	// feet-center. Nil when no point of interest matched.
	HX *int `json:"hx,omitempty"`
	HY *int `json:"hy,omitempty"`

	// AtkBox is the damage hitbox, present only when the source data or an
	// override supplies one.
	AtkBox *Box `json:"atkBox,omitempty"`
}

// Animation is a compiled animation clip. Frames is playback order and is
// never reordered. LoopStart is emitted only for looping animations whose
// loop point is not frame 0; the renderer's default is 0.
type Animation struct {
	Loop      bool    `json:"loop"`
	LoopStart int     `json:"loopStart,omitempty"`
	Frames    []Frame `json:"frames"`
}

// Table is the per-character animation table. It is assembled once at
// pipeline-run time and read-only afterwards.
type Table struct {
	// Character is the profile id, e.g. "zero".
	Character string

	// Spritesheet is the image file the source rects index into.
	Spritesheet string

	// Animations maps animation-state names to compiled clips.
	Animations map[string]Animation

	// Order preserves the authored animation order from the character
	// profile, minus skipped clips. Emitters iterate it so repeated builds
	// produce byte-identical artifacts.
	Order []string

	// ShootMap maps a base state name to its weapon-firing overlay state.
	// Nil for characters that author firing as a distinct pose instead of
	// overlay clips.
	ShootMap map[string]string
}

// Resolve returns the compiled animation for a state name.
// When firing is true and the character defines a shoot overlay for the
// state, the overlay clip wins. Unknown states fall back to idle.
func (t *Table) Resolve(state string, firing bool) Animation {
	if firing && t.ShootMap != nil {
		if overlay, ok := t.ShootMap[state]; ok {
			if anim, ok := t.Animations[overlay]; ok {
				return anim
			}
		}
	}
	if anim, ok := t.Animations[state]; ok {
		return anim
	}
	return t.Animations[IdleState]
}

// FrameCount returns the total number of compiled frames across all
// animations in the table.
func (t *Table) FrameCount() int {
	n := 0
	for _, anim := range t.Animations {
		n += len(anim.Frames)
	}
	return n
}
