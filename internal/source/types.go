// Package source defines the sprite editor's JSON export schema and its
// loader. The schema is a versioned, read-only input contract owned by the
// upstream editor; schema breaks surface as load/validation errors here
// rather than being assumed stable downstream.
package source

import (
	geom "github.com/peterstace/simplefeatures/geom"
)

// DefaultDuration is the frame duration in seconds assumed when the editor
// leaves a frame's duration unset (one game frame at 60 fps).
const DefaultDuration = 0.066

// WrapLoop is the wrap mode marking a looping animation. Any other value,
// including absence, plays once.
const WrapLoop = "loop"

// DamageFlag is the hitbox flag value for damage-dealing regions. Nonzero
// flags denote other marker classes (hurt-boxes, pushboxes) that the
// pipeline ignores.
const DamageFlag = 0

// Point is a coordinate pair in source-image pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle given as two corner points.
type Rect struct {
	TopLeft  Point `json:"topLeftPoint"`
	BotRight Point `json:"botRightPoint"`
}

// Envelope returns the rectangle as a geometry envelope for validation.
// Construction fails on non-finite corner coordinates.
func (r *Rect) Envelope() (geom.Envelope, error) {
	return geom.NewEnvelope([]geom.XY{
		{X: r.TopLeft.X, Y: r.TopLeft.Y},
		{X: r.BotRight.X, Y: r.BotRight.Y},
	})
}

// POI is a tagged anchor point authored per frame, used to place effects
// (projectiles, weapon muzzles) relative to the character.
type POI struct {
	Tags string  `json:"tags"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Hitbox is an authored hitbox descriptor. Flag discriminates damage
// hitboxes (0) from other marker types.
type Hitbox struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Offset Point   `json:"offset"`
	Flag   int     `json:"flag"`
}

// Frame is one authored animation frame. Rect is required; everything else
// is optional in the editor's export.
type Frame struct {
	Rect     *Rect    `json:"rect"`
	Duration *float64 `json:"duration"`
	Offset   *Point   `json:"offset"`
	POIs     []POI    `json:"POIs"`
	Hitboxes []Hitbox `json:"hitboxes"`
}

// DurationSeconds returns the authored duration, or DefaultDuration when
// the editor left it unset.
func (f *Frame) DurationSeconds() float64 {
	if f.Duration == nil {
		return DefaultDuration
	}
	return *f.Duration
}

// Animation is the root of one exported animation clip.
type Animation struct {
	WrapMode       string  `json:"wrapMode"`
	LoopStartFrame int     `json:"loopStartFrame"`
	Frames         []Frame `json:"frames"`
}

// Loops reports whether the clip's wrap mode marks it as looping.
func (a *Animation) Loops() bool {
	return a.WrapMode == WrapLoop
}
