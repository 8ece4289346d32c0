package compile

import (
	"math"

	"github.com/megagame/spritec/internal/character"
	"github.com/megagame/spritec/internal/source"
	"github.com/megagame/spritec/pkg/core"
)

// GameFPS is the renderer's tick rate. Source durations are authored in
// seconds and compiled to game frames at this rate.
const GameFPS = 60

// convertGeometry fills the source-rectangle portion of a compiled frame.
// Each corner is floored independently before subtraction, matching the
// editor's pixel-grid semantics.
func convertGeometry(rect *source.Rect, out *core.Frame) {
	out.SX = int(math.Floor(rect.TopLeft.X))
	out.SY = int(math.Floor(rect.TopLeft.Y))
	out.SW = int(math.Floor(rect.BotRight.X)) - out.SX
	out.SH = int(math.Floor(rect.BotRight.Y)) - out.SY
}

// convertDuration converts seconds to game frames, clamped to a minimum of 1.
// Exact halves round to even, like every other derived value in this package.
func convertDuration(seconds float64) int {
	frames := int(math.RoundToEven(seconds * GameFPS))
	if frames < 1 {
		return 1
	}
	return frames
}

// convertOffset rounds the per-frame rendering offset. A zero axis stays
// the zero value, which serialization omits.
func convertOffset(offset *source.Point, out *core.Frame) {
	if offset == nil {
		return
	}
	out.OX = int(math.RoundToEven(offset.X))
	out.OY = int(math.RoundToEven(offset.Y))
}

// resolvePOI selects the frame's anchor point per the character's tag
// convention: the first POI matching the primary tag, else the first
// matching the fallback tag when the profile configures one. Later matches
// with the same tag are ignored.
func resolvePOI(pois []source.POI, cfg character.POIConfig, out *core.Frame) {
	pick := func(tag string) *source.POI {
		for i := range pois {
			if pois[i].Tags == tag {
				return &pois[i]
			}
		}
		return nil
	}

	poi := pick(cfg.PrimaryTag)
	if poi == nil && cfg.FallbackTag != "" {
		poi = pick(cfg.FallbackTag)
	}
	if poi == nil {
		return
	}

	hx := int(math.RoundToEven(poi.X))
	hy := int(math.RoundToEven(poi.Y))
	out.HX = &hx
	out.HY = &hy
}

// extractAttackBox takes the first damage-class hitbox in source order.
// Multiple simultaneous damage hitboxes per frame are not supported: one
// attack hitbox per frame is the game's invariant, so extras are dropped.
// Nonzero flags are other marker classes and are ignored outright.
func extractAttackBox(hitboxes []source.Hitbox, out *core.Frame) {
	for i := range hitboxes {
		hb := &hitboxes[i]
		if hb.Flag != source.DamageFlag {
			continue
		}
		out.AtkBox = &core.Box{
			W:  int(math.RoundToEven(hb.Width)),
			H:  int(math.RoundToEven(hb.Height)),
			OX: int(math.RoundToEven(hb.Offset.X)),
			OY: int(math.RoundToEven(hb.Offset.Y)),
		}
		return
	}
}

// convertFrame derives one compiled frame from its source. Overrides are
// applied by the caller after all frames of the animation are derived.
func convertFrame(fs *source.Frame) core.Frame {
	var out core.Frame
	convertGeometry(fs.Rect, &out)
	out.Dur = convertDuration(fs.DurationSeconds())
	convertOffset(fs.Offset, &out)
	return out
}
