// Package compile implements the frame-conversion and override-merging
// engine shared by every character converter. One parameterized engine
// serves all characters; per-character behavior comes entirely from the
// profile (POI tags, override tables, shoot-overlay map).
package compile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/megagame/spritec/internal/character"
	"github.com/megagame/spritec/internal/source"
	"github.com/megagame/spritec/pkg/core"
)

// Engine converts one character's authored clips into a compiled table.
type Engine struct {
	profile    *character.Profile
	spritesDir string
	logger     *slog.Logger
}

// NewEngine creates an engine for one character profile. Clip files are
// resolved relative to spritesDir.
func NewEngine(profile *character.Profile, spritesDir string, logger *slog.Logger) *Engine {
	return &Engine{
		profile:    profile,
		spritesDir: spritesDir,
		logger:     logger.With("character", profile.ID),
	}
}

// Build assembles the character's animation table. Clips whose source file
// is missing are skipped with a diagnostic and recorded in the run summary;
// malformed clips and out-of-range overrides abort the build. The result is
// a pure function of the profile and the source files, so repeated runs
// produce identical tables.
func (e *Engine) Build() (*core.Table, *core.BuildRun, error) {
	start := time.Now()

	table := &core.Table{
		Character:   e.profile.ID,
		Spritesheet: e.profile.Spritesheet,
		Animations:  make(map[string]core.Animation, len(e.profile.Animations)),
	}
	if len(e.profile.ShootOverlays) > 0 {
		table.ShootMap = make(map[string]string, len(e.profile.ShootOverlays))
		for base, overlay := range e.profile.ShootOverlays {
			table.ShootMap[base] = overlay
		}
	}

	run := &core.BuildRun{
		Character: e.profile.ID,
		StartedAt: start,
	}

	for _, entry := range e.profile.Animations {
		path := filepath.Join(e.spritesDir, entry.File)
		anim, err := source.Load(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e.logger.Warn("Animation source not found, skipping",
					"animation", entry.Name, "file", entry.File)
				run.Skipped = append(run.Skipped, entry.Name)
				continue
			}
			return nil, nil, fmt.Errorf("character %s, animation %s: %w", e.profile.ID, entry.Name, err)
		}

		compiled, err := e.convertAnimation(entry.Name, anim)
		if err != nil {
			return nil, nil, err
		}
		table.Animations[entry.Name] = compiled
		table.Order = append(table.Order, entry.Name)
		run.FrameCount += len(compiled.Frames)
	}

	if _, ok := table.Animations[core.IdleState]; !ok {
		return nil, nil, &MissingIdleError{Character: e.profile.ID}
	}

	run.AnimationCount = len(table.Animations)
	run.DurationMs = float32(time.Since(start).Seconds() * 1000)

	e.logger.Info("Assembled animation table",
		"animations", run.AnimationCount,
		"frames", run.FrameCount,
		"skipped", len(run.Skipped))

	return table, run, nil
}

// convertAnimation derives and overrides every frame of one clip, then
// applies the loop metadata. Frame indices used by the override tables
// refer to source order, zero-based.
func (e *Engine) convertAnimation(name string, anim *source.Animation) (core.Animation, error) {
	out := core.Animation{
		Loop:   anim.Loops(),
		Frames: make([]core.Frame, 0, len(anim.Frames)),
	}
	// A loop starting at frame 0 needs no explicit marker.
	if out.Loop && anim.LoopStartFrame > 0 {
		out.LoopStart = anim.LoopStartFrame
	}

	for i := range anim.Frames {
		fs := &anim.Frames[i]
		if err := e.validateFrame(name, i, fs); err != nil {
			return core.Animation{}, err
		}

		frame := convertFrame(fs)
		resolvePOI(fs.POIs, e.profile.POI, &frame)
		extractAttackBox(fs.Hitboxes, &frame)
		out.Frames = append(out.Frames, frame)
	}

	if err := e.applyOverrides(name, out.Frames); err != nil {
		return core.Animation{}, err
	}

	if len(out.Frames) == 0 {
		return core.Animation{}, &MalformedSourceError{
			Character: e.profile.ID,
			Animation: name,
			Frame:     0,
			Reason:    "no frames",
		}
	}
	if out.LoopStart >= len(out.Frames) {
		return core.Animation{}, &MalformedSourceError{
			Character: e.profile.ID,
			Animation: name,
			Frame:     out.LoopStart,
			Reason:    "loop start index beyond last frame",
		}
	}

	return out, nil
}

// validateFrame enforces the input contract for required fields.
func (e *Engine) validateFrame(anim string, idx int, fs *source.Frame) error {
	if fs.Rect == nil {
		return &MalformedSourceError{
			Character: e.profile.ID,
			Animation: anim,
			Frame:     idx,
			Reason:    "missing rect",
		}
	}
	env, err := fs.Rect.Envelope()
	if err != nil {
		return &MalformedSourceError{
			Character: e.profile.ID,
			Animation: anim,
			Frame:     idx,
			Reason:    "invalid rect coordinates",
		}
	}
	if env.Width() <= 0 || env.Height() <= 0 {
		return &MalformedSourceError{
			Character: e.profile.ID,
			Animation: anim,
			Frame:     idx,
			Reason:    "degenerate rect",
		}
	}
	return nil
}

// applyOverrides applies the profile's hand-authored corrections to derived
// frames. Each override kind replaces the corresponding value outright — a
// duration override never blends with or bounds the computed value, and an
// attack-box override replaces all four fields together, constructing a box
// where derivation found none. An override index with no matching source
// frame fails the build.
func (e *Engine) applyOverrides(anim string, frames []core.Frame) error {
	for idx, dur := range e.profile.Overrides.Durations[anim] {
		if idx < 0 || idx >= len(frames) {
			return &OverrideMismatchError{
				Character: e.profile.ID,
				Animation: anim,
				Frame:     idx,
				Kind:      "duration",
			}
		}
		frames[idx].Dur = dur
	}

	for idx, box := range e.profile.Overrides.AttackBoxes[anim] {
		if idx < 0 || idx >= len(frames) {
			return &OverrideMismatchError{
				Character: e.profile.ID,
				Animation: anim,
				Frame:     idx,
				Kind:      "attack-box",
			}
		}
		b := box.Core()
		frames[idx].AtkBox = &b
	}

	return nil
}
