// Package convert maps compiled animation tables between the core
// representation and the GORM catalog models.
package convert

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/megagame/spritec/internal/model"
	"github.com/megagame/spritec/pkg/core"
)

// BuildRunToGorm converts a pipeline run summary into a catalog row.
func BuildRunToGorm(run *core.BuildRun) (*model.BuildRun, error) {
	skipped, err := json.Marshal(run.Skipped)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skipped list: %w", err)
	}

	return &model.BuildRun{
		Character:       run.Character,
		StartedAt:       run.StartedAt,
		DurationMs:      run.DurationMs,
		PipelineVersion: run.PipelineVersion,
		AnimationCount:  run.AnimationCount,
		FrameCount:      run.FrameCount,
		Skipped:         skipped,
	}, nil
}

// TableToGorm converts a compiled table into a catalog row with its
// animation rows attached. Animations are sorted by name so repeated builds
// produce identical row order.
func TableToGorm(table *core.Table) (*model.CharacterTable, error) {
	shootMap, err := json.Marshal(table.ShootMap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shoot map: %w", err)
	}

	names := make([]string, 0, len(table.Animations))
	for name := range table.Animations {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]model.AnimationRow, 0, len(names))
	for _, name := range names {
		anim := table.Animations[name]
		frames, err := json.Marshal(anim.Frames)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal frames for animation '%s': %w", name, err)
		}
		rows = append(rows, model.AnimationRow{
			Name:       name,
			Loop:       anim.Loop,
			LoopStart:  anim.LoopStart,
			FrameCount: len(anim.Frames),
			Frames:     frames,
		})
	}

	return &model.CharacterTable{
		Character:  table.Character,
		ShootMap:   shootMap,
		Animations: rows,
	}, nil
}
