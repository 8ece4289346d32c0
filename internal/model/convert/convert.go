package convert

import (
	"encoding/json"
	"fmt"

	"github.com/megagame/spritec/internal/model"
	"github.com/megagame/spritec/pkg/core"
)

// AnimationToCore converts a catalog row back to a core animation.
func AnimationToCore(row model.AnimationRow) (core.Animation, error) {
	var frames []core.Frame
	if len(row.Frames) > 0 {
		if err := json.Unmarshal(row.Frames, &frames); err != nil {
			return core.Animation{}, fmt.Errorf("failed to unmarshal frames for animation '%s': %w", row.Name, err)
		}
	}

	return core.Animation{
		Loop:      row.Loop,
		LoopStart: row.LoopStart,
		Frames:    frames,
	}, nil
}

// TableToCore converts a catalog row and its animation rows back to a core
// table, for readers that inspect the catalog instead of the file artifacts.
func TableToCore(row *model.CharacterTable) (*core.Table, error) {
	var shootMap map[string]string
	if len(row.ShootMap) > 0 {
		if err := json.Unmarshal(row.ShootMap, &shootMap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shoot map for '%s': %w", row.Character, err)
		}
	}

	anims := make(map[string]core.Animation, len(row.Animations))
	for _, animRow := range row.Animations {
		anim, err := AnimationToCore(animRow)
		if err != nil {
			return nil, err
		}
		anims[animRow.Name] = anim
	}

	return &core.Table{
		Character:  row.Character,
		Animations: anims,
		ShootMap:   shootMap,
	}, nil
}
