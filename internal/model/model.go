package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the catalog schema
var DatabaseModels = []interface{}{
	&BuildRun{},
	&CharacterTable{},
	&AnimationRow{},
}

// BuildRun records one per-character pipeline invocation.
type BuildRun struct {
	gorm.Model
	Character       string         `json:"character" gorm:"size:64;index:idx_buildrun_character"`
	StartedAt       time.Time      `json:"startedAt" gorm:"index:idx_buildrun_started_at"`
	DurationMs      float32        `json:"durationMs"`
	PipelineVersion string         `json:"pipelineVersion" gorm:"size:32"`
	AnimationCount  int            `json:"animationCount"`
	FrameCount      int            `json:"frameCount"`
	Skipped         datatypes.JSON `json:"skipped"`
}

func (*BuildRun) TableName() string {
	return "build_runs"
}

// CharacterTable is the compiled animation table for one character.
type CharacterTable struct {
	gorm.Model
	Character  string         `json:"character" gorm:"size:64;index:idx_charactertable_character"`
	BuildRunID uint           `json:"buildRunId"`
	BuildRun   BuildRun       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:BuildRunID;"`
	ShootMap   datatypes.JSON `json:"shootMap"`

	Animations []AnimationRow `json:"animations" gorm:"foreignkey:CharacterTableID"`
}

func (*CharacterTable) TableName() string {
	return "character_tables"
}

// AnimationRow is one compiled animation. Frames are stored as the same JSON
// array the file emitters write, so the catalog row round-trips losslessly.
type AnimationRow struct {
	gorm.Model
	CharacterTableID uint           `json:"characterTableId" gorm:"index:idx_animationrow_table_id"`
	Name             string         `json:"name" gorm:"size:64"`
	Loop             bool           `json:"loop"`
	LoopStart        int            `json:"loopStart"`
	FrameCount       int            `json:"frameCount"`
	Frames           datatypes.JSON `json:"frames"`
}

func (*AnimationRow) TableName() string {
	return "animation_rows"
}
