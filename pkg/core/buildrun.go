package core

import "time"

// BuildRun summarizes one per-character pipeline run for the catalog and
// metrics backends.
type BuildRun struct {
	Character       string
	StartedAt       time.Time
	DurationMs      float32
	PipelineVersion string

	// AnimationCount and FrameCount describe the assembled table.
	AnimationCount int
	FrameCount     int

	// Skipped lists animations whose source file was missing. The table is
	// shorter but valid; the caller decides whether that fails the build.
	Skipped []string
}
