package metrics

import (
	"testing"
	"time"

	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"

	"github.com/megagame/spritec/pkg/core"
)

func TestBuildRunPoint(t *testing.T) {
	run := &core.BuildRun{
		Character:       "zero",
		StartedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		DurationMs:      12.5,
		PipelineVersion: "1.2.0",
		AnimationCount:  14,
		FrameCount:      96,
		Skipped:         []string{"taunt"},
	}

	point := BuildRunPoint(run)
	line := influxdb2_write.PointToLineProtocol(point, time.Nanosecond)

	assert.Contains(t, line, "character_build")
	assert.Contains(t, line, "character=zero")
	assert.Contains(t, line, "pipeline_version=1.2.0")
	assert.Contains(t, line, "animation_count=14i")
	assert.Contains(t, line, "frame_count=96i")
	assert.Contains(t, line, "skipped_count=1i")
	assert.Contains(t, line, "duration_ms=12.5")
}
