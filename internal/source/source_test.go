package source

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleClip = `{
	"name": "zero_attack",
	"wrapMode": "once",
	"loopStartFrame": 0,
	"frames": [
		{
			"rect": {
				"topLeftPoint": {"x": 10.0, "y": 20.0},
				"botRightPoint": {"x": 54.0, "y": 68.0}
			},
			"duration": 0.066,
			"offset": {"x": -2.0, "y": 0.0},
			"POIs": [{"tags": "b", "x": 31.0, "y": -18.0}],
			"hitboxes": [
				{"width": 23.0, "height": 40.0, "offset": {"x": 30.0, "y": -32.0}, "flag": 0},
				{"width": 18.0, "height": 36.0, "offset": {"x": 0.0, "y": -20.0}, "flag": 1}
			]
		},
		{
			"rect": {
				"topLeftPoint": {"x": 54.0, "y": 20.0},
				"botRightPoint": {"x": 98.0, "y": 68.0}
			}
		}
	]
}`

func writeClip(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	anim, err := Load(writeClip(t, sampleClip))
	require.NoError(t, err)

	assert.False(t, anim.Loops())
	require.Len(t, anim.Frames, 2)

	first := anim.Frames[0]
	require.NotNil(t, first.Rect)
	assert.Equal(t, 10.0, first.Rect.TopLeft.X)
	assert.Equal(t, 68.0, first.Rect.BotRight.Y)
	assert.Equal(t, 0.066, first.DurationSeconds())
	require.NotNil(t, first.Offset)
	assert.Equal(t, -2.0, first.Offset.X)
	require.Len(t, first.POIs, 1)
	assert.Equal(t, "b", first.POIs[0].Tags)
	require.Len(t, first.Hitboxes, 2)
	assert.Equal(t, DamageFlag, first.Hitboxes[0].Flag)
	assert.Equal(t, 1, first.Hitboxes[1].Flag)

	// Second frame relies on defaults.
	second := anim.Frames[1]
	assert.Nil(t, second.Offset)
	assert.Empty(t, second.POIs)
	assert.Equal(t, DefaultDuration, second.DurationSeconds())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load(writeClip(t, `{"frames": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse animation JSON")
}

func TestLoopDetection(t *testing.T) {
	tests := []struct {
		name     string
		wrapMode string
		want     bool
	}{
		{name: "loop", wrapMode: "loop", want: true},
		{name: "once", wrapMode: "once", want: false},
		{name: "absent", wrapMode: "", want: false},
		{name: "unknown value", wrapMode: "pingpong", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := Animation{WrapMode: tt.wrapMode}
			assert.Equal(t, tt.want, anim.Loops())
		})
	}
}

func TestRectEnvelope(t *testing.T) {
	r := Rect{TopLeft: Point{X: 10, Y: 20}, BotRight: Point{X: 54, Y: 68}}
	env, err := r.Envelope()
	require.NoError(t, err)
	assert.Equal(t, 44.0, env.Width())
	assert.Equal(t, 48.0, env.Height())

	degenerate := Rect{TopLeft: Point{X: 10, Y: 20}, BotRight: Point{X: 10, Y: 68}}
	env, err = degenerate.Envelope()
	require.NoError(t, err)
	assert.Zero(t, env.Width())

	invalid := Rect{TopLeft: Point{X: math.NaN(), Y: 20}, BotRight: Point{X: 54, Y: 68}}
	_, err = invalid.Envelope()
	require.Error(t, err)
}
