package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *Table {
	return &Table{
		Character: "zero",
		Animations: map[string]Animation{
			"idle":      {Loop: true, Frames: []Frame{{SX: 0, SY: 0, SW: 30, SH: 40, Dur: 6}}},
			"run":       {Loop: true, Frames: []Frame{{SX: 30, SY: 0, SW: 30, SH: 40, Dur: 4}}},
			"run_shoot": {Loop: true, Frames: []Frame{{SX: 60, SY: 0, SW: 34, SH: 40, Dur: 4}}},
			"attack":    {Loop: false, Frames: []Frame{{SX: 90, SY: 0, SW: 44, SH: 40, Dur: 3}}},
		},
		ShootMap: map[string]string{
			"idle": "shoot", // overlay clip deliberately absent from the table
			"run":  "run_shoot",
		},
	}
}

func TestTableResolve(t *testing.T) {
	table := testTable()

	tests := []struct {
		name   string
		state  string
		firing bool
		wantSX int
	}{
		{name: "direct state", state: "run", firing: false, wantSX: 30},
		{name: "firing uses overlay", state: "run", firing: true, wantSX: 60},
		{name: "firing without overlay entry", state: "attack", firing: true, wantSX: 90},
		{name: "overlay target missing falls back to base", state: "idle", firing: true, wantSX: 0},
		{name: "unknown state falls back to idle", state: "nonexistent_state", firing: false, wantSX: 0},
		{name: "unknown state firing falls back to idle", state: "nonexistent_state", firing: true, wantSX: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := table.Resolve(tt.state, tt.firing)
			require.NotEmpty(t, anim.Frames)
			assert.Equal(t, tt.wantSX, anim.Frames[0].SX)
		})
	}
}

func TestTableResolveNoShootMap(t *testing.T) {
	table := testTable()
	table.ShootMap = nil

	// Without a shoot-overlay map, firing has no effect: the base state wins.
	anim := table.Resolve("run", true)
	assert.Equal(t, 30, anim.Frames[0].SX)
}

func TestFrameCount(t *testing.T) {
	table := testTable()
	assert.Equal(t, 4, table.FrameCount())
}

func TestFrameJSONOmitsAbsentFields(t *testing.T) {
	f := Frame{SX: 1, SY: 2, SW: 3, SH: 4, Dur: 1}
	data, err := json.Marshal(f)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.NotContains(t, keys, "ox")
	assert.NotContains(t, keys, "oy")
	assert.NotContains(t, keys, "hx")
	assert.NotContains(t, keys, "hy")
	assert.NotContains(t, keys, "atkBox")
}

func TestFrameJSONKeepsZeroAnchor(t *testing.T) {
	// An anchor at (0, 0) is a real anchor, unlike a zero rendering offset.
	zero := 0
	f := Frame{SX: 1, SY: 2, SW: 3, SH: 4, Dur: 1, HX: &zero, HY: &zero}
	data, err := json.Marshal(f)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.Contains(t, keys, "hx")
	assert.Contains(t, keys, "hy")
}

func TestAnimationJSONLoopStart(t *testing.T) {
	looping := Animation{Loop: true, LoopStart: 2, Frames: []Frame{{Dur: 1}}}
	data, err := json.Marshal(looping)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"loopStart":2`)

	fromZero := Animation{Loop: true, Frames: []Frame{{Dur: 1}}}
	data, err = json.Marshal(fromZero)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "loopStart")
	assert.Contains(t, string(data), `"loop":true`)
}
