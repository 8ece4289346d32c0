package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megagame/spritec/internal/character"
	"github.com/megagame/spritec/internal/source"
	"github.com/megagame/spritec/pkg/core"
)

func floatPtr(v float64) *float64 { return &v }

func TestConvertGeometry(t *testing.T) {
	tests := []struct {
		name string
		rect source.Rect
		want core.Frame
	}{
		{
			name: "integer corners",
			rect: source.Rect{TopLeft: source.Point{X: 10, Y: 20}, BotRight: source.Point{X: 54, Y: 68}},
			want: core.Frame{SX: 10, SY: 20, SW: 44, SH: 48},
		},
		{
			name: "fractional corners floored independently",
			rect: source.Rect{TopLeft: source.Point{X: 10.9, Y: 20.2}, BotRight: source.Point{X: 54.7, Y: 68.9}},
			want: core.Frame{SX: 10, SY: 20, SW: 44, SH: 48},
		},
		{
			name: "truncation not rounding",
			rect: source.Rect{TopLeft: source.Point{X: 0.5, Y: 0.5}, BotRight: source.Point{X: 31.5, Y: 31.5}},
			want: core.Frame{SX: 0, SY: 0, SW: 31, SH: 31},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out core.Frame
			convertGeometry(&tt.rect, &out)
			assert.Equal(t, tt.want.SX, out.SX)
			assert.Equal(t, tt.want.SY, out.SY)
			assert.Equal(t, tt.want.SW, out.SW)
			assert.Equal(t, tt.want.SH, out.SH)
		})
	}
}

func TestConvertDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    int
	}{
		{name: "half second", seconds: 0.5, want: 30},
		{name: "single frame clamps to 1 not 0", seconds: 0.0166, want: 1},
		{name: "near zero clamps to 1", seconds: 0.001, want: 1},
		{name: "editor default", seconds: source.DefaultDuration, want: 4},
		{name: "long hold", seconds: 0.499, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertDuration(tt.seconds))
		})
	}
}

func TestConvertOffset(t *testing.T) {
	var out core.Frame
	convertOffset(nil, &out)
	assert.Zero(t, out.OX)
	assert.Zero(t, out.OY)

	out = core.Frame{}
	convertOffset(&source.Point{X: -2.4, Y: 0.3}, &out)
	assert.Equal(t, -2, out.OX)
	assert.Equal(t, 0, out.OY)

	// Exact halves round to even, on both sides of zero.
	out = core.Frame{}
	convertOffset(&source.Point{X: 2.5, Y: 3.5}, &out)
	assert.Equal(t, 2, out.OX)
	assert.Equal(t, 4, out.OY)

	out = core.Frame{}
	convertOffset(&source.Point{X: -2.5, Y: -3.5}, &out)
	assert.Equal(t, -2, out.OX)
	assert.Equal(t, -4, out.OY)
}

func TestResolvePOI(t *testing.T) {
	buster := character.POIConfig{PrimaryTag: "b"}
	withFallback := character.POIConfig{PrimaryTag: "", FallbackTag: "h"}

	tests := []struct {
		name   string
		pois   []source.POI
		cfg    character.POIConfig
		wantHX *int
		wantHY *int
	}{
		{
			name:   "primary tag match rounds coordinates",
			pois:   []source.POI{{Tags: "b", X: 30.6, Y: -17.4}},
			cfg:    buster,
			wantHX: intPtr(31),
			wantHY: intPtr(-17),
		},
		{
			name: "no POIs at all",
			pois: nil,
			cfg:  buster,
		},
		{
			name: "no matching tag",
			pois: []source.POI{{Tags: "h", X: 1, Y: 2}},
			cfg:  buster,
		},
		{
			name:   "first match wins over later duplicates",
			pois:   []source.POI{{Tags: "b", X: 5, Y: 6}, {Tags: "b", X: 50, Y: 60}},
			cfg:    buster,
			wantHX: intPtr(5),
			wantHY: intPtr(6),
		},
		{
			name:   "empty-string primary tag is a real tag",
			pois:   []source.POI{{Tags: "", X: 12, Y: -40}},
			cfg:    character.POIConfig{PrimaryTag: ""},
			wantHX: intPtr(12),
			wantHY: intPtr(-40),
		},
		{
			name:   "fallback tag supplies anchor when primary absent",
			pois:   []source.POI{{Tags: "h", X: 3, Y: -50}},
			cfg:    withFallback,
			wantHX: intPtr(3),
			wantHY: intPtr(-50),
		},
		{
			name:   "primary still wins over fallback",
			pois:   []source.POI{{Tags: "h", X: 3, Y: -50}, {Tags: "", X: 9, Y: -9}},
			cfg:    withFallback,
			wantHX: intPtr(9),
			wantHY: intPtr(-9),
		},
		{
			name: "no fallback configured",
			pois: []source.POI{{Tags: "h", X: 3, Y: -50}},
			cfg:  character.POIConfig{PrimaryTag: "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out core.Frame
			resolvePOI(tt.pois, tt.cfg, &out)
			if tt.wantHX == nil {
				assert.Nil(t, out.HX)
				assert.Nil(t, out.HY)
				return
			}
			require.NotNil(t, out.HX)
			require.NotNil(t, out.HY)
			assert.Equal(t, *tt.wantHX, *out.HX)
			assert.Equal(t, *tt.wantHY, *out.HY)
		})
	}
}

func TestExtractAttackBox(t *testing.T) {
	tests := []struct {
		name     string
		hitboxes []source.Hitbox
		want     *core.Box
	}{
		{
			name: "damage flag selected, marker flag ignored",
			hitboxes: []source.Hitbox{
				{Width: 18, Height: 36, Offset: source.Point{X: 0, Y: -20}, Flag: 1},
				{Width: 23, Height: 40, Offset: source.Point{X: 30, Y: -32}, Flag: 0},
			},
			want: &core.Box{W: 23, H: 40, OX: 30, OY: -32},
		},
		{
			name: "first damage hitbox wins",
			hitboxes: []source.Hitbox{
				{Width: 23, Height: 40, Offset: source.Point{X: 30, Y: -32}, Flag: 0},
				{Width: 99, Height: 99, Offset: source.Point{X: 0, Y: 0}, Flag: 0},
			},
			want: &core.Box{W: 23, H: 40, OX: 30, OY: -32},
		},
		{
			name:     "no damage hitbox",
			hitboxes: []source.Hitbox{{Width: 18, Height: 36, Flag: 2}},
			want:     nil,
		},
		{
			name:     "empty list",
			hitboxes: nil,
			want:     nil,
		},
		{
			name: "fractional values rounded",
			hitboxes: []source.Hitbox{
				{Width: 23.4, Height: 39.6, Offset: source.Point{X: 29.5, Y: -32.5}, Flag: 0},
			},
			want: &core.Box{W: 23, H: 40, OX: 30, OY: -32},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out core.Frame
			extractAttackBox(tt.hitboxes, &out)
			if tt.want == nil {
				assert.Nil(t, out.AtkBox)
				return
			}
			require.NotNil(t, out.AtkBox)
			assert.Equal(t, *tt.want, *out.AtkBox)
		})
	}
}

func intPtr(v int) *int { return &v }

func TestConvertFrameDefaults(t *testing.T) {
	fs := source.Frame{
		Rect: &source.Rect{
			TopLeft:  source.Point{X: 0, Y: 0},
			BotRight: source.Point{X: 30, Y: 40},
		},
		Duration: floatPtr(0.0166),
	}

	frame := convertFrame(&fs)
	assert.Equal(t, 1, frame.Dur)
	assert.Equal(t, 30, frame.SW)
	assert.Equal(t, 40, frame.SH)
	assert.Zero(t, frame.OX)
	assert.Zero(t, frame.OY)
	assert.Nil(t, frame.HX)
	assert.Nil(t, frame.AtkBox)
}
