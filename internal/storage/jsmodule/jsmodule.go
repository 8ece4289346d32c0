// Package jsmodule emits a compiled character table as an ES module, the
// format consumed directly by the game's renderer.
package jsmodule

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/megagame/spritec/internal/util"
	"github.com/megagame/spritec/pkg/core"
)

// Config holds jsmodule emitter settings.
type Config struct {
	OutputDir string
}

// Backend writes one <character>-sprite-data.js file per recorded table.
type Backend struct {
	cfg            Config
	lastExportPath string
}

func New(cfg Config) *Backend {
	return &Backend{cfg: cfg}
}

func (b *Backend) Init() error {
	return os.MkdirAll(b.cfg.OutputDir, 0755)
}

func (b *Backend) Close() error {
	return nil
}

// LastExportPath returns the path of the most recently written module.
func (b *Backend) LastExportPath() string {
	return b.lastExportPath
}

var moduleTemplate = template.Must(template.New("jsmodule").Parse(`/**
 * {{.FileName}}
 * {{.Title}} character sprite definitions from {{.Spritesheet}} spritesheet.
 * Auto-generated by spritec from animation source JSONs.
 *
 * Each frame: { sx, sy, sw, sh, dur, ox?, oy?, hx?, hy?, atkBox? }
 *   sx,sy,sw,sh = source rect on spritesheet (pixels)
 *   dur = duration in game frames (60fps)
 *   ox,oy = per-frame rendering offset
 *   hx,hy = anchor position relative to feet-center
 *   atkBox = damage hitbox {w, h, ox, oy} relative to feet-center
 *
 * Alignment: bottom-center (sprite positioned from feet)
 */

{{if .ShootEntries}}const {{.Prefix}}_SHOOT_ANIM_MAP = {
{{range .ShootEntries}}    {{.Base}}: '{{.Overlay}}',
{{end}}};

{{end}}export const {{.Prefix}}_ANIMATIONS = {
{{range .Anims}}    {{.Name}}: { loop: {{.Loop}}{{.LoopStart}}, frames: [
{{range .Frames}}        {{.}},
{{end}}    ] },
{{end}}};

/**
 * Get animation data for {{.Title}}.
{{if .ShootEntries}} * If shooting is true, returns the shoot variant.
{{end}} * Falls back to idle if state not found.
 */
{{if .ShootEntries}}export function get{{.Title}}Anim(state, shooting = false) {
    if (shooting) {
        const shootState = {{.Prefix}}_SHOOT_ANIM_MAP[state];
        if (shootState && {{.Prefix}}_ANIMATIONS[shootState]) {
            return {{.Prefix}}_ANIMATIONS[shootState];
        }
    }
    return {{.Prefix}}_ANIMATIONS[state] || {{.Prefix}}_ANIMATIONS.idle;
}
{{else}}export function get{{.Title}}Anim(state) {
    return {{.Prefix}}_ANIMATIONS[state] || {{.Prefix}}_ANIMATIONS.idle;
}
{{end}}`))

type shootEntry struct {
	Base    string
	Overlay string
}

type animView struct {
	Name      string
	Loop      string
	LoopStart string
	Frames    []string
}

type moduleView struct {
	FileName     string
	Title        string
	Prefix       string
	Spritesheet  string
	ShootEntries []shootEntry
	Anims        []animView
}

// RecordTable renders the table as an ES module and writes it to the
// output directory.
func (b *Backend) RecordTable(table *core.Table, run *core.BuildRun) error {
	fileName := fmt.Sprintf("%s-sprite-data.js", table.Character)

	view := moduleView{
		FileName:    fileName,
		Title:       util.TitleCase(table.Character),
		Prefix:      util.ExportPrefix(table.Character),
		Spritesheet: table.Spritesheet,
	}

	if len(table.ShootMap) > 0 {
		bases := make([]string, 0, len(table.ShootMap))
		for base := range table.ShootMap {
			bases = append(bases, base)
		}
		sort.Strings(bases)
		for _, base := range bases {
			view.ShootEntries = append(view.ShootEntries, shootEntry{Base: base, Overlay: table.ShootMap[base]})
		}
	}

	for _, name := range table.Order {
		anim := table.Animations[name]
		v := animView{
			Name: name,
			Loop: fmt.Sprintf("%t", anim.Loop),
		}
		if anim.Loop && anim.LoopStart > 0 {
			v.LoopStart = fmt.Sprintf(", loopStart: %d", anim.LoopStart)
		}
		for i := range anim.Frames {
			v.Frames = append(v.Frames, frameLiteral(&anim.Frames[i]))
		}
		view.Anims = append(view.Anims, v)
	}

	var out strings.Builder
	if err := moduleTemplate.Execute(&out, view); err != nil {
		return fmt.Errorf("failed to render module for '%s': %w", table.Character, err)
	}

	outputPath := filepath.Join(b.cfg.OutputDir, fileName)
	if err := os.WriteFile(outputPath, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("failed to write module for '%s': %w", table.Character, err)
	}

	b.lastExportPath = outputPath
	return nil
}

// frameLiteral formats one frame as a compact JS object literal. Optional
// fields appear only when present, keeping the generated file diffable.
func frameLiteral(f *core.Frame) string {
	parts := []string{
		fmt.Sprintf("sx:%d", f.SX),
		fmt.Sprintf("sy:%d", f.SY),
		fmt.Sprintf("sw:%d", f.SW),
		fmt.Sprintf("sh:%d", f.SH),
		fmt.Sprintf("dur:%d", f.Dur),
	}
	if f.OX != 0 {
		parts = append(parts, fmt.Sprintf("ox:%d", f.OX))
	}
	if f.OY != 0 {
		parts = append(parts, fmt.Sprintf("oy:%d", f.OY))
	}
	if f.HX != nil {
		parts = append(parts, fmt.Sprintf("hx:%d", *f.HX))
	}
	if f.HY != nil {
		parts = append(parts, fmt.Sprintf("hy:%d", *f.HY))
	}
	if f.AtkBox != nil {
		parts = append(parts, fmt.Sprintf("atkBox:{w:%d,h:%d,ox:%d,oy:%d}",
			f.AtkBox.W, f.AtkBox.H, f.AtkBox.OX, f.AtkBox.OY))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
