// Package jsonfile emits a compiled character table as a .anim.json file,
// optionally gzipped, for tooling that consumes the table outside the game.
package jsonfile

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/megagame/spritec/pkg/core"
)

// Config holds jsonfile emitter settings.
type Config struct {
	OutputDir      string
	CompressOutput bool
}

// Export is the root JSON structure written per character.
type Export struct {
	Character   string                    `json:"character"`
	Spritesheet string                    `json:"spritesheet"`
	Order       []string                  `json:"order"`
	Animations  map[string]core.Animation `json:"animations"`
	ShootMap    map[string]string         `json:"shootMap,omitempty"`
	Skipped     []string                  `json:"skipped,omitempty"`
}

// Backend writes one <character>.anim.json[.gz] file per recorded table.
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

// LastExportPath returns the path of the most recently written file.
func (b *Backend) LastExportPath() string {
	return b.lastExportPath
}

// RecordTable writes the table to the output directory.
func (b *Backend) RecordTable(table *core.Table, run *core.BuildRun) error {
	export := Export{
		Character:   table.Character,
		Spritesheet: table.Spritesheet,
		Order:       table.Order,
		Animations:  table.Animations,
		ShootMap:    table.ShootMap,
		Skipped:     run.Skipped,
	}

	var filename string
	if b.cfg.CompressOutput {
		filename = fmt.Sprintf("%s.anim.json.gz", table.Character)
	} else {
		filename = fmt.Sprintf("%s.anim.json", table.Character)
	}
	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if b.cfg.CompressOutput {
		if err := b.writeGzipJSON(outputPath, export); err != nil {
			return err
		}
	} else {
		if err := b.writeJSON(outputPath, export); err != nil {
			return err
		}
	}

	b.lastExportPath = outputPath
	return nil
}

func (b *Backend) writeJSON(path string, data Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	return encoder.Encode(data)
}

func (b *Backend) writeGzipJSON(path string, data Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gzWriter := gzip.NewWriter(f)
	defer gzWriter.Close()

	encoder := json.NewEncoder(gzWriter)
	return encoder.Encode(data)
}
