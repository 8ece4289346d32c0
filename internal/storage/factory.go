// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/megagame/spritec/internal/config"
	"github.com/megagame/spritec/internal/database"
	"github.com/megagame/spritec/internal/storage/catalog"
	"github.com/megagame/spritec/internal/storage/jsmodule"
	"github.com/megagame/spritec/internal/storage/jsonfile"
)

// NewFormatBackend creates a file emitter for one configured output format.
func NewFormatBackend(format string, out config.OutputConfig) (Backend, error) {
	switch format {
	case "jsmodule":
		return jsmodule.New(jsmodule.Config{OutputDir: out.Dir}), nil
	case "jsonfile":
		return jsonfile.New(jsonfile.Config{
			OutputDir:      out.Dir,
			CompressOutput: out.Compress,
		}), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// NewBackend assembles the full fan-out from configuration: one emitter per
// output format, plus the catalog when enabled.
func NewBackend(out config.OutputConfig, cat config.CatalogConfig, dbLogger zerolog.Logger) (Backend, error) {
	var backends []Backend

	for _, format := range out.Formats {
		b, err := NewFormatBackend(format, out)
		if err != nil {
			return nil, err
		}
		backends = append(backends, b)
	}

	if cat.Enabled {
		mgr := database.NewManager(dbLogger, cat.File)
		backends = append(backends, catalog.New(mgr))
	}

	if len(backends) == 0 {
		return nil, fmt.Errorf("no output formats or catalog configured")
	}

	return NewMulti(backends...), nil
}
