package main

import (
	"github.com/rs/zerolog"

	"github.com/megagame/spritec/internal/config"
	"github.com/megagame/spritec/internal/storage"
)

// createBackend assembles the artifact fan-out from configuration: one
// emitter per configured output format plus the catalog when enabled.
func createBackend(zlog zerolog.Logger) (storage.Backend, error) {
	outCfg := config.GetOutputConfig()
	catCfg := config.GetCatalogConfig()

	backend, err := storage.NewBackend(outCfg, catCfg, zlog)
	if err != nil {
		return nil, err
	}

	Logger.Info("Storage backends initialized",
		"formats", outCfg.Formats,
		"outputDir", outCfg.Dir,
		"catalog", catCfg.Enabled)
	return backend, nil
}
