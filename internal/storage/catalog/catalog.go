// Package catalog persists compiled tables and build runs to the catalog
// database, so artifact history can be queried across builds.
package catalog

import (
	"fmt"

	"github.com/megagame/spritec/internal/database"
	"github.com/megagame/spritec/internal/model/convert"
	"github.com/megagame/spritec/pkg/core"
)

// Backend records tables through a database manager.
type Backend struct {
	mgr *database.Manager
}

func New(mgr *database.Manager) *Backend {
	return &Backend{mgr: mgr}
}

// Init connects to the configured database and migrates the schema.
func (b *Backend) Init() error {
	if err := b.mgr.Connect(); err != nil {
		return err
	}
	return b.mgr.Setup()
}

func (b *Backend) Close() error {
	return b.mgr.Close()
}

// RecordTable inserts the build run, then the character table with its
// animation rows linked to it.
func (b *Backend) RecordTable(table *core.Table, run *core.BuildRun) error {
	if !b.mgr.IsValid {
		return fmt.Errorf("catalog database not connected")
	}

	runRow, err := convert.BuildRunToGorm(run)
	if err != nil {
		return err
	}
	if err := b.mgr.DB.Create(runRow).Error; err != nil {
		return fmt.Errorf("failed to insert build run for '%s': %w", run.Character, err)
	}

	tableRow, err := convert.TableToGorm(table)
	if err != nil {
		return err
	}
	tableRow.BuildRunID = runRow.ID
	if err := b.mgr.DB.Create(tableRow).Error; err != nil {
		return fmt.Errorf("failed to insert character table for '%s': %w", table.Character, err)
	}

	return nil
}
