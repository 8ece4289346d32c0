// internal/storage/storage.go
package storage

import (
	"errors"

	"github.com/megagame/spritec/pkg/core"
)

// Backend is the interface all artifact emitters must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// RecordTable persists one compiled character table together with its
	// build run summary.
	RecordTable(table *core.Table, run *core.BuildRun) error
}

// Exportable is an optional interface for backends that write a file per
// character, so callers can report the artifact path.
type Exportable interface {
	LastExportPath() string
}

// Multi fans every table out to a set of backends. Errors are joined so one
// failing emitter does not hide the artifacts the others produced.
type Multi struct {
	backends []Backend
}

func NewMulti(backends ...Backend) *Multi {
	return &Multi{backends: backends}
}

func (m *Multi) Init() error {
	for _, b := range m.backends {
		if err := b.Init(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) Close() error {
	var errs []error
	for _, b := range m.backends {
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) RecordTable(table *core.Table, run *core.BuildRun) error {
	var errs []error
	for _, b := range m.backends {
		if err := b.RecordTable(table, run); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
