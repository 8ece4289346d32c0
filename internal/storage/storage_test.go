package storage

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megagame/spritec/internal/config"
	"github.com/megagame/spritec/pkg/core"
)

// fakeBackend counts calls and optionally fails.
type fakeBackend struct {
	initCalls   int
	closeCalls  int
	recordCalls int
	recordErr   error
}

func (f *fakeBackend) Init() error  { f.initCalls++; return nil }
func (f *fakeBackend) Close() error { f.closeCalls++; return nil }
func (f *fakeBackend) RecordTable(table *core.Table, run *core.BuildRun) error {
	f.recordCalls++
	return f.recordErr
}

func TestMulti_FansOut(t *testing.T) {
	a := &fakeBackend{}
	b := &fakeBackend{}
	m := NewMulti(a, b)

	require.NoError(t, m.Init())
	require.NoError(t, m.RecordTable(&core.Table{}, &core.BuildRun{}))
	require.NoError(t, m.Close())

	assert.Equal(t, 1, a.initCalls)
	assert.Equal(t, 1, b.recordCalls)
	assert.Equal(t, 1, a.closeCalls)
}

func TestMulti_RecordErrorDoesNotStopOthers(t *testing.T) {
	failing := &fakeBackend{recordErr: errors.New("disk full")}
	ok := &fakeBackend{}
	m := NewMulti(failing, ok)

	err := m.RecordTable(&core.Table{}, &core.BuildRun{})
	assert.Error(t, err)
	assert.Equal(t, 1, ok.recordCalls, "second backend should still record")
}

func TestNewFormatBackend(t *testing.T) {
	out := config.OutputConfig{Dir: t.TempDir(), Formats: []string{"jsmodule"}}

	b, err := NewFormatBackend("jsmodule", out)
	require.NoError(t, err)
	assert.NotNil(t, b)

	b, err = NewFormatBackend("jsonfile", out)
	require.NoError(t, err)
	assert.NotNil(t, b)

	_, err = NewFormatBackend("yaml", out)
	assert.Error(t, err)
}

func TestNewBackend_NothingConfigured(t *testing.T) {
	_, err := NewBackend(config.OutputConfig{}, config.CatalogConfig{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewBackend_Formats(t *testing.T) {
	out := config.OutputConfig{Dir: t.TempDir(), Formats: []string{"jsmodule", "jsonfile"}}
	b, err := NewBackend(out, config.CatalogConfig{}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, b.Init())
	require.NoError(t, b.Close())
}
