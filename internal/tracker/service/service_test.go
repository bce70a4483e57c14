package service

import (
	"path/filepath"
	"testing"

	"github.com/crewlabs/crewlog/internal/tracker/store"
	"github.com/crewlabs/crewlog/internal/tracker/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway sqlite database with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "crewlog_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}
