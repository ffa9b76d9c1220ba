package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a small Badger database inside the test's temp dir.
func openTestStore(t *testing.T) Store {
	t.Helper()
	// Reduced to 16 Mo for testing
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	store := NewBadgerStore(db, slog.Default())
	t.Cleanup(func() { _ = store.Close() })
	return store
}
