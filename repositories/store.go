package repositories

import (
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// NewBadgerStore wires every repository onto one Badger database.
// Closing the store closes the database.
func NewBadgerStore(db *badger.DB, log *slog.Logger) Store {
	return Store{
		Users:         NewUserRepository(db),
		Candidates:    NewCandidateRepository(db),
		Notes:         NewNoteRepository(db, log),
		Notifications: NewNotificationRepository(db),
		Close:         db.Close,
	}
}

// OpenBadger opens the database at path with badger's own logs limited to warnings.
func OpenBadger(path string) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
}
