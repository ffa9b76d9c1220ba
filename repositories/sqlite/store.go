package sqlite

import (
	"candidate-notes/repositories"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) the database file at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite serializes writers anyway; one connection avoids SQLITE_BUSY between them
	db.SetMaxOpenConns(1)
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewStore wires every repository onto one SQLite database.
// Closing the store closes the database.
func NewStore(db *sql.DB) repositories.Store {
	return repositories.Store{
		Users:         NewUserRepository(db),
		Candidates:    NewCandidateRepository(db),
		Notes:         NewNoteRepository(db),
		Notifications: NewNotificationRepository(db),
		Close:         db.Close,
	}
}

func toTime(nanos int64) time.Time {
	return time.Unix(0, nanos).UTC()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
