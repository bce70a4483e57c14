package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/crewlabs/crewlog/internal/tracker/store"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Users() store.Users       { return &usersRepo{db: s.db} }
func (s *Store) Projects() store.Projects { return &projectsRepo{db: s.db} }
func (s *Store) Tasks() store.Tasks       { return &tasksRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint translates a sqlite unique-constraint violation into the
// store sentinel. modernc.org/sqlite surfaces constraint failures as
// generic errors, so the message text is the only handle we have.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}
