package postgre

import (
	"database/sql"
	"fmt"

	"breeze/internal/task/repository"
	"breeze/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	newID func() string
}

// New creates a new PostgreSQL-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: newUUID}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
