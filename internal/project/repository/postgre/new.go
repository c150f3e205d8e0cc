package postgre

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"breeze/internal/project/repository"
	"breeze/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	newID func() string
}

// New creates a PostgreSQL-backed Repository for the project domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("project/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewString}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("project/repository/postgre.%s", method)
}
