package store

import (
	"database/sql"

	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
