package service

import (
	"context"
	"log/slog"

	"github.com/protomem/licensing/internal/database"
)

// PostgresRepository backs Repository with the database DAOs.
type PostgresRepository struct {
	logger *slog.Logger
	db     *database.DB
	exec   database.Executor
	inTx   bool
}

func NewPostgresRepository(logger *slog.Logger, db *database.DB) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		db:     db,
		exec:   db,
	}
}

func (r *PostgresRepository) Drivers() DriverStore {
	return database.NewDriverDAO(r.logger, r.exec)
}

func (r *PostgresRepository) Licenses() LicenseStore {
	return database.NewLicenseDAO(r.logger, r.exec)
}

func (r *PostgresRepository) Tests() TestStore {
	return database.NewPsychometricTestDAO(r.logger, r.exec)
}

func (r *PostgresRepository) Atomic(ctx context.Context, fn func(repo Repository) error) error {
	if r.inTx {
		return fn(r)
	}

	return r.db.InTx(ctx, nil, func(tx *database.Tx) error {
		return fn(&PostgresRepository{
			logger: r.logger,
			db:     r.db,
			exec:   tx,
			inTx:   true,
		})
	})
}
