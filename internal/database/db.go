package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/licensing/assets"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	_defaultTimeout   = 3 * time.Second
	_defaultTxTimeout = 10 * time.Second
	_driverName       = "pgx"
)

// Executor runs statements either on the pool or inside a transaction.
type Executor interface {
	sqlx.ExtContext
	StatementBuilder() squirrel.StatementBuilderType
}

type DB struct {
	*sqlx.DB
	Builder squirrel.StatementBuilderType
}

// New connects to dsn, a postgres:// URL, and applies the embedded
// migrations when automigrate is set.
func New(logger *slog.Logger, dsn string, automigrate bool) (*DB, error) {
	logger = logger.With("module", "database")

	ctx, cancel := context.WithTimeout(context.Background(), _defaultTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, _driverName, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	if automigrate {
		if err := migrateUp(dsn); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("migrations applied")
	}

	return &DB{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

func migrateUp(dsn string) error {
	iofsDriver, err := iofs.New(assets.EmbeddedFiles, "migrations")
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", iofsDriver, dsn)
	if err != nil {
		return err
	}
	defer migrator.Close()

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		return nil
	case err != nil:
		return err
	}

	return nil
}

func (db *DB) StatementBuilder() squirrel.StatementBuilderType {
	return db.Builder
}

type Tx struct {
	*sqlx.Tx
	Builder squirrel.StatementBuilderType
}

func (tx *Tx) StatementBuilder() squirrel.StatementBuilderType {
	return tx.Builder
}

// InTx runs fn in one transaction. The transaction commits only when fn
// returns nil; an error or a panic rolls every statement back.
func (db *DB) InTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *Tx) error) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, _defaultTxTimeout)
		defer cancel()
	}

	sqlTx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = sqlTx.Rollback() }()

	if err := fn(&Tx{Tx: sqlTx, Builder: db.Builder}); err != nil {
		return err
	}

	return sqlTx.Commit()
}
