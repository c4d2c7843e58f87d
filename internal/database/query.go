package database

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/protomem/licensing/internal/model"
)

var _likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere in the
// value. It pairs with ESCAPE '\'.
func containsPattern(s string) string {
	return "%" + _likeEscaper.Replace(s) + "%"
}

func getOne[T any](ctx context.Context, logger *slog.Logger, exec Executor, entity string, b squirrel.Sqlizer) (T, error) {
	var dst T

	query, args, err := b.ToSql()
	if err != nil {
		return dst, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := exec.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&dst); err != nil {
		if IsNoRows(err) {
			logger.Debug("success query execute", "found", false)
			return dst, model.NewError(entity, model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return dst, err
	}

	logger.Debug("success query execute", "found", true)

	return dst, nil
}

func selectMany[T any](ctx context.Context, logger *slog.Logger, exec Executor, b squirrel.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return []T{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	items := make([]T, 0)
	if err := sqlx.SelectContext(ctx, exec, &items, query, args...); err != nil {
		if IsNoRows(err) {
			logger.Debug("success query execute", "count", 0)
			return []T{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []T{}, err
	}

	logger.Debug("success query execute", "count", len(items))

	return items, nil
}

func insertReturningID(ctx context.Context, logger *slog.Logger, exec Executor, entity string, b squirrel.InsertBuilder) (model.ID, error) {
	query, args, err := b.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	if err := exec.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return 0, model.NewError(entity, model.ErrExists)
		}
		if IsForeignKeyViolation(err) {
			return 0, model.NewError(entity+" reference", model.ErrNotFound)
		}

		return 0, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

// execAffected runs b and reports how many rows it touched.
func execAffected(ctx context.Context, logger *slog.Logger, exec Executor, entity string, b squirrel.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return 0, model.NewError(entity, model.ErrExists)
		}

		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	logger.Debug("success query execute", "affected", affected)

	return affected, nil
}

// execOne is execAffected for statements that must hit exactly one row.
func execOne(ctx context.Context, logger *slog.Logger, exec Executor, entity string, b squirrel.Sqlizer) error {
	affected, err := execAffected(ctx, logger, exec, entity, b)
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.NewError(entity, model.ErrNotFound)
	}
	return nil
}
