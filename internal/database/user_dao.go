package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/licensing/internal/model"
)

const _usersTable = "users"

type UserDAO struct {
	Logger *slog.Logger
	Executor
}

func NewUserDAO(logger *slog.Logger, exec Executor) *UserDAO {
	return &UserDAO{
		Logger:   logger.With("dao", "user"),
		Executor: exec,
	}
}

func (dao *UserDAO) Find(ctx context.Context, opts FindOptions) ([]model.User, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_usersTable).
		OrderBy("created_at ASC", "id ASC")

	return selectMany[model.User](ctx, dao.Logger.With("query", "find"), dao, opts.apply(b))
}

func (dao *UserDAO) Count(ctx context.Context) (int, error) {
	logger := dao.Logger.With("query", "count")

	query, args, err := dao.StatementBuilder().
		Select("COUNT(*)").
		From(_usersTable).
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var count int
	if err := dao.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	logger.Debug("success query execute", "countUsers", count)

	return count, nil
}

func (dao *UserDAO) Get(ctx context.Context, id model.ID) (model.User, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_usersTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	return getOne[model.User](ctx, dao.Logger.With("query", "get"), dao, "user", b)
}

// GetActiveByUsername ignores disabled accounts.
func (dao *UserDAO) GetActiveByUsername(ctx context.Context, username string) (model.User, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_usersTable).
		Where(squirrel.Eq{"username": username, "active": true}).
		Limit(1)

	return getOne[model.User](ctx, dao.Logger.With("query", "getActiveByUsername"), dao, "user", b)
}

type InsertUserDTO struct {
	Username     string
	FullName     string
	PasswordHash string
	Role         model.Role
	Active       bool
}

func (dao *UserDAO) Insert(ctx context.Context, dto InsertUserDTO) (model.ID, error) {
	b := dao.StatementBuilder().
		Insert(_usersTable).
		Columns("username", "full_name", "password_hash", "role", "active").
		Values(dto.Username, dto.FullName, dto.PasswordHash, string(dto.Role), dto.Active)

	return insertReturningID(ctx, dao.Logger.With("query", "insert"), dao, "user", b)
}

type UpdateUserDTO struct {
	Username     *string
	FullName     *string
	PasswordHash *string
	Role         *model.Role
	Active       *bool
}

func (dao *UserDAO) Update(ctx context.Context, id model.ID, dto UpdateUserDTO) error {
	data := make(map[string]any, 6)
	data["updated_at"] = time.Now()
	if dto.Username != nil {
		data["username"] = *dto.Username
	}
	if dto.FullName != nil {
		data["full_name"] = *dto.FullName
	}
	if dto.PasswordHash != nil {
		data["password_hash"] = *dto.PasswordHash
	}
	if dto.Role != nil {
		data["role"] = string(*dto.Role)
	}
	if dto.Active != nil {
		data["active"] = *dto.Active
	}

	b := dao.StatementBuilder().
		Update(_usersTable).
		SetMap(data).
		Where(squirrel.Eq{"id": id})

	return execOne(ctx, dao.Logger.With("query", "update"), dao, "user", b)
}
