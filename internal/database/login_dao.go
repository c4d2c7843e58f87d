package database

import (
	"context"
	"log/slog"

	"github.com/protomem/licensing/internal/model"
)

type LoginDAO struct {
	Logger *slog.Logger
	Executor
}

func NewLoginDAO(logger *slog.Logger, exec Executor) *LoginDAO {
	return &LoginDAO{
		Logger:   logger.With("dao", "login"),
		Executor: exec,
	}
}

// Find lists login records joined with usernames, newest first.
func (dao *LoginDAO) Find(ctx context.Context, opts FindOptions) ([]model.LoginRecord, error) {
	b := dao.StatementBuilder().
		Select("l.id", "l.user_id", "u.username", "l.ip", "l.logged_in_at").
		From("login_records l").
		Join("users u ON u.id = l.user_id").
		OrderBy("l.logged_in_at DESC", "l.id DESC")

	return selectMany[model.LoginRecord](ctx, dao.Logger.With("query", "find"), dao, opts.apply(b))
}

type InsertLoginRecordDTO struct {
	UserID model.ID
	IP     string
}

func (dao *LoginDAO) Insert(ctx context.Context, dto InsertLoginRecordDTO) (model.ID, error) {
	b := dao.StatementBuilder().
		Insert("login_records").
		Columns("user_id", "ip").
		Values(dto.UserID, dto.IP)

	return insertReturningID(ctx, dao.Logger.With("query", "insert"), dao, "login record", b)
}
