package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/licensing/internal/model"
)

const _testsTable = "psychometric_tests"

type PsychometricTestDAO struct {
	Logger *slog.Logger
	Executor
}

func NewPsychometricTestDAO(logger *slog.Logger, exec Executor) *PsychometricTestDAO {
	return &PsychometricTestDAO{
		Logger:   logger.With("dao", "psychometricTest"),
		Executor: exec,
	}
}

// FindByDriver lists a driver's attempts, newest first.
func (dao *PsychometricTestDAO) FindByDriver(ctx context.Context, driverID model.ID) ([]model.PsychometricTest, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_testsTable).
		Where(squirrel.Eq{"driver_id": driverID}).
		OrderBy("taken_at DESC", "id DESC")

	return selectMany[model.PsychometricTest](ctx, dao.Logger.With("query", "findByDriver"), dao, b)
}

func (dao *PsychometricTestDAO) Get(ctx context.Context, id model.ID) (model.PsychometricTest, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_testsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	return getOne[model.PsychometricTest](ctx, dao.Logger.With("query", "get"), dao, "psychometric test", b)
}

type InsertPsychometricTestDTO struct {
	DriverID model.ID
	Scores   model.Scores
	TakenAt  time.Time
	Notes    string
}

func NewInsertPsychometricTestDTO(t model.PsychometricTest) InsertPsychometricTestDTO {
	return InsertPsychometricTestDTO{
		DriverID: t.DriverID,
		Scores:   t.Scores,
		TakenAt:  t.TakenAt,
		Notes:    t.Notes,
	}
}

func (dao *PsychometricTestDAO) Insert(ctx context.Context, dto InsertPsychometricTestDTO) (model.ID, error) {
	b := dao.StatementBuilder().
		Insert(_testsTable).
		Columns("driver_id", "reaction", "attention", "coordination", "perception", "psychological", "taken_at", "notes").
		Values(
			dto.DriverID,
			dto.Scores.Reaction, dto.Scores.Attention, dto.Scores.Coordination,
			dto.Scores.Perception, dto.Scores.Psychological,
			dto.TakenAt, dto.Notes,
		)

	return insertReturningID(ctx, dao.Logger.With("query", "insert"), dao, "psychometric test", b)
}

func (dao *PsychometricTestDAO) Delete(ctx context.Context, id model.ID) error {
	b := dao.StatementBuilder().
		Delete(_testsTable).
		Where(squirrel.Eq{"id": id})

	return execOne(ctx, dao.Logger.With("query", "delete"), dao, "psychometric test", b)
}

func (dao *PsychometricTestDAO) DeleteByDriver(ctx context.Context, driverID model.ID) (int64, error) {
	b := dao.StatementBuilder().
		Delete(_testsTable).
		Where(squirrel.Eq{"driver_id": driverID})

	return execAffected(ctx, dao.Logger.With("query", "deleteByDriver"), dao, "psychometric test", b)
}
