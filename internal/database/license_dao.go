package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/licensing/internal/model"
)

const _licensesTable = "licenses"

type LicenseDAO struct {
	Logger *slog.Logger
	Executor
}

func NewLicenseDAO(logger *slog.Logger, exec Executor) *LicenseDAO {
	return &LicenseDAO{
		Logger:   logger.With("dao", "license"),
		Executor: exec,
	}
}

type FindLicenseFilter struct {
	// ValidOn keeps active licenses not yet expired on that date.
	ValidOn *time.Time
}

func (dao *LicenseDAO) Find(ctx context.Context, filter FindLicenseFilter, opts FindOptions) ([]model.License, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_licensesTable).
		OrderBy("issued_on DESC", "id DESC")

	if filter.ValidOn != nil {
		b = b.Where(squirrel.Eq{"active": true}).
			Where(squirrel.GtOrEq{"expires_on": model.Date(*filter.ValidOn)})
	}

	return selectMany[model.License](ctx, dao.Logger.With("query", "find"), dao, opts.apply(b))
}

func (dao *LicenseDAO) FindByDriver(ctx context.Context, driverID model.ID) ([]model.License, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_licensesTable).
		Where(squirrel.Eq{"driver_id": driverID}).
		OrderBy("issued_on DESC", "id DESC")

	return selectMany[model.License](ctx, dao.Logger.With("query", "findByDriver"), dao, b)
}

func (dao *LicenseDAO) Get(ctx context.Context, id model.ID) (model.License, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_licensesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	return getOne[model.License](ctx, dao.Logger.With("query", "get"), dao, "license", b)
}

// GetByNumber returns the most recently issued license carrying number.
func (dao *LicenseDAO) GetByNumber(ctx context.Context, number string) (model.License, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_licensesTable).
		Where(squirrel.Eq{"number": number}).
		OrderBy("issued_on DESC", "id DESC").
		Limit(1)

	return getOne[model.License](ctx, dao.Logger.With("query", "getByNumber"), dao, "license", b)
}

type InsertLicenseDTO struct {
	Number             string
	DriverID           model.ID
	Type               model.LicenseType
	IssuedOn           time.Time
	ExpiresOn          time.Time
	Active             bool
	PsychometricTestID *model.ID
	Notes              string
}

func NewInsertLicenseDTO(l model.License) InsertLicenseDTO {
	return InsertLicenseDTO{
		Number:             l.Number,
		DriverID:           l.DriverID,
		Type:               l.Type,
		IssuedOn:           l.IssuedOn,
		ExpiresOn:          l.ExpiresOn,
		Active:             l.Active,
		PsychometricTestID: l.PsychometricTestID,
		Notes:              l.Notes,
	}
}

func (dao *LicenseDAO) Insert(ctx context.Context, dto InsertLicenseDTO) (model.ID, error) {
	b := dao.StatementBuilder().
		Insert(_licensesTable).
		Columns("number", "driver_id", "type", "issued_on", "expires_on", "active", "psychometric_test_id", "notes").
		Values(
			dto.Number, dto.DriverID, string(dto.Type), dto.IssuedOn, dto.ExpiresOn,
			dto.Active, dto.PsychometricTestID, dto.Notes,
		)

	return insertReturningID(ctx, dao.Logger.With("query", "insert"), dao, "license", b)
}

type UpdateLicenseDTO struct {
	Active *bool
	Notes  *string
}

func (dao *LicenseDAO) Update(ctx context.Context, id model.ID, dto UpdateLicenseDTO) error {
	data := make(map[string]any, 3)
	data["updated_at"] = time.Now()
	if dto.Active != nil {
		data["active"] = *dto.Active
	}
	if dto.Notes != nil {
		data["notes"] = *dto.Notes
	}

	b := dao.StatementBuilder().
		Update(_licensesTable).
		SetMap(data).
		Where(squirrel.Eq{"id": id})

	return execOne(ctx, dao.Logger.With("query", "update"), dao, "license", b)
}

func (dao *LicenseDAO) Delete(ctx context.Context, id model.ID) error {
	b := dao.StatementBuilder().
		Delete(_licensesTable).
		Where(squirrel.Eq{"id": id})

	return execOne(ctx, dao.Logger.With("query", "delete"), dao, "license", b)
}

func (dao *LicenseDAO) DeleteByDriver(ctx context.Context, driverID model.ID) (int64, error) {
	b := dao.StatementBuilder().
		Delete(_licensesTable).
		Where(squirrel.Eq{"driver_id": driverID})

	return execAffected(ctx, dao.Logger.With("query", "deleteByDriver"), dao, "license", b)
}

func (dao *LicenseDAO) DeleteByTest(ctx context.Context, testID model.ID) (int64, error) {
	b := dao.StatementBuilder().
		Delete(_licensesTable).
		Where(squirrel.Eq{"psychometric_test_id": testID})

	return execAffected(ctx, dao.Logger.With("query", "deleteByTest"), dao, "license", b)
}

// DeleteByTestsOfDriver removes licenses of any driver issued against one of
// driverID's psychometric tests.
func (dao *LicenseDAO) DeleteByTestsOfDriver(ctx context.Context, driverID model.ID) (int64, error) {
	b := dao.StatementBuilder().
		Delete(_licensesTable).
		Where("psychometric_test_id IN (SELECT id FROM "+_testsTable+" WHERE driver_id = ?)", driverID)

	return execAffected(ctx, dao.Logger.With("query", "deleteByTestsOfDriver"), dao, "license", b)
}
