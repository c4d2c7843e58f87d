package service

import (
	"context"
	"errors"

	"github.com/protomem/licensing/internal/database"
	"github.com/protomem/licensing/internal/model"
)

type DriverStore interface {
	Find(ctx context.Context, filter database.FindDriverFilter, opts database.FindOptions) ([]model.Driver, error)
	Get(ctx context.Context, id model.ID) (model.Driver, error)
	GetForUpdate(ctx context.Context, id model.ID) (model.Driver, error)
	GetByNationalID(ctx context.Context, nationalID string) (model.Driver, error)
	Insert(ctx context.Context, dto database.InsertDriverDTO) (model.ID, error)
	Update(ctx context.Context, id model.ID, dto database.UpdateDriverDTO) error
	Delete(ctx context.Context, id model.ID) error
}

type LicenseStore interface {
	Find(ctx context.Context, filter database.FindLicenseFilter, opts database.FindOptions) ([]model.License, error)
	FindByDriver(ctx context.Context, driverID model.ID) ([]model.License, error)
	Get(ctx context.Context, id model.ID) (model.License, error)
	GetByNumber(ctx context.Context, number string) (model.License, error)
	Insert(ctx context.Context, dto database.InsertLicenseDTO) (model.ID, error)
	Update(ctx context.Context, id model.ID, dto database.UpdateLicenseDTO) error
	Delete(ctx context.Context, id model.ID) error
	DeleteByDriver(ctx context.Context, driverID model.ID) (int64, error)
	DeleteByTest(ctx context.Context, testID model.ID) (int64, error)
	DeleteByTestsOfDriver(ctx context.Context, driverID model.ID) (int64, error)
}

type TestStore interface {
	FindByDriver(ctx context.Context, driverID model.ID) ([]model.PsychometricTest, error)
	Get(ctx context.Context, id model.ID) (model.PsychometricTest, error)
	Insert(ctx context.Context, dto database.InsertPsychometricTestDTO) (model.ID, error)
	Delete(ctx context.Context, id model.ID) error
	DeleteByDriver(ctx context.Context, driverID model.ID) (int64, error)
}

// Repository groups the licensing stores. Atomic hands fn a Repository
// whose stores share one transaction; fn's error aborts all of its writes.
type Repository interface {
	Drivers() DriverStore
	Licenses() LicenseStore
	Tests() TestStore
	Atomic(ctx context.Context, fn func(repo Repository) error) error
}

type UserStore interface {
	Find(ctx context.Context, opts database.FindOptions) ([]model.User, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id model.ID) (model.User, error)
	GetActiveByUsername(ctx context.Context, username string) (model.User, error)
	Insert(ctx context.Context, dto database.InsertUserDTO) (model.ID, error)
	Update(ctx context.Context, id model.ID, dto database.UpdateUserDTO) error
}

type LoginStore interface {
	Find(ctx context.Context, opts database.FindOptions) ([]model.LoginRecord, error)
	Insert(ctx context.Context, dto database.InsertLoginRecordDTO) (model.ID, error)
}

// storeError keeps domain errors intact and wraps anything else as a
// DatabaseError for op.
func storeError(op string, err error) error {
	var (
		dataErr *model.InvalidDataError
		docErr  *model.InvalidDocumentError
		dbErr   *model.DatabaseError
	)

	switch {
	case errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrExists),
		errors.As(err, &dataErr),
		errors.As(err, &docErr),
		errors.As(err, &dbErr):
		return err
	default:
		return model.NewDatabaseError(op, err)
	}
}
