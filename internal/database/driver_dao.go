package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/licensing/internal/model"
)

const _driversTable = "drivers"

type DriverDAO struct {
	Logger *slog.Logger
	Executor
}

func NewDriverDAO(logger *slog.Logger, exec Executor) *DriverDAO {
	return &DriverDAO{
		Logger:   logger.With("dao", "driver"),
		Executor: exec,
	}
}

type FindDriverFilter struct {
	// Name matches first or last name, case-insensitively, as a substring.
	Name *string
}

func (dao *DriverDAO) Find(ctx context.Context, filter FindDriverFilter, opts FindOptions) ([]model.Driver, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_driversTable).
		OrderBy("last_name ASC", "first_name ASC", "id ASC")

	if filter.Name != nil && *filter.Name != "" {
		b = b.Where(nameMatches(*filter.Name))
	}

	return selectMany[model.Driver](ctx, dao.Logger.With("query", "find"), dao, opts.apply(b))
}

func nameMatches(name string) squirrel.Sqlizer {
	pattern := containsPattern(name)
	return squirrel.Or{
		squirrel.Expr(`first_name ILIKE ? ESCAPE '\'`, pattern),
		squirrel.Expr(`last_name ILIKE ? ESCAPE '\'`, pattern),
	}
}

func (dao *DriverDAO) Get(ctx context.Context, id model.ID) (model.Driver, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_driversTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	return getOne[model.Driver](ctx, dao.Logger.With("query", "get"), dao, "driver", b)
}

// GetForUpdate locks the driver row until the surrounding transaction ends.
func (dao *DriverDAO) GetForUpdate(ctx context.Context, id model.ID) (model.Driver, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_driversTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		Suffix("FOR UPDATE")

	return getOne[model.Driver](ctx, dao.Logger.With("query", "getForUpdate"), dao, "driver", b)
}

func (dao *DriverDAO) GetByNationalID(ctx context.Context, nationalID string) (model.Driver, error) {
	b := dao.StatementBuilder().
		Select("*").
		From(_driversTable).
		Where(squirrel.Eq{"national_id": nationalID}).
		Limit(1)

	return getOne[model.Driver](ctx, dao.Logger.With("query", "getByNationalId"), dao, "driver", b)
}

type DriverContact struct {
	Address   *string
	Phone     *string
	Email     *string
	BloodType *model.BloodType
}

func ContactOf(d model.Driver) DriverContact {
	return DriverContact{
		Address:   d.Address,
		Phone:     d.Phone,
		Email:     d.Email,
		BloodType: d.BloodType,
	}
}

type InsertDriverDTO struct {
	NationalID         string
	FirstName          string
	LastName           string
	BirthDate          time.Time
	Contact            DriverContact
	DocumentsValidated bool
	Notes              string
}

func NewInsertDriverDTO(d model.Driver) InsertDriverDTO {
	return InsertDriverDTO{
		NationalID:         d.NationalID,
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		BirthDate:          d.BirthDate,
		Contact:            ContactOf(d),
		DocumentsValidated: d.DocumentsValidated,
		Notes:              d.Notes,
	}
}

func (dao *DriverDAO) Insert(ctx context.Context, dto InsertDriverDTO) (model.ID, error) {
	b := dao.StatementBuilder().
		Insert(_driversTable).
		Columns(
			"national_id", "first_name", "last_name", "birth_date",
			"address", "phone", "email", "blood_type",
			"documents_validated", "notes",
		).
		Values(
			dto.NationalID, dto.FirstName, dto.LastName, dto.BirthDate,
			dto.Contact.Address, dto.Contact.Phone, dto.Contact.Email, bloodTypeArg(dto.Contact.BloodType),
			dto.DocumentsValidated, dto.Notes,
		)

	return insertReturningID(ctx, dao.Logger.With("query", "insert"), dao, "driver", b)
}

// UpdateDriverDTO changes only the non-nil fields. A non-nil Contact
// overwrites all four contact columns, nil members becoming NULL.
type UpdateDriverDTO struct {
	NationalID         *string
	FirstName          *string
	LastName           *string
	BirthDate          *time.Time
	Contact            *DriverContact
	DocumentsValidated *bool
	Notes              *string
}

func NewUpdateDriverDTO(d model.Driver) UpdateDriverDTO {
	contact := ContactOf(d)
	return UpdateDriverDTO{
		NationalID: &d.NationalID,
		FirstName:  &d.FirstName,
		LastName:   &d.LastName,
		BirthDate:  &d.BirthDate,
		Contact:    &contact,

		DocumentsValidated: &d.DocumentsValidated,
		Notes:              &d.Notes,
	}
}

func (dao *DriverDAO) Update(ctx context.Context, id model.ID, dto UpdateDriverDTO) error {
	data := make(map[string]any, 11)
	data["updated_at"] = time.Now()
	if dto.NationalID != nil {
		data["national_id"] = *dto.NationalID
	}
	if dto.FirstName != nil {
		data["first_name"] = *dto.FirstName
	}
	if dto.LastName != nil {
		data["last_name"] = *dto.LastName
	}
	if dto.BirthDate != nil {
		data["birth_date"] = *dto.BirthDate
	}
	if dto.Contact != nil {
		data["address"] = dto.Contact.Address
		data["phone"] = dto.Contact.Phone
		data["email"] = dto.Contact.Email
		data["blood_type"] = bloodTypeArg(dto.Contact.BloodType)
	}
	if dto.DocumentsValidated != nil {
		data["documents_validated"] = *dto.DocumentsValidated
	}
	if dto.Notes != nil {
		data["notes"] = *dto.Notes
	}

	b := dao.StatementBuilder().
		Update(_driversTable).
		SetMap(data).
		Where(squirrel.Eq{"id": id})

	return execOne(ctx, dao.Logger.With("query", "update"), dao, "driver", b)
}

func (dao *DriverDAO) Delete(ctx context.Context, id model.ID) error {
	b := dao.StatementBuilder().
		Delete(_driversTable).
		Where(squirrel.Eq{"id": id})

	return execOne(ctx, dao.Logger.With("query", "delete"), dao, "driver", b)
}

func bloodTypeArg(bt *model.BloodType) any {
	if bt == nil {
		return nil
	}
	return string(*bt)
}
