package model

import (
	"strings"
	"time"

	"github.com/protomem/licensing/internal/validator"
)

const MinimumAge = 18

type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

var _bloodTypes = []BloodType{
	BloodTypeAPositive, BloodTypeANegative,
	BloodTypeBPositive, BloodTypeBNegative,
	BloodTypeABPositive, BloodTypeABNegative,
	BloodTypeOPositive, BloodTypeONegative,
}

func BloodTypes() []BloodType {
	return append([]BloodType(nil), _bloodTypes...)
}

func ParseBloodType(s string) (BloodType, error) {
	bt := BloodType(strings.ToUpper(strings.TrimSpace(s)))
	if !validator.PermittedValue(bt, _bloodTypes...) {
		return "", NewInvalidDataError("bloodType", "must be one of A+, A-, B+, B-, AB+, AB-, O+, O-")
	}
	return bt, nil
}

// Driver is a person who may hold licenses.
//
// NationalID is unique across drivers. Names are stored trimmed and
// upper-cased. Optional contact fields are nil when absent.
type Driver struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	NationalID string    `json:"nationalId" db:"national_id"`
	FirstName  string    `json:"firstName" db:"first_name"`
	LastName   string    `json:"lastName" db:"last_name"`
	BirthDate  time.Time `json:"birthDate" db:"birth_date"`

	Address   *string    `json:"address,omitempty" db:"address"`
	Phone     *string    `json:"phone,omitempty" db:"phone"`
	Email     *string    `json:"email,omitempty" db:"email"`
	BloodType *BloodType `json:"bloodType,omitempty" db:"blood_type"`

	DocumentsValidated bool   `json:"documentsValidated" db:"documents_validated"`
	Notes              string `json:"notes" db:"notes"`
}

func (d *Driver) SetNationalID(v string) error {
	v = strings.TrimSpace(v)
	if !validator.IsNationalIDFormat(v) {
		return NewInvalidDataError("nationalId", "must contain exactly 10 digits")
	}
	d.NationalID = v
	return nil
}

func (d *Driver) SetFirstName(v string) error {
	if !validator.NotBlank(v) {
		return NewInvalidDataError("firstName", "cannot be blank")
	}
	d.FirstName = normalizeName(v)
	return nil
}

func (d *Driver) SetLastName(v string) error {
	if !validator.NotBlank(v) {
		return NewInvalidDataError("lastName", "cannot be blank")
	}
	d.LastName = normalizeName(v)
	return nil
}

func (d *Driver) SetBirthDate(v time.Time) {
	if v.IsZero() {
		d.BirthDate = time.Time{}
		return
	}
	d.BirthDate = Date(v)
}

// SetAddress, SetPhone, SetEmail and SetBloodType clear the field on an empty value.

func (d *Driver) SetAddress(v string) {
	d.Address = optional(strings.TrimSpace(v))
}

func (d *Driver) SetPhone(v string) error {
	v = strings.TrimSpace(v)
	if v != "" && !validator.IsPhone(v) {
		return NewInvalidDataError("phone", "must contain 9 or 10 digits")
	}
	d.Phone = optional(v)
	return nil
}

func (d *Driver) SetEmail(v string) error {
	v = strings.TrimSpace(v)
	if v != "" && !validator.IsEmail(v) {
		return NewInvalidDataError("email", "must be a valid email address")
	}
	d.Email = optional(v)
	return nil
}

func (d *Driver) SetBloodType(v string) error {
	if strings.TrimSpace(v) == "" {
		d.BloodType = nil
		return nil
	}
	bt, err := ParseBloodType(v)
	if err != nil {
		return err
	}
	d.BloodType = &bt
	return nil
}

func (d Driver) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// Age is the number of whole years between the birth date and now, 0 when
// the birth date is unknown.
func (d Driver) Age(now time.Time) int {
	if d.BirthDate.IsZero() {
		return 0
	}

	by, bm, bd := d.BirthDate.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	if age < 0 {
		return 0
	}

	return age
}

// Validate runs every whole-record check and reports all violations at once.
func (d Driver) Validate(now time.Time) error {
	var violations []string

	if !validator.NationalID(d.NationalID) {
		violations = append(violations, "national id is invalid (check digit mismatch)")
	}
	if d.Age(now) < MinimumAge {
		violations = append(violations, "driver must be at least 18 years old")
	}
	if !validator.NotBlank(d.FirstName) {
		violations = append(violations, "first name is required")
	}
	if !validator.NotBlank(d.LastName) {
		violations = append(violations, "last name is required")
	}
	if d.BirthDate.IsZero() {
		violations = append(violations, "birth date is required")
	}

	if len(violations) > 0 {
		return NewInvalidDocumentError("driver validation failed", violations...)
	}

	return nil
}

func (d *Driver) ApplyDocumentValidation(allValid bool, notes string) {
	d.DocumentsValidated = allValid
	d.Notes = notes
}

func normalizeName(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
