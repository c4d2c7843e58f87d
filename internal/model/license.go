package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	ValidityYears    = 5
	ExpiringSoonDays = 30

	_numberPrefix = "EC"
)

type LicenseType string

const (
	LicenseTypeA LicenseType = "A"
	LicenseTypeB LicenseType = "B"
	LicenseTypeC LicenseType = "C"
	LicenseTypeD LicenseType = "D"
	LicenseTypeE LicenseType = "E"
	LicenseTypeF LicenseType = "F"
)

var _licenseTypes = []LicenseType{
	LicenseTypeA, LicenseTypeB, LicenseTypeC, LicenseTypeD, LicenseTypeE, LicenseTypeF,
}

var _licenseTypeNames = map[LicenseType]string{
	LicenseTypeA: "Type A - Motorcycles and mopeds",
	LicenseTypeB: "Type B - Light vehicles up to 3500 kg",
	LicenseTypeC: "Type C - Heavy cargo vehicles",
	LicenseTypeD: "Type D - Public passenger transport",
	LicenseTypeE: "Type E - Special vehicles and machinery",
	LicenseTypeF: "Type F - Professional commercial transport",
}

func LicenseTypes() []LicenseType {
	return append([]LicenseType(nil), _licenseTypes...)
}

func ParseLicenseType(s string) (LicenseType, error) {
	t := LicenseType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", NewInvalidDataError("type", "must be one of A, B, C, D, E, F")
	}
	return t, nil
}

func (t LicenseType) IsValid() bool {
	_, ok := _licenseTypeNames[t]
	return ok
}

func (t LicenseType) Name() string {
	if name, ok := _licenseTypeNames[t]; ok {
		return name
	}
	return "Type " + string(t)
}

type LicenseStatus string

const (
	LicenseStatusInactive     LicenseStatus = "INACTIVE"
	LicenseStatusExpired      LicenseStatus = "EXPIRED"
	LicenseStatusExpiringSoon LicenseStatus = "EXPIRING_SOON"
	LicenseStatusValid        LicenseStatus = "VALID"
)

// License is an issued driving credential of one type.
//
// ExpiresOn is never before IssuedOn. PsychometricTestID, when set, names
// the passed test the license was issued against.
type License struct {
	ID        ID        `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Number             string      `json:"number" db:"number"`
	DriverID           ID          `json:"driverId" db:"driver_id"`
	Type               LicenseType `json:"type" db:"type"`
	IssuedOn           time.Time   `json:"issuedOn" db:"issued_on"`
	ExpiresOn          time.Time   `json:"expiresOn" db:"expires_on"`
	Active             bool        `json:"active" db:"active"`
	PsychometricTestID *ID         `json:"psychometricTestId,omitempty" db:"psychometric_test_id"`
	Notes              string      `json:"notes" db:"notes"`
}

// NewLicense returns an active license valid for ValidityYears from issuedOn.
func NewLicense(driverID ID, t LicenseType, issuedOn time.Time) License {
	issuedOn = Date(issuedOn)
	return License{
		DriverID:  driverID,
		Type:      t,
		IssuedOn:  issuedOn,
		ExpiresOn: AddYears(issuedOn, ValidityYears),
		Active:    true,
	}
}

// FormatLicenseNumber builds EC-{type}-{issue year}-{last four national id digits}.
// Collisions are possible and not checked.
func FormatLicenseNumber(t LicenseType, issuedOn time.Time, nationalID string) string {
	suffix := nationalID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return fmt.Sprintf("%s-%s-%d-%s", _numberPrefix, t, issuedOn.Year(), suffix)
}

func (l *License) GenerateNumber(nationalID string) {
	l.Number = FormatLicenseNumber(l.Type, l.IssuedOn, nationalID)
}

func (l License) IsExpired(now time.Time) bool {
	return Date(now).After(Date(l.ExpiresOn))
}

func (l License) IsValid(now time.Time) bool {
	return l.Active && !l.IsExpired(now)
}

// DaysUntilExpiry is negative once the license has expired.
func (l License) DaysUntilExpiry(now time.Time) int {
	return daysBetween(now, l.ExpiresOn)
}

func (l License) Status(now time.Time) LicenseStatus {
	switch {
	case !l.Active:
		return LicenseStatusInactive
	case l.IsExpired(now):
		return LicenseStatusExpired
	case l.DaysUntilExpiry(now) < ExpiringSoonDays:
		return LicenseStatusExpiringSoon
	default:
		return LicenseStatusValid
	}
}

// StatusText renders the status for people, with the remaining days when
// the license is about to expire.
func (l License) StatusText(now time.Time) string {
	status := l.Status(now)
	switch status {
	case LicenseStatusExpiringSoon:
		return fmt.Sprintf("EXPIRING SOON (%d days)", l.DaysUntilExpiry(now))
	default:
		return string(status)
	}
}

func (l *License) Deactivate(reason string) {
	l.Active = false
	if reason = strings.TrimSpace(reason); reason != "" {
		l.Notes = reason
	}
}

func (l License) Validate() error {
	var violations []string

	if l.DriverID == 0 {
		violations = append(violations, "driver is required")
	}
	if !l.Type.IsValid() {
		violations = append(violations, "license type is invalid")
	}
	if l.IssuedOn.IsZero() {
		violations = append(violations, "issue date is required")
	}
	if l.ExpiresOn.IsZero() {
		violations = append(violations, "expiry date is required")
	}
	if !l.IssuedOn.IsZero() && !l.ExpiresOn.IsZero() && l.ExpiresOn.Before(l.IssuedOn) {
		violations = append(violations, "expiry date cannot be before issue date")
	}
	if strings.TrimSpace(l.Number) == "" {
		violations = append(violations, "license number is required")
	}

	if len(violations) > 0 {
		return NewInvalidDocumentError("license validation failed", violations...)
	}

	return nil
}
