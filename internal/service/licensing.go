package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/protomem/licensing/internal/database"
	"github.com/protomem/licensing/internal/model"
)

// IssuanceRecorder observes issuance outcomes.
type IssuanceRecorder interface {
	IncrementLicensesIssued(licenseType string)
	IncrementIssuanceRejections(reason string)
}

type nopRecorder struct{}

func (nopRecorder) IncrementLicensesIssued(string)     {}
func (nopRecorder) IncrementIssuanceRejections(string) {}

type Option func(*Licensing)

func WithClock(now func() time.Time) Option {
	return func(s *Licensing) {
		s.now = now
	}
}

func WithIssuanceRecorder(r IssuanceRecorder) Option {
	return func(s *Licensing) {
		if r != nil {
			s.recorder = r
		}
	}
}

// Licensing owns driver registration, psychometric tests and license issuance.
type Licensing struct {
	logger   *slog.Logger
	repo     Repository
	now      func() time.Time
	recorder IssuanceRecorder
}

func NewLicensing(logger *slog.Logger, repo Repository, opts ...Option) *Licensing {
	s := &Licensing{
		logger:   logger.With("module", "licensing"),
		repo:     repo,
		now:      time.Now,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DriverRecord is everything known about a driver at a glance.
type DriverRecord struct {
	Driver           model.Driver            `json:"driver"`
	Licenses         []model.License         `json:"licenses"`
	LatestPassedTest *model.PsychometricTest `json:"latestPassedTest,omitempty"`
}

// LicenseRecord is a license together with its holder and qualifying test.
type LicenseRecord struct {
	License model.License
	Driver  model.Driver
	Test    *model.PsychometricTest
}

func (s *Licensing) Now() time.Time {
	return s.now()
}

func (s *Licensing) RegisterDriver(ctx context.Context, driver model.Driver) (model.Driver, error) {
	if err := driver.Validate(s.now()); err != nil {
		return model.Driver{}, err
	}

	drivers := s.repo.Drivers()

	_, err := drivers.GetByNationalID(ctx, driver.NationalID)
	switch {
	case err == nil:
		return model.Driver{}, duplicateDriver(driver.NationalID)
	case !errors.Is(err, model.ErrNotFound):
		return model.Driver{}, storeError("register driver", err)
	}

	id, err := drivers.Insert(ctx, database.NewInsertDriverDTO(driver))
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			return model.Driver{}, duplicateDriver(driver.NationalID)
		}
		return model.Driver{}, storeError("register driver", err)
	}

	s.logger.Info("driver registered", "driverId", id)

	return s.GetDriver(ctx, id)
}

func (s *Licensing) UpdateDriver(ctx context.Context, driver model.Driver) (model.Driver, error) {
	if err := driver.Validate(s.now()); err != nil {
		return model.Driver{}, err
	}

	drivers := s.repo.Drivers()

	if _, err := s.requireDriver(ctx, drivers, driver.ID); err != nil {
		return model.Driver{}, err
	}

	other, err := drivers.GetByNationalID(ctx, driver.NationalID)
	switch {
	case err == nil && other.ID != driver.ID:
		return model.Driver{}, duplicateDriver(driver.NationalID)
	case err != nil && !errors.Is(err, model.ErrNotFound):
		return model.Driver{}, storeError("update driver", err)
	}

	if err := drivers.Update(ctx, driver.ID, database.NewUpdateDriverDTO(driver)); err != nil {
		if errors.Is(err, model.ErrExists) {
			return model.Driver{}, duplicateDriver(driver.NationalID)
		}
		return model.Driver{}, storeError("update driver", err)
	}

	return s.GetDriver(ctx, driver.ID)
}

func (s *Licensing) GetDriver(ctx context.Context, id model.ID) (model.Driver, error) {
	driver, err := s.repo.Drivers().Get(ctx, id)
	if err != nil {
		return model.Driver{}, storeError("get driver", err)
	}
	return driver, nil
}

func (s *Licensing) FindDriverByNationalID(ctx context.Context, nationalID string) (model.Driver, error) {
	driver, err := s.repo.Drivers().GetByNationalID(ctx, strings.TrimSpace(nationalID))
	if err != nil {
		return model.Driver{}, storeError("find driver by national id", err)
	}
	return driver, nil
}

func (s *Licensing) ListDrivers(ctx context.Context, opts database.FindOptions) ([]model.Driver, error) {
	drivers, err := s.repo.Drivers().Find(ctx, database.FindDriverFilter{}, opts)
	if err != nil {
		return nil, storeError("list drivers", err)
	}
	return drivers, nil
}

func (s *Licensing) SearchDrivers(ctx context.Context, name string, opts database.FindOptions) ([]model.Driver, error) {
	name = strings.TrimSpace(name)
	drivers, err := s.repo.Drivers().Find(ctx, database.FindDriverFilter{Name: &name}, opts)
	if err != nil {
		return nil, storeError("search drivers", err)
	}
	return drivers, nil
}

// DeleteDriver removes the driver with every license and test that depends
// on it, or nothing at all.
func (s *Licensing) DeleteDriver(ctx context.Context, id model.ID) error {
	err := s.repo.Atomic(ctx, func(repo Repository) error {
		if _, err := s.requireDriver(ctx, repo.Drivers(), id); err != nil {
			return err
		}

		byDriver, err := repo.Licenses().DeleteByDriver(ctx, id)
		if err != nil {
			return storeError("delete driver licenses", err)
		}

		byTests, err := repo.Licenses().DeleteByTestsOfDriver(ctx, id)
		if err != nil {
			return storeError("delete licenses referencing driver tests", err)
		}

		tests, err := repo.Tests().DeleteByDriver(ctx, id)
		if err != nil {
			return storeError("delete driver tests", err)
		}

		if err := repo.Drivers().Delete(ctx, id); err != nil {
			return storeError("delete driver", err)
		}

		s.logger.Info("driver deleted",
			"driverId", id, "deletedLicenses", byDriver+byTests, "deletedTests", tests)

		return nil
	})
	if err != nil {
		return storeError("delete driver", err)
	}

	return nil
}

func (s *Licensing) ValidateDocuments(ctx context.Context, id model.ID, allValid bool, notes string) (model.Driver, error) {
	drivers := s.repo.Drivers()

	driver, err := s.requireDriver(ctx, drivers, id)
	if err != nil {
		return model.Driver{}, err
	}

	driver.ApplyDocumentValidation(allValid, strings.TrimSpace(notes))

	err = drivers.Update(ctx, id, database.UpdateDriverDTO{
		DocumentsValidated: &driver.DocumentsValidated,
		Notes:              &driver.Notes,
	})
	if err != nil {
		return model.Driver{}, storeError("validate documents", err)
	}

	s.logger.Info("driver documents reviewed", "driverId", id, "validated", allValid)

	return s.GetDriver(ctx, id)
}

func (s *Licensing) RecordTest(ctx context.Context, test model.PsychometricTest) (model.PsychometricTest, error) {
	if err := test.Scores.Validate(); err != nil {
		return model.PsychometricTest{}, err
	}

	if _, err := s.requireDriver(ctx, s.repo.Drivers(), test.DriverID); err != nil {
		return model.PsychometricTest{}, err
	}

	if test.TakenAt.IsZero() {
		test.TakenAt = s.now()
	}

	tests := s.repo.Tests()

	id, err := tests.Insert(ctx, database.NewInsertPsychometricTestDTO(test))
	if err != nil {
		return model.PsychometricTest{}, storeError("record psychometric test", err)
	}

	s.logger.Info("psychometric test recorded", "testId", id, "driverId", test.DriverID, "passed", test.Passed())

	recorded, err := tests.Get(ctx, id)
	if err != nil {
		return model.PsychometricTest{}, storeError("record psychometric test", err)
	}

	return recorded, nil
}

func (s *Licensing) ListTests(ctx context.Context, driverID model.ID) ([]model.PsychometricTest, error) {
	if _, err := s.requireDriver(ctx, s.repo.Drivers(), driverID); err != nil {
		return nil, err
	}

	tests, err := s.repo.Tests().FindByDriver(ctx, driverID)
	if err != nil {
		return nil, storeError("list psychometric tests", err)
	}
	return tests, nil
}

// LatestPassedTest returns the driver's most recent passed attempt.
func (s *Licensing) LatestPassedTest(ctx context.Context, driverID model.ID) (model.PsychometricTest, error) {
	tests, err := s.repo.Tests().FindByDriver(ctx, driverID)
	if err != nil {
		return model.PsychometricTest{}, storeError("latest passed test", err)
	}

	for _, t := range tests {
		if t.Passed() {
			return t, nil
		}
	}

	return model.PsychometricTest{}, model.NewError("passed psychometric test", model.ErrNotFound)
}

// DeleteTest removes the test and the licenses issued against it together.
func (s *Licensing) DeleteTest(ctx context.Context, id model.ID) error {
	err := s.repo.Atomic(ctx, func(repo Repository) error {
		if _, err := repo.Tests().Get(ctx, id); err != nil {
			return storeError("get psychometric test", err)
		}

		licenses, err := repo.Licenses().DeleteByTest(ctx, id)
		if err != nil {
			return storeError("delete licenses referencing test", err)
		}

		if err := repo.Tests().Delete(ctx, id); err != nil {
			return storeError("delete psychometric test", err)
		}

		s.logger.Info("psychometric test deleted", "testId", id, "deletedLicenses", licenses)

		return nil
	})
	if err != nil {
		return storeError("delete psychometric test", err)
	}

	return nil
}

// IssueLicense runs the eligibility chain and stores a new license. The
// driver row stays locked until the license is stored, so two issuances
// for the same driver cannot both pass the duplicate check.
func (s *Licensing) IssueLicense(ctx context.Context, driverID model.ID, licenseType model.LicenseType, testID *model.ID) (model.License, error) {
	if !licenseType.IsValid() {
		return model.License{}, model.NewInvalidDataError("type", "must be one of A, B, C, D, E, F")
	}

	now := s.now()

	var issued model.License
	err := s.repo.Atomic(ctx, func(repo Repository) error {
		driver, err := repo.Drivers().GetForUpdate(ctx, driverID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return s.reject("driver_not_found", model.NotFoundDocumentError("driver not found"))
			}
			return storeError("lock driver", err)
		}

		if !driver.DocumentsValidated {
			return s.reject("documents_not_validated",
				model.NewInvalidDocumentError("driver documents have not been validated"))
		}

		if age := driver.Age(now); age < model.MinimumAge {
			return s.reject("underage", model.NewInvalidDocumentError(
				fmt.Sprintf("driver must be at least %d years old (current age %d)", model.MinimumAge, age)))
		}

		if testID != nil {
			test, err := repo.Tests().Get(ctx, *testID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return s.reject("test_not_found", model.NewInvalidDocumentError("psychometric test not found"))
				}
				return storeError("get psychometric test", err)
			}

			if !test.Passed() {
				return s.reject("test_not_passed", model.NewInvalidDocumentError(
					fmt.Sprintf("psychometric test not passed (average %.2f, minimum %.2f)", test.Average(), model.PassingScore)))
			}
		}

		existing, err := repo.Licenses().FindByDriver(ctx, driverID)
		if err != nil {
			return storeError("list driver licenses", err)
		}

		for _, l := range existing {
			if l.Type == licenseType && l.IsValid(now) {
				return s.reject("valid_license_exists", model.NewInvalidDocumentError(
					fmt.Sprintf("driver already holds a valid type %s license", licenseType)))
			}
		}

		license := model.NewLicense(driverID, licenseType, now)
		license.PsychometricTestID = testID
		license.GenerateNumber(driver.NationalID)

		if err := license.Validate(); err != nil {
			return err
		}

		id, err := repo.Licenses().Insert(ctx, database.NewInsertLicenseDTO(license))
		if err != nil {
			return storeError("insert license", err)
		}

		issued, err = repo.Licenses().Get(ctx, id)
		if err != nil {
			return storeError("get issued license", err)
		}

		return nil
	})
	if err != nil {
		return model.License{}, storeError("issue license", err)
	}

	s.recorder.IncrementLicensesIssued(string(issued.Type))
	s.logger.Info("license issued", "licenseId", issued.ID, "driverId", driverID, "number", issued.Number)

	return issued, nil
}

func (s *Licensing) DeactivateLicense(ctx context.Context, id model.ID, reason string) (model.License, error) {
	licenses := s.repo.Licenses()

	license, err := licenses.Get(ctx, id)
	if err != nil {
		return model.License{}, storeError("get license", err)
	}

	license.Deactivate(reason)

	err = licenses.Update(ctx, id, database.UpdateLicenseDTO{
		Active: &license.Active,
		Notes:  &license.Notes,
	})
	if err != nil {
		return model.License{}, storeError("deactivate license", err)
	}

	s.logger.Info("license deactivated", "licenseId", id)

	return s.GetLicense(ctx, id)
}

func (s *Licensing) DeleteLicense(ctx context.Context, id model.ID) error {
	if err := s.repo.Licenses().Delete(ctx, id); err != nil {
		return storeError("delete license", err)
	}

	s.logger.Info("license deleted", "licenseId", id)

	return nil
}

func (s *Licensing) GetLicense(ctx context.Context, id model.ID) (model.License, error) {
	license, err := s.repo.Licenses().Get(ctx, id)
	if err != nil {
		return model.License{}, storeError("get license", err)
	}
	return license, nil
}

func (s *Licensing) GetLicenseByNumber(ctx context.Context, number string) (model.License, error) {
	license, err := s.repo.Licenses().GetByNumber(ctx, strings.ToUpper(strings.TrimSpace(number)))
	if err != nil {
		return model.License{}, storeError("get license by number", err)
	}
	return license, nil
}

func (s *Licensing) ListLicenses(ctx context.Context, opts database.FindOptions) ([]model.License, error) {
	licenses, err := s.repo.Licenses().Find(ctx, database.FindLicenseFilter{}, opts)
	if err != nil {
		return nil, storeError("list licenses", err)
	}
	return licenses, nil
}

// ListValidLicenses lists active licenses that have not expired today.
func (s *Licensing) ListValidLicenses(ctx context.Context, opts database.FindOptions) ([]model.License, error) {
	today := model.Date(s.now())
	licenses, err := s.repo.Licenses().Find(ctx, database.FindLicenseFilter{ValidOn: &today}, opts)
	if err != nil {
		return nil, storeError("list valid licenses", err)
	}
	return licenses, nil
}

func (s *Licensing) ListDriverLicenses(ctx context.Context, driverID model.ID) ([]model.License, error) {
	if _, err := s.requireDriver(ctx, s.repo.Drivers(), driverID); err != nil {
		return nil, err
	}

	licenses, err := s.repo.Licenses().FindByDriver(ctx, driverID)
	if err != nil {
		return nil, storeError("list driver licenses", err)
	}
	return licenses, nil
}

func (s *Licensing) LookupByNationalID(ctx context.Context, nationalID string) (DriverRecord, error) {
	driver, err := s.FindDriverByNationalID(ctx, nationalID)
	if err != nil {
		return DriverRecord{}, err
	}

	licenses, err := s.repo.Licenses().FindByDriver(ctx, driver.ID)
	if err != nil {
		return DriverRecord{}, storeError("lookup driver licenses", err)
	}

	record := DriverRecord{Driver: driver, Licenses: licenses}

	test, err := s.LatestPassedTest(ctx, driver.ID)
	switch {
	case err == nil:
		record.LatestPassedTest = &test
	case !errors.Is(err, model.ErrNotFound):
		return DriverRecord{}, err
	}

	return record, nil
}

func (s *Licensing) LicenseRecord(ctx context.Context, licenseID model.ID) (LicenseRecord, error) {
	license, err := s.GetLicense(ctx, licenseID)
	if err != nil {
		return LicenseRecord{}, err
	}

	driver, err := s.GetDriver(ctx, license.DriverID)
	if err != nil {
		return LicenseRecord{}, err
	}

	record := LicenseRecord{License: license, Driver: driver}

	if license.PsychometricTestID != nil {
		test, err := s.repo.Tests().Get(ctx, *license.PsychometricTestID)
		switch {
		case err == nil:
			record.Test = &test
		case !errors.Is(err, model.ErrNotFound):
			return LicenseRecord{}, storeError("get license test", err)
		}
	}

	return record, nil
}

func (s *Licensing) requireDriver(ctx context.Context, drivers DriverStore, id model.ID) (model.Driver, error) {
	driver, err := drivers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Driver{}, model.NotFoundDocumentError("driver not found")
		}
		return model.Driver{}, storeError("get driver", err)
	}
	return driver, nil
}

func (s *Licensing) reject(reason string, err *model.InvalidDocumentError) error {
	s.recorder.IncrementIssuanceRejections(reason)
	s.logger.Info("license issuance rejected", "reason", reason, "error", err.Error())
	return err
}

func duplicateDriver(nationalID string) *model.InvalidDocumentError {
	return &model.InvalidDocumentError{
		Message: fmt.Sprintf("a driver with national id %s is already registered", nationalID),
		Err:     model.ErrExists,
	}
}
