package main

import (
	"context"
	"time"

	"github.com/protomem/licensing/internal/database"
	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/service"
	"github.com/protomem/licensing/internal/session"
)

//go:generate mockgen -source=services.go -destination=mock_services_test.go -package=main

type licensingService interface {
	Now() time.Time

	RegisterDriver(ctx context.Context, driver model.Driver) (model.Driver, error)
	UpdateDriver(ctx context.Context, driver model.Driver) (model.Driver, error)
	GetDriver(ctx context.Context, id model.ID) (model.Driver, error)
	ListDrivers(ctx context.Context, opts database.FindOptions) ([]model.Driver, error)
	SearchDrivers(ctx context.Context, name string, opts database.FindOptions) ([]model.Driver, error)
	LookupByNationalID(ctx context.Context, nationalID string) (service.DriverRecord, error)
	DeleteDriver(ctx context.Context, id model.ID) error
	ValidateDocuments(ctx context.Context, id model.ID, allValid bool, notes string) (model.Driver, error)

	RecordTest(ctx context.Context, test model.PsychometricTest) (model.PsychometricTest, error)
	ListTests(ctx context.Context, driverID model.ID) ([]model.PsychometricTest, error)
	LatestPassedTest(ctx context.Context, driverID model.ID) (model.PsychometricTest, error)
	DeleteTest(ctx context.Context, id model.ID) error

	IssueLicense(ctx context.Context, driverID model.ID, licenseType model.LicenseType, testID *model.ID) (model.License, error)
	DeactivateLicense(ctx context.Context, id model.ID, reason string) (model.License, error)
	DeleteLicense(ctx context.Context, id model.ID) error
	GetLicense(ctx context.Context, id model.ID) (model.License, error)
	GetLicenseByNumber(ctx context.Context, number string) (model.License, error)
	ListLicenses(ctx context.Context, opts database.FindOptions) ([]model.License, error)
	ListValidLicenses(ctx context.Context, opts database.FindOptions) ([]model.License, error)
	ListDriverLicenses(ctx context.Context, driverID model.ID) ([]model.License, error)
	LicenseRecord(ctx context.Context, licenseID model.ID) (service.LicenseRecord, error)
}

type accountsService interface {
	Login(ctx context.Context, username, password, ip string) (model.User, error)
	CreateUser(ctx context.Context, input service.NewUser) (model.User, error)
	UpdateUser(ctx context.Context, id model.ID, changes service.UserChanges) (model.User, error)
	ToggleUserStatus(ctx context.Context, id model.ID) (model.User, error)
	GetUser(ctx context.Context, id model.ID) (model.User, error)
	ListUsers(ctx context.Context, opts database.FindOptions) ([]model.User, error)
	LoginHistory(ctx context.Context, opts database.FindOptions) ([]model.LoginRecord, error)
}

type tokenService interface {
	Issue(user model.User) (string, session.Session, error)
	Parse(token string) (session.Session, error)
}

type revocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type pinger interface {
	PingContext(ctx context.Context) error
}
