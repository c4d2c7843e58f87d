package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/service"
	"github.com/protomem/licensing/internal/validator"
)

// Validation rules

// applyRequestDriver copies the request onto driver, collecting the field
// errors of every setter instead of stopping at the first one.
func applyRequestDriver(v *validator.Validator, driver *model.Driver, request requestDriver) {
	check := func(err error) {
		var dataErr *model.InvalidDataError
		if errors.As(err, &dataErr) {
			v.AddFieldError(dataErr.Field, dataErr.Message)
		}
	}

	check(driver.SetNationalID(request.NationalID))
	check(driver.SetFirstName(request.FirstName))
	check(driver.SetLastName(request.LastName))
	check(driver.SetPhone(request.Phone))
	check(driver.SetEmail(request.Email))
	check(driver.SetBloodType(request.BloodType))
	driver.SetAddress(request.Address)

	birthDate, err := time.Parse(_dateLayout, request.BirthDate)
	if err != nil {
		v.AddFieldError("birthDate", "must be a date in YYYY-MM-DD format")
		return
	}
	driver.SetBirthDate(birthDate)
}

func validateRequestRecordTest(v *validator.Validator, request requestRecordTest) {
	scores := map[string]*float64{
		"reaction":      request.Reaction,
		"attention":     request.Attention,
		"coordination":  request.Coordination,
		"perception":    request.Perception,
		"psychological": request.Psychological,
	}
	for field, score := range scores {
		v.CheckField(score != nil, field, "is required")
	}
	v.CheckField(validator.MaxRunes(request.Notes, 2000), "notes", "must not be more than 2000 characters")
}

func validateRequestIssueLicense(v *validator.Validator, request requestIssueLicense) model.LicenseType {
	v.CheckField(request.DriverID != 0, "driverId", "is required")

	licenseType, err := model.ParseLicenseType(request.Type)
	if err != nil {
		v.AddFieldError("type", "must be one of A, B, C, D, E, F")
	}
	return licenseType
}

func validateRequestLogin(v *validator.Validator, request requestLogin) {
	v.CheckField(validator.NotBlank(request.Username), "username", "cannot be blank")
	v.CheckField(request.Password != "", "password", "cannot be blank")
}

func validateRequestCreateUser(v *validator.Validator, request requestCreateUser) model.Role {
	v.CheckField(validator.NotBlank(request.Username), "username", "cannot be blank")
	v.CheckField(validator.MaxRunes(request.Username, 50), "username", "must not be more than 50 characters")
	checkPassword(v, request.Password)

	role, err := model.ParseRole(request.Role)
	if err != nil {
		v.AddFieldError("role", "must be ADMINISTRATOR or ANALYST")
	}
	return role
}

func checkPassword(v *validator.Validator, password string) {
	v.CheckField(len(password) <= service.MaxPasswordBytes, "password", fmt.Sprintf("must not be more than %d bytes", service.MaxPasswordBytes))
}

func validateRequestUpdateUser(v *validator.Validator, request requestUpdateUser) *model.Role {
	if request.FullName != nil {
		v.CheckField(validator.NotBlank(*request.FullName), "fullName", "cannot be blank")
	}
	if request.Password != nil {
		checkPassword(v, *request.Password)
	}
	if request.Role == nil {
		return nil
	}

	role, err := model.ParseRole(*request.Role)
	if err != nil {
		v.AddFieldError("role", "must be ADMINISTRATOR or ANALYST")
		return nil
	}
	return &role
}
