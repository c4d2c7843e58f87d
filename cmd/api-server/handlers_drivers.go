package main

import (
	"net/http"
	"time"

	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/request"
	"github.com/protomem/licensing/internal/response"
	"github.com/protomem/licensing/internal/service"
	"github.com/protomem/licensing/internal/validator"
)

type driverView struct {
	model.Driver
	FullName string `json:"fullName"`
	Age      int    `json:"age"`
}

func newDriverView(driver model.Driver, now time.Time) driverView {
	return driverView{Driver: driver, FullName: driver.FullName(), Age: driver.Age(now)}
}

type testView struct {
	model.PsychometricTest
	Average float64          `json:"average"`
	Passed  bool             `json:"passed"`
	Result  model.TestResult `json:"result"`
}

func newTestView(test model.PsychometricTest) testView {
	return testView{
		PsychometricTest: test,
		Average:          test.Average(),
		Passed:           test.Passed(),
		Result:           test.Result(),
	}
}

type requestDriver struct {
	NationalID string `json:"nationalId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	BirthDate  string `json:"birthDate"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	BloodType  string `json:"bloodType"`
}

type responseDriver struct {
	Driver driverView `json:"driver"`
}

type responseDrivers struct {
	Drivers []driverView `json:"drivers"`
}

func (app *application) handleCreateDriver(w http.ResponseWriter, r *http.Request) {
	var input requestDriver
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var (
		v      validator.Validator
		driver model.Driver
	)
	if applyRequestDriver(&v, &driver, input); v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	driver, err := app.licensing.RegisterDriver(r.Context(), driver)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusCreated, responseDriver{Driver: newDriverView(driver, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleUpdateDriver(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "driverId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	var input requestDriver
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	driver, err := app.licensing.GetDriver(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	var v validator.Validator
	if applyRequestDriver(&v, &driver, input); v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	driver, err = app.licensing.UpdateDriver(r.Context(), driver)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseDriver{Driver: newDriverView(driver, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetDriver(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "driverId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	driver, err := app.licensing.GetDriver(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseDriver{Driver: newDriverView(driver, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

// handleListDrivers lists every driver, or only those whose name matches q.
func (app *application) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	var v validator.Validator
	opts := findOptionsFromRequest(&v, r)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	var (
		drivers []model.Driver
		err     error
	)
	if q := optionalStringQueryParams(r, "q"); q != nil && *q != "" {
		drivers, err = app.licensing.SearchDrivers(r.Context(), *q, opts)
	} else {
		drivers, err = app.licensing.ListDrivers(r.Context(), opts)
	}
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	now := app.licensing.Now()
	views := make([]driverView, 0, len(drivers))
	for _, driver := range drivers {
		views = append(views, newDriverView(driver, now))
	}

	err = response.JSON(w, http.StatusOK, responseDrivers{Drivers: views})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type responseDriverRecord struct {
	Driver           driverView    `json:"driver"`
	Licenses         []licenseView `json:"licenses"`
	LatestPassedTest *testView     `json:"latestPassedTest,omitempty"`
}

func newResponseDriverRecord(record service.DriverRecord, now time.Time) responseDriverRecord {
	res := responseDriverRecord{
		Driver:   newDriverView(record.Driver, now),
		Licenses: newLicenseViews(record.Licenses, now),
	}
	if record.LatestPassedTest != nil {
		view := newTestView(*record.LatestPassedTest)
		res.LatestPassedTest = &view
	}
	return res
}

func (app *application) handleLookupDriver(w http.ResponseWriter, r *http.Request) {
	nationalID := optionalStringQueryParams(r, "nationalId")
	if nationalID == nil || *nationalID == "" {
		var v validator.Validator
		v.AddFieldError("nationalId", "is required")
		app.failedValidation(w, r, v)
		return
	}

	record, err := app.licensing.LookupByNationalID(r.Context(), *nationalID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, newResponseDriverRecord(record, app.licensing.Now()))
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "driverId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	if err := app.licensing.DeleteDriver(r.Context(), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type requestValidateDocuments struct {
	AllValid bool   `json:"allValid"`
	Notes    string `json:"notes"`
}

func (app *application) handleValidateDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "driverId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	var input requestValidateDocuments
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	driver, err := app.licensing.ValidateDocuments(r.Context(), id, input.AllValid, input.Notes)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseDriver{Driver: newDriverView(driver, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type requestRecordTest struct {
	Reaction      *float64   `json:"reaction"`
	Attention     *float64   `json:"attention"`
	Coordination  *float64   `json:"coordination"`
	Perception    *float64   `json:"perception"`
	Psychological *float64   `json:"psychological"`
	TakenAt       *time.Time `json:"takenAt"`
	Notes         string     `json:"notes"`
}

type responseTest struct {
	Test testView `json:"test"`
}

type responseTests struct {
	Tests []testView `json:"tests"`
}

func (app *application) handleRecordTest(w http.ResponseWriter, r *http.Request) {
	driverID, err := idFromRequest(r, "driverId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	var input requestRecordTest
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	if validateRequestRecordTest(&v, input); v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	test := model.PsychometricTest{
		DriverID: driverID,
		Scores: model.Scores{
			Reaction:      *input.Reaction,
			Attention:     *input.Attention,
			Coordination:  *input.Coordination,
			Perception:    *input.Perception,
			Psychological: *input.Psychological,
		},
		Notes: input.Notes,
	}
	if input.TakenAt != nil {
		test.TakenAt = *input.TakenAt
	}

	test, err = app.licensing.RecordTest(r.Context(), test)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusCreated, responseTest{Test: newTestView(test)})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleListTests(w http.ResponseWriter, r *http.Request) {
	driverID, err := idFromRequest(r, "driverId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	tests, err := app.licensing.ListTests(r.Context(), driverID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	views := make([]testView, 0, len(tests))
	for _, test := range tests {
		views = append(views, newTestView(test))
	}

	err = response.JSON(w, http.StatusOK, responseTests{Tests: views})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleLatestPassedTest(w http.ResponseWriter, r *http.Request) {
	driverID, err := idFromRequest(r, "driverId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	test, err := app.licensing.LatestPassedTest(r.Context(), driverID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseTest{Test: newTestView(test)})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteTest(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "testId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	if err := app.licensing.DeleteTest(r.Context(), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
