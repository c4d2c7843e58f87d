package main

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/protomem/licensing/internal/certificate"
	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/request"
	"github.com/protomem/licensing/internal/response"
	"github.com/protomem/licensing/internal/validator"
)

type licenseView struct {
	model.License
	TypeName        string              `json:"typeName"`
	Status          model.LicenseStatus `json:"status"`
	StatusText      string              `json:"statusText"`
	DaysUntilExpiry int                 `json:"daysUntilExpiry"`
}

func newLicenseView(license model.License, now time.Time) licenseView {
	return licenseView{
		License:         license,
		TypeName:        license.Type.Name(),
		Status:          license.Status(now),
		StatusText:      license.StatusText(now),
		DaysUntilExpiry: license.DaysUntilExpiry(now),
	}
}

func newLicenseViews(licenses []model.License, now time.Time) []licenseView {
	views := make([]licenseView, 0, len(licenses))
	for _, license := range licenses {
		views = append(views, newLicenseView(license, now))
	}
	return views
}

type responseLicense struct {
	License licenseView `json:"license"`
}

type responseLicenses struct {
	Licenses []licenseView `json:"licenses"`
}

type requestIssueLicense struct {
	DriverID           model.ID  `json:"driverId"`
	Type               string    `json:"type"`
	PsychometricTestID *model.ID `json:"psychometricTestId"`
}

func (app *application) handleIssueLicense(w http.ResponseWriter, r *http.Request) {
	var input requestIssueLicense
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	licenseType := validateRequestIssueLicense(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	license, err := app.licensing.IssueLicense(r.Context(), input.DriverID, licenseType, input.PsychometricTestID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusCreated, responseLicense{License: newLicenseView(license, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

// handleListLicenses lists every license, or only the currently valid ones with valid=true.
func (app *application) handleListLicenses(w http.ResponseWriter, r *http.Request) {
	var v validator.Validator
	opts := findOptionsFromRequest(&v, r)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	var (
		licenses []model.License
		err      error
	)
	if boolQueryParams(r, "valid") {
		licenses, err = app.licensing.ListValidLicenses(r.Context(), opts)
	} else {
		licenses, err = app.licensing.ListLicenses(r.Context(), opts)
	}
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseLicenses{Licenses: newLicenseViews(licenses, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetLicense(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "licenseId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	license, err := app.licensing.GetLicense(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseLicense{License: newLicenseView(license, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetLicenseByNumber(w http.ResponseWriter, r *http.Request) {
	license, err := app.licensing.GetLicenseByNumber(r.Context(), urlParam(r, "number"))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseLicense{License: newLicenseView(license, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleListDriverLicenses(w http.ResponseWriter, r *http.Request) {
	driverID, err := idFromRequest(r, "driverId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	licenses, err := app.licensing.ListDriverLicenses(r.Context(), driverID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseLicenses{Licenses: newLicenseViews(licenses, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type requestDeactivateLicense struct {
	Reason string `json:"reason"`
}

func (app *application) handleDeactivateLicense(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "licenseId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	var input requestDeactivateLicense
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	license, err := app.licensing.DeactivateLicense(r.Context(), id, input.Reason)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseLicense{License: newLicenseView(license, app.licensing.Now())})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteLicense(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "licenseId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	if err := app.licensing.DeleteLicense(r.Context(), id); err != nil {
		app.serviceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) handleLicenseCertificate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "licenseId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	record, err := app.licensing.LicenseRecord(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	err = certificate.Render(&buf, certificate.Data{
		License:     record.License,
		Driver:      record.Driver,
		Test:        record.Test,
		GeneratedAt: app.licensing.Now(),
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "license-"+record.License.Number+".pdf"))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		app.requestLogger(r).Warn("failed to write certificate", "error", err)
	}
}
