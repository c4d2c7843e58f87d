package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/response"
	"github.com/protomem/licensing/internal/validator"
)

func (app *application) reportServerError(r *http.Request, err error) {
	var (
		message = err.Error()
		method  = r.Method
		url     = r.URL.String()
		trace   = string(debug.Stack())
	)

	requestAttrs := slog.Group("request", "method", method, "url", url)
	app.requestLogger(r).Error(message, requestAttrs, "trace", trace)
}

func (app *application) errorMessage(w http.ResponseWriter, r *http.Request, status int, message string, headers http.Header) {
	message = strings.ToUpper(message[:1]) + message[1:]

	err := response.JSONWithHeaders(w, status, response.JSONObject{"Error": message}, headers)
	if err != nil {
		app.reportServerError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.reportServerError(r, err)

	message := "The server encountered a problem and could not process your request"
	app.errorMessage(w, r, http.StatusInternalServerError, message, nil)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource could not be found"
	app.errorMessage(w, r, http.StatusNotFound, message, nil)
}

func (app *application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("The %s method is not supported for this resource", r.Method)
	app.errorMessage(w, r, http.StatusMethodNotAllowed, message, nil)
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.errorMessage(w, r, http.StatusBadRequest, err.Error(), nil)
}

func (app *application) failedValidation(w http.ResponseWriter, r *http.Request, v validator.Validator) {
	err := response.JSON(w, http.StatusUnprocessableEntity, v)
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	headers := make(http.Header)
	headers.Set("WWW-Authenticate", "Bearer")

	app.errorMessage(w, r, http.StatusUnauthorized, message, headers)
}

func (app *application) forbidden(w http.ResponseWriter, r *http.Request) {
	app.errorMessage(w, r, http.StatusForbidden, "your role does not allow this action", nil)
}

// serviceError maps errors returned by the services onto responses.
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		dataErr *model.InvalidDataError
		docErr  *model.InvalidDocumentError
	)

	switch {
	case errors.Is(err, model.ErrNotFound):
		app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)

	case errors.Is(err, model.ErrExists):
		app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)

	case errors.As(err, &dataErr):
		var v validator.Validator
		v.AddFieldError(dataErr.Field, dataErr.Message)
		app.failedValidation(w, r, v)

	case errors.As(err, &docErr):
		v := validator.Validator{Errors: docErr.Violations}
		if len(v.Errors) == 0 {
			v.AddError(docErr.Message)
		}
		app.failedValidation(w, r, v)

	default:
		app.serverError(w, r, err)
	}
}
