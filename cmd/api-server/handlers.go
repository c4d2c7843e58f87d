package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomasen/realip"

	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/request"
	"github.com/protomem/licensing/internal/response"
	"github.com/protomem/licensing/internal/session"
	"github.com/protomem/licensing/internal/validator"
	"github.com/protomem/licensing/internal/version"
)

const _statusPingTimeout = 2 * time.Second

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := response.JSONObject{
		"Status":  "OK",
		"Version": version.Get(),
	}

	if app.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), _statusPingTimeout)
		defer cancel()

		if err := app.db.PingContext(ctx); err != nil {
			app.requestLogger(r).Warn("database ping failed", "error", err)
			status["Status"] = "DEGRADED"
		}
	}

	err := response.JSON(w, http.StatusOK, status)
	if err != nil {
		app.serverError(w, r, err)
	}
}

type requestLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type responseLogin struct {
	Token   string          `json:"token"`
	Session session.Session `json:"session"`
}

func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input requestLogin
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	if validateRequestLogin(&v, input); v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	user, err := app.accounts.Login(r.Context(), input.Username, input.Password, realip.FromRequest(r))
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			app.unauthorized(w, r, "invalid username or password")
			return
		}
		app.serviceError(w, r, err)
		return
	}

	token, sess, err := app.tokens.Issue(user)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseLogin{Token: token, Session: sess})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.From(r.Context())

	err := app.revocations.Revoke(r.Context(), sess.TokenID, sess.ExpiresAt)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type responseMe struct {
	Session      session.Session      `json:"session"`
	Capabilities []session.Capability `json:"capabilities"`
}

func (app *application) handleMe(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.From(r.Context())

	err := response.JSON(w, http.StatusOK, responseMe{Session: sess, Capabilities: sess.Capabilities()})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type licenseTypeEntry struct {
	Code model.LicenseType `json:"code"`
	Name string            `json:"name"`
}

type responseReference struct {
	LicenseTypes []licenseTypeEntry `json:"licenseTypes"`
	BloodTypes   []model.BloodType  `json:"bloodTypes"`
	Roles        []model.Role       `json:"roles"`
}

// handleReference lists the enumerations clients need to build their forms.
func (app *application) handleReference(w http.ResponseWriter, r *http.Request) {
	types := model.LicenseTypes()
	entries := make([]licenseTypeEntry, 0, len(types))
	for _, t := range types {
		entries = append(entries, licenseTypeEntry{Code: t, Name: t.Name()})
	}

	err := response.JSON(w, http.StatusOK, responseReference{
		LicenseTypes: entries,
		BloodTypes:   model.BloodTypes(),
		Roles:        []model.Role{model.RoleAdministrator, model.RoleAnalyst},
	})
	if err != nil {
		app.serverError(w, r, err)
	}
}
