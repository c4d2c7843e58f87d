package main

import (
	"net/http"

	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/request"
	"github.com/protomem/licensing/internal/response"
	"github.com/protomem/licensing/internal/service"
	"github.com/protomem/licensing/internal/validator"
)

type responseUser struct {
	User model.User `json:"user"`
}

type responseUsers struct {
	Users []model.User `json:"users"`
}

type responseLogins struct {
	Logins []model.LoginRecord `json:"logins"`
}

func (app *application) handleListUsers(w http.ResponseWriter, r *http.Request) {
	var v validator.Validator
	opts := findOptionsFromRequest(&v, r)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	users, err := app.accounts.ListUsers(r.Context(), opts)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseUsers{Users: users})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "userId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	user, err := app.accounts.GetUser(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseUser{User: user})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type requestCreateUser struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (app *application) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var input requestCreateUser
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	role := validateRequestCreateUser(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	user, err := app.accounts.CreateUser(r.Context(), service.NewUser{
		Username: input.Username,
		FullName: input.FullName,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusCreated, responseUser{User: user})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateUser struct {
	FullName *string `json:"fullName"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (app *application) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "userId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	var input requestUpdateUser
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	role := validateRequestUpdateUser(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	user, err := app.accounts.UpdateUser(r.Context(), id, service.UserChanges{
		FullName: input.FullName,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseUser{User: user})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r, "userId")
	if err != nil {
		app.notFound(w, r)
		return
	}

	user, err := app.accounts.ToggleUserStatus(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseUser{User: user})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleLoginHistory(w http.ResponseWriter, r *http.Request) {
	var v validator.Validator
	opts := findOptionsFromRequest(&v, r)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	logins, err := app.accounts.LoginHistory(r.Context(), opts)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, responseLogins{Logins: logins})
	if err != nil {
		app.serverError(w, r, err)
	}
}
