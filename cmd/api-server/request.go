package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/protomem/licensing/internal/database"
	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/validator"
)

const (
	_dateLayout = "2006-01-02"

	_defaultPageLimit = 50
	_maxPageLimit     = 200
)

func idFromRequest(r *http.Request, param string) (model.ID, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 64)
	return model.ID(id), err
}

func findOptionsFromRequest(v *validator.Validator, r *http.Request) database.FindOptions {
	limit := defaultIntQueryParams(r, "limit", _defaultPageLimit)
	offset := defaultIntQueryParams(r, "offset", 0)

	v.CheckField(limit >= 1 && limit <= _maxPageLimit, "limit", "must be between 1 and 200")
	v.CheckField(offset >= 0, "offset", "must not be negative")

	if v.HasErrors() {
		return database.FindOptions{}
	}

	return database.FindOptions{Limit: uint64(limit), Offset: uint64(offset)}
}

func defaultIntQueryParams(r *http.Request, key string, def int) int {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return i
}

func optionalStringQueryParams(r *http.Request, key string) *string {
	ref := new(string)
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return nil
	}
	*ref = strings.TrimSpace(val)
	return ref
}

func boolQueryParams(r *http.Request, key string) bool {
	b, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && b
}

func urlParam(r *http.Request, key string) string {
	return strings.TrimSpace(chi.URLParam(r, key))
}
