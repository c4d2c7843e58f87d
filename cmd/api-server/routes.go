package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protomem/licensing/internal/session"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.instrument)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", app.handleStatus)
		r.Method(http.MethodGet, "/metrics", app.metricsHandler)

		r.Post("/auth/login", app.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(app.authenticate)

			r.Get("/auth/me", app.handleMe)
			r.Post("/auth/logout", app.handleLogout)

			can := app.requireCapability

			r.With(can(session.CapViewRecords)).Get("/reference", app.handleReference)

			r.With(can(session.CapViewRecords)).Get("/drivers", app.handleListDrivers)
			r.With(can(session.CapViewRecords)).Get("/drivers/lookup", app.handleLookupDriver)
			r.With(can(session.CapViewRecords)).Get("/drivers/{driverId}", app.handleGetDriver)
			r.With(can(session.CapManageDrivers)).Post("/drivers", app.handleCreateDriver)
			r.With(can(session.CapManageDrivers)).Put("/drivers/{driverId}", app.handleUpdateDriver)
			r.With(can(session.CapDeleteRecords)).Delete("/drivers/{driverId}", app.handleDeleteDriver)
			r.With(can(session.CapValidateDocuments)).Post("/drivers/{driverId}/documents", app.handleValidateDocuments)

			r.With(can(session.CapViewRecords)).Get("/drivers/{driverId}/tests", app.handleListTests)
			r.With(can(session.CapViewRecords)).Get("/drivers/{driverId}/tests/latest-passed", app.handleLatestPassedTest)
			r.With(can(session.CapRecordTests)).Post("/drivers/{driverId}/tests", app.handleRecordTest)
			r.With(can(session.CapDeleteRecords)).Delete("/tests/{testId}", app.handleDeleteTest)

			r.With(can(session.CapViewRecords)).Get("/drivers/{driverId}/licenses", app.handleListDriverLicenses)
			r.With(can(session.CapViewRecords)).Get("/licenses", app.handleListLicenses)
			r.With(can(session.CapViewRecords)).Get("/licenses/{licenseId}", app.handleGetLicense)
			r.With(can(session.CapViewRecords)).Get("/licenses/number/{number}", app.handleGetLicenseByNumber)
			r.With(can(session.CapIssueLicenses)).Post("/licenses", app.handleIssueLicense)
			r.With(can(session.CapManageLicenses)).Post("/licenses/{licenseId}/deactivate", app.handleDeactivateLicense)
			r.With(can(session.CapDeleteRecords)).Delete("/licenses/{licenseId}", app.handleDeleteLicense)
			r.With(can(session.CapExportCertificates)).Get("/licenses/{licenseId}/certificate", app.handleLicenseCertificate)

			r.Group(func(r chi.Router) {
				r.Use(can(session.CapAdministerUsers))

				r.Get("/users", app.handleListUsers)
				r.Post("/users", app.handleCreateUser)
				r.Get("/users/{userId}", app.handleGetUser)
				r.Put("/users/{userId}", app.handleUpdateUser)
				r.Post("/users/{userId}/toggle-status", app.handleToggleUserStatus)
				r.Get("/logins", app.handleLoginHistory)
			})
		})
	})

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
