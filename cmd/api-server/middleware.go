package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/tomasen/realip"

	"github.com/protomem/licensing/internal/ctxstore"
	"github.com/protomem/licensing/internal/model"
	"github.com/protomem/licensing/internal/response"
	"github.com/protomem/licensing/internal/session"
)

var _traceIDKey = ctxstore.NewKey[string]("traceId")

func (app *application) traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := genTraceID()
		ctx := _traceIDKey.With(r.Context(), tid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			err := recover()
			if err != nil {
				app.serverError(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		var (
			ip     = realip.FromRequest(r)
			method = r.Method
			url    = r.URL.String()
			proto  = r.Proto
			tid, _ = _traceIDKey.From(r.Context())
		)

		userAttrs := slog.Group("user", "ip", ip)
		requestAttrs := slog.Group("request", "method", method, "url", url, "proto", proto, _traceIDKey.String(), tid)
		responseAttrs := slog.Group("response", "status", mw.StatusCode, "size", mw.BytesCount)

		app.serverLogger().Info("access", userAttrs, requestAttrs, responseAttrs)
	})
}

// instrument records request counts and latencies keyed by the matched route pattern.
func (app *application) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := response.NewMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		app.metrics.ObserveHTTPRequest(r.Method, route, mw.StatusCode, start)
	})
}

func (app *application) CORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(next)
}

// authenticate resolves the bearer token into a session. Requests without a
// valid, unrevoked token never reach next.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			app.unauthorized(w, r, "missing bearer token")
			return
		}

		sess, err := app.tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			app.unauthorized(w, r, "invalid or expired token")
			return
		}

		revoked, err := app.revocations.IsRevoked(r.Context(), sess.TokenID)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		if revoked {
			app.unauthorized(w, r, "token has been revoked")
			return
		}

		// Deactivation and role changes take effect on tokens already issued.
		user, err := app.accounts.GetUser(r.Context(), sess.UserID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			app.serverError(w, r, err)
			return
		}
		if err != nil || !user.Active {
			app.unauthorized(w, r, "account is disabled")
			return
		}
		sess = session.New(user, sess.TokenID, sess.ExpiresAt)

		next.ServeHTTP(w, r.WithContext(session.With(r.Context(), sess)))
	})
}

// requireCapability is the single gate in front of every protected operation.
func (app *application) requireCapability(c session.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.From(r.Context())
			if !ok {
				app.unauthorized(w, r, "missing bearer token")
				return
			}

			if !sess.Can(c) {
				app.requestLogger(r).Info("capability denied",
					"userId", sess.UserID, "role", sess.Role, "capability", c)
				app.forbidden(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (app *application) requestLogger(r *http.Request) *slog.Logger {
	tid, _ := _traceIDKey.From(r.Context())
	return app.logger.With(_traceIDKey.String(), tid)
}

func genTraceID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
