package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/protomem/licensing/internal/auth"
	"github.com/protomem/licensing/internal/metrics"
	"github.com/protomem/licensing/internal/model"
)

var testNow = time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)

type testApplication struct {
	*application
	licensing *MocklicensingService
	accounts  *MockaccountsService
	handler   http.Handler

	// users backs the account lookup done on every authenticated request.
	users map[model.ID]model.User
}

var testUserIDs = map[model.Role]model.ID{
	model.RoleAdministrator: 1,
	model.RoleAnalyst:       9,
}

func newTestApplication(t *testing.T) *testApplication {
	t.Helper()

	ctrl := gomock.NewController(t)
	licensing := NewMocklicensingService(ctrl)
	accounts := NewMockaccountsService(ctrl)

	licensing.EXPECT().Now().Return(testNow).AnyTimes()

	reg := prometheus.NewRegistry()

	app := &application{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		licensing:      licensing,
		accounts:       accounts,
		tokens:         auth.NewTokens("test-signing-key", time.Hour),
		revocations:    auth.NewMemoryRevocations(),
		metrics:        metrics.New(reg),
		metricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}

	ta := &testApplication{
		application: app,
		licensing:   licensing,
		accounts:    accounts,
		handler:     app.routes(),
		users:       make(map[model.ID]model.User),
	}

	accounts.EXPECT().GetUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id model.ID) (model.User, error) {
			user, ok := ta.users[id]
			if !ok {
				return model.User{}, model.NewError("user", model.ErrNotFound)
			}
			return user, nil
		}).
		AnyTimes()

	return ta
}

func (ta *testApplication) token(t *testing.T, role model.Role) string {
	t.Helper()

	user := model.User{
		ID:       testUserIDs[role],
		Username: strings.ToLower(string(role)),
		FullName: "Test " + string(role),
		Role:     role,
		Active:   true,
	}
	ta.users[user.ID] = user

	token, _, err := ta.tokens.Issue(user)
	require.NoError(t, err)

	return token
}

func (ta *testApplication) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type errorBody struct {
	Error       string
	Errors      []string
	FieldErrors map[string]string
}
