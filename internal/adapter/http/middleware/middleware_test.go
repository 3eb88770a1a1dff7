package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/middleware"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/pkg/apierrors"
)

type staticAuthenticator map[string]string

func (a staticAuthenticator) Authenticate(_ context.Context, username, password string) (domain.Principal, error) {
	if expected, ok := a[username]; ok && expected == password {
		return domain.Principal{Username: username, Roles: []domain.Role{domain.RoleUser}}, nil
	}
	return domain.Principal{}, errors.New("bad credentials")
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.LanguageMiddleware(), middleware.BasicAuth(staticAuthenticator{"alice": "pw"}, "todo"))
	router.GET("/whoami", func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, principal.Username)
	})
	return router
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.SetBasicAuth("alice", "pw")
	rec := httptest.NewRecorder()

	newAuthRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", rec.Body.String())
}

func TestBasicAuth_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{name: "no credentials", setup: func(r *http.Request) {}},
		{name: "wrong password", setup: func(r *http.Request) { r.SetBasicAuth("alice", "nope") }},
		{name: "bearer token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			newAuthRouter().ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.True(t, strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), `Basic realm="todo"`))

			var got apierrors.JsonErr
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Equal(t, http.StatusUnauthorized, got.ErrDetails.Code)
		})
	}
}

func TestLanguageMiddleware(t *testing.T) {
	router := gin.New()
	router.GET("/lang", middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetLang(c))
	})

	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: "en"},
		{header: "fr", want: "fr"},
		{header: "fr-CH, fr;q=0.9, en;q=0.8", want: "fr"},
		{header: "de-DE, fr;q=0.8", want: "fr"},
		{header: "en;q=0.2, fr;q=0.9", want: "fr"},
		{header: "de, es", want: "en"},
		{header: "*", want: "en"},
		{header: "not a language;;", want: "en"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/lang", nil)
		req.Header.Set("Accept-Language", tt.header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, tt.want, rec.Body.String(), "header %q", tt.header)
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Body.String())
	require.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))
	require.Len(t, rec.Body.String(), 36)
	require.Equal(t, rec.Body.String(), rec.Header().Get(middleware.RequestIDHeader))
}

func TestHTTPMetrics_CountsByRoute(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewHTTPMetrics(registry, "todo")

	router := gin.New()
	router.Use(metrics.Handler())
	router.GET("/tasks/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/tasks/1", "/tasks/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP todo_http_requests_total HTTP requests by method, route and status.
# TYPE todo_http_requests_total counter
todo_http_requests_total{method="GET",route="/tasks/:id",status="200"} 2
todo_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "todo_http_requests_total"))
}

func TestMetricNamespace(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "todo", want: "todo"},
		{name: "todo-api", want: "todo_api"},
		{name: "my todo.v2", want: "my_todo_v2"},
		{name: "2do", want: "_2do"},
		{name: "tâches", want: "t_ches"},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, middleware.MetricNamespace(tt.name), "name %q", tt.name)
	}
}

func TestHTTPMetrics_AcceptsAnyAppName(t *testing.T) {
	for _, appName := range []string{"my todo.v2", "2do", "todo/api", ""} {
		require.NotPanics(t, func() {
			middleware.NewHTTPMetrics(prometheus.NewRegistry(), appName)
		}, "app name %q", appName)
	}
}
