package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yokeair/pkg/controller"

	"github.com/stretchr/testify/require"
)

func preflight(path, origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)

	return req
}

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	controller.WithCORS(nil)(next).ServeHTTP(rec, preflight("/v1/properties/1", "https://app.example.com"))

	require.False(t, called, "next handler should not be called for a preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"), "wildcard origins never carry credentials")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), http.MethodPatch)
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestWithCORS_PlainOptionsReachesHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/search", nil)

	controller.WithCORS(nil)(http.NotFoundHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Result().StatusCode)
}

func TestWithCORS_AllowList(t *testing.T) {
	mw := controller.WithCORS([]string{"https://app.example.com"})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("allowed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Origin", "https://APP.example.com")
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusTeapot, res.StatusCode)
		require.Equal(t, "https://APP.example.com", res.Header.Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
		require.Equal(t, "Origin", res.Header.Get("Vary"))
	})

	t.Run("unknown origin gets no grant", func(t *testing.T) {
		rec := httptest.NewRecorder()

		mw(next).ServeHTTP(rec, preflight("/v1/me", "https://evil.example.com"))

		res := rec.Result()
		require.Equal(t, http.StatusNoContent, res.StatusCode)
		require.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
	})
}
