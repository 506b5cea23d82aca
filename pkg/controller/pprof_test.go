package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yokeair/pkg/controller"

	"github.com/stretchr/testify/require"
)

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	controller.RegisterPprof(mux)

	return mux
}

func TestRegisterPprof(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "index", path: "/debug/pprof/"},
		{name: "cmdline", path: "/debug/pprof/cmdline"},
		{name: "named profile", path: "/debug/pprof/goroutine?debug=1"},
		{name: "symbol", path: "/debug/pprof/symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Result().StatusCode)
			require.NotEmpty(t, rec.Result().Header.Get("Content-Type"))
		})
	}
}

func TestRegisterPprof_RejectsWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/pprof/cmdline", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Result().StatusCode)
}

func TestRegisterPprof_SymbolLookup(t *testing.T) {
	require.NotPanics(t, func() { pprofMux() })

	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/pprof/symbol", strings.NewReader("0x0")))

	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
}
