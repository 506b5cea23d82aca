package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yokeair/pkg/controller"
	"yokeair/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded for", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remote: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remote: "not-an-addr", want: "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}

			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("client supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "abc-123")
		rec := httptest.NewRecorder()

		controller.WithLogger(next).ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusCreated, res.StatusCode)
		require.Equal(t, "abc-123", res.Header.Get("X-Echo-Request-Id"))
		require.Equal(t, "abc-123", res.Header.Get("X-Request-Id"))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, rec.Result().Header.Get("X-Echo-Request-Id"))
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", strings.Repeat("x", 500))
		rec := httptest.NewRecorder()

		controller.WithLogger(next).ServeHTTP(rec, req)

		got := rec.Result().Header.Get("X-Echo-Request-Id")
		require.NotEmpty(t, got)
		require.Less(t, len(got), 500)
	})
}

func TestWithLogger_AccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(t.Context(), zap.New(core))

	handler := controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		_, _ = w.Write([]byte("hello"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil).WithContext(ctx))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil).WithContext(ctx))

	entries := logs.FilterMessage("access log").All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.EqualValues(t, http.StatusOK, ok["status_code"])
	require.EqualValues(t, 5, ok["response_bytes"])
	require.NotEmpty(t, ok["request_id"])

	require.Equal(t, zap.ErrorLevel, entries[1].Level)
	require.EqualValues(t, http.StatusInternalServerError, entries[1].ContextMap()["status_code"])
}
