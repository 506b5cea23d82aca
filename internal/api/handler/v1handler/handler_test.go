package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"yokeair/internal/api/handler/v1handler"
	"yokeair/pkg/logger"
	"yokeair/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	os.Exit(m.Run())
}

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "plain error is internal",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
		{
			name:    "internal kind hides its message",
			err:     serrors.Wrap(serrors.ErrInternal, errors.New("pg down"), "query on properties failed"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
		{
			name:    "bare sentinel uses the default message",
			err:     serrors.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "resource not found",
		},
		{
			name:    "wrapped semantic error keeps its message",
			err:     fmt.Errorf("could not create property: %w", serrors.With(serrors.ErrConflict, "this unit is already listed by another broker")),
			status:  http.StatusConflict,
			code:    "CONFLICT",
			message: "this unit is already listed by another broker",
		},
		{
			name:    "cause is not exposed",
			err:     serrors.Wrap(serrors.ErrUnauthorized, errors.New("token is expired"), "invalid token"),
			status:  http.StatusUnauthorized,
			code:    "UNAUTHORIZED",
			message: "invalid token",
		},
		{
			name:    "forbidden",
			err:     serrors.With(serrors.ErrForbidden, "only brokers can list properties"),
			status:  http.StatusForbidden,
			code:    "FORBIDDEN",
			message: "only brokers can list properties",
		},
		{
			name:    "dependency",
			err:     serrors.Wrap(serrors.ErrDependency, errors.New("s3: 503"), "could not upload image"),
			status:  http.StatusBadGateway,
			code:    "DEPENDENCY_FAILURE",
			message: "could not upload image",
		},
		{
			name:    "rate limited",
			err:     serrors.KindOnly(serrors.ErrRateLimited),
			status:  http.StatusTooManyRequests,
			code:    "RATE_LIMITED",
			message: "too many requests",
		},
		{
			name:    "unavailable",
			err:     serrors.KindOnly(serrors.ErrUnavailable),
			status:  http.StatusServiceUnavailable,
			code:    "UNAVAILABLE",
			message: "service unavailable",
		},
		{
			name:    "timeout",
			err:     serrors.With(serrors.ErrTimeout, "search took too long"),
			status:  http.StatusGatewayTimeout,
			code:    "TIMEOUT",
			message: "search took too long",
		},
		{
			name:    "unmapped kind falls back to internal",
			err:     serrors.With(serrors.NewKind("TEAPOT"), "short and stout"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
			require.Equal(t, tt.message, res.Response.Message)
			require.Empty(t, res.Response.Fields)
		})
	}
}

func TestNewError_ValidationFields(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	var v serrors.Validator
	v.Required("address", "")
	v.Check(false, "price", "must be a positive amount")
	res := h.NewError(context.Background(), fmt.Errorf("create property: %w", v.Err()))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, []serrors.FieldError{
		{Field: "address", Message: "is required"},
		{Field: "price", Message: "must be a positive amount"},
	}, res.Response.Fields)

	var e jx.Encoder
	res.Response.Encode(&e)
	require.JSONEq(t, `{
		"code": "BAD_REQUEST",
		"message": "invalid fields [address, price]",
		"fields": [
			{"field": "address", "message": "is required"},
			{"field": "price", "message": "must be a positive amount"}
		]
	}`, e.String())
}

func TestErrorResponse_EncodeWithoutFields(t *testing.T) {
	var e jx.Encoder
	v1handler.ErrorResponse{Code: "NOT_FOUND", Message: "property not found"}.Encode(&e)

	require.JSONEq(t, `{"code":"NOT_FOUND","message":"property not found"}`, e.String())
}
