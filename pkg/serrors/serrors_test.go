package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"yokeair/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type uploadError struct{ key string }

func (e *uploadError) Error() string { return "upload of " + e.key + " failed" }

func TestKindsAreDistinctCodes(t *testing.T) {
	codes := map[serrors.Kind]string{
		serrors.ErrNotFound:     "NOT_FOUND",
		serrors.ErrUnauthorized: "UNAUTHORIZED",
		serrors.ErrForbidden:    "FORBIDDEN",
		serrors.ErrBadRequest:   "BAD_REQUEST",
		serrors.ErrConflict:     "CONFLICT",
		serrors.ErrInternal:     "INTERNAL",
		serrors.ErrTimeout:      "TIMEOUT",
		serrors.ErrUnavailable:  "UNAVAILABLE",
		serrors.ErrRateLimited:  "RATE_LIMITED",
		serrors.ErrDependency:   "DEPENDENCY_FAILURE",
	}
	require.Len(t, codes, 10, "every kind must be a separate map key")

	for k, code := range codes {
		require.Equal(t, code, k.Error())
	}
	require.NotErrorIs(t, serrors.ErrConflict, serrors.ErrBadRequest)
}

func TestError_Message(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{"message", serrors.With(serrors.ErrNotFound, "property %s not found", "p-1"), "property p-1 not found"},
		{"message and cause", serrors.Wrap(serrors.ErrDependency, cause, "could not upload image"), "could not upload image: connection reset"},
		{"cause only", serrors.Wrap(serrors.ErrDependency, cause, ""), "connection reset"},
		{"kind only", serrors.KindOnly(serrors.ErrForbidden), "FORBIDDEN"},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_IsAndAs(t *testing.T) {
	cause := &uploadError{key: "properties/a.jpg"}
	err := fmt.Errorf("adding images: %w", serrors.Wrap(serrors.ErrDependency, cause, "could not upload image"))

	require.ErrorIs(t, err, serrors.ErrDependency)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrInternal)

	var kind serrors.Kind
	require.ErrorAs(t, err, &kind)
	require.Equal(t, serrors.ErrDependency, kind)

	var ue *uploadError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "properties/a.jpg", ue.key)

	var se *serrors.Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, serrors.ErrDependency, se.Kind())
	require.Equal(t, "could not upload image", se.Message())
	require.Same(t, cause, se.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.With(serrors.ErrConflict, "you have already listed this unit")))
	require.Equal(t, serrors.ErrDependency, serrors.KindOf(fmt.Errorf("wrapped: %w", serrors.KindOnly(serrors.ErrDependency))))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(nil))
}

func TestValidator(t *testing.T) {
	var v serrors.Validator
	require.NoError(t, v.Err())

	bedrooms := -1

	v.Required("address", "  ")
	v.Required("borough", "Manhattan")
	v.Check(bedrooms >= 0, "bedrooms", "must be at least %d", 0)

	err := v.Err()
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "invalid fields [address, bedrooms]: address: is required; bedrooms: must be at least 0", err.Error())

	var ve *serrors.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, []serrors.FieldError{
		{Field: "address", Message: "is required"},
		{Field: "bedrooms", Message: "must be at least 0"},
	}, ve.Fields)
}
