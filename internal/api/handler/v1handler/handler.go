package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"yokeair/internal/account"
	"yokeair/internal/application"
	"yokeair/internal/images"
	"yokeair/internal/listing"
	"yokeair/internal/search"
	"yokeair/pkg/logger"
	"yokeair/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxUploadBytes caps multipart bodies when Options leaves it unset.
const DefaultMaxUploadBytes = 32 << 20

// Deps are the services behind the v1 routes.
type Deps struct {
	Accounts     account.Service
	Listing      listing.Service
	Images       images.Manager
	Search       search.Engine
	Applications application.Service
}

type Handler struct {
	deps           Deps
	maxUploadBytes int64
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps, maxUploadBytes: DefaultMaxUploadBytes}
}

// WithMaxUploadBytes overrides the multipart body limit.
func (h *Handler) WithMaxUploadBytes(n int64) *Handler {
	if n > 0 {
		h.maxUploadBytes = n
	}

	return h
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string
	Message string
	Fields  []serrors.FieldError
}

// Encode writes the response as {code, message, fields?}.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	if len(r.Fields) > 0 {
		e.FieldStart("fields")
		e.ArrStart()
		for _, f := range r.Fields {
			e.ObjStart()
			e.FieldStart("field")
			e.Str(f.Field)
			e.FieldStart("message")
			e.Str(f.Message)
			e.ObjEnd()
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var statusCodes = map[serrors.Kind]int{
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,
	serrors.ErrDependency:   http.StatusBadGateway,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
	serrors.ErrInternal:     http.StatusInternalServerError,
}

var defaultMessages = map[serrors.Kind]string{
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrConflict:     "conflict",
	serrors.ErrRateLimited:  "too many requests",
	serrors.ErrDependency:   "an upstream service failed",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrInternal:     "internal error",
}

// NewError maps err to a status code and a client safe body. Internal errors
// are logged and never leak their message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	var (
		kind serrors.Kind
		msg  string
		se   *serrors.Error
	)
	switch {
	case errors.As(err, &se) && se.Kind() != nil:
		kind = se.Kind()
		msg = se.Message()
	case errors.As(err, &kind):
	default:
		kind = serrors.ErrInternal
	}

	status, ok := statusCodes[kind]
	if !ok {
		kind, status = serrors.ErrInternal, http.StatusInternalServerError
	}
	if kind == serrors.ErrInternal || msg == "" {
		msg = defaultMessages[kind]
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(ctx, "request failed", zap.String("code", kind.Error()), zap.Error(err))
	case logger.IsDebug(ctx):
		logger.Debug(ctx, "request rejected", zap.String("code", kind.Error()), zap.Error(err))
	}

	res := &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
	var ve *serrors.ValidationError
	if errors.As(err, &ve) {
		res.Response.Fields = ve.Fields
	}

	return res
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	res.Response.Encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a JSON body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body: %s", err.Error())
	}

	return nil
}

// handle adapts an error returning handler to http.HandlerFunc.
func (h Handler) handle(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

func badParam(name string, err error) error {
	return serrors.Invalid(serrors.FieldError{Field: name, Message: fmt.Sprintf("is malformed: %s", err.Error())})
}
