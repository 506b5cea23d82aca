package s3store_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"yokeair/pkg/assets"
	"yokeair/pkg/assets/s3store"
	"yokeair/pkg/serrors"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestStore(t *testing.T, fn rtFunc) *s3store.Store {
	t.Helper()

	s, err := s3store.New(context.Background(), s3store.Options{
		Bucket:          "listings",
		Region:          "us-east-1",
		Endpoint:        "http://s3.test",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		PublicBaseURL:   "https://cdn.test/",
	}, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: fn}
		o.RetryMaxAttempts = 1
	})
	require.NoError(t, err)

	return s
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/xml"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestKey(t *testing.T) {
	k := s3store.Key(assets.File{Folder: "/properties/", Name: "Living Room.JPG"})
	require.True(t, strings.HasPrefix(k, "properties/"))
	require.True(t, strings.HasSuffix(k, ".jpg"))

	require.NotContains(t, s3store.Key(assets.File{Name: "x.png"}), "/")
	require.NotEqual(t, s3store.Key(assets.File{Name: "a"}), s3store.Key(assets.File{Name: "a"}))
}

func TestStore_Upload(t *testing.T) {
	var gotPath string
	s := newTestStore(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "s3.test", r.URL.Host)
		require.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "jpeg-bytes", string(b))
		gotPath = r.URL.Path

		return respond(http.StatusOK, ""), nil
	})

	asset, err := s.Upload(context.Background(), assets.File{
		Folder:      "properties",
		Name:        "front.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	require.NoError(t, err)
	require.Equal(t, "/listings/"+asset.ExternalID, gotPath)
	require.True(t, strings.HasPrefix(asset.ExternalID, "properties/"))
	require.Equal(t, "https://cdn.test/"+asset.ExternalID, asset.URL)
}

func TestStore_Upload_Empty(t *testing.T) {
	s := newTestStore(t, func(r *http.Request) (*http.Response, error) {
		t.Fatalf("unexpected request to %s", r.URL)

		return nil, nil
	})

	_, err := s.Upload(context.Background(), assets.File{Name: "empty.png"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestStore_Upload_ProviderError(t *testing.T) {
	s := newTestStore(t, func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusForbidden,
			`<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`), nil
	})

	_, err := s.Upload(context.Background(), assets.File{Name: "a.png", Data: []byte("x")})
	require.ErrorIs(t, err, serrors.ErrDependency)
}

func TestStore_Destroy(t *testing.T) {
	calls := 0
	s := newTestStore(t, func(r *http.Request) (*http.Response, error) {
		calls++
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/listings/documents/a.pdf", r.URL.Path)

		return respond(http.StatusNoContent, ""), nil
	})

	require.NoError(t, s.Destroy(context.Background(), "documents/a.pdf"))
	require.NoError(t, s.Destroy(context.Background(), ""), "blank ids are ignored")
	require.Equal(t, 1, calls)
}
