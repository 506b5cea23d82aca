package v1handler_test

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yokeair/internal/account"
	mockaccount "yokeair/internal/account/mock"
	"yokeair/internal/api/handler/v1handler"
	"yokeair/internal/application"
	mockapplication "yokeair/internal/application/mock"
	mockimages "yokeair/internal/images/mock"
	"yokeair/internal/listing"
	mocklisting "yokeair/internal/listing/mock"
	"yokeair/internal/search"
	mocksearch "yokeair/internal/search/mock"
	"yokeair/pkg/assets"
	"yokeair/pkg/domain"
	"yokeair/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	accounts     *mockaccount.MockService
	listing      *mocklisting.MockService
	images       *mockimages.MockManager
	search       *mocksearch.MockEngine
	applications *mockapplication.MockService

	srv  *httptest.Server
	priv *rsa.PrivateKey
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testServer{
		accounts:     mockaccount.NewMockService(ctrl),
		listing:      mocklisting.NewMockService(ctrl),
		images:       mockimages.NewMockManager(ctrl),
		search:       mocksearch.NewMockEngine(ctrl),
		applications: mockapplication.NewMockService(ctrl),
	}

	priv, pubPEM := genRSAKeys(t)
	ts.priv = priv

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{
		Accounts:     ts.accounts,
		Listing:      ts.listing,
		Images:       ts.images,
		Search:       ts.search,
		Applications: ts.applications,
	}).Register(mux, newSecHandlerForTest(t, pubPEM))

	ts.srv = httptest.NewServer(mux)
	t.Cleanup(ts.srv.Close)

	return ts
}

func (ts *testServer) token(t *testing.T, actor domain.Actor) string {
	t.Helper()

	return signJWTRS256(t, ts.priv, actor.ID.String(), actor.Role, time.Now(), time.Now().Add(time.Hour))
}

func (ts *testServer) do(t *testing.T,
	actor *domain.Actor,
	method, path, contentType string,
	body io.Reader) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, ts.srv.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if actor != nil {
		req.Header.Set("Authorization", "Bearer "+ts.token(t, *actor))
	}

	res, err := ts.srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, raw
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func newActor(role domain.Role) *domain.Actor {
	return &domain.Actor{ID: domain.UserID(uuid.New()), Role: role}
}

func TestRoutes_RequireBearerToken(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.do(t, nil, http.MethodGet, "/v1/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, string(body))
}

func TestRoutes_RegisterIsPublic(t *testing.T) {
	ts := newTestServer(t)

	ts.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reg account.Registration) (*domain.User, error) {
			require.Equal(t, domain.RoleClient, reg.Role)

			return &domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleClient, Email: "a@example.com"}, nil
		})

	res, body := ts.do(t, nil, http.MethodPost, "/v1/users", "application/json",
		jsonBody(`{"role":"client","email":"a@example.com","firstName":"A","lastName":"B"}`))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var u domain.User
	require.NoError(t, json.Unmarshal(body, &u))
	require.Equal(t, "a@example.com", u.Email)
}

func TestRoutes_CreateProperty(t *testing.T) {
	ts := newTestServer(t)
	broker := newActor(domain.RoleBroker)

	ts.listing.EXPECT().CreateProperty(gomock.Any(), *broker, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.Actor, req listing.PropertyRequest) (*domain.Property, error) {
			require.Equal(t, "123 Main St", req.Address)
			require.Equal(t, "3200", req.Price, "numeric prices are passed through as text")
			require.Equal(t, 0, *req.Bedrooms)
			require.Equal(t, []domain.TagRef{"Elevator"}, req.Amenities)

			return &domain.Property{ID: domain.PropertyID(uuid.New()), UnitNumber: req.UnitNumber, Price: 3200}, nil
		})

	res, body := ts.do(t, broker, http.MethodPost, "/v1/properties", "application/json", jsonBody(`{
		"address": "123 Main St",
		"borough": "Manhattan",
		"unitNumber": "1A",
		"bedrooms": 0,
		"bathrooms": 1,
		"price": 3200,
		"amenities": ["Elevator"]
	}`))
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))

	var p domain.Property
	require.NoError(t, json.Unmarshal(body, &p))
	require.Equal(t, "1A", p.UnitNumber)
}

func TestRoutes_CreateProperty_Errors(t *testing.T) {
	ts := newTestServer(t)
	broker := newActor(domain.RoleBroker)

	t.Run("unknown field", func(t *testing.T) {
		res, _ := ts.do(t, broker, http.MethodPost, "/v1/properties", "application/json", jsonBody(`{"rooms": 3}`))
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("validation", func(t *testing.T) {
		ts.listing.EXPECT().CreateProperty(gomock.Any(), *broker, gomock.Any()).
			Return(nil, serrors.Invalid(serrors.FieldError{Field: "address", Message: "is required"}))

		res, body := ts.do(t, broker, http.MethodPost, "/v1/properties", "application/json", jsonBody(`{"price": "$3,200"}`))
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
		require.JSONEq(t, `{
			"code": "BAD_REQUEST",
			"message": "invalid fields [address]",
			"fields": [{"field": "address", "message": "is required"}]
		}`, string(body))
	})

	t.Run("conflict", func(t *testing.T) {
		ts.listing.EXPECT().CreateProperty(gomock.Any(), *broker, gomock.Any()).
			Return(nil, serrors.With(serrors.ErrConflict, "you have already listed this unit"))

		res, body := ts.do(t, broker, http.MethodPost, "/v1/properties", "application/json", jsonBody(`{}`))
		require.Equal(t, http.StatusConflict, res.StatusCode)
		require.Contains(t, string(body), "you have already listed this unit")
	})
}

func TestRoutes_PropertyPathID(t *testing.T) {
	ts := newTestServer(t)
	client := newActor(domain.RoleClient)

	res, body := ts.do(t, client, http.MethodGet, "/v1/properties/not-a-uuid", "", nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "propertyId")

	id := domain.PropertyID(uuid.New())
	ts.listing.EXPECT().Property(gomock.Any(), id).Return(nil, serrors.With(serrors.ErrNotFound, "property not found"))

	res, _ = ts.do(t, client, http.MethodGet, "/v1/properties/"+id.String(), "", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRoutes_UpdatePropertyStatus(t *testing.T) {
	ts := newTestServer(t)
	broker := newActor(domain.RoleBroker)
	id := domain.PropertyID(uuid.New())

	ts.listing.EXPECT().UpdateStatus(gomock.Any(), *broker, id, domain.PropertyStatusRented).
		Return(&domain.Property{ID: id, Status: domain.PropertyStatusRented}, nil)

	res, _ := ts.do(t, broker, http.MethodPut, "/v1/properties/"+id.String()+"/status", "application/json",
		jsonBody(`{"ignored": [1, 2], "status": "rented"}`))
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.do(t, broker, http.MethodPut, "/v1/properties/"+id.String()+"/status", "application/json",
		jsonBody(`{}`))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), `"field":"status"`)
}

func TestRoutes_BulkDelete(t *testing.T) {
	ts := newTestServer(t)
	broker := newActor(domain.RoleBroker)
	a, b := uuid.New(), uuid.New()

	ts.listing.EXPECT().BulkDelete(gomock.Any(), *broker, []domain.PropertyID{domain.PropertyID(a), domain.PropertyID(b)}).
		Return(nil, serrors.With(serrors.ErrForbidden, "you can only delete your own properties"))

	res, _ := ts.do(t, broker, http.MethodPost, "/v1/properties/bulk-delete", "application/json",
		jsonBody(`{"propertyIds": ["`+a.String()+`", "`+b.String()+`"]}`))
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRoutes_AddImages(t *testing.T) {
	ts := newTestServer(t)
	broker := newActor(domain.RoleBroker)
	id := domain.PropertyID(uuid.New())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"a.jpg", "b.jpg"} {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("data-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	ts.images.EXPECT().AddImages(gomock.Any(), *broker, id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.Actor, _ domain.PropertyID, files []assets.File) (*domain.Property, error) {
			require.Len(t, files, 2)
			require.Equal(t, "a.jpg", files[0].Name)
			require.Equal(t, []byte("data-b.jpg"), files[1].Data)

			return &domain.Property{ID: id}, nil
		})

	res, body := ts.do(t, broker, http.MethodPost, "/v1/properties/"+id.String()+"/images", mw.FormDataContentType(), &buf)
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
}

func TestRoutes_RemoveImageWithNestedAssetID(t *testing.T) {
	ts := newTestServer(t)
	broker := newActor(domain.RoleBroker)
	id := domain.PropertyID(uuid.New())

	ts.images.EXPECT().RemoveImage(gomock.Any(), *broker, id, "properties/abc.jpg").Return(&domain.Property{ID: id}, nil)

	res, _ := ts.do(t, broker, http.MethodDelete, "/v1/properties/"+id.String()+"/images/properties/abc.jpg", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRoutes_Search(t *testing.T) {
	ts := newTestServer(t)
	client := newActor(domain.RoleClient)

	ts.search.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q search.Query) ([]domain.Property, error) {
			require.Equal(t, []string{"Manhattan", "Brooklyn"}, q.Boroughs)
			require.InDelta(t, 2000, *q.MinPrice, 0)
			require.Equal(t, 2, *q.Bedrooms)
			require.Equal(t, "main", q.Text)

			return []domain.Property{}, nil
		})

	res, body := ts.do(t, client, http.MethodGet, "/v1/search?borough=Manhattan,Brooklyn&minPrice=2000&bedrooms=2&q=main", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `[]`, string(body))
}

func TestRoutes_ToggleSavedListing(t *testing.T) {
	ts := newTestServer(t)
	client := newActor(domain.RoleClient)
	id := domain.PropertyID(uuid.New())

	ts.accounts.EXPECT().ToggleSavedListing(gomock.Any(), *client, id).Return(true, nil)

	res, body := ts.do(t, client, http.MethodPost, "/v1/me/saved/"+id.String(), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"saved": true}`, string(body))
}

func TestRoutes_Applications(t *testing.T) {
	ts := newTestServer(t)
	client := newActor(domain.RoleClient)
	broker := newActor(domain.RoleBroker)
	propertyID := uuid.New()

	ts.applications.EXPECT().Submit(gomock.Any(), *client, domain.PropertyID(propertyID), application.Details{
		Type:          domain.ApplicationTypePurchase,
		MonthlyIncome: 9000,
		Employment:    domain.Employment{Employer: "Acme"},
	}).Return(&domain.Application{ID: domain.ApplicationID(uuid.New())}, nil)

	res, body := ts.do(t, client, http.MethodPost, "/v1/applications", "application/json", jsonBody(`{
		"propertyId": "`+propertyID.String()+`",
		"applicationType": "purchase",
		"monthlyIncome": 9000,
		"employment": {"employer": "Acme"}
	}`))
	require.Equal(t, http.StatusCreated, res.StatusCode, string(body))

	ts.applications.EXPECT().ListForApplicant(gomock.Any(), *client).Return([]domain.Application{}, nil)
	res, _ = ts.do(t, client, http.MethodGet, "/v1/applications", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	ts.applications.EXPECT().ListForBroker(gomock.Any(), *broker).Return([]domain.Application{}, nil)
	res, _ = ts.do(t, broker, http.MethodGet, "/v1/applications", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRoutes_AttachDocument(t *testing.T) {
	ts := newTestServer(t)
	client := newActor(domain.RoleClient)
	id := domain.ApplicationID(uuid.New())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", "paystub"))
	fw, err := mw.CreateFormFile("file", "paystub.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	ts.applications.EXPECT().AttachDocument(gomock.Any(), *client, id, "paystub", gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrDependency, io.ErrUnexpectedEOF, "could not upload document"))

	res, body := ts.do(t, client, http.MethodPost, "/v1/applications/"+id.String()+"/documents", mw.FormDataContentType(), &buf)
	require.Equal(t, http.StatusBadGateway, res.StatusCode)
	require.JSONEq(t, `{"code":"DEPENDENCY_FAILURE","message":"could not upload document"}`, string(body))
}
