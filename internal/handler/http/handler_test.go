package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-maintenance-search/internal/config"
	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/metrics"
	"github.com/MKhiriev/go-maintenance-search/internal/mock"
	"github.com/MKhiriev/go-maintenance-search/internal/session"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
	"github.com/MKhiriev/go-maintenance-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNavigation = config.Navigation{
	DetailURL:   "inspection.html",
	PDFURL:      "pdf-output.html",
	CustomerURL: "customer.html",
}

// testServer bundles a fully wired router with the mocked records API.
type testServer struct {
	api     *mock.MockRecordsAPI
	store   *session.Store
	signer  *session.Signer
	metrics *metrics.Prometheus
	router  http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mock.NewMockRecordsAPI(ctrl)

	prom, err := metrics.NewPrometheus()
	require.NoError(t, err)

	store := session.NewStore(func() *view.RecordSearchView {
		return view.NewRecordSearchView(api, view.Options{
			Locale:     config.LocaleEnglish,
			Navigation: testNavigation,
			Metrics:    prom,
		})
	}, time.Hour, logger.Nop())

	signer := session.NewSigner(config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "maintenance-search-test",
		SessionDuration: time.Hour,
	})

	h := NewHandler(Dependencies{
		Sessions:  store,
		Signer:    signer,
		Metrics:   prom.Handler(),
		BuildInfo: models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
		Locale:    config.LocaleEnglish,
	}, logger.Nop())

	return &testServer{api: api, store: store, signer: signer, metrics: prom, router: h.Init()}
}

// client replays the session cookie the way a browser does.
type client struct {
	srv    *testServer
	cookie *http.Cookie
}

func (s *testServer) client() *client {
	return &client{srv: s}
}

func (c *client) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rr := httptest.NewRecorder()
	c.srv.router.ServeHTTP(rr, req)

	for _, ck := range rr.Result().Cookies() {
		if ck.Name == session.CookieName {
			c.cookie = ck
		}
	}
	return rr
}

func (c *client) get(t *testing.T, target string) *httptest.ResponseRecorder {
	return c.do(t, http.MethodGet, target, nil)
}

func mileage(v float64) *float64 { return &v }

func sampleRecords() []models.Record {
	return []models.Record{
		{
			ID:                 "r1",
			ClientName:         "Tanaka Taro",
			RegistrationNumber: "Shinagawa 300 a 12-34",
			ChassisNumber:      "ZVW50-1234567",
			CarModel:           "Prius",
			Status:             models.StatusCompleted,
			InspectionDate:     models.NewDate(2026, time.March, 1),
			Mileage:            mileage(45000),
			Tags:               models.Tags{"oil", "brakes", "tires"},
			AccessToken:        "tok-r1",
		},
		{
			ID:                 "r2",
			ClientName:         "Suzuki Hanako",
			RegistrationNumber: "Nerima 500 b 56-78",
			ChassisNumber:      "NHP10-7654321",
			CarModel:           "Aqua",
			Status:             models.StatusDraft,
		},
		{
			ID:                 "r3",
			ClientName:         "Tanaka Jiro",
			RegistrationNumber: "Tama 330 c 90-12",
			CarModel:           "Corolla",
			Status:             models.StatusArchived,
			Mileage:            mileage(0),
		},
	}
}

func (s *testServer) expectList(records []models.Record, err error) *gomock.Call {
	return s.api.EXPECT().
		ListRecords(gomock.Any(), models.ResourceMaintenanceRecords, models.ListOptions{
			Limit: view.ListLimit,
			Sort:  view.ListSort,
		}).
		Return(models.ListResponse{Data: records}, err)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	store := session.NewStore(nil, time.Minute, logger.Nop())
	signer := session.NewSigner(config.App{SessionSignKey: "k"})
	log := logger.Nop()

	h := NewHandler(Dependencies{
		Sessions: store,
		Signer:   signer,
		Locale:   config.LocaleJapanese,
	}, log)

	require.NotNil(t, h)
	assert.Same(t, store, h.sessions)
	assert.Same(t, signer, h.signer)
	assert.Equal(t, config.LocaleJapanese, h.locale)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_DefaultsValidator(t *testing.T) {
	h := NewHandler(Dependencies{}, logger.Nop())

	assert.NotNil(t, h.validator)
	assert.Nil(t, h.metrics)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersRoutes(t *testing.T) {
	srv := newTestServer(t)
	srv.expectList(sampleRecords(), nil).AnyTimes()
	srv.api.EXPECT().DeleteRecord(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/search", http.StatusOK},
		{http.MethodPost, "/search/clear", http.StatusSeeOther},
		{http.MethodGet, "/records/r1", http.StatusSeeOther},
		{http.MethodGet, "/records/r1/edit", http.StatusSeeOther},
		{http.MethodGet, "/records/r1/pdf", http.StatusSeeOther},
		{http.MethodGet, "/customer/tok-r1", http.StatusSeeOther},
		{http.MethodGet, "/records/r1/delete", http.StatusOK},
		{http.MethodPost, "/records/r1/delete", http.StatusSeeOther},
		{http.MethodGet, "/api/version/", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
	}

	c := srv.client()
	c.get(t, "/")

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := c.do(t, tt.method, tt.path, url.Values{})
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestInit_UnknownRouteIs404(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.client().get(t, "/does-not-exist")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodIs404(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.client().do(t, http.MethodDelete, "/search/clear", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_MetricsRouteOmittedWithoutHandler(t *testing.T) {
	h := NewHandler(Dependencies{}, logger.Nop())

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	srv := newTestServer(t)

	rr := srv.client().get(t, "/api/version/")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// webRoutes
// ─────────────────────────────────────────────

func TestWebRoutes_EscapePathSegments(t *testing.T) {
	r := webRoutes{}

	assert.Equal(t, "/records/r1", r.Detail("r1"))
	assert.Equal(t, "/records/r1/edit", r.Edit("r1"))
	assert.Equal(t, "/records/r1/pdf", r.PDF("r1"))
	assert.Equal(t, "/records/r1/delete", r.Delete("r1"))
	assert.Equal(t, "/customer/tok", r.Customer("tok"))
	assert.Equal(t, "/records/a%2Fb", r.Detail("a/b"))
	assert.Equal(t, "/customer/x%20y", r.Customer("x y"))
}
