package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"medical-scheduling-api/internal/delivery/http/handler"
	"medical-scheduling-api/internal/delivery/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// routeRecorder answers every route with its own name, or panics on panicOn.
type routeRecorder struct {
	name    string
	panicOn string
}

func (f routeRecorder) write(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if route == f.panicOn {
			panic("boom")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, f.name+"."+route)
	}
}

func (f routeRecorder) EntityName() string                                   { return f.name }
func (f routeRecorder) List(w http.ResponseWriter, r *http.Request)          { f.write("List")(w, r) }
func (f routeRecorder) Get(w http.ResponseWriter, r *http.Request)           { f.write("Get")(w, r) }
func (f routeRecorder) Create(w http.ResponseWriter, r *http.Request)        { f.write("Create")(w, r) }
func (f routeRecorder) Update(w http.ResponseWriter, r *http.Request)        { f.write("Update")(w, r) }
func (f routeRecorder) Delete(w http.ResponseWriter, r *http.Request)        { f.write("Delete")(w, r) }
func (f routeRecorder) UpdatePartial(w http.ResponseWriter, r *http.Request) { f.write("UpdatePartial")(w, r) }
func (f routeRecorder) DeleteLogic(w http.ResponseWriter, r *http.Request)   { f.write("DeleteLogic")(w, r) }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	return newTestRouterWith(t, log,
		routeRecorder{name: "Patient"},
		routeRecorder{name: "Doctor"},
		routeRecorder{name: "Appointment"},
	)
}

func newTestRouterWith(t *testing.T, log *logrus.Logger, entities ...handler.CrudRoutes) http.Handler {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewRouter(
		entities,
		handler.NewAuditLogHandler(nil, log),
		handler.NewHealthHandler(db, nil, log),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRecoveryMiddleware(log),
		middleware.NewCORSMiddleware([]string{"http://localhost:3000"}),
	).Setup()
}

func TestRouter_EntityRoutes(t *testing.T) {
	h := newTestRouter(t)

	cases := []struct {
		method, path, want string
	}{
		{http.MethodPatch, "/api/Patient/update-partial", "Patient.UpdatePartial"},
		{http.MethodPatch, "/api/Doctor/delete-logic", "Doctor.DeleteLogic"},
		{http.MethodGet, "/api/Appointment", "Appointment.List"},
		{http.MethodPost, "/api/Appointment", "Appointment.Create"},
		{http.MethodGet, "/api/Patient/12", "Patient.Get"},
		{http.MethodPut, "/api/Doctor/3", "Doctor.Update"},
		{http.MethodDelete, "/api/Doctor/3", "Doctor.Delete"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, tc.path)
		assert.Equal(t, tc.want, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	}
}

func TestRouter_UnknownRoutes(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/Nurse", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")

	wrongMethod := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/Patient/update-partial"},
		{http.MethodPost, "/api/Doctor/delete-logic"},
		{http.MethodPatch, "/api/Appointment/7"},
		{http.MethodDelete, "/api/Appointment"},
		{http.MethodPost, "/api/AuditLog"},
	}
	for _, tc := range wrongMethod {
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, tc.method+" "+tc.path)
	}
}

func TestRouter_PanicIsRecoveredAndLogged(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	h := newTestRouterWith(t, log, routeRecorder{name: "Patient", panicOn: "List"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/Patient", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	assert.NotContains(t, rec.Body.String(), "boom")

	var access *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "request failed" {
			access = e
		}
	}
	require.NotNil(t, access)
	assert.Equal(t, http.StatusInternalServerError, access.Data["status"])
	assert.Equal(t, "/api/Patient", access.Data["path"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/Patient/delete-logic", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)
}
