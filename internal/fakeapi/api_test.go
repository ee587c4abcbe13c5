package fakeapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"murojaat/internal/domain/employee"
	"murojaat/internal/domain/record"
	"murojaat/internal/domain/role"
	"murojaat/internal/domain/session"
	"murojaat/internal/model"
)

func newTestAPI(t *testing.T) (humatest.TestAPI, *Server) {
	t.Helper()
	_, api := humatest.New(t)
	srv := New(NewStore(), []byte("test-secret"), slog.Default())
	srv.Register(api)
	return api, srv
}

func bearer(t *testing.T, srv *Server, r role.Name, name string) string {
	t.Helper()
	tok, err := srv.Tokens().Issue(model.NumericID(1), r, name)
	require.NoError(t, err)
	return "Authorization: Bearer " + tok
}

func draft(fullName, assignee string) record.Draft {
	return record.Draft{
		Neighborhood:   "Navbahor",
		FullName:       fullName,
		PassportSeries: "AA1234567",
		Phone:          "+998901234567",
		BirthDate:      "01.01.1990",
		Specialty:      "Oliy",
		Interests:      "IT",
		Assignee:       assignee,
		WorkDone:       "Maslahat berildi",
	}
}

func TestHealth(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Get("/api/health")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"OK"`)
}

func TestLogin(t *testing.T) {
	api, srv := newTestAPI(t)
	srv.Store().AddAdmin("admin", "admin123", "Bosh admin")
	_, err := srv.Store().CreateEmployee(employee.Form{Name: "Karimov", Login: "karimov", Password: "p"})
	require.NoError(t, err)

	resp := api.Post("/api/admin/login", map[string]string{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, resp.Code)
	var out session.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Bosh admin", out.User.Name)

	claims, err := srv.Tokens().Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	resp = api.Post("/api/employee/login", map[string]string{"login": "karimov", "password": "p"})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "karimov", out.User.Login)

	resp = api.Post("/api/employee/login", map[string]string{"login": "karimov", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"error":"Login yoki parol noto'g'ri"}`, resp.Body.String())
}

func TestRecords_AuthAndRoles(t *testing.T) {
	api, srv := newTestAPI(t)

	resp := api.Get("/api/records")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = api.Get("/api/records", "Authorization: Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// токен сотрудника не открывает админские пути
	resp = api.Get("/api/records", bearer(t, srv, role.Employee, "Karimov"))
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = api.Get("/api/user/records", bearer(t, srv, role.Employee, "Karimov"))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRecords_CRUD(t *testing.T) {
	api, srv := newTestAPI(t)
	srv.Store().now = func() time.Time { return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC) }
	admin := bearer(t, srv, role.Admin, "Boss")

	resp := api.Post("/api/records", admin, draft("Ali Valiyev", "Karimov"))
	require.Equal(t, http.StatusOK, resp.Code)
	var created record.Record
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, record.StatusInProgress, created.Status)
	assert.Equal(t, "15.01.2024", created.CreatedAt)

	created.Status = record.StatusCompleted
	resp = api.Put("/api/records/"+created.ID.String(), admin, created)
	require.Equal(t, http.StatusOK, resp.Code)

	rec, ok := srv.Store().GetRecord(created.ID)
	require.True(t, ok)
	assert.Equal(t, record.StatusCompleted, rec.Status)

	resp = api.Post("/api/records", admin, draft("", "Karimov"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error"`)

	resp = api.Delete("/api/records/"+created.ID.String(), admin)
	assert.Equal(t, http.StatusOK, resp.Code)
	resp = api.Delete("/api/records/"+created.ID.String(), admin)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestRecords_OpaqueIDsKeepFormAndEscape(t *testing.T) {
	api, srv := newTestAPI(t)
	admin := bearer(t, srv, role.Admin, "Boss")
	d := role.MustLookup(role.Admin)

	for _, id := range []model.ID{model.NewID("007"), model.NewID("a/b")} {
		rec := record.Record{ID: id, FullName: "Ali", Status: record.StatusInProgress, CreatedAt: "15.01.2024"}
		srv.Store().PutRecord(rec)

		stored, ok := srv.Store().GetRecord(id)
		require.True(t, ok)
		assert.False(t, stored.ID.IsNumber())

		resp := api.Delete(d.RecordPath(id.String()), admin)
		assert.Equal(t, http.StatusOK, resp.Code, id.String())
		_, ok = srv.Store().GetRecord(id)
		assert.False(t, ok)
	}
}

func TestRecords_EmployeeScope(t *testing.T) {
	api, srv := newTestAPI(t)
	mine := srv.Store().CreateRecord(draft("Ali", "Karimov"))
	other := srv.Store().CreateRecord(draft("Vali", "Rahimov"))
	emp := bearer(t, srv, role.Employee, "Karimov")

	resp := api.Get("/api/user/records", emp)
	require.Equal(t, http.StatusOK, resp.Code)
	var list []record.Record
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	resp = api.Delete("/api/user/records/"+other.ID.String(), emp)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestImages(t *testing.T) {
	api, srv := newTestAPI(t)
	rec := srv.Store().CreateRecord(draft("Ali", "Karimov"))
	admin := bearer(t, srv, role.Admin, "Boss")
	emp := bearer(t, srv, role.Employee, "Karimov")

	resp := api.Post("/api/records/"+rec.ID.String()+"/images", admin, map[string]string{"imageData": "QUJD", "description": "old"})
	require.Equal(t, http.StatusOK, resp.Code)

	// описание от сотрудника не сохраняется
	resp = api.Post("/api/user/records/"+rec.ID.String()+"/images", emp, map[string]string{"imageData": "REVG", "description": "x"})
	require.Equal(t, http.StatusOK, resp.Code)

	imgs := srv.Store().Images(rec.ID)
	require.Len(t, imgs, 2)
	assert.Equal(t, "old", imgs[0].Description)
	assert.Empty(t, imgs[1].Description)

	resp = api.Delete("/api/user/images/"+imgs[0].ID.String(), emp)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, srv.Store().Images(rec.ID), 1)

	resp = api.Get("/api/records/999/images", admin)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestEmployees(t *testing.T) {
	api, srv := newTestAPI(t)
	admin := bearer(t, srv, role.Admin, "Boss")

	resp := api.Post("/api/employee/employees", admin, employee.Form{Name: "Karimov", Login: "karimov", Password: "p"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/api/employee/employees", admin, employee.Form{Name: "Other", Login: "karimov", Password: "p"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	// справочник доступен и сотруднику
	resp = api.Get("/api/employee/employees", bearer(t, srv, role.Employee, "Karimov"))
	require.Equal(t, http.StatusOK, resp.Code)
	var list []employee.Credential
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)

	list[0].Name = "Karimov A."
	resp = api.Put("/api/employee/employees/"+list[0].ID.String(), admin, list[0])
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Karimov A.", srv.Store().Employees()[0].Name)

	resp = api.Delete("/api/employee/employees/"+list[0].ID.String(), admin)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, srv.Store().Employees())
}

func TestFailNext(t *testing.T) {
	api, srv := newTestAPI(t)
	admin := bearer(t, srv, role.Admin, "Boss")

	srv.FailNext(http.StatusInternalServerError, "Baza ishlamayapti")
	resp := api.Get("/api/records", admin)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Baza ishlamayapti"}`, resp.Body.String())

	resp = api.Get("/api/records", admin)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	api, srv := newTestAPI(t)
	srv.Tokens().SetTTL(-time.Minute)

	resp := api.Get("/api/records", bearer(t, srv, role.Admin, "Boss"))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
