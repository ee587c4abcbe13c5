package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"murojaat/internal/app/client/config"
	"murojaat/internal/domain/employee"
	"murojaat/internal/domain/record"
	"murojaat/internal/domain/role"
	"murojaat/internal/domain/session"
	"murojaat/internal/fakeapi"
	"murojaat/internal/utils/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

const (
	adminLogin    = "admin"
	adminPassword = "admin123"
	empLogin      = "karimov"
	empPassword   = "secret"
	empName       = "Karimov"
)

// testEnv - поддельный бэкенд и приложение, подключённое к нему
type testEnv struct {
	server  *fakeapi.Server
	http    *httptest.Server
	storage *MemoryStorage
	app     *App
}

func newTestEnv(t *testing.T, r role.Name) *testEnv {
	t.Helper()

	store := fakeapi.NewStore()
	store.AddAdmin(adminLogin, adminPassword, "Bosh admin")
	_, err := store.CreateEmployee(employee.Form{Name: empName, Login: empLogin, Password: empPassword})
	require.NoError(t, err)

	api := fakeapi.New(store, []byte("test-secret"), logger.Discard())
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)

	storage := NewMemoryStorage()
	cfg := &config.Config{Role: string(r), ServerAddress: srv.URL}
	transport := NewTransportWithClient(srv.URL, srv.Client(), logger.Discard())

	app, err := NewWithDeps(cfg, logger.Discard(), storage, transport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return &testEnv{server: api, http: srv, storage: storage, app: app}
}

// login входит под учётной записью, подходящей роли приложения
func (e *testEnv) login(t *testing.T) *session.Session {
	t.Helper()
	creds := session.Credentials{Login: adminLogin, Password: adminPassword}
	if e.app.Role().Name == role.Employee {
		creds = session.Credentials{Login: empLogin, Password: empPassword}
	}
	sess, err := e.app.Login(context.Background(), creds)
	require.NoError(t, err)
	return sess
}

func (e *testEnv) seedRecord(fullName, assignee string) record.Record {
	return e.server.Store().CreateRecord(testDraft(fullName, assignee))
}

func testDraft(fullName, assignee string) record.Draft {
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
