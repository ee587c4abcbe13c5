package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murojaat/internal/utils/logger"
)

func newRawTransport(t *testing.T, h http.HandlerFunc) *Transport {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewTransportWithClient(srv.URL+"/", srv.Client(), logger.Discard())
}

func TestTransport_Headers(t *testing.T) {
	var got http.Header
	var gotBody map[string]string
	tr := newRawTransport(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok":"yes"}`))
	})

	var out map[string]string
	err := tr.Do(context.Background(), OpLoadRecords, http.MethodPost, "/api/records", "tok", map[string]string{"a": "b"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, userAgent, got.Get("User-Agent"))
	assert.NotEmpty(t, got.Get(requestIDHeader))
	assert.Equal(t, map[string]string{"a": "b"}, gotBody)
	assert.Equal(t, "yes", out["ok"])
}

func TestTransport_NoTokenNoAuthorization(t *testing.T) {
	var got http.Header
	tr := newRawTransport(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	})

	require.NoError(t, tr.Do(context.Background(), OpLogin, http.MethodGet, "/", "", nil, nil))
	assert.Empty(t, got.Get("Authorization"))
	assert.Empty(t, got.Get("Content-Type"))
}

func TestTransport_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "401", status: http.StatusUnauthorized, body: `{"error":"Token expired"}`, wantErr: ErrUnauthorized, wantMsg: sessionExpiredText},
		{name: "403", status: http.StatusForbidden, body: ``, wantErr: ErrUnauthenticated, wantMsg: sessionExpiredText},
		{name: "404", status: http.StatusNotFound, body: `{"message":"Topilmadi"}`, wantErr: ErrNotFound, wantMsg: "Topilmadi"},
		{name: "400 error field", status: http.StatusBadRequest, body: `{"error":"Barcha maydonlarni to'ldiring"}`, wantErr: ErrValidationFailed, wantMsg: "Barcha maydonlarni to'ldiring"},
		{name: "422 detail", status: http.StatusUnprocessableEntity, body: `{"detail":"validation failed"}`, wantErr: ErrValidationFailed, wantMsg: "validation failed"},
		{name: "500 html", status: http.StatusInternalServerError, body: `<html>oops</html>`, wantErr: ErrValidationFailed, wantMsg: OpDeleteRecord.Failure()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newRawTransport(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := tr.Do(context.Background(), OpDeleteRecord, http.MethodDelete, "/x", "tok", nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, Message(err))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, OpDeleteRecord, apiErr.Op)
		})
	}
}

func TestTransport_UndecodableSuccess(t *testing.T) {
	tr := newRawTransport(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	var out []string
	err := tr.Do(context.Background(), OpLoadRecords, http.MethodGet, "/", "tok", nil, &out)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.NotErrorIs(t, err, ErrValidationFailed)
}

func TestTransport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := NewTransportWithClient(url, http.DefaultClient, logger.Discard())
	err := tr.Do(context.Background(), OpLoadRecords, http.MethodGet, "/", "", nil, nil)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Equal(t, OpLoadRecords.Failure(), Message(err))
}

func TestTransport_CanceledContext(t *testing.T) {
	tr := newRawTransport(t, func(w http.ResponseWriter, _ *http.Request) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := tr.Do(ctx, OpLoadRecords, http.MethodGet, "/", "", nil, nil)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.ErrorIs(t, err, context.Canceled)
}
