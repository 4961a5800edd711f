package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bankmanager/internal/core"
	httpHandler "bankmanager/internal/http"
	"bankmanager/internal/metrics"
	"bankmanager/internal/sqlite"
)

type TestSuite struct {
	Client  *sqlite.Client
	Store   sqlite.DirectoryStore
	Service *core.Service
	Metrics *metrics.Metrics
	Router  http.Handler
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	config := sqlite.Config{
		DatabasePath: filepath.Join(t.TempDir(), "test_bank.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		BusyTimeout:  5 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(context.Background(), config)
	require.NoError(t, err, "failed to create test client")
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Migrate(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	m := metrics.New()
	store := sqlite.NewDirectoryStore(client.DB())
	service := core.NewService(store, logger, core.WithRecorder(m))

	return &TestSuite{
		Client:  client,
		Store:   store,
		Service: service,
		Metrics: m,
		Router:  httpHandler.NewRouter(service, logger, m),
	}
}

// Do sends body as JSON and decodes the envelope's data into out when out is
// not nil.
func (s *TestSuite) Do(t *testing.T, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	if out != nil && w.Code < http.StatusMultipleChoices {
		envelope := struct {
			Success bool            `json:"success"`
			Data    json.RawMessage `json:"data"`
		}{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
		require.True(t, envelope.Success)
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}

	return w
}
