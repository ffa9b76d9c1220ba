package api

import (
	"bytes"
	"candidate-notes/auth"
	"candidate-notes/repositories"
	"candidate-notes/repositories/sqlite"
	"candidate-notes/runtime"
	"candidate-notes/services"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testPassword = "ComplexPass123!"

type testApp struct {
	store    repositories.Store
	sessions *runtime.SessionRegistry
	rooms    *runtime.RoomTable
	server   *Server
}

func testLog() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

// newTestApp wires the real services onto a sqlite file in the test's temp dir.
func newTestApp(t *testing.T) testApp {
	t.Helper()
	log := testLog()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	store := sqlite.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })

	tokens := auth.NewTokenManager("test-secret")
	sessions := runtime.NewSessionRegistry(log, auth.CredentialLifetime)
	rooms := runtime.NewRoomTable(log, sessions, time.Second)
	gatekeeper := auth.NewGatekeeper(log, tokens, store.Users)
	dispatcher := runtime.NewDispatcher(log, store, rooms)

	server := NewServer(log, gatekeeper, Services{
		Auth:          services.NewAuthService(log, store.Users, tokens, sessions),
		Users:         services.NewUserService(store.Users),
		Candidates:    services.NewCandidateService(store.Candidates),
		Notes:         services.NewNoteService(store, dispatcher),
		Notifications: services.NewNotificationService(log, store),
	}, []string{"http://localhost:3000"}, nil)

	return testApp{store: store, sessions: sessions, rooms: rooms, server: server}
}

// do sends a JSON request. An empty token sends no credential.
func (a testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	r := httptest.NewRequest(method, path, &payload)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.server.Handler().ServeHTTP(w, r)
	return w
}

// register creates a user through the API and returns its session.
func (a testApp) register(t *testing.T, name string) services.Session {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/register", "", auth.RegisterRequest{
		Name:     name,
		Email:    name + "@example.com",
		Password: testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session services.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	return session
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
