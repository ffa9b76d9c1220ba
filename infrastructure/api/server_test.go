package api

import (
	"candidate-notes/auth"
	"candidate-notes/domain"
	"candidate-notes/services"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	req := require.New(t)
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/health", "", nil)

	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func TestAuthRoutes(t *testing.T) {
	t.Run("register then login hand back a session", func(t *testing.T) {
		req := require.New(t)
		app := newTestApp(t)

		// Given a registered user
		registered := app.register(t, "alice")
		req.NotEmpty(registered.Token)

		// When logging in again
		w := app.do(t, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{
			Email:    "alice@example.com",
			Password: testPassword,
		})

		// Then a new token is issued for the same user and the credential is tracked
		req.Equal(http.StatusOK, w.Code)
		session := decode[services.Session](t, w)
		req.Equal(registered.UserID, session.UserID)
		_, tracked := app.sessions.Credential(session.UserID)
		req.True(tracked)
	})

	t.Run("duplicate email is a bad request", func(t *testing.T) {
		req := require.New(t)
		app := newTestApp(t)
		app.register(t, "alice")

		w := app.do(t, http.MethodPost, "/api/auth/register", "", auth.RegisterRequest{
			Name:     "alice2",
			Email:    "alice@example.com",
			Password: testPassword,
		})

		req.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("wrong password is a bad request", func(t *testing.T) {
		req := require.New(t)
		app := newTestApp(t)
		app.register(t, "alice")

		w := app.do(t, http.MethodPost, "/api/auth/login", "", auth.LoginRequest{
			Email:    "alice@example.com",
			Password: "WrongPass123!",
		})

		req.Equal(http.StatusBadRequest, w.Code)
		req.JSONEq(`{"msg":"invalid credentials"}`, w.Body.String())
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		req := require.New(t)
		app := newTestApp(t)

		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		w := httptest.NewRecorder()
		app.server.Handler().ServeHTTP(w, r)

		req.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("logout forgets the credential", func(t *testing.T) {
		req := require.New(t)
		app := newTestApp(t)
		session := app.register(t, "alice")

		w := app.do(t, http.MethodPost, "/api/auth/logout", session.Token, nil)

		req.Equal(http.StatusOK, w.Code)
		_, tracked := app.sessions.Credential(session.UserID)
		req.False(tracked)
	})
}

func TestAuthenticate(t *testing.T) {
	app := newTestApp(t)
	session := app.register(t, "alice")

	t.Run("missing token", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/candidates", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/candidates", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("legacy header is accepted", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
		r.Header.Set(auth.HeaderAuthToken, session.Token)
		w := httptest.NewRecorder()
		app.server.Handler().ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("query token is refused outside the socket", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/api/candidates?token="+session.Token, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUsersRoute(t *testing.T) {
	req := require.New(t)
	app := newTestApp(t)

	// Given three users
	carol := app.register(t, "carol")
	app.register(t, "bob")
	app.register(t, "alice")

	// When carol lists the users
	w := app.do(t, http.MethodGet, "/api/users", carol.Token, nil)

	// Then everybody but carol comes back, sorted by name, without password hashes
	req.Equal(http.StatusOK, w.Code)
	users := decode[[]domain.User](t, w)
	req.Len(users, 2)
	req.Equal("alice", users[0].Name)
	req.Equal("bob", users[1].Name)
	req.NotContains(w.Body.String(), "argon2")
}

func TestCandidateRoutes(t *testing.T) {
	req := require.New(t)
	app := newTestApp(t)
	session := app.register(t, "alice")

	// Empty list encodes as []
	w := app.do(t, http.MethodGet, "/api/candidates", session.Token, nil)
	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`[]`, w.Body.String())

	w = app.do(t, http.MethodPost, "/api/candidates", session.Token,
		services.CreateCandidateRequest{Name: "Jane Roe", Email: "jane@example.com"})
	req.Equal(http.StatusOK, w.Code)
	created := decode[domain.Candidate](t, w)
	req.NotEmpty(created.ID)

	w = app.do(t, http.MethodPost, "/api/candidates", session.Token,
		services.CreateCandidateRequest{Name: "Jane Again", Email: "jane@example.com"})
	req.Equal(http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodGet, "/api/candidates", session.Token, nil)
	req.Equal(http.StatusOK, w.Code)
	req.Len(decode[[]domain.Candidate](t, w), 1)
}

func TestNotesAndNotificationsRoutes(t *testing.T) {
	req := require.New(t)
	app := newTestApp(t)
	ctx := context.Background()

	// Given alice, dana and a candidate
	alice := app.register(t, "alice")
	dana := app.register(t, "dana")
	candidate, err := app.store.Candidates.CreateCandidate(ctx, "Jane Roe", "jane@example.com")
	req.NoError(err)

	// When alice posts a note mentioning dana and an unknown user
	w := app.do(t, http.MethodPost, "/api/notes/"+candidate.ID, alice.Token,
		createNoteRequest{Message: "Strong profile, @dana please review. cc @nobody"})

	// Then the populated note comes back
	req.Equal(http.StatusOK, w.Code, w.Body.String())
	note := decode[domain.PopulatedNote](t, w)
	req.Equal("alice", note.Author.Name)
	req.Equal(candidate.ID, note.CandidateID)

	// And the history contains it
	w = app.do(t, http.MethodGet, "/api/notes/"+candidate.ID, dana.Token, nil)
	req.Equal(http.StatusOK, w.Code)
	history := decode[[]domain.PopulatedNote](t, w)
	req.Len(history, 1)
	req.Equal(note.ID, history[0].ID)

	// And only dana received a notification
	w = app.do(t, http.MethodGet, "/api/notifications", alice.Token, nil)
	req.JSONEq(`[]`, w.Body.String())

	w = app.do(t, http.MethodGet, "/api/notifications", dana.Token, nil)
	req.Equal(http.StatusOK, w.Code)
	notifications := decode[[]domain.PopulatedNotification](t, w)
	req.Len(notifications, 1)
	req.False(notifications[0].Read)
	req.Equal("Jane Roe", notifications[0].Note.Candidate.Name)
	notificationID := notifications[0].ID

	// alice may not mark dana's notification
	w = app.do(t, http.MethodPut, "/api/notifications/"+notificationID, alice.Token, nil)
	req.Equal(http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPut, "/api/notifications/unknown-id", dana.Token, nil)
	req.Equal(http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPut, "/api/notifications/"+notificationID, dana.Token, nil)
	req.Equal(http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/notifications", dana.Token, nil)
	req.True(decode[[]domain.PopulatedNotification](t, w)[0].Read)
}

func TestNotesRoutes_Failures(t *testing.T) {
	req := require.New(t)
	app := newTestApp(t)
	alice := app.register(t, "alice")

	w := app.do(t, http.MethodPost, "/api/notes/unknown", alice.Token, createNoteRequest{Message: "hello"})
	req.Equal(http.StatusNotFound, w.Code)

	candidate, err := app.store.Candidates.CreateCandidate(context.Background(), "Jane Roe", "jane@example.com")
	req.NoError(err)
	w = app.do(t, http.MethodPost, "/api/notes/"+candidate.ID, alice.Token, createNoteRequest{Message: "   "})
	req.Equal(http.StatusBadRequest, w.Code)
}

func TestMarkAllAsReadRoute(t *testing.T) {
	req := require.New(t)
	app := newTestApp(t)
	ctx := context.Background()
	alice := app.register(t, "alice")
	dana := app.register(t, "dana")
	candidate, err := app.store.Candidates.CreateCandidate(ctx, "Jane Roe", "jane@example.com")
	req.NoError(err)

	for _, message := range []string{"@dana first", "@dana second"} {
		w := app.do(t, http.MethodPost, "/api/notes/"+candidate.ID, alice.Token, createNoteRequest{Message: message})
		req.Equal(http.StatusOK, w.Code)
	}

	// "read-all" must not be taken for a notification id
	w := app.do(t, http.MethodPut, "/api/notifications/read-all", dana.Token, nil)
	req.Equal(http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/notifications", dana.Token, nil)
	notifications := decode[[]domain.PopulatedNotification](t, w)
	req.Len(notifications, 2)
	for _, n := range notifications {
		req.True(n.Read)
	}
}

func TestCORS(t *testing.T) {
	app := newTestApp(t)

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		req := require.New(t)
		r := httptest.NewRequest(http.MethodOptions, "/api/candidates", nil)
		r.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		app.server.Handler().ServeHTTP(w, r)

		req.Equal(http.StatusNoContent, w.Code)
		req.Equal("http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		req.Contains(w.Header().Get("Access-Control-Allow-Headers"), auth.HeaderAuthToken)
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := require.New(t)
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		app.server.Handler().ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)
		req.Empty(w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		req := require.New(t)
		router := gin.New()
		router.Use(CORS([]string{"*"}))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		r := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.Header.Set("Origin", "http://anywhere.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		req.Equal("http://anywhere.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecovery(t *testing.T) {
	req := require.New(t)
	router := gin.New()
	router.Use(Recovery(testLog()))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	req.Equal(http.StatusInternalServerError, w.Code)
	req.JSONEq(`{"msg":"Server error"}`, w.Body.String())
}
