package api

import (
	"candidate-notes/auth"
	"candidate-notes/contract"
	"candidate-notes/domain"
	"candidate-notes/errors"
	"candidate-notes/services"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services groups what the HTTP handlers call into.
type Services struct {
	Auth          services.IAuthService
	Users         services.IUserService
	Candidates    services.ICandidateService
	Notes         services.INoteService
	Notifications services.INotificationService
}

type Server struct {
	log      *slog.Logger
	router   *gin.Engine
	services Services
}

// NewServer builds the router. The WebSocket handler, when given, is mounted on /ws.
func NewServer(log *slog.Logger, gatekeeper contract.IGatekeeper, svc Services, allowedOrigins []string, ws http.Handler) *Server {
	router := gin.New()
	router.Use(Recovery(log))
	router.Use(RequestLogger(log))
	router.Use(CORS(allowedOrigins))

	s := &Server{log: log, router: router, services: svc}
	s.setupRoutes(gatekeeper, ws)
	return s
}

// Handler exposes the router to an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes(gatekeeper contract.IGatekeeper, ws http.Handler) {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if ws != nil {
		// The socket authenticates during the handshake itself
		s.router.GET("/ws", gin.WrapH(ws))
	}

	api := s.router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister())
		authGroup.POST("/login", s.handleLogin())
		authGroup.POST("/logout", Authenticate(gatekeeper), s.handleLogout())
	}

	protected := api.Group("")
	protected.Use(Authenticate(gatekeeper))
	{
		protected.GET("/users", s.handleListUsers())

		candidates := protected.Group("/candidates")
		{
			candidates.POST("", s.handleCreateCandidate())
			candidates.GET("", s.handleListCandidates())
		}

		notes := protected.Group("/notes")
		{
			notes.POST("/:candidateId", s.handleCreateNote())
			notes.GET("/:candidateId", s.handleGetNotes())
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", s.handleListNotifications())
			// Registered before /:id so "read-all" is never taken for an id
			notifications.PUT("/read-all", s.handleMarkAllAsRead())
			notifications.PUT("/:id", s.handleMarkAsRead())
		}
	}
}

func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, errors.ErrInvalidRequest)
			return
		}
		session, err := s.services.Auth.Register(c.Request.Context(), req, c.Request.UserAgent())
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, errors.ErrInvalidRequest)
			return
		}
		session, err := s.services.Auth.Login(c.Request.Context(), req, c.Request.UserAgent())
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.services.Auth.Logout(c.Request.Context(), CurrentUser(c).ID)
		c.JSON(http.StatusOK, gin.H{"msg": "Logged out successfully"})
	}
}

func (s *Server) handleListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.services.Users.ListOtherUsers(c.Request.Context(), CurrentUser(c).ID)
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, nonNil(users))
	}
}

func (s *Server) handleCreateCandidate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateCandidateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, errors.ErrInvalidRequest)
			return
		}
		candidate, err := s.services.Candidates.CreateCandidate(c.Request.Context(), req)
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, candidate)
	}
}

func (s *Server) handleListCandidates() gin.HandlerFunc {
	return func(c *gin.Context) {
		candidates, err := s.services.Candidates.ListCandidates(c.Request.Context())
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, nonNil(candidates))
	}
}

type createNoteRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleCreateNote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, errors.ErrInvalidRequest)
			return
		}
		note, err := s.services.Notes.AddNote(c.Request.Context(), domain.NoteDraft{
			CandidateID: c.Param("candidateId"),
			AuthorID:    CurrentUser(c).ID,
			Message:     req.Message,
		})
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, note)
	}
}

func (s *Server) handleGetNotes() gin.HandlerFunc {
	return func(c *gin.Context) {
		notes, err := s.services.Notes.GetNotes(c.Request.Context(), c.Param("candidateId"))
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, nonNil(notes))
	}
}

func (s *Server) handleListNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, err := s.services.Notifications.GetNotifications(c.Request.Context(), CurrentUser(c).ID)
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, nonNil(notifications))
	}
}

func (s *Server) handleMarkAsRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := s.services.Notifications.MarkAsRead(c.Request.Context(), CurrentUser(c).ID, c.Param("id"))
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Notification marked as read"})
	}
}

func (s *Server) handleMarkAllAsRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.services.Notifications.MarkAllAsRead(c.Request.Context(), CurrentUser(c).ID); err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "All notifications marked as read"})
	}
}

// respondError logs server-side failures and hides their details from the client.
func (s *Server) respondError(c *gin.Context, err error) {
	if errors.MapToHTTPStatus(err) == http.StatusInternalServerError {
		s.log.Error("Request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	abortWithError(c, err)
}

func abortWithError(c *gin.Context, err error) {
	status := errors.MapToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"msg": message})
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
