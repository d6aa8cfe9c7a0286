package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/limbo/goalkeeper/internal/service"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 15 * time.Second
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	goalsService    service.GoalsServiceI
	progressService service.ProgressServiceI
	teamsService    service.TeamsServiceI
	eventsService   service.EventsServiceI
	jwtService      JWTServiceI
	db              Pinger
	requestTimeout  time.Duration
}

type ServicesList struct {
	UserService     service.UserServiceI
	GoalsService    service.GoalsServiceI
	ProgressService service.ProgressServiceI
	TeamsService    service.TeamsServiceI
	EventsService   service.EventsServiceI
	JwtService      JWTServiceI
	DB              Pinger
	RequestTimeout  time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	timeout := servicesOptions.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		goalsService:    servicesOptions.GoalsService,
		progressService: servicesOptions.ProgressService,
		teamsService:    servicesOptions.TeamsService,
		eventsService:   servicesOptions.EventsService,
		jwtService:      servicesOptions.JwtService,
		db:              servicesOptions.DB,
		requestTimeout:  timeout,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.RequestLoggingMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", s.CreateUser)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/users/me", s.GetMe)
			r.Put("/users/me", s.UpdateMe)
			r.Get("/users/with-teams", s.GetUsersWithTeams)
			r.Get("/users/{id}", s.GetUser)

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", s.ListGoals)
				r.Post("/", s.CreateGoal)
				r.Get("/{id}", s.GetGoal)
				r.Put("/{id}", s.UpdateGoal)
				r.Delete("/{id}", s.DeleteGoal)
				r.Post("/{id}/progress", s.RecordProgress)
				r.Get("/{id}/progress", s.GetProgress)
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", s.ListTeams)
				r.Post("/", s.CreateTeam)
				r.Get("/{id}", s.GetTeam)
				r.Put("/{id}", s.UpdateTeam)
				r.Delete("/{id}", s.DeleteTeam)
				r.Get("/{id}/members", s.ListTeamMembers)
				r.Post("/{id}/members/{user_id}", s.AddTeamMember)
				r.Delete("/{id}/members/{user_id}", s.RemoveTeamMember)
				r.Get("/{id}/goals", s.ListTeamGoals)
				r.Get("/{id}/events", s.ListTeamEvents)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", s.ListEvents)
				r.Post("/", s.CreateEvent)
				r.Get("/calendar/day", s.CalendarDay)
				r.Get("/calendar/week", s.CalendarWeek)
				r.Get("/calendar/month", s.CalendarMonth)
				r.Get("/{id}", s.GetEvent)
				r.Put("/{id}", s.UpdateEvent)
				r.Delete("/{id}", s.DeleteEvent)
				r.Post("/{id}/attend", s.AttendEvent)
				r.Post("/{id}/cancel-attendance", s.CancelAttendance)
			})
		})
	})
}

// Handler returns the router wrapped with OpenTelemetry instrumentation.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.mx, "goalkeeper")
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}
