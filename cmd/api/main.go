// @title Goalkeeper API
// @version 1.0
// @description API for goal tracking app "Goalkeeper"
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/limbo/goalkeeper/docs"
	"github.com/limbo/goalkeeper/internal/api"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/migrations"
	"github.com/limbo/goalkeeper/pkg/cleanup"
	"github.com/limbo/goalkeeper/pkg/config"
	jwtservice "github.com/limbo/goalkeeper/pkg/jwt_service"
	"github.com/limbo/goalkeeper/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger.Init(cfg.IsDevelopment(), cfg.GetString("SENTRY_DSN"))
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
		MaxConns: cfg.GetInt("POSTGRES_MAX_CONNS", 0),
	}
	if cfg.GetBool("MIGRATE_ON_START", true) {
		if err := migrations.Up(dbCfg.ConnString()); err != nil {
			slog.Error("migrations error", slog.String("error", err.Error()))
			return
		}
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		slog.Error("database connection error", slog.String("error", err.Error()))
		return
	}

	usersRepo := repository.NewUsersRepoWithConn(pool)
	goalsRepo := repository.NewGoalsRepoWithConn(pool)
	teamsRepo := repository.NewTeamsRepoWithConn(pool)
	eventsRepo := repository.NewEventsRepoWithConn(pool)
	progressRepo := repository.NewProgressRepoWithConn(pool)

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(usersRepo),
		GoalsService:    service.NewGoalsService(goalsRepo, teamsRepo, progressRepo),
		ProgressService: service.NewProgressService(progressRepo, goalsRepo),
		TeamsService:    service.NewTeamsService(teamsRepo, usersRepo, goalsRepo, eventsRepo),
		EventsService:   service.NewEventsService(eventsRepo),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
		DB:              pool,
		RequestTimeout:  cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
	})
	if err = serv.Run(ctx, cfg.GetString("API_ADDRESS")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
