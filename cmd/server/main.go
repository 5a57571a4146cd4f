package main

import (
	"log/slog"
	"os"

	"github.com/arnavshah/flight-assigner-go/pkg/auth"
	"github.com/arnavshah/flight-assigner-go/pkg/config"
	"github.com/arnavshah/flight-assigner-go/pkg/database"
	"github.com/arnavshah/flight-assigner-go/pkg/handlers"
	"github.com/arnavshah/flight-assigner-go/pkg/logging"
	"github.com/arnavshah/flight-assigner-go/pkg/squadron"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogDir)

	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(database.Options{DatabaseURL: cfg.DatabaseURL, DataPath: cfg.DataPath})
	if err != nil {
		log.Error("could not open database", slog.Any("error", err))
		os.Exit(1)
	}

	a := auth.New(cfg.JWTSecret, cfg.APIMasterSecret)
	if err := a.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword, log); err != nil {
		log.Error("could not seed admin user", slog.Any("error", err))
		os.Exit(1)
	}

	store := squadron.NewStore(db)
	h := &handlers.Handler{
		DB:        db,
		Auth:      a,
		Squadrons: store,
		Callsigns: squadron.NewCache(store, cfg.CallsignCacheTTL),
		Log:       log,
	}

	r := handlers.NewRouter(h)

	log.Info("server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("could not run server", slog.Any("error", err))
		os.Exit(1)
	}
}
