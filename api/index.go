package handler

import (
	"net/http"
	"sync"

	"github.com/arnavshah/flight-assigner-go/pkg/auth"
	"github.com/arnavshah/flight-assigner-go/pkg/config"
	"github.com/arnavshah/flight-assigner-go/pkg/database"
	"github.com/arnavshah/flight-assigner-go/pkg/handlers"
	"github.com/arnavshah/flight-assigner-go/pkg/logging"
	"github.com/arnavshah/flight-assigner-go/pkg/squadron"
	"github.com/gin-gonic/gin"
)

var (
	once    sync.Once
	router  http.Handler
	initErr error
)

func setup() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}
	// serverless instances log to stderr only
	log := logging.New(cfg.LogLevel, "")

	db, err := database.Open(database.Options{DatabaseURL: cfg.DatabaseURL, DataPath: cfg.DataPath})
	if err != nil {
		initErr = err
		return
	}

	a := auth.New(cfg.JWTSecret, cfg.APIMasterSecret)
	if err := a.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword, log); err != nil {
		initErr = err
		return
	}

	gin.SetMode(gin.ReleaseMode)
	store := squadron.NewStore(db)
	router = handlers.NewRouter(&handlers.Handler{
		DB:        db,
		Auth:      a,
		Squadrons: store,
		Callsigns: squadron.NewCache(store, cfg.CallsignCacheTTL),
		Log:       log,
	})
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	once.Do(setup)
	if initErr != nil {
		http.Error(w, "service unavailable: "+initErr.Error(), http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, req)
}
