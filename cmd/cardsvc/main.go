package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	configs "github.com/tmulu/card-services/configs"
	"github.com/tmulu/card-services/internal/cardsvc/config"
	"github.com/tmulu/card-services/internal/cardsvc/db"
	"github.com/tmulu/card-services/internal/cardsvc/handlers"
	"github.com/tmulu/card-services/internal/cardsvc/service"
	"github.com/tmulu/card-services/internal/cardsvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "card"

func init() {
	configs.Logging(SERVICE_NAME + "_service")
	configs.LoadEnv(SERVICE_NAME)
	configs.CreateUniqueInstance(SERVICE_NAME)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// pg connection
	dbpool, err := db.Connect(context.Background(), cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dbpool.Close()
	log.Printf("pg connection established successfully")

	cardStore := store.NewCardStore(dbpool)
	cardService := service.NewCardService(cardStore)

	gameStore := store.NewGameStore(dbpool)
	gameService := service.NewGameService(gameStore)

	identityStore := store.NewIdentityStore(cfg.DemoIdentity)
	authService := service.NewAuthService(cfg.JWTSecret, identityStore, cfg.TokenTTL)

	// Setup router
	r := chi.NewRouter()
	c := configs.CORS(cfg.AllowedOrigins)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(configs.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(authService, cardService, gameService)
	h.SetRoutes(r, handlers.RouteConfig{
		AuthCards: cfg.AuthCards,
		AuthGames: cfg.AuthGames,
	})

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
