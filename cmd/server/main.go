package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"viewtube-account-server/internal/config"
	"viewtube-account-server/internal/handler"
	"viewtube-account-server/internal/middleware"
	"viewtube-account-server/internal/repository"
	"viewtube-account-server/internal/service"
	"viewtube-account-server/internal/storage"

	_ "github.com/go-kivik/kivik/v4/couchdb"

	"github.com/go-kivik/kivik/v4"
	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	couchURL := fmt.Sprintf("http://%s:%s@%s:%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
	)

	client, err := kivik.New("couch", couchURL)
	if err != nil {
		log.Fatalf("Failed to connect to CouchDB: %v", err)
	}

	exists, err := client.DBExists(context.Background(), cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if err := client.CreateDB(context.Background(), cfg.Database.Name); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		log.Printf("Created database: %s", cfg.Database.Name)
	}

	uploader, err := storage.NewS3Uploader(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	userRepo := repository.NewUserRepository(client, cfg.Database.Name)
	subRepo := repository.NewSubscriptionRepository(client, cfg.Database.Name)
	videoRepo := repository.NewVideoRepository(client, cfg.Database.Name)

	authService := service.NewAuthService(userRepo, uploader,
		cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	userService := service.NewUserService(userRepo, uploader)
	channelService := service.NewChannelService(userRepo, subRepo, videoRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.Upload)
	userHandler := handler.NewUserHandler(userService, authService, cfg.Upload)
	channelHandler := handler.NewChannelHandler(channelService)

	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/users/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/users/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/users/refresh-token", authHandler.Refresh).Methods("POST", "OPTIONS")

	// Channel profiles are public; a valid token only refines isSubscribed.
	optionalAuth := middleware.OptionalAuthMiddleware(cfg.JWT.AccessSecret)
	api.Handle("/users/c/{userName}", optionalAuth(http.HandlerFunc(channelHandler.GetProfile))).Methods("GET", "OPTIONS")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWT.AccessSecret))

	protected.HandleFunc("/users/logout", authHandler.Logout).Methods("POST", "OPTIONS")
	protected.HandleFunc("/users/change-password", userHandler.ChangePassword).Methods("POST", "OPTIONS")
	protected.HandleFunc("/users/current-user", userHandler.GetCurrent).Methods("GET", "OPTIONS")
	protected.HandleFunc("/users/update-account", userHandler.UpdateAccount).Methods("PATCH", "OPTIONS")
	protected.HandleFunc("/users/avatar", userHandler.UpdateAvatar).Methods("PATCH", "OPTIONS")
	protected.HandleFunc("/users/cover-image", userHandler.UpdateCoverImage).Methods("PATCH", "OPTIONS")
	protected.HandleFunc("/users/history", channelHandler.GetWatchHistory).Methods("GET", "OPTIONS")
	protected.HandleFunc("/users/history/{videoId}", channelHandler.RecordWatch).Methods("POST", "OPTIONS")
	protected.HandleFunc("/users", userHandler.List).Methods("GET", "OPTIONS")

	protected.HandleFunc("/subscriptions/c/{channelId}", channelHandler.Subscribe).Methods("POST", "OPTIONS")
	protected.HandleFunc("/subscriptions/c/{channelId}", channelHandler.Unsubscribe).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/", rootHandler).Methods("GET")

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting ViewTube Account Server on %s (env: %s)", addr, cfg.Server.Env)
		log.Printf("Connected to CouchDB at %s:%s", cfg.Database.Host, cfg.Database.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"viewtube-account-server"}`))
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"ViewTube Account Server API","version":"1.0.0","endpoints":{"/api/v1/users/register":"POST","/api/v1/users/login":"POST","/api/v1/users/refresh-token":"POST","/api/v1/users/current-user":"GET (protected)"}}`))
}
