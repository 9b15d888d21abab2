package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orientation/internal/clients"
	intconfig "orientation/internal/config"
	"orientation/internal/db"
	"orientation/internal/engine"
	router "orientation/internal/http"
	"orientation/internal/http/handlers"
	"orientation/internal/repositories"
	"orientation/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	sinks := services.MultiAuditSink{services.LogAuditSink{}}
	var pingDB func(context.Context) error
	var countLogs func(context.Context, string) (int, error)

	auditDB, err := intconfig.ConnectDB(env)
	if err != nil {
		log.Printf("[CONFIG] audit store disabled: %v", err)
	}
	if auditDB != nil {
		defer intconfig.CloseDB()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := db.Migrate(ctx, auditDB, env.AuditDBDriver)
		cancel()
		if err != nil {
			log.Fatalf("audit store migration failed: %v", err)
		}
		repo := repositories.OrientationLogRepository{DB: auditDB, Dialect: env.AuditDBDriver}
		sinks = append(sinks, services.RepositoryAuditSink{Repo: repo})
		pingDB = intconfig.PingDB
		countLogs = repo.CountByFlight
	}

	hc := clients.NewHTTPClient(env.UpstreamTimeout)
	cfg := engine.DefaultConfig()
	cfg.DefaultTerminal = env.DefaultTerminal

	svc := services.OrientationService{
		Engine:        cfg,
		Weather:       clients.WeatherClient{BaseURL: env.WeatherServiceURL, HTTP: hc},
		Baggage:       clients.BaggageClient{BaseURL: env.BaggageServiceURL, HTTP: hc},
		Flight:        clients.FlightClient{BaseURL: env.FlightServiceURL, HTTP: hc},
		Audit:         sinks,
		SourceTimeout: env.UpstreamTimeout,
	}

	r := router.NewRouter(env, router.Deps{
		Orientation: handlers.NewOrientationHandler(svc),
		System: handlers.SystemHandler{
			ServiceName: env.ServiceName,
			Version:     env.ServiceVersion,
			AirportCode: env.AirportCode,
			PingDB:      pingDB,
			CountLogs:   countLogs,
		},
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      3*env.UpstreamTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("%s %s listening on %s (airport %s)", env.ServiceName, env.ServiceVersion, env.AppAddr, env.AirportCode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped.")
}
