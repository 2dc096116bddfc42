// Command server runs the Tastebuds HTTP API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tastebuds/internal/bootstrap"
	"tastebuds/internal/config"
	"tastebuds/internal/observability"
	"tastebuds/internal/server"
)

// @title Tastebuds API
// @version 1.0
// @description Recipes, cocktails and the pairings between them, plus the social layer around them.

// @contact.name API Support
// @contact.email support@tastebuds.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	seedDemo := flag.Bool("seed-demo", false, "Fill an empty development database with demo data")
	seedUsers := flag.Int("seed-users", 10, "Number of demo users when -seed-demo is set")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{SeedDemo: *seedDemo, SeedUsers: *seedUsers})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	srv, err := server.NewServerWithDeps(cfg, rt.DB, rt.Redis)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		observability.Logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			observability.Logger.Error("Server shutdown error", "error", err)
		}
		if err := rt.ShutdownTracing(shutdownCtx); err != nil {
			observability.Logger.Error("Tracer shutdown error", "error", err)
		}
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
