// Command server runs the in-memory reference backend used for local
// development and contract tests of the jobmatch client.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmatch/internal/app"
	"jobmatch/internal/config"

	"github.com/gofiber/fiber/v3"
)

func main() {
	config.LoadDotEnv(".env")

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	bootstrap, cleanup, err := app.Bootstrap(cfg, logger)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("[Server] listening addr=%s env=%s", addr, cfg.App.Environment)
		errCh <- bootstrap.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		logger.Printf("[Server] shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
