package app

import (
	"context"
	"io"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/repository"
	ucauth "jobmatch/internal/usecase/auth"
	"jobmatch/internal/usecase/marketplace"
)

// Container holds the backend's long-lived dependencies.
type Container struct {
	Config      config.ServerConfig
	Logger      *log.Logger
	Store       *repository.SQLiteStore
	Tokens      jwt.Service
	Auth        *ucauth.Service
	Marketplace *marketplace.Service
	Uploads     *handler.Uploads
}

func NewContainer(cfg config.ServerConfig, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repository.OpenSQLiteStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if cfg.DatabasePath == "" {
		logger.Printf("[App] store in memory; set DATABASE_PATH to keep data across restarts")
	} else {
		logger.Printf("[App] store opened path=%s", cfg.DatabasePath)
	}

	auth := ucauth.NewService(store, store)
	if cfg.App.Environment == "test" {
		auth.WithCost(bcrypt.MinCost)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Tokens: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
		Auth:        auth,
		Marketplace: marketplace.NewService(store),
		Uploads:     handler.NewUploads(cfg.MediaDir),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
