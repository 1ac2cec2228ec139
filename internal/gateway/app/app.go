package app

import (
	"context"
	"fmt"
	"log"

	"visualizeai/internal/gateway/config"
	"visualizeai/internal/gateway/handler"
	"visualizeai/internal/gateway/repository/image"
	"visualizeai/internal/gateway/repository/session"
	"visualizeai/internal/gateway/server"
	"visualizeai/internal/gateway/service/conversation"
	"visualizeai/internal/llm"
)

type App struct {
	server *server.Server
	client llm.Client
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("failed to init inference client: %w", err)
	}
	client := llm.Chain(gemini, llm.WithLogging(nil))

	sessions := session.NewFromEnv(cfg.SessionPath)
	images := newImageStore(cfg)

	convSvc := conversation.New(sessions, images, client)
	h := handler.New(convSvc, images)

	mux := server.NewMux(h)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		client: client,
	}, nil
}

func newImageStore(cfg *config.Config) image.Store {
	if !cfg.ImageArchive.Enabled {
		return image.NewMemoryStore()
	}
	s3, err := image.NewS3Store(image.S3Config{
		Endpoint:  cfg.ImageArchive.Endpoint,
		Region:    cfg.ImageArchive.Region,
		AccessKey: cfg.ImageArchive.AccessKey,
		SecretKey: cfg.ImageArchive.SecretKey,
		Bucket:    cfg.ImageArchive.Bucket,
		UseSSL:    cfg.ImageArchive.UseSSL,
	})
	if err != nil {
		log.Printf("image archive disabled: %v", err)
		return image.NewMemoryStore()
	}
	return s3
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.client.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
