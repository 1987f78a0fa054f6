package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ATenderholt/dockerlib"
	"github.com/croften/shout/internal/service"
	"github.com/croften/shout/internal/settings"
	"github.com/docker/docker/api/types/mount"
	"github.com/go-chi/chi/v5"
)

const minioContainerName = "shout-minio"

type App struct {
	cfg      *settings.Config
	docker   *dockerlib.DockerController
	pipeline *service.Pipeline
	srv      *http.Server
}

func NewApp(cfg *settings.Config, docker *dockerlib.DockerController, pipeline *service.Pipeline, mux *chi.Mux) App {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.BasePort),
		Handler: mux,
	}

	return App{
		cfg:      cfg,
		docker:   docker,
		pipeline: pipeline,
		srv:      srv,
	}
}

// Start brings up the backing minio container, rebuilds persisted
// notification streams, and begins serving HTTP.
func (app App) Start() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	err := os.MkdirAll(app.cfg.MinioDataPath(), 0755)
	if err != nil {
		logger.Errorf("Unable to create data directory %s: %v", app.cfg.MinioDataPath(), err)
		return err
	}

	err = app.docker.EnsureImage(ctx, app.cfg.Image)
	if err != nil {
		logger.Errorf("Unable to pull image %s: %v", app.cfg.Image, err)
		return err
	}

	minio := dockerlib.Container{
		Name:  minioContainerName,
		Image: app.cfg.Image,
		Mounts: []mount.Mount{
			{
				Type:   mount.TypeBind,
				Source: app.cfg.MinioDataPath(),
				Target: "/bitnami/minio/data",
			},
		},
		Ports: map[int]int{
			9000: app.cfg.MinioPort(),
		},
		Network: app.cfg.Networks,
	}

	ready, err := app.docker.Start(ctx, &minio, "API:")
	if err != nil {
		logger.Errorf("Unable to start minio container: %v", err)
		return err
	}
	<-ready

	err = app.pipeline.LoadAll()
	if err != nil {
		return err
	}

	go func() {
		logger.Infof("Listening on port %d", app.cfg.BasePort)
		err := app.srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Errorf("Problem serving HTTP: %v", err)
		}
	}()

	return nil
}

func (app App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	err := app.srv.Shutdown(ctx)
	if err != nil {
		logger.Errorf("Problem shutting down HTTP server: %v", err)
	}

	app.pipeline.Close()

	return app.docker.ShutdownAll(ctx)
}
