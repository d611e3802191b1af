package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"overcooked-simplified/config"
	httpapi "overcooked-simplified/web-svc/internal/api/http"
	"overcooked-simplified/web-svc/internal/backend"
	"overcooked-simplified/web-svc/internal/service"
	"overcooked-simplified/web-svc/internal/storage"
	"overcooked-simplified/web-svc/internal/view"

	log "github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = time.Minute
	writeTimeout      = time.Minute
	shutdownTimeout   = 10 * time.Second
	flashTTL          = 10 * time.Minute
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg)

	client := backend.NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.BackendTimeout})

	var flash service.FlashStore
	if cfg.RedisEnabled() {
		rdb := config.MustInitRedis(cfg.RedisAddr())
		defer rdb.Close()
		flash = storage.NewRedisFlashStore(rdb, flashTTL)
	} else {
		log.Info("REDIS_HOST not set, keeping notifications in memory")
		flash = storage.NewMemoryFlashStore(flashTTL)
	}

	var publisher service.EventPublisher
	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaUITopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.WithError(err).Fatal("failed to parse templates")
	}

	handler := httpapi.NewHandler(
		service.NewCatalogService(client, nil),
		service.NewAdminService(client, publisher, cfg.CheckRefreshDelay, nil),
		service.NewAnalyticsService(client, view.NewBarChart()),
		service.NewReviewService(client, publisher),
		service.NewNotifications(flash),
		renderer,
		backend.NewUploadsProxy(client),
		cfg.AnalyticsRefresh,
	)

	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		CORSOrigins:   cfg.CORSOrigins,
		CSRFKey:       cfg.CSRFKey,
		SecureCookies: cfg.SecureCookies,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
	}

	go func() {
		log.WithFields(log.Fields{
			"addr":    cfg.ListenAddr,
			"backend": cfg.BackendURL,
		}).Info("Web Service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exited")
}
