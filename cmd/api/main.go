package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/devdanalmag/MakTab-platform/internal/config"
	"github.com/devdanalmag/MakTab-platform/internal/delivery/httpapi"
	"github.com/devdanalmag/MakTab-platform/internal/logger"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := quran.NewClient(
		quran.WithBaseURL(cfg.Quran.BaseURL),
		quran.WithTimeout(cfg.Quran.Timeout),
		quran.WithUserAgent(cfg.Quran.UserAgent),
		quran.WithEditions(quran.Editions{
			Source:      cfg.Quran.SourceEdition,
			Translation: cfg.Quran.TranslationEdition,
			Reciter:     cfg.Quran.Reciter,
		}),
		quran.WithLogger(lg.Named("quran")),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type"},
		AllowCredentials: false,
	}))

	humaCfg := huma.DefaultConfig("MakTab Quran API", "1.0.0")
	humaCfg.OpenAPI.Info.Description = "Read-only access to surahs, pages, juzs, ayahs, search and recitation links."
	humaCfg.DocsPath = "/"
	api := humachi.New(router, humaCfg)

	httpapi.Setup(api, client, lg.Named("http"))

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		lg.Info("starting server", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	lg.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown failed", zap.Error(err))
	}
}
