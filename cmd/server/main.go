package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/DoroteyaTodorova/Crypto/internal/activitylog"
	"github.com/DoroteyaTodorova/Crypto/internal/config"
	"github.com/DoroteyaTodorova/Crypto/internal/httpx"
	"github.com/DoroteyaTodorova/Crypto/internal/logging"
	"github.com/DoroteyaTodorova/Crypto/internal/portfolio"
	"github.com/DoroteyaTodorova/Crypto/internal/provider/coinlore"
	"github.com/DoroteyaTodorova/Crypto/internal/provider/sentiment"
	"github.com/DoroteyaTodorova/Crypto/internal/server"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fallback := logging.New(logging.Config{})
		fallback.Fatal().Err(err).Msg("loading configuration")
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().Str("port", cfg.Server.Port).Msg("starting crypto portfolio service")

	if cfg.News.APIKey == "" {
		log.Warn().Msg("NEWS_API_KEY not set; news proxy requests will likely be rejected upstream")
	}
	if cfg.Model.APIKey == "" {
		log.Warn().Msg("HF_API_TOKEN not set; sentiment proxy requests will likely be rejected upstream")
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	prices := coinlore.New(coinlore.Config{Endpoint: cfg.CoinLore.Endpoint}, httpClient, log)
	news := sentiment.New(sentiment.Config{
		NewsURL:     cfg.Sentiment.NewsURL,
		ClassifyURL: cfg.Sentiment.ClassifyURL,
	}, httpClient, log)
	engine := portfolio.NewEngine(prices, news, log)

	srv := server.New(server.Config{
		Port:   cfg.Server.Port,
		Log:    log,
		Engine: engine,
		Logs:   activitylog.New(cfg.ActivityLog.Path),
		News:   cfg.News,
		Model:  cfg.Model,
		Client: httpClient,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
