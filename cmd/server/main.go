package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-market-hub/internal/alert"
	"crypto-market-hub/internal/bot"
	"crypto-market-hub/internal/cache"
	"crypto-market-hub/internal/config"
	"crypto-market-hub/internal/derivatives"
	"crypto-market-hub/internal/handler"
	"crypto-market-hub/internal/job"
	"crypto-market-hub/internal/liquidations"
	"crypto-market-hub/internal/news"
	"crypto-market-hub/internal/venue"
	"crypto-market-hub/internal/whales"
	"crypto-market-hub/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "crypto-market-hub/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initTracerFunc         = tracing.InitTracer
	newMarketPollerFunc    = job.NewMarketPoller
	startPollerFunc        = func(p *job.MarketPoller, ctx context.Context) { go p.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Crypto Market Hub API
// @version         1.0
// @description     Multi-venue crypto derivatives dashboard with whale tracking, liquidations, news, and alerting.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Cache: Redis when configured, in-memory otherwise.
	ttl := time.Duration(cfg.CacheTTLSecs) * time.Second
	var store cache.Store = cache.NewMemory(ttl)
	if cfg.RedisURL != "" {
		if redisStore := cache.NewRedis(ctx, cfg.RedisURL, ttl); redisStore != nil {
			store = redisStore
		}
	}

	// Venue adapters in fallback order.
	venues := []venue.Adapter{
		venue.NewBinanceAdapter(tracer, venue.Credentials{APIKey: cfg.BinanceAPIKey, Secret: cfg.BinanceSecret}),
		venue.NewBybitAdapter(tracer, venue.Credentials{APIKey: cfg.BybitAPIKey, Secret: cfg.BybitSecret}),
		venue.NewOKXAdapter(tracer, venue.Credentials{APIKey: cfg.OKXAPIKey, Secret: cfg.OKXSecret, Passphrase: cfg.OKXPassphrase}),
	}

	derivativesService := derivatives.NewService(tracer, venues, store, derivatives.Options{
		RequestDelay: time.Duration(cfg.RequestDelayMs) * time.Millisecond,
		Debug:        cfg.Debug,
	})

	whaleTracker := whales.NewTracker(tracer, whales.NewSimulated(cfg.WhaleSeed))
	liquidationTracker := liquidations.NewTracker(tracer, liquidations.NewSimulated(cfg.LiquidationSeed))
	newsProvider := news.NewProvider(tracer, cfg.CryptoPanicAPIKey)

	// Alert transports: whichever are configured.
	var transports []alert.Transport
	if t := alert.NewTelegramTransport(cfg.TelegramToken, cfg.TelegramChatID); t != nil {
		transports = append(transports, t)
	}
	if t := alert.NewEmailTransport(alert.EmailConfig{
		Server:    cfg.SMTPServer,
		Port:      cfg.SMTPPort,
		User:      cfg.EmailUser,
		Password:  cfg.EmailPassword,
		Recipient: cfg.RecipientEmail,
	}); t != nil {
		transports = append(transports, t)
	}
	dispatcher := alert.NewDispatcher(cfg.MaxAlertsPerHour, transports...)

	// Background refresh and funding alerts.
	poller := newMarketPollerFunc(tracer, derivativesService, dispatcher, cfg.DefaultCoins, cfg.FundingAlertThreshold, cfg.RefreshSecs)
	startPollerFunc(poller, ctx)

	startTelegramBotFunc(cfg.TelegramToken, derivativesService)

	h := newHandlerFunc(tracer, derivativesService, whaleTracker, liquidationTracker, newsProvider, dispatcher, cfg.DefaultCoins)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("crypto-market-hub"))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
