package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/prepforge/prepforge/internal/ai"
	"github.com/prepforge/prepforge/internal/cache"
	"github.com/prepforge/prepforge/internal/config"
	"github.com/prepforge/prepforge/internal/fetcher"
	"github.com/prepforge/prepforge/internal/groq"
	"github.com/prepforge/prepforge/internal/handler"
	"github.com/prepforge/prepforge/internal/logger"
	"github.com/prepforge/prepforge/internal/ratelimit"
	"github.com/prepforge/prepforge/internal/store"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Limiter *ratelimit.Limiter
	Handler *handler.Handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	// a missing Groq key leaves the generator unconfigured; AI endpoints
	// report that per request instead of blocking startup
	var completer ai.ChatCompleter
	if cfg.Groq.APIKey != "" {
		completer = groq.NewClient(cfg.Groq.APIKey, cfg.Groq.Model, cfg.Groq.Timeout)
	} else {
		sugar.Warn("GROQ_API_KEY is not set, AI endpoints will return configuration errors")
	}

	handlerApp := &handler.Handler{
		Logger:  log,
		Store:   store.New(),
		Cache:   cache.New(cfg.Cache.TTL),
		AI:      ai.NewGenerator(completer, log),
		Fetcher: fetcher.New(),
	}

	app := &application{
		Logger:  log,
		Config:  cfg,
		Limiter: ratelimit.New(cfg.Limiter.Window, cfg.Limiter.Max),
		Handler: handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
