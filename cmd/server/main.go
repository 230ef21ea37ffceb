package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/api"
	"github.com/harryhartz/bimoodtracker/internal/auth"
	"github.com/harryhartz/bimoodtracker/internal/config"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

type application struct {
	cfg    *config.Config
	logger internal.Logger
	store  storage.Store
	tokens *auth.TokenManager
}

func (a *application) Logger() internal.Logger     { return a.logger }
func (a *application) Config() *config.Config      { return a.cfg }
func (a *application) Store() storage.Store        { return a.store }
func (a *application) Tokens() *auth.TokenManager  { return a.tokens }

func newLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	sugar, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer sugar.Sync()
	logger := internal.NewZapLogger(sugar)

	store, err := storage.NewStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	provider := auth.NewTokenIdentityProvider(tokens, store, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(&application{cfg: cfg, logger: logger, store: store, tokens: tokens}, provider)

	logger.Infof("server listening on :%s (backend=%s, env=%s)", cfg.Port, cfg.StorageBackend, cfg.Env)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
