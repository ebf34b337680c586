package main

import (
	"context"
	"log"

	"go.uber.org/zap/zapcore"

	"github.com/dmitrijs2005/recco/internal/client/api"
	"github.com/dmitrijs2005/recco/internal/client/config"
	"github.com/dmitrijs2005/recco/internal/client/session"
	"github.com/dmitrijs2005/recco/internal/client/ui"
	"github.com/dmitrijs2005/recco/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	level := zapcore.WarnLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}
	logger, err := logging.NewConsoleLogger(level)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	storage, err := session.NewFileStorage()
	if err != nil {
		log.Fatalf("%v", err)
	}

	// the API client reads the persisted token on every call, so a login in
	// this run is picked up without restarting
	client := api.New(cfg.APIBaseURL, storage, logger)
	sess := session.New(storage, client, logger)

	app := ui.NewApp(cfg, client, sess, logger)
	app.Run(context.Background())
}
