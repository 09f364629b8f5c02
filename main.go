package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"sgo/config"
	"sgo/db"
	"sgo/logging"
	"sgo/realtime"
	"sgo/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	logger := logging.New(cfg.Log)

	database, err := db.Open(cfg.Database, cfg.Server.Debug, logger.WithField("component", "db"))
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(100, logger.WithField("component", "realtime"))
	go hub.Run(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	accessLog := logger.WriterLevel(log.InfoLevel)
	defer accessLog.Close()

	app := routes.NewApp(routes.Deps{
		Config:    cfg,
		DB:        database,
		Logger:    logger.WithField("component", "http"),
		Hub:       hub,
		Registry:  registry,
		AccessLog: accessLog,
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			logger.WithError(err).Error("graceful shutdown failed")
		}
	}()

	logger.WithField("addr", cfg.Server.Addr).Info("server starting")
	if err := app.Listen(cfg.Server.Addr); err != nil {
		logger.WithError(err).Error("server stopped")
	}
}
