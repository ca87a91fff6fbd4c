package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dashly/sales-analytics-api/internal/api"
	"github.com/dashly/sales-analytics-api/internal/config"
	"github.com/dashly/sales-analytics-api/internal/ingest"
	"github.com/dashly/sales-analytics-api/internal/usecases/analyzing"
	"github.com/dashly/sales-analytics-api/internal/visualization"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := ingest.NewReader(cfg.Analysis.ChunkSize)
	visualizer := visualization.NewChartRenderer()
	analysisService := analyzing.NewService(cfg.Analysis, reader, visualizer)

	server, err := api.New(cfg, analysisService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
