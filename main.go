package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	config "Surya/internal/config"
	logger "Surya/internal/logger"
	metrics "Surya/internal/metrics"
	server "Surya/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		lg.Fatal("metrics", zap.Error(err))
	}

	if err := server.New(cfg, lg, m, reg).Run(ctx); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}
