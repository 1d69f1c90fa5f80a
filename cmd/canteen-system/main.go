package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"canteen-system/internal/common/config"
	"canteen-system/internal/common/httpx"
	"canteen-system/internal/common/logger"
	"canteen-system/internal/handlers"
	"canteen-system/internal/realtime"
	"canteen-system/internal/repository"
	"canteen-system/internal/service"
)

func main() {
	port := flag.Int("port", 0, "http port (overrides PORT)")
	flag.Parse()

	lg := logger.New("canteen-system")

	cfg, err := config.Load()
	if err != nil {
		lg.Error("config_load_failed", err, nil)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Everything lives in process memory; a restart loses all orders and
	// registrations. Known limitation until a persistent store lands.
	repo := repository.New()
	hub := realtime.NewHub()
	events := realtime.NewBroadcaster(hub, lg)
	svc := service.New(repo, events, lg)
	h := handlers.New(svc, repo.Menu, lg)

	mux := handlers.Router(h, realtime.NewHandler(hub, lg))
	srv := httpx.New(":"+strconv.Itoa(cfg.Port), httpx.RequestID(lg, mux), cfg.ShutdownTimeout)

	lg.Info("service_started", map[string]any{"port": cfg.Port})
	if err := srv.Run(ctx); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("service_stopped", nil)
}
