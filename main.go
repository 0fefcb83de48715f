package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/danielhkuo/widgetyy/cliparse"
	"github.com/danielhkuo/widgetyy/progress"
	"github.com/danielhkuo/widgetyy/router"
	"github.com/danielhkuo/widgetyy/server"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Create router
	handler := router.NewRouter(cfg, progress.RealClock{})
	srv := server.New(cfg.Port, handler)

	// Cancelled on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting widgetyy",
		"port", cfg.Port,
		"base_url", cfg.BaseURL,
		"timezone", cfg.Location.String(),
	)

	if err := server.Run(ctx, srv); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
