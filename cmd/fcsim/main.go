package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/fcs/internal/config"
	"github.com/zeusync/fcs/internal/core/observability/log"
	"github.com/zeusync/fcs/internal/injector"
	"github.com/zeusync/fcs/pkg/axis"
)

func main() {
	path := flag.String("config", "configs/shuttle.yaml", "vehicle configuration file")
	stick := flag.Float64("stick", 0.5, "constant forward stick input applied to every vehicle, in [-1, 1]")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	app, cleanup, err := injector.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "initialize:", err)
		os.Exit(1)
	}
	defer cleanup()

	for _, v := range app.Fleet.List() {
		if in, ok := v.Source.(interface{ SetPilot(axis.Vector6) }); ok {
			in.SetPilot(axis.Vector6{}.With(axis.Linear, axis.X, *stick))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		app.Logger.Error("simulation failed", log.Error(err))
		cleanup()
		os.Exit(1)
	}
}
