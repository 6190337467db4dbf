package injector

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/wire"

	"github.com/zeusync/fcs/internal/config"
	"github.com/zeusync/fcs/internal/core/events/bus"
	"github.com/zeusync/fcs/internal/core/observability/log"
	"github.com/zeusync/fcs/internal/core/systems/flight"
	"github.com/zeusync/fcs/internal/telemetry"
	"github.com/zeusync/fcs/pkg/concurrent"
)

// ProviderSet is everything InitializeApp needs besides the config file.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	bus.New,
	ProvideHub,
	ProvideWorkerPool,
	ProvideFleet,
	NewApp,
)

func ProvideLogger(cfg *config.File) (*log.Logger, func(), error) {
	logger, err := log.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideHub(cfg *config.File, logger log.Log) (*telemetry.Hub, func()) {
	hub := telemetry.NewHub(cfg.Telemetry.Config, logger)
	return hub, func() { _ = hub.Close() }
}

// ProvideWorkerPool returns nil when sim.workers is not set.
func ProvideWorkerPool(cfg *config.File) (*concurrent.Pool, func(), error) {
	if cfg.Sim.Workers <= 0 {
		return nil, func() {}, nil
	}
	pool, err := concurrent.NewPool(cfg.Sim.Workers)
	if err != nil {
		return nil, nil, err
	}
	return pool, pool.Release, nil
}

// ProvideFleet builds every configured vehicle and registers it.
func ProvideFleet(cfg *config.File, logger log.Log, events bus.EventBus, hub *telemetry.Hub, pool *concurrent.Pool) (*flight.Fleet, error) {
	fleet := flight.NewFleet(
		flight.WithParallelism(cfg.Sim.Parallelism),
		flight.WithWorkerPool(pool),
		flight.WithFrameSink(hub),
		flight.WithLogger(logger.Named("fleet")))

	for i := range cfg.Vehicles {
		vcfg := &cfg.Vehicles[i]
		vehicle, _, err := vcfg.Build(logger.Named(vcfg.Name), events)
		if err != nil {
			return nil, err
		}
		if _, err := fleet.Register(vehicle); err != nil {
			return nil, err
		}
	}
	return fleet, nil
}

// App is the simulation host: a fleet on a fixed step plus the telemetry
// server.
type App struct {
	Config *config.File
	Logger log.Log
	Events bus.EventBus
	Hub    *telemetry.Hub
	Fleet  *flight.Fleet
}

func NewApp(cfg *config.File, logger log.Log, events bus.EventBus, hub *telemetry.Hub, fleet *flight.Fleet) *App {
	return &App{Config: cfg, Logger: logger, Events: events, Hub: hub, Fleet: fleet}
}

const defaultStep = 20 * time.Millisecond

// Run ticks the fleet until ctx is done or the configured duration elapses.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.Hub.Forward(a.Events); err != nil {
		return err
	}

	if d := a.Config.Sim.Duration; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	var srv *http.Server
	if addr := a.Config.Telemetry.Addr; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/telemetry", a.Hub)
		srv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			a.Logger.Info("telemetry listening", log.String("addr", addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.Logger.Error("telemetry server failed", log.Error(err))
			}
		}()
	}

	step := a.Config.Sim.Step
	if step <= 0 {
		step = defaultStep
	}
	a.Logger.Info("simulation started",
		log.Int("vehicles", a.Fleet.Len()),
		log.Duration("step", step))

	err := a.Fleet.Run(ctx, step)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
	m := a.Fleet.Metrics()
	a.Logger.Info("simulation stopped",
		log.Uint64("ticks", m.Ticks),
		log.Uint64("failed_ticks", m.FailedTicks))
	return err
}
