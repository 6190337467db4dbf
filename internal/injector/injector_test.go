package injector

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/fcs/internal/config"
)

func TestInitializeAppRunsFleet(t *testing.T) {
	f, err := os.Open("../config/testdata/vehicle.yaml")
	require.NoError(t, err)
	defer f.Close()

	cfg, err := config.LoadYAML(f)
	require.NoError(t, err)
	cfg.Log.Level = "error"
	cfg.Telemetry.Addr = ""
	cfg.Sim.Step = time.Millisecond
	cfg.Sim.Duration = 30 * time.Millisecond

	app, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	require.Equal(t, 1, app.Fleet.Len())
	require.NoError(t, app.Run(context.Background()))
	assert.Positive(t, app.Fleet.Metrics().Ticks)
	assert.Zero(t, app.Fleet.Metrics().FailedTicks)
}

func TestInitializeAppRejectsBadLogLevel(t *testing.T) {
	cfg := &config.File{}
	cfg.Log.Level = "loud"
	_, _, err := InitializeApp(cfg)
	assert.Error(t, err)
}
