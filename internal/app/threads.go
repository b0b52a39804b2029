package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc"

	"gui-demos/internal/config"
	"gui-demos/internal/framepool"
	"gui-demos/internal/gui/components"
	guisync "gui-demos/internal/gui/sync"
	"gui-demos/internal/logger"
	"gui-demos/internal/metrics"
	"gui-demos/internal/panel"
)

const poolName = "panels"

// Publisher hands finished frames to the UI goroutine.
type Publisher interface {
	ScheduleUpdate(*guisync.Update) bool
}

// ThreadsDriver runs the coordinator loop of the threads demo: it gathers
// panel events, drives one frame through the worker pool per tick or input,
// and publishes the resulting views.
type ThreadsDriver struct {
	pool      *framepool.Pool[panel.State, panel.Frame]
	inputs    *panel.Inputs
	publisher Publisher
	logger    logger.Logger
	interval  time.Duration

	spawn  chan struct{}
	frame  uint64
	cancel context.CancelFunc
	wg     conc.WaitGroup
}

func NewThreadsDriver(cfg config.ThreadsConfig, publisher Publisher, reg prometheus.Registerer, log logger.Logger) *ThreadsDriver {
	pool := framepool.New(panel.NewState, panel.Render,
		framepool.WithName(poolName),
		framepool.WithLogger(log),
		framepool.WithObserver(metrics.NewFrames(reg, poolName)),
		framepool.WithStallWarning(cfg.StallWarning),
	)

	return &ThreadsDriver{
		pool:      pool,
		inputs:    panel.NewInputs(),
		publisher: publisher,
		logger:    log,
		interval:  cfg.FrameInterval,
		spawn:     make(chan struct{}, 64),
	}
}

// Push queues a panel event for the next frame. Safe from any goroutine.
func (d *ThreadsDriver) Push(e panel.Event) {
	d.inputs.Push(e)
}

// RequestSpawn asks the loop to add a worker before its next frame.
func (d *ThreadsDriver) RequestSpawn() {
	select {
	case d.spawn <- struct{}{}:
	default:
		d.logger.Warning("ThreadsDriver", "spawn requests backing up, dropping one", nil)
	}
}

// Start spawns the initial workers and runs the loop until Shutdown.
func (d *ThreadsDriver) Start(initialWorkers int) error {
	for i := 0; i < initialWorkers; i++ {
		if _, err := d.SpawnWorker(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.wg.Go(func() { d.loop(ctx) })

	d.logger.Info("ThreadsDriver", "coordinator loop started", map[string]interface{}{
		"workers":  initialWorkers,
		"interval": d.interval.String(),
	})
	return nil
}

func (d *ThreadsDriver) loop(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.spawn:
			if _, err := d.SpawnWorker(); err != nil {
				d.logger.Error("ThreadsDriver", err, nil)
			}
		case <-d.inputs.Notify():
		case <-ticker.C:
		}

		if err := d.Step(time.Now()); err != nil {
			if errors.Is(err, framepool.ErrClosed) {
				return
			}
			d.logger.Error("ThreadsDriver", err, map[string]interface{}{"frame": d.frame})
		}
	}
}

// SpawnWorker adds one worker. Called from the loop, or before Start.
func (d *ThreadsDriver) SpawnWorker() (int, error) {
	id, err := d.pool.Spawn()
	if err != nil {
		return 0, fmt.Errorf("spawn worker: %w", err)
	}
	d.publisher.ScheduleUpdate(&guisync.Update{
		Type: guisync.UpdateTypeStatus,
		Data: &components.StatusUpdate{Status: fmt.Sprintf("spawned worker %d", id)},
	})
	return id, nil
}

// Step drives one frame through every live worker and publishes the views
// they produced. Only one goroutine may call Step.
func (d *ThreadsDriver) Step(now time.Time) error {
	d.frame++
	f := panel.NewFrame(d.frame, now, d.inputs.Drain())

	if err := d.pool.DriveFrame(f); err != nil {
		return fmt.Errorf("drive frame %d: %w", d.frame, err)
	}

	d.publisher.ScheduleUpdate(&guisync.Update{
		Type: guisync.UpdateTypePanelViews,
		Data: &components.PanelViewsUpdate{Views: f.Sink.Views()},
	})
	d.publisher.ScheduleUpdate(&guisync.Update{
		Type: guisync.UpdateTypeFrame,
		Data: &components.FrameUpdate{Frame: d.frame, Live: d.pool.Live()},
	})
	return nil
}

// Shutdown stops the loop, then joins every worker.
func (d *ThreadsDriver) Shutdown() error {
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()
	return d.pool.Shutdown()
}
