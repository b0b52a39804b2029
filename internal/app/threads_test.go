package app

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"gui-demos/internal/config"
	"gui-demos/internal/framepool"
	"gui-demos/internal/gui/components"
	guisync "gui-demos/internal/gui/sync"
	"gui-demos/internal/logger"
	"gui-demos/internal/panel"
)

type recordingPublisher struct {
	mu      sync.Mutex
	updates []*guisync.Update
}

func (r *recordingPublisher) ScheduleUpdate(u *guisync.Update) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
	return true
}

func (r *recordingPublisher) lastViews() []panel.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.updates) - 1; i >= 0; i-- {
		if data, ok := r.updates[i].Data.(*components.PanelViewsUpdate); ok {
			return data.Views
		}
	}
	return nil
}

func threadsConfig() config.ThreadsConfig {
	return config.ThreadsConfig{
		InitialWorkers: 2,
		FrameInterval:  5 * time.Millisecond,
		StallWarning:   time.Second,
	}
}

func TestStepPublishesEveryWorkerView(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewThreadsDriver(threadsConfig(), pub, prometheus.NewRegistry(), logger.NoOp{})
	defer func() { require.NoError(t, d.Shutdown()) }()

	for i := 0; i < 2; i++ {
		_, err := d.SpawnWorker()
		require.NoError(t, err)
	}

	d.Push(panel.Event{Panel: 1, Kind: panel.Click})
	d.Push(panel.Event{Panel: 0, Kind: panel.SetName, Name: "Ford"})
	require.NoError(t, d.Step(time.Now()))

	require.Equal(t, []panel.View{
		{ID: 0, Title: "Background thread 0", Name: "Ford", Age: 12, Greeting: "Hello 'Ford', age 12"},
		{ID: 1, Title: "Background thread 1", Name: "Arthur", Age: 23, Greeting: "Hello 'Arthur', age 23"},
	}, pub.lastViews())

	// events are consumed by the frame that saw them
	require.NoError(t, d.Step(time.Now()))
	require.Equal(t, uint32(23), pub.lastViews()[1].Age)
}

func TestSpawnedWorkerJoinsNextFrame(t *testing.T) {
	pub := &recordingPublisher{}
	d := NewThreadsDriver(threadsConfig(), pub, prometheus.NewRegistry(), logger.NoOp{})
	defer func() { require.NoError(t, d.Shutdown()) }()

	require.NoError(t, d.Step(time.Now()))
	require.Empty(t, pub.lastViews())

	id, err := d.SpawnWorker()
	require.NoError(t, err)
	require.Equal(t, 0, id)

	require.NoError(t, d.Step(time.Now()))
	require.Len(t, pub.lastViews(), 1)
}

func TestDriverLoopSpawnsOnRequest(t *testing.T) {
	pub := &recordingPublisher{}
	reg := prometheus.NewRegistry()
	d := NewThreadsDriver(threadsConfig(), pub, reg, logger.NoOp{})

	require.NoError(t, d.Start(2))
	d.RequestSpawn()

	require.Eventually(t, func() bool {
		return len(pub.lastViews()) == 3
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, d.Shutdown())
	require.Equal(t, 3.0, gathered(t, reg, "gui_demos_workers_spawned_total"))

	_, err := d.SpawnWorker()
	require.ErrorIs(t, err, framepool.ErrClosed)
}

func gathered(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		var sum float64
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
		return sum
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}
