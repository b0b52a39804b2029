package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Frames records frame-barrier timings and worker lifecycle for one pool.
// It satisfies framepool.Observer.
type Frames struct {
	frameDuration prometheus.Histogram
	frames        prometheus.Counter
	liveWorkers   prometheus.Gauge
	spawned       prometheus.Counter
	failed        *prometheus.CounterVec
}

func NewFrames(reg prometheus.Registerer, pool string) *Frames {
	labels := prometheus.Labels{"pool": pool}
	f := &Frames{
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "gui_demos",
			Name:        "frame_barrier_seconds",
			Help:        "Time from handing a frame to the workers until the last one completed.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .002, .004, .008, .016, .033, .066, .133, .5, 1, 5},
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gui_demos",
			Name:        "frames_total",
			Help:        "Frames driven through the pool.",
			ConstLabels: labels,
		}),
		liveWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "gui_demos",
			Name:        "live_workers",
			Help:        "Workers taking part in frames.",
			ConstLabels: labels,
		}),
		spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gui_demos",
			Name:        "workers_spawned_total",
			Help:        "Workers spawned.",
			ConstLabels: labels,
		}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "gui_demos",
			Name:        "workers_failed_total",
			Help:        "Workers dropped after panicking.",
			ConstLabels: labels,
		}, []string{"worker"}),
	}
	reg.MustRegister(f.frameDuration, f.frames, f.liveWorkers, f.spawned, f.failed)
	return f
}

func (f *Frames) WorkerSpawned(int) {
	f.spawned.Inc()
	f.liveWorkers.Inc()
}

func (f *Frames) WorkerFailed(id int) {
	f.failed.WithLabelValues(strconv.Itoa(id)).Inc()
	f.liveWorkers.Dec()
}

func (f *Frames) FrameCompleted(live int, took time.Duration) {
	f.frames.Inc()
	f.frameDuration.Observe(took.Seconds())
	f.liveWorkers.Set(float64(live))
}
