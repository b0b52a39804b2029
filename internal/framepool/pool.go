package framepool

import (
	"context"
	"errors"
	"fmt"
	"runtime/pprof"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sourcegraph/conc/panics"
	"go.uber.org/multierr"

	"gui-demos/internal/logger"
)

// ErrClosed is returned by every operation on a pool that has been shut down.
var ErrClosed = errors.New("framepool: pool is shut down")

// WorkerPanic reports a worker whose state factory or render function panicked.
type WorkerPanic struct {
	Worker    int
	Recovered *panics.Recovered
}

func (e *WorkerPanic) Error() string {
	return fmt.Sprintf("framepool: worker %d panicked: %v", e.Worker, e.Recovered.Value)
}

func (e *WorkerPanic) Unwrap() error {
	return e.Recovered.AsError()
}

// Observer receives frame and worker lifecycle notifications. Calls are made
// from the coordinator goroutine while the pool lock is held.
type Observer interface {
	WorkerSpawned(id int)
	WorkerFailed(id int)
	FrameCompleted(live int, took time.Duration)
}

type completion struct {
	worker  int
	failure *WorkerPanic
}

type worker[M any] struct {
	id     int
	frames chan M
	exited chan struct{}

	// Coordinator-owned.
	dead    bool
	failure *WorkerPanic
}

// Pool is a growable set of panel workers. S is the per-worker state, M the
// per-frame message. The zero value is not usable; construct with New.
type Pool[S any, M any] struct {
	mu       sync.Mutex
	newState func(id int) S
	render   func(state *S, frame M)
	workers  []*worker[M]
	done     chan completion
	closed   bool

	name         string
	log          logger.Logger
	observer     Observer
	stallWarning time.Duration
}

type Option func(*options)

type options struct {
	name         string
	log          logger.Logger
	observer     Observer
	stallWarning time.Duration
}

// WithName labels the pool in logs and goroutine profiles.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithStallWarning logs the outstanding workers every d while a frame waits on
// them. It never abandons the frame. Zero disables the warning.
func WithStallWarning(d time.Duration) Option {
	return func(o *options) { o.stallWarning = d }
}

// New returns an empty pool. newState builds a worker's state from its id;
// render is called on the worker's goroutine once per frame.
func New[S any, M any](newState func(id int) S, render func(state *S, frame M), opts ...Option) *Pool[S, M] {
	o := options{name: "framepool", log: logger.NoOp{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool[S, M]{
		newState:     newState,
		render:       render,
		done:         make(chan completion),
		name:         o.name,
		log:          o.log,
		observer:     o.observer,
		stallWarning: o.stallWarning,
	}
}

// Spawn starts a worker with the next sequential id.
func (p *Pool[S, M]) Spawn() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, ErrClosed
	}

	id := len(p.workers)
	var state S
	if rec := panics.Try(func() { state = p.newState(id) }); rec != nil {
		return 0, &WorkerPanic{Worker: id, Recovered: rec}
	}

	w := &worker[M]{
		id:     id,
		frames: make(chan M),
		exited: make(chan struct{}),
	}
	p.workers = append(p.workers, w)

	labels := pprof.Labels("pool", p.name, "worker", strconv.Itoa(id))
	go pprof.Do(context.Background(), labels, func(context.Context) {
		p.run(w, state)
	})

	p.log.Debug("FramePool", "worker spawned", map[string]interface{}{
		"pool":   p.name,
		"worker": id,
	})
	if p.observer != nil {
		p.observer.WorkerSpawned(id)
	}
	return id, nil
}

func (p *Pool[S, M]) run(w *worker[M], state S) {
	defer close(w.exited)

	for frame := range w.frames {
		if rec := panics.Try(func() { p.render(&state, frame) }); rec != nil {
			p.done <- completion{worker: w.id, failure: &WorkerPanic{Worker: w.id, Recovered: rec}}
			return
		}
		p.done <- completion{worker: w.id}
	}
}

// DriveFrame hands frame to every live worker and returns once each of them has
// finished rendering it. With no live workers it returns immediately.
func (p *Pool[S, M]) DriveFrame(frame M) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	start := time.Now()
	live := make([]*worker[M], 0, len(p.workers))
	for _, w := range p.workers {
		if !w.dead {
			live = append(live, w)
		}
	}

	for _, w := range live {
		w.frames <- frame
	}
	p.await(live)

	if p.observer != nil {
		p.observer.FrameCompleted(p.liveLocked(), time.Since(start))
	}
	return nil
}

func (p *Pool[S, M]) await(live []*worker[M]) {
	pending := make(map[int]struct{}, len(live))
	for _, w := range live {
		pending[w.id] = struct{}{}
	}

	var stall <-chan time.Time
	if p.stallWarning > 0 && len(live) > 0 {
		ticker := time.NewTicker(p.stallWarning)
		defer ticker.Stop()
		stall = ticker.C
	}

	for received := 0; received < len(live); {
		select {
		case c := <-p.done:
			received++
			delete(pending, c.worker)
			if c.failure != nil {
				p.markFailed(c.failure)
			}
		case <-stall:
			p.log.Warning("FramePool", "frame barrier stalled", map[string]interface{}{
				"pool":        p.name,
				"outstanding": sortedIDs(pending),
				"completed":   received,
				"expected":    len(live),
			})
		}
	}
}

func (p *Pool[S, M]) markFailed(failure *WorkerPanic) {
	w := p.workers[failure.Worker]
	w.dead = true
	w.failure = failure

	p.log.Error("FramePool", failure, map[string]interface{}{
		"pool":   p.name,
		"worker": failure.Worker,
	})
	if p.observer != nil {
		p.observer.WorkerFailed(failure.Worker)
	}
}

// Shutdown closes every worker's frame channel and waits for the workers to
// exit, in spawn order. It returns the panics of failed workers, if any.
// Calling it again is a no-op.
func (p *Pool[S, M]) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var err error
	for _, w := range p.workers {
		close(w.frames)
		<-w.exited
		if w.failure != nil {
			err = multierr.Append(err, w.failure)
		}
	}

	p.log.Info("FramePool", "pool shut down", map[string]interface{}{
		"pool":    p.name,
		"workers": len(p.workers),
		"failed":  len(multierr.Errors(err)),
	})
	return err
}

// Len is the number of workers ever spawned.
func (p *Pool[S, M]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

// Live is the number of workers that still take part in frames.
func (p *Pool[S, M]) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.liveLocked()
}

func (p *Pool[S, M]) liveLocked() int {
	n := 0
	for _, w := range p.workers {
		if !w.dead {
			n++
		}
	}
	return n
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
