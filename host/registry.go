package host

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/wgraph/core"
)

// ErrUnknownHandle is returned for a handle that was never created or has
// already been destroyed.
var ErrUnknownHandle = errors.New("host: unknown handle")

// Handle is an opaque graph identifier.
type Handle string

// entry owns one graph. mu serializes every call against it.
type entry struct {
	mu     sync.Mutex
	g      *core.Graph
	closed bool
}

// Registry maps handles to graphs.
type Registry struct {
	mu     sync.RWMutex
	graphs btree.Map[Handle, *entry] // ordered by handle

	logger      *log.Logger
	metrics     *Metrics
	maxVertices int
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics sets the Prometheus collectors. Defaults to unregistered ones.
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithMaxVertices bounds every graph created by the registry
// (see core.WithMaxVertices). 0 means unbounded.
func WithMaxVertices(n int) Option {
	return func(r *Registry) { r.maxVertices = n }
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	if r.metrics == nil {
		r.metrics = NewMetrics(nil)
	}

	return r
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.graphs.Len()
}

// Handles returns the live handles in ascending order.
func (r *Registry) Handles() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handle, 0, r.graphs.Len())
	r.graphs.Scan(func(h Handle, _ *entry) bool {
		out = append(out, h)
		return true
	})

	return out
}

// GraphCreate builds a graph with the given number of vertices and returns
// its handle.
func (r *Registry) GraphCreate(vertices int) (Handle, error) {
	var opts []core.GraphOption
	if r.maxVertices > 0 {
		opts = append(opts, core.WithMaxVertices(r.maxVertices))
	}
	g, err := core.NewGraph(vertices, opts...)
	if err != nil {
		r.metrics.observe("create", outcomeError)
		return "", err
	}

	h := Handle(uuid.NewString())
	r.mu.Lock()
	r.graphs.Set(h, &entry{g: g})
	r.mu.Unlock()

	r.metrics.observe("create", outcomeOK)
	r.metrics.LiveHandles.Inc()
	r.logger.Debug("graph created", "handle", h, "vertices", vertices)

	return h, nil
}

// GraphDestroy releases h. Later calls with h return ErrUnknownHandle.
func (r *Registry) GraphDestroy(h Handle) error {
	r.mu.Lock()
	e, ok := r.graphs.Delete(h)
	r.mu.Unlock()
	if !ok {
		r.metrics.observe("destroy", outcomeError)
		return fmt.Errorf("%w: %q", ErrUnknownHandle, h)
	}

	e.mu.Lock()
	e.closed = true
	e.g = nil
	e.mu.Unlock()

	r.metrics.observe("destroy", outcomeOK)
	r.metrics.LiveHandles.Dec()
	r.logger.Debug("graph destroyed", "handle", h)

	return nil
}

// with runs fn on h's graph while holding the entry lock, and records the
// outcome. fn reports false for a silent no-op.
func (r *Registry) with(h Handle, op string, fn func(g *core.Graph) (bool, error)) error {
	r.mu.RLock()
	e, ok := r.graphs.Get(h)
	r.mu.RUnlock()
	if !ok {
		r.metrics.observe(op, outcomeError)
		return fmt.Errorf("%w: %q", ErrUnknownHandle, h)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		r.metrics.observe(op, outcomeError)
		return fmt.Errorf("%w: %q", ErrUnknownHandle, h)
	}

	applied, err := fn(e.g)
	switch {
	case err != nil:
		r.metrics.observe(op, outcomeError)
		r.logger.Debug("call failed", "op", op, "handle", h, "err", err)
	case !applied:
		r.metrics.observe(op, outcomeNoop)
		r.logger.Debug("call ignored", "op", op, "handle", h)
	default:
		r.metrics.observe(op, outcomeOK)
	}

	return err
}

// timed records the runtime of an algorithm call.
func (r *Registry) timed(algo string, start time.Time) {
	r.metrics.AlgorithmSeconds.WithLabelValues(algo).Observe(time.Since(start).Seconds())
}
