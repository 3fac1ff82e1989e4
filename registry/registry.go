package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-strqueue/internal/pool"
	"github.com/arloliu/go-strqueue/logger"
	"github.com/arloliu/go-strqueue/strqueue"
)

// handle owns one queue and serializes access to it.
type handle struct {
	mu        sync.Mutex
	q         *strqueue.Queue
	destroyed bool
}

// Registry maps names to queues. It is safe for concurrent use.
type Registry struct {
	cfg     *Config
	handles *xsync.MapOf[string, *handle]
	logger  logger.Logger
	metrics *Metrics
}

// New creates an empty registry configured by opts.
func New(opts ...Option) (*Registry, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Registry{
		cfg:     cfg,
		handles: xsync.NewMapOf[string, *handle](),
		logger:  cfg.logger.With("component", "strqueue-registry"),
		metrics: cfg.metrics,
	}, nil
}

// Config returns the configuration of the registry.
func (r *Registry) Config() *Config {
	return r.cfg
}

// Metrics returns the metrics updated by the registry.
func (r *Registry) Metrics() *Metrics {
	return r.metrics
}

// Create registers an empty queue under name.
func (r *Registry) Create(name string) error {
	if name == "" {
		return r.fail("create", name, ErrInvalidName)
	}

	h := &handle{q: strqueue.New(strqueue.WithAllocator(r.cfg.allocator))}
	if _, loaded := r.handles.LoadOrStore(name, h); loaded {
		return r.fail("create", name, ErrHandleExists)
	}

	r.metrics.incCreateCount()
	r.logger.Info("queue created", "handle", name)

	return nil
}

// Destroy frees the queue registered under name and forgets the name.
func (r *Registry) Destroy(name string) error {
	h, ok := r.handles.LoadAndDelete(name)
	if !ok {
		return r.fail("destroy", name, ErrUnknownHandle)
	}

	h.mu.Lock()
	freed := h.q.Size()
	h.q.Free()
	h.q = nil
	h.destroyed = true
	h.mu.Unlock()

	r.metrics.incDestroyCount(freed)
	r.logger.Info("queue destroyed", "handle", name, "freed", freed)

	return nil
}

// Close destroys every registered queue.
func (r *Registry) Close() {
	for _, name := range r.Names() {
		// a concurrent Destroy may win the race, which is fine here
		_ = r.Destroy(name)
	}
}

// InsertHead stores a copy of s at the head of the named queue.
func (r *Registry) InsertHead(name string, s string) error {
	return r.do("insert_head", name, func(q *strqueue.Queue) error {
		if err := q.InsertHead(s); err != nil {
			return err
		}
		r.metrics.incInsertCount()

		return nil
	})
}

// InsertTail stores a copy of s at the tail of the named queue.
func (r *Registry) InsertTail(name string, s string) error {
	return r.do("insert_tail", name, func(q *strqueue.Queue) error {
		if err := q.InsertTail(s); err != nil {
			return err
		}
		r.metrics.incInsertCount()

		return nil
	})
}

// RemoveHead removes the first element of the named queue into dst.
// See strqueue.Queue.RemoveHead for the truncation rules.
func (r *Registry) RemoveHead(name string, dst []byte) (int, error) {
	var n int
	err := r.do("remove_head", name, func(q *strqueue.Queue) error {
		var err error
		if n, err = q.RemoveHead(dst); err != nil {
			return err
		}
		r.metrics.incRemoveCount()

		return nil
	})

	return n, err
}

// RemoveHeadString removes the first element of the named queue and returns it.
//
// The element is copied through a buffer of Config.RemoveBufferSize bytes, so
// strings longer than RemoveBufferSize-1 bytes are truncated.
func (r *Registry) RemoveHeadString(name string) (string, error) {
	buf := pool.GetBuffer(r.cfg.removeBufferSize)
	defer pool.PutBuffer(buf)

	n, err := r.RemoveHead(name, buf)
	if err != nil {
		return "", err
	}

	return string(buf[:n]), nil
}

// Size returns the number of elements of the named queue.
func (r *Registry) Size(name string) (int, error) {
	var size int
	err := r.do("size", name, func(q *strqueue.Queue) error {
		size = q.Size()
		return nil
	})

	return size, err
}

// Reverse reverses the named queue in place.
func (r *Registry) Reverse(name string) error {
	return r.do("reverse", name, func(q *strqueue.Queue) error {
		q.Reverse()
		r.metrics.incReverseCount()

		return nil
	})
}

// Sort sorts the named queue in ascending order.
func (r *Registry) Sort(name string) error {
	return r.do("sort", name, func(q *strqueue.Queue) error {
		q.Sort()
		r.metrics.incSortCount()

		return nil
	})
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.handles.Size())
	r.handles.Range(func(name string, _ *handle) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)

	return names
}

// Len returns the number of registered queues.
func (r *Registry) Len() int {
	return r.handles.Size()
}

// do runs fn on the named queue while holding its lock.
func (r *Registry) do(op string, name string, fn func(q *strqueue.Queue) error) error {
	h, ok := r.handles.Load(name)
	if !ok {
		return r.fail(op, name, ErrUnknownHandle)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// lost the race against Destroy
	if h.destroyed {
		return r.fail(op, name, ErrUnknownHandle)
	}

	if err := fn(h.q); err != nil {
		return r.fail(op, name, err)
	}

	return nil
}

func (r *Registry) fail(op string, name string, err error) error {
	r.metrics.incErrCount()
	r.logger.Debug("queue operation failed", "op", op, "handle", name, "error", err)

	return fmt.Errorf("%s %q: %w", op, name, err)
}
