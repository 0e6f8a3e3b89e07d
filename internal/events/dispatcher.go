package events

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultQueueSize = 100
	sinkTimeout      = 5 * time.Second
)

type Dispatcher struct {
	log   *zap.Logger
	sinks []Sink
	queue chan Event
	done  chan struct{}

	mu      sync.Mutex
	closed  bool
	dropped atomic.Int64
}

func NewDispatcher(log *zap.Logger, size int, sinks ...Sink) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	d := &Dispatcher{
		log:   log,
		sinks: sinks,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
			if err := s.Handle(ctx, ev); err != nil {
				d.log.Warn("event sink failed",
					zap.String("type", string(ev.Type)),
					zap.String("booking_id", ev.BookingID.String()),
					zap.Error(err),
				)
			}
			cancel()
		}
	}
}

func (d *Dispatcher) Publish(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.drop(ev, "dispatcher closed")
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila cheia: o evento é descartado, a operação de origem segue
		d.drop(ev, "queue full")
	}
}

func (d *Dispatcher) drop(ev Event, reason string) {
	d.dropped.Add(1)
	d.log.Warn("dropping event",
		zap.String("reason", reason),
		zap.String("type", string(ev.Type)),
		zap.String("booking_id", ev.BookingID.String()),
	)
}

func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Close para de aceitar eventos e espera a fila esvaziar.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Publisher = (*Dispatcher)(nil)
