package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
	At       time.Time
}

// Sink persists or forwards one audit event.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks  []Sink
	log    *slog.Logger
	queue  chan Event
	wg     sync.WaitGroup
	closed sync.Once
}

func NewDispatcher(log *slog.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		log:   log,
		queue: make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Write(ctx, ev); err != nil {
				d.log.Error("audit sink failed", "action", ev.Action, "err", err)
			}
			cancel()
		}
	}
}

// Dispatch never blocks the request path; a full queue drops the event.
// A nil dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closed.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}
