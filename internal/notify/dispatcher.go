package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"ats-backend/internal/workflow"
)

// SendTimeout bounds a single delivery
const SendTimeout = 30 * time.Second

// Dispatcher queues notifications and delivers them on worker goroutines.
// A full queue drops the notification, delivery failures are logged.
type Dispatcher struct {
	mailer Mailer
	log    *zap.Logger
	queue  chan Message

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ workflow.Notifier = (*Dispatcher)(nil)

// NewDispatcher starts workers goroutines reading from a queue of queueSize messages.
func NewDispatcher(mailer Mailer, workers int, queueSize int, log *zap.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		mailer: mailer,
		log:    log.With(zap.String("component", "notify")),
		queue:  make(chan Message, queueSize),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	return d
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()

	if err := d.mailer.Send(ctx, msg); err != nil {
		d.log.Error("failed to send notification", zap.String("to", msg.To), zap.String("subject", msg.Subject), zap.Error(err))
		return
	}
	d.log.Debug("notification sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
}

// Notify implements workflow.Notifier. It never blocks.
func (d *Dispatcher) Notify(_ context.Context, n workflow.Notification) {
	msg, err := Compose(n)
	if err != nil {
		d.log.Error("failed to compose notification", zap.Error(err))
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn("dispatcher closed, notification dropped", zap.String("kind", string(n.Kind)), zap.String("to", msg.To))
		return
	}

	select {
	case d.queue <- msg:
	default:
		d.log.Warn("notification queue full, notification dropped", zap.String("kind", string(n.Kind)), zap.String("to", msg.To))
	}
}

// Close stops accepting notifications and waits until queued ones are delivered or ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
