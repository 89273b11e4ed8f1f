package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sureshift/backend/internal/adapter/mailer"
)

// Message is a queued outbound notification.
type Message struct {
	To      string
	Subject string
	Body    string
}

// NotificationDispatcher delivers queued messages through a pool of workers.
// Enqueue never blocks and delivery failures never reach the request that
// produced them; they are logged and dropped.
type NotificationDispatcher struct {
	client  mailer.Client
	workers int
	logger  *slog.Logger

	jobs   chan Message
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the dispatcher with a bounded queue.
func NewNotificationDispatcher(client mailer.Client, queueSize, workers int, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &NotificationDispatcher{
		client:  client,
		workers: workers,
		logger:  logger,
		jobs:    make(chan Message, queueSize),
	}
}

// Start launches background delivery workers.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue queues a message for delivery without blocking the caller. When
// the queue is full the message is dropped with a warning.
func (d *NotificationDispatcher) Enqueue(msg Message) {
	select {
	case d.jobs <- msg:
	default:
		d.logger.Warn("notification queue full, dropping message",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
		)
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, msg)
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, msg Message) {
	if err := d.client.Send(ctx, msg.To, msg.Subject, msg.Body); err != nil {
		d.logger.Error("send notification failed",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()),
		)
	}
}
