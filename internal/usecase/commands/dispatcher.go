package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/domain/notification"
	"gig-negotiation/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	dispatchQueueSize   = 256
	deliveryMaxAttempts = 3
	deliveryBackoff     = 100 * time.Millisecond
)

// transitionKinds maps each committed action to the notification it produces.
var transitionKinds = map[negotiation.ActionKind]notification.Kind{
	negotiation.ActionAccept:  notification.KindOfferAccepted,
	negotiation.ActionDecline: notification.KindOfferDeclined,
	negotiation.ActionCounter: notification.KindOfferCountered,
	negotiation.ActionExpire:  notification.KindOfferExpired,
	negotiation.ActionFulfill: notification.KindOrderCompleted,
}

type delivery struct {
	recipientID uuid.UUID
	requestID   uuid.UUID
	kind        notification.Kind
}

// NotificationDispatcher fans committed transitions out to the parties that
// did not act: party-driven actions notify the counterpart, system-driven
// ones notify both sides. Appends happen on a background worker with bounded
// retries; a full queue or an exhausted retry drops the notification with a
// log line and never surfaces to the actor.
type NotificationDispatcher struct {
	store      NotificationStore
	invalidate UnreadInvalidator
	clock      clock.Clock
	logger     *slog.Logger

	queue chan delivery
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewNotificationDispatcher(
	store NotificationStore,
	invalidate UnreadInvalidator,
	clk clock.Clock,
	logger *slog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		store:      store,
		invalidate: invalidate,
		clock:      clk,
		logger:     logger,
		queue:      make(chan delivery, dispatchQueueSize),
	}
}

// Start launches the delivery worker. Stop drains the queue and blocks until
// in-flight deliveries finish.
func (d *NotificationDispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *NotificationDispatcher) RequestCreated(req *negotiation.OrderRequest) {
	d.enqueue(delivery{
		recipientID: req.Counterpart(req.LastActor()),
		requestID:   req.ID(),
		kind:        notification.KindOfferReceived,
	})
}

func (d *NotificationDispatcher) TransitionCommitted(req *negotiation.OrderRequest, tr negotiation.Transition) {
	kind, ok := transitionKinds[tr.Action]
	if !ok {
		d.logger.Error("no notification kind for action", slog.String("action", tr.Action.String()))
		return
	}

	recipients := d.recipients(req, tr)
	for _, job := range lo.Map(recipients, func(recipientID uuid.UUID, _ int) delivery {
		return delivery{recipientID: recipientID, requestID: tr.RequestID, kind: kind}
	}) {
		d.enqueue(job)
	}
}

func (d *NotificationDispatcher) recipients(req *negotiation.OrderRequest, tr negotiation.Transition) []uuid.UUID {
	if tr.IsSystem() {
		return []uuid.UUID{req.ClientID(), req.SellerID()}
	}
	return []uuid.UUID{req.Counterpart(tr.Actor)}
}

func (d *NotificationDispatcher) enqueue(job delivery) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Error("dispatcher stopped, dropping notification",
			slog.String("recipient_id", job.recipientID.String()),
			slog.String("request_id", job.requestID.String()),
			slog.String("kind", job.kind.String()),
		)
		return
	}

	select {
	case d.queue <- job:
	default:
		d.logger.Error("notification queue full, dropping",
			slog.String("recipient_id", job.recipientID.String()),
			slog.String("request_id", job.requestID.String()),
			slog.String("kind", job.kind.String()),
		)
	}
}

func (d *NotificationDispatcher) run() {
	defer d.wg.Done()
	for job := range d.queue {
		d.deliver(job)
	}
}

func (d *NotificationDispatcher) deliver(job delivery) {
	n, err := notification.New(job.recipientID, job.requestID, job.kind, d.clock.Now())
	if err != nil {
		d.logger.Error("failed to build notification", slog.String("error", err.Error()))
		return
	}

	ctx := context.Background()
	for attempt := 1; attempt <= deliveryMaxAttempts; attempt++ {
		if err = d.store.Append(ctx, n); err == nil {
			_ = d.invalidate.Invalidate(ctx, job.recipientID)
			return
		}
		if attempt < deliveryMaxAttempts {
			time.Sleep(deliveryBackoff * time.Duration(attempt))
		}
	}
	d.logger.Error("dropping notification after retries",
		slog.String("recipient_id", job.recipientID.String()),
		slog.String("request_id", job.requestID.String()),
		slog.String("kind", job.kind.String()),
		slog.String("error", err.Error()),
	)
}
