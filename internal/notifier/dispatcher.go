package notifier

import (
	"context"
	"time"

	"github.com/ncastrod/taskcash/internal/logger"
	"github.com/ncastrod/taskcash/internal/metrics"
	"github.com/ncastrod/taskcash/internal/models"
	"github.com/ncastrod/taskcash/internal/repository"
	"go.uber.org/zap"
)

const batchSize = 100

// Sender delivers a single notification to the user-facing channel
// (push, email, in-app). Delivery transports live outside the core.
type Sender interface {
	Send(ctx context.Context, notification models.Notification) error
}

// LogSender writes notifications to the application log. It stands in
// until a real delivery transport is configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, n models.Notification) error {
	logger.Log.Info("notification",
		zap.Int64("user", n.UserID),
		zap.String("type", n.Type),
		zap.String("message", n.Message))
	return nil
}

// Dispatcher drains the notifications outbox on a fixed interval.
// Rows are written inside the same database transaction as the balance
// change that caused them, so delivery is at-least-once and a crashed
// dispatcher never loses a notification.
type Dispatcher struct {
	repo         repository.NotificationRepository
	sender       Sender
	pollInterval time.Duration
}

func NewDispatcher(repo repository.NotificationRepository, sender Sender, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		repo:         repo,
		sender:       sender,
		pollInterval: interval,
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.dispatchPending(ctx)
		}
	}
}

func (d *Dispatcher) dispatchPending(ctx context.Context) {
	notifications, err := d.repo.GetUnsent(ctx, batchSize)
	if err != nil {
		logger.Log.Error("failed to get unsent notifications", zap.Error(err))
		return
	}

	var sent []int64
	for _, n := range notifications {
		if err := d.sender.Send(ctx, n); err != nil {
			logger.Log.Warn("failed to send notification", zap.Int64("id", n.ID), zap.Error(err))
			continue
		}
		sent = append(sent, n.ID)
		metrics.NotificationsSent.Inc()
	}

	if err := d.repo.MarkSent(ctx, sent); err != nil {
		logger.Log.Error("failed to mark notifications sent", zap.Error(err))
	}
}
