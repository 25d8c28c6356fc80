package repository

import (
	"context"
	"database/sql"

	"github.com/ncastrod/taskcash/internal/logger"
	"github.com/ncastrod/taskcash/internal/models"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	GetUnsent(ctx context.Context, limit int) ([]models.Notification, error)
	MarkSent(ctx context.Context, ids []int64) error
}

type notificationRepo struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) GetUnsent(ctx context.Context, limit int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, message, sent, created_at
		FROM notifications WHERE NOT sent ORDER BY created_at LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		logger.Log.Error("failed to query notifications", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Sent, &n.CreatedAt); err != nil {
			logger.Log.Error("failed to scan notification", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepo) MarkSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET sent = TRUE WHERE id = ANY($1)
	`, ids)
	return err
}
