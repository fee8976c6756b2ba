package repository

import (
	"context"
	"time"

	"moveit-backend/internal/infra"
	"moveit-backend/internal/infra/db"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues an outbox row for a later delivery worker. Written in
// the same transaction as the booking so the two cannot diverge.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := tx.Exec(ctx, query, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
