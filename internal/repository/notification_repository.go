package repository

import (
	"database/sql"

	"github.com/callmedory/sport-project/internal/model"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	_, err := r.db.Exec(`
		INSERT INTO notifications(id, user_id, subject, body, created_at)
		VALUES($1, $2, $3, $4, $5)
	`, n.ID, n.UserID, n.Subject, n.Body, n.CreatedAt)
	return err
}

// ListByUser pages a user's notifications newest-first. Page numbers are
// 1-based.
func (r *NotificationRepository) ListByUser(userID string, pageNumber, pageSize int) ([]model.Notification, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, subject, body, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Subject, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
