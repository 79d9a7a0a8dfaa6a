package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rhaddad/propman/internal/model"
)

// CreateNotification inserts a new unread notification and returns the
// stored record with its assigned id.
func (s *SQLiteStore) CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	n.IsRead = false

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (type, title, message, related_id, related_type, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(n.Type), n.Title, n.Message, n.RelatedID, n.RelatedType,
		boolToInt(n.IsRead), n.CreatedAt,
	)
	if err != nil {
		return nil, persistErr("creating notification", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, persistErr("reading notification id", err)
	}
	n.ID = id

	return &n, nil
}

// RecentNotifications returns the most recent notifications, newest first.
func (s *SQLiteStore) RecentNotifications(ctx context.Context, limit int) ([]model.Notification, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM notifications ORDER BY created_at DESC, id DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, persistErr("querying recent notifications", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkNotificationRead marks a single notification as read. Marking a
// missing or already-read id is a no-op.
func (s *SQLiteStore) MarkNotificationRead(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = 1 WHERE id = ?", id,
	)
	if err != nil {
		return persistErr("marking notification as read", err)
	}
	return nil
}

// MarkAllNotificationsRead marks every notification as read.
func (s *SQLiteStore) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "UPDATE notifications SET is_read = 1")
	if err != nil {
		return persistErr("marking all notifications as read", err)
	}
	return nil
}

// DeleteNotification removes a notification by id. Deleting a missing id
// is a no-op: zero rows affected is a valid outcome.
func (s *SQLiteStore) DeleteNotification(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM notifications WHERE id = ?", id)
	if err != nil {
		return persistErr("deleting notification", err)
	}
	return nil
}

// CountUnreadNotifications counts the notifications that haven't been
// marked as read.
func (s *SQLiteStore) CountUnreadNotifications(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM notifications WHERE is_read = 0",
	)
	if err != nil {
		return 0, persistErr("counting unread notifications", err)
	}
	return total, nil
}

// scanNotification scans a notification row from a sqlx.Rows result set.
func scanNotification(rows *sqlx.Rows) (model.Notification, error) {
	var (
		n         model.Notification
		nType     string
		readInt   int
		createdAt time.Time
	)

	err := rows.Scan(
		&n.ID, &nType, &n.Title, &n.Message,
		&n.RelatedID, &n.RelatedType, &readInt, &createdAt,
	)
	if err != nil {
		return model.Notification{}, persistErr("scanning notification row", err)
	}

	n.Type = model.NotificationType(nType)
	n.IsRead = readInt != 0
	n.CreatedAt = createdAt

	return n, nil
}
