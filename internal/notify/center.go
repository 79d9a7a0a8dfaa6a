package notify

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/store"
)

// Center owns notification writes and keeps an in-memory mirror of the
// most recent notifications for the UI. The mirror is best-effort: local
// mutations update it in place without a round trip, and FetchRecent
// reconciles it fully against the database.
type Center struct {
	store store.Store
	limit int
	log   *logrus.Entry

	mu            sync.Mutex
	notifications []model.Notification
}

// NewCenter creates a notification center backed by the given store.
// limit bounds how many recent notifications each fetch mirrors.
func NewCenter(s store.Store, limit int) *Center {
	if limit <= 0 {
		limit = 50
	}
	return &Center{
		store: s,
		limit: limit,
		log:   logrus.WithField("component", "notify"),
	}
}

// Add persists a new unread notification and prepends it to the mirror
// so the UI sees it without waiting for the next fetch.
func (c *Center) Add(ctx context.Context, nType model.NotificationType, title, message string, relatedID *int64, relatedType *string) (*model.Notification, error) {
	created, err := c.store.CreateNotification(ctx, model.Notification{
		Type:        nType,
		Title:       title,
		Message:     message,
		RelatedID:   relatedID,
		RelatedType: relatedType,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.notifications = append([]model.Notification{*created}, c.notifications...)
	c.mu.Unlock()

	return created, nil
}

// FetchRecent reloads the mirror from the database and returns its new
// contents, newest first.
func (c *Center) FetchRecent(ctx context.Context) ([]model.Notification, error) {
	notifications, err := c.store.RecentNotifications(ctx, c.limit)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.notifications = notifications
	c.mu.Unlock()

	return c.Notifications(), nil
}

// MarkRead marks one notification as read in the database and in the
// mirror. Marking an already-read or missing id succeeds as a no-op.
func (c *Center) MarkRead(ctx context.Context, id int64) error {
	if err := c.store.MarkNotificationRead(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].IsRead = true
			break
		}
	}
	c.mu.Unlock()

	return nil
}

// MarkAllRead marks every notification as read.
func (c *Center) MarkAllRead(ctx context.Context) error {
	if err := c.store.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	for i := range c.notifications {
		c.notifications[i].IsRead = true
	}
	c.mu.Unlock()

	return nil
}

// Delete removes a notification from the database and from the mirror.
// Deleting a missing id succeeds as a no-op.
func (c *Center) Delete(ctx context.Context, id int64) error {
	if err := c.store.DeleteNotification(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	kept := c.notifications[:0]
	for _, n := range c.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notifications = kept
	c.mu.Unlock()

	return nil
}

// Notifications returns a copy of the mirrored notifications, newest
// first.
func (c *Center) Notifications() []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// UnreadCount returns how many mirrored notifications are unread.
func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, n := range c.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
