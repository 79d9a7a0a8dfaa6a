package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/tests/testutil"
)

func addAlert(t *testing.T, c *Center, message string) *model.Notification {
	t.Helper()

	created, err := c.Add(context.Background(),
		model.NotificationContractExpiry, "Contract Expiry Alert", message, nil, nil)
	require.NoError(t, err)
	return created
}

func TestCenterAddPrependsToMirror(t *testing.T) {
	c := NewCenter(testutil.NewTestStore(t), 50)

	addAlert(t, c, "first")
	addAlert(t, c, "second")

	notifications := c.Notifications()
	require.Len(t, notifications, 2)
	require.Equal(t, "second", notifications[0].Message)
	require.Equal(t, "first", notifications[1].Message)
	require.Equal(t, 2, c.UnreadCount())
}

func TestCenterMarkReadIsIdempotent(t *testing.T) {
	c := NewCenter(testutil.NewTestStore(t), 50)
	ctx := context.Background()

	created := addAlert(t, c, "alert")

	require.NoError(t, c.MarkRead(ctx, created.ID))
	require.Equal(t, 0, c.UnreadCount())

	require.NoError(t, c.MarkRead(ctx, created.ID))
	require.Equal(t, 0, c.UnreadCount())
}

func TestCenterMarkAllRead(t *testing.T) {
	c := NewCenter(testutil.NewTestStore(t), 50)
	ctx := context.Background()

	addAlert(t, c, "one")
	addAlert(t, c, "two")
	addAlert(t, c, "three")

	require.NoError(t, c.MarkAllRead(ctx))
	require.Equal(t, 0, c.UnreadCount())
	for _, n := range c.Notifications() {
		require.True(t, n.IsRead)
	}
}

func TestCenterDeleteKeepsOrder(t *testing.T) {
	c := NewCenter(testutil.NewTestStore(t), 50)
	ctx := context.Background()

	addAlert(t, c, "first")
	second := addAlert(t, c, "second")
	addAlert(t, c, "third")

	require.NoError(t, c.Delete(ctx, second.ID))

	notifications := c.Notifications()
	require.Len(t, notifications, 2)
	require.Equal(t, "third", notifications[0].Message)
	require.Equal(t, "first", notifications[1].Message)
}

func TestCenterFetchRecentReconcilesMirror(t *testing.T) {
	s := testutil.NewTestStore(t)
	c := NewCenter(s, 50)
	ctx := context.Background()

	created := addAlert(t, c, "alert")

	// Mutate behind the mirror's back, then reconcile.
	require.NoError(t, s.MarkNotificationRead(ctx, created.ID))
	require.Equal(t, 1, c.UnreadCount())

	notifications, err := c.FetchRecent(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.True(t, notifications[0].IsRead)
	require.Equal(t, 0, c.UnreadCount())
}

func TestCenterFetchRecentHonorsLimit(t *testing.T) {
	c := NewCenter(testutil.NewTestStore(t), 2)
	ctx := context.Background()

	addAlert(t, c, "one")
	addAlert(t, c, "two")
	addAlert(t, c, "three")

	notifications, err := c.FetchRecent(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	require.Equal(t, "three", notifications[0].Message)
}
