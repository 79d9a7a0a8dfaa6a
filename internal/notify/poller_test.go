package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/tests/testutil"
)

func TestPollerDeliversRefreshResult(t *testing.T) {
	s := testutil.NewTestStore(t)
	center := NewCenter(s, 50)

	_, err := center.Add(context.Background(),
		model.NotificationPaymentDue, "Payment Due Alert", "Payment of 2000 for Omar Farouk is due in 3 days", nil, nil)
	require.NoError(t, err)

	p := NewPoller(center, time.Hour)
	t.Cleanup(p.Stop)

	cmd := p.Start()
	require.NotNil(t, cmd)

	msg, ok := cmd().(RefreshedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	require.Len(t, msg.Notifications, 1)
	require.Equal(t, 1, msg.UnreadCount)
}

func TestPollerStartTwiceIsNoOp(t *testing.T) {
	center := NewCenter(testutil.NewTestStore(t), 50)

	p := NewPoller(center, time.Hour)
	t.Cleanup(p.Stop)

	require.NotNil(t, p.Start())
	require.Nil(t, p.Start())
}

func TestPollerStopIsIdempotent(t *testing.T) {
	center := NewCenter(testutil.NewTestStore(t), 50)

	p := NewPoller(center, time.Hour)
	p.Start()
	p.Stop()
	p.Stop()
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := NewPoller(NewCenter(testutil.NewTestStore(t), 50), 0)
	require.Equal(t, 30*time.Second, p.interval)
}
