package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/store"
	"github.com/rhaddad/propman/tests/testutil"
)

func TestMigrationsAreIdempotentAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propman.db")

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	addNotification(t, s, "alert")
	require.NoError(t, s.Close())

	// Reopening must not re-apply migrations or lose data.
	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	notifications, err := s.RecentNotifications(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
}

func TestExportToWritesSnapshot(t *testing.T) {
	s := testutil.NewTestStore(t)
	addNotification(t, s, "alert")

	path := filepath.Join(t.TempDir(), "backup.db")
	require.NoError(t, s.ExportTo(context.Background(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	// The snapshot must be a readable database with the data in it.
	copied, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { copied.Close() })

	notifications, err := copied.RecentNotifications(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
}

func TestPersistenceErrorWrapsCause(t *testing.T) {
	s := testutil.NewTestStore(t)

	// A contract pointing at a missing tenant violates a foreign key.
	_, err := s.CreateContract(context.Background(), model.Contract{
		TenantID:   999,
		BedID:      999,
		StartDate:  day(0),
		EndDate:    day(10),
		RentAmount: 1000,
	})
	require.Error(t, err)

	var perr *store.PersistenceError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "creating contract", perr.Op)
}
