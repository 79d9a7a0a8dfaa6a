package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhaddad/propman/internal/auth"
	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/tests/testutil"
)

func TestEnsureDefaultAdminSeedsOnce(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, auth.EnsureDefaultAdmin(ctx, s))
	require.NoError(t, auth.EnsureDefaultAdmin(ctx, s))

	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	admin, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	require.Equal(t, model.RoleAdmin, admin.Role)
}

func TestEnsureDefaultAdminSkipsWhenUsersExist(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, model.User{
		Username:     "owner",
		PasswordHash: "x",
		Role:         model.RoleAdmin,
		FullName:     "Owner",
	})
	require.NoError(t, err)

	require.NoError(t, auth.EnsureDefaultAdmin(ctx, s))

	admin, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Nil(t, admin)
}
