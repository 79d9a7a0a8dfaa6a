package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/tests/testutil"
)

func TestExpiringContractsWindow(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	bedID := seedBed(t, s)

	inside := seedTenant(t, s, "Omar Farouk", nil, nil)
	boundary := seedTenant(t, s, "Lena Hart", nil, nil)
	outside := seedTenant(t, s, "Pavel Novak", nil, nil)

	seedContract(t, s, inside, bedID, "CT-INSIDE", day(5), model.ContractStatusActive)
	seedContract(t, s, boundary, bedID, "CT-EDGE", day(30), model.ContractStatusActive)
	seedContract(t, s, outside, bedID, "CT-LATE", day(31), model.ContractStatusActive)

	contracts, err := s.ExpiringContracts(ctx, day(0), 30)
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	require.Equal(t, "CT-INSIDE", contracts[0].ContractNumber)
	require.Equal(t, "Omar Farouk", contracts[0].TenantName)
	require.Equal(t, "CT-EDGE", contracts[1].ContractNumber)
}

func TestExpiringContractsSkipsInactive(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	bedID := seedBed(t, s)

	tenantID := seedTenant(t, s, "Omar Farouk", nil, nil)
	seedContract(t, s, tenantID, bedID, "CT-DONE", day(5), model.ContractStatusTerminated)
	seedContract(t, s, tenantID, bedID, "CT-OLD", day(5), model.ContractStatusExpired)

	contracts, err := s.ExpiringContracts(ctx, day(0), 30)
	require.NoError(t, err)
	require.Empty(t, contracts)
}

func TestExpiringContractsSkipsPastEndDates(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	bedID := seedBed(t, s)

	tenantID := seedTenant(t, s, "Omar Farouk", nil, nil)
	seedContract(t, s, tenantID, bedID, "CT-PAST", day(-1), model.ContractStatusActive)

	contracts, err := s.ExpiringContracts(ctx, day(0), 30)
	require.NoError(t, err)
	require.Empty(t, contracts)
}

func TestTenantsWithExpiringDocuments(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	passport := day(10)
	visa := day(45)
	bothSoon := day(3)

	// Passport inside the window, visa outside.
	seedTenant(t, s, "Jane Doe", &passport, &visa)
	// Both documents inside the window.
	seedTenant(t, s, "Ahmed Hassan", &bothSoon, &bothSoon)
	// No documents recorded at all.
	seedTenant(t, s, "Maria Silva", nil, nil)

	tenants, err := s.TenantsWithExpiringDocuments(ctx, day(0), 30)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	require.Equal(t, "Jane Doe", tenants[0].FullName)
	require.Equal(t, "Ahmed Hassan", tenants[1].FullName)
}

func TestPendingPaymentsDueWindow(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	bedID := seedBed(t, s)

	tenantID := seedTenant(t, s, "Omar Farouk", nil, nil)
	contractID := seedContract(t, s, tenantID, bedID, "CT-0001", day(180), model.ContractStatusActive)

	dueSoon := seedPayment(t, s, contractID, 2000, day(3), model.PaymentStatusPending)
	seedPayment(t, s, contractID, 2000, day(8), model.PaymentStatusPending)
	seedPayment(t, s, contractID, 2000, day(2), model.PaymentStatusPaid)

	payments, err := s.PendingPaymentsDue(ctx, day(0), 7)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, dueSoon, payments[0].ID)
	require.Equal(t, "Omar Farouk", payments[0].TenantName)
	require.Equal(t, "CT-0001", payments[0].ContractNumber)
	require.EqualValues(t, 2000, payments[0].Amount)
}
