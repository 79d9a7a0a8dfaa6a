package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/store"
)

// seedBed creates a property with one room and one bed, returning the
// bed id for contract fixtures.
func seedBed(t *testing.T, s *store.SQLiteStore) int64 {
	t.Helper()
	ctx := context.Background()

	propertyID, err := s.CreateProperty(ctx, model.Property{
		Name:         "Marina Heights",
		Address:      "12 Marina Walk",
		PropertyType: "apartment",
		TotalRooms:   1,
		TotalBeds:    1,
	})
	require.NoError(t, err)

	roomID, err := s.CreateRoom(ctx, model.Room{
		PropertyID:     propertyID,
		RoomNumber:     "101",
		RoomType:       "shared",
		OccupancyLimit: 2,
		Status:         model.StatusAvailable,
	})
	require.NoError(t, err)

	bedID, err := s.CreateBed(ctx, model.Bed{
		RoomID:    roomID,
		BedNumber: "101-A",
		BedType:   "single",
		Status:    model.StatusAvailable,
	})
	require.NoError(t, err)

	return bedID
}

// seedTenant creates a tenant with optional document expiry dates.
func seedTenant(t *testing.T, s *store.SQLiteStore, name string, passportExpiry, visaExpiry *time.Time) int64 {
	t.Helper()

	id, err := s.CreateTenant(context.Background(), model.Tenant{
		FullName:       name,
		MobileNumber:   "0501234567",
		PassportExpiry: passportExpiry,
		VisaExpiry:     visaExpiry,
	})
	require.NoError(t, err)
	return id
}

// seedContract creates a contract for the tenant on the given bed.
func seedContract(t *testing.T, s *store.SQLiteStore, tenantID, bedID int64, number string, endDate time.Time, status string) int64 {
	t.Helper()

	id, err := s.CreateContract(context.Background(), model.Contract{
		TenantID:       tenantID,
		BedID:          bedID,
		ContractNumber: number,
		StartDate:      endDate.AddDate(-1, 0, 0),
		EndDate:        endDate,
		RentAmount:     24000,
		PaymentMode:    "cheque",
		NumberOfChecks: 4,
		Status:         status,
	})
	require.NoError(t, err)
	return id
}

// seedPayment creates a payment under the contract with the given due
// date and status.
func seedPayment(t *testing.T, s *store.SQLiteStore, contractID int64, amount float64, dueDate time.Time, status string) int64 {
	t.Helper()

	id, err := s.CreatePayment(context.Background(), model.Payment{
		ContractID:  contractID,
		PaymentType: "rent",
		Amount:      amount,
		PaymentDate: dueDate,
		DueDate:     &dueDate,
		Status:      status,
	})
	require.NoError(t, err)
	return id
}

// day returns midnight UTC n days from the fixed test date.
func day(n int) time.Time {
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, n)
}
