package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/store"
	"github.com/rhaddad/propman/tests/testutil"
)

// scanDay returns midnight UTC n days from the fixed scan date.
func scanDay(n int) time.Time {
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, n)
}

// newTestScanner wires a scanner and center to an in-memory store with
// the clock pinned to scanDay(0).
func newTestScanner(t *testing.T) (*store.SQLiteStore, *Center, *Scanner) {
	t.Helper()

	s := testutil.NewTestStore(t)
	center := NewCenter(s, 50)
	scanner := NewScanner(s, center)
	scanner.now = func() time.Time { return scanDay(0) }
	return s, center, scanner
}

// seedContractFixture creates the property/room/bed/tenant chain and one
// contract ending on endDate.
func seedContractFixture(t *testing.T, s *store.SQLiteStore, tenantName, contractNumber string, endDate time.Time) int64 {
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

	tenantID, err := s.CreateTenant(ctx, model.Tenant{
		FullName:     tenantName,
		MobileNumber: "0501234567",
	})
	require.NoError(t, err)

	contractID, err := s.CreateContract(ctx, model.Contract{
		TenantID:       tenantID,
		BedID:          bedID,
		ContractNumber: contractNumber,
		StartDate:      endDate.AddDate(-1, 0, 0),
		EndDate:        endDate,
		RentAmount:     24000,
		PaymentMode:    "cheque",
		NumberOfChecks: 4,
		Status:         model.ContractStatusActive,
	})
	require.NoError(t, err)

	return contractID
}

func TestScannerAlertsOnContractExpiringSoon(t *testing.T) {
	s, center, scanner := newTestScanner(t)
	contractID := seedContractFixture(t, s, "Omar Farouk", "CT-0100", scanDay(5))

	scanner.CheckExpiryReminders(context.Background())

	notifications := center.Notifications()
	require.Len(t, notifications, 1)
	n := notifications[0]
	require.Equal(t, model.NotificationContractExpiry, n.Type)
	require.Equal(t, "Contract Expiry Alert", n.Title)
	require.Equal(t, "Contract CT-0100 expires in 5 days", n.Message)
	require.NotNil(t, n.RelatedID)
	require.Equal(t, contractID, *n.RelatedID)
	require.NotNil(t, n.RelatedType)
	require.Equal(t, model.RelatedContract, *n.RelatedType)
	require.False(t, n.IsRead)
}

func TestScannerContractAlertThreshold(t *testing.T) {
	s, center, scanner := newTestScanner(t)
	seedContractFixture(t, s, "Omar Farouk", "CT-EDGE", scanDay(7))

	scanner.CheckExpiryReminders(context.Background())
	require.Len(t, center.Notifications(), 1)
	require.Equal(t, "Contract CT-EDGE expires in 7 days", center.Notifications()[0].Message)
}

func TestScannerIgnoresContractBeyondThreshold(t *testing.T) {
	s, center, scanner := newTestScanner(t)

	// Inside the fetch window but past the alert threshold.
	seedContractFixture(t, s, "Omar Farouk", "CT-FAR", scanDay(12))

	scanner.CheckExpiryReminders(context.Background())
	require.Empty(t, center.Notifications())
}

func TestScannerAlertsOnExpiringPassport(t *testing.T) {
	s, center, scanner := newTestScanner(t)
	ctx := context.Background()

	passport := scanDay(10)
	tenantID, err := s.CreateTenant(ctx, model.Tenant{
		FullName:       "Jane Doe",
		MobileNumber:   "0501234567",
		PassportExpiry: &passport,
	})
	require.NoError(t, err)

	scanner.CheckExpiryReminders(ctx)

	notifications := center.Notifications()
	require.Len(t, notifications, 1)
	n := notifications[0]
	require.Equal(t, model.NotificationDocumentExpiry, n.Type)
	require.Equal(t, "Passport Expiry Alert", n.Title)
	require.Equal(t, "Passport for Jane Doe expires in 10 days", n.Message)
	require.Equal(t, tenantID, *n.RelatedID)
	require.Equal(t, model.RelatedTenant, *n.RelatedType)
}

func TestScannerAlertsOnBothDocuments(t *testing.T) {
	s, center, scanner := newTestScanner(t)
	ctx := context.Background()

	passport := scanDay(10)
	visa := scanDay(20)
	_, err := s.CreateTenant(ctx, model.Tenant{
		FullName:       "Ahmed Hassan",
		MobileNumber:   "0501234567",
		PassportExpiry: &passport,
		VisaExpiry:     &visa,
	})
	require.NoError(t, err)

	scanner.CheckExpiryReminders(ctx)

	notifications := center.Notifications()
	require.Len(t, notifications, 2)
	// Mirror is newest first, so the visa alert comes before the passport.
	require.Equal(t, "Visa for Ahmed Hassan expires in 20 days", notifications[0].Message)
	require.Equal(t, "Passport for Ahmed Hassan expires in 10 days", notifications[1].Message)
}

func TestScannerAlertsOnPaymentDue(t *testing.T) {
	s, center, scanner := newTestScanner(t)
	ctx := context.Background()

	contractID := seedContractFixture(t, s, "Omar Farouk", "CT-0100", scanDay(180))
	due := scanDay(3)
	paymentID, err := s.CreatePayment(ctx, model.Payment{
		ContractID:  contractID,
		PaymentType: "rent",
		Amount:      2500,
		PaymentDate: due,
		DueDate:     &due,
		Status:      model.PaymentStatusPending,
	})
	require.NoError(t, err)

	scanner.CheckExpiryReminders(ctx)

	notifications := center.Notifications()
	require.Len(t, notifications, 1)
	n := notifications[0]
	require.Equal(t, model.NotificationPaymentDue, n.Type)
	require.Equal(t, "Payment Due Alert", n.Title)
	require.Equal(t, "Payment of 2500 for Omar Farouk is due in 3 days", n.Message)
	require.Equal(t, paymentID, *n.RelatedID)
	require.Equal(t, model.RelatedPayment, *n.RelatedType)
}

func TestScannerRepeatedSweepsDuplicate(t *testing.T) {
	s, center, scanner := newTestScanner(t)
	seedContractFixture(t, s, "Omar Farouk", "CT-0100", scanDay(5))

	ctx := context.Background()
	scanner.CheckExpiryReminders(ctx)
	scanner.CheckExpiryReminders(ctx)

	notifications := center.Notifications()
	require.Len(t, notifications, 2)
	require.Equal(t, notifications[0].Message, notifications[1].Message)
}

// failingContractStore breaks the contract sub-scan while leaving the
// other queries intact.
type failingContractStore struct {
	store.Store
}

func (f failingContractStore) ExpiringContracts(ctx context.Context, today time.Time, days int) ([]model.ExpiringContract, error) {
	return nil, errors.New("contracts unavailable")
}

func TestScannerSubScanFailureDoesNotAbortOthers(t *testing.T) {
	s := testutil.NewTestStore(t)
	center := NewCenter(s, 50)
	scanner := NewScanner(failingContractStore{Store: s}, center)
	scanner.now = func() time.Time { return scanDay(0) }

	ctx := context.Background()
	contractID := seedContractFixture(t, s, "Omar Farouk", "CT-0100", scanDay(180))
	due := scanDay(2)
	_, err := s.CreatePayment(ctx, model.Payment{
		ContractID:  contractID,
		PaymentType: "rent",
		Amount:      1800,
		PaymentDate: due,
		DueDate:     &due,
		Status:      model.PaymentStatusPending,
	})
	require.NoError(t, err)

	scanner.CheckExpiryReminders(ctx)

	notifications := center.Notifications()
	require.Len(t, notifications, 1)
	require.Equal(t, model.NotificationPaymentDue, notifications[0].Type)
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	require.Equal(t, 0, daysBetween(from, time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)))
	require.Equal(t, 1, daysBetween(from, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 7, daysBetween(from, time.Date(2026, 3, 17, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, -1, daysBetween(from, time.Date(2026, 3, 9, 1, 0, 0, 0, time.UTC)))
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "2500", formatAmount(2500))
	require.Equal(t, "2500.5", formatAmount(2500.5))
}
