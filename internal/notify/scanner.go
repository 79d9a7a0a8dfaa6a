package notify

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/store"
)

// Scan windows in calendar days. The contract query fetches a wider
// window than the alert threshold; rows between the two are fetched and
// skipped, leaving room for staged alerting later.
const (
	contractScanWindowDays = 30
	contractAlertDays      = 7
	documentScanWindowDays = 30
	paymentScanWindowDays  = 7
)

// Scanner detects approaching deadlines and records notifications for
// them through the Center.
type Scanner struct {
	store  store.Store
	center *Center
	log    *logrus.Entry

	// now is replaceable in tests.
	now func() time.Time
}

// NewScanner creates a scanner that reads deadlines from s and emits
// notifications through center.
func NewScanner(s store.Store, center *Center) *Scanner {
	return &Scanner{
		store:  s,
		center: center,
		log:    logrus.WithField("component", "scanner"),
		now:    time.Now,
	}
}

// CheckExpiryReminders runs one full sweep: contract expiry, document
// expiry, and payment due checks, in that order. A failing sub-scan is
// logged and does not abort the others. Repeated sweeps over the same
// rows create duplicate notifications; callers control the cadence.
func (sc *Scanner) CheckExpiryReminders(ctx context.Context) {
	today := sc.now()

	if err := sc.scanContracts(ctx, today); err != nil {
		sc.log.WithError(err).Error("contract expiry scan failed")
	}
	if err := sc.scanDocuments(ctx, today); err != nil {
		sc.log.WithError(err).Error("document expiry scan failed")
	}
	if err := sc.scanPayments(ctx, today); err != nil {
		sc.log.WithError(err).Error("payment due scan failed")
	}
}

// scanContracts alerts on active contracts ending within the alert
// threshold.
func (sc *Scanner) scanContracts(ctx context.Context, today time.Time) error {
	contracts, err := sc.store.ExpiringContracts(ctx, today, contractScanWindowDays)
	if err != nil {
		return err
	}

	for _, contract := range contracts {
		days := daysBetween(today, contract.EndDate)
		if days > contractAlertDays {
			continue
		}

		id := contract.ID
		related := model.RelatedContract
		_, err := sc.center.Add(ctx,
			model.NotificationContractExpiry,
			"Contract Expiry Alert",
			fmt.Sprintf("Contract %s expires in %d days", contract.ContractNumber, days),
			&id, &related,
		)
		if err != nil {
			sc.log.WithError(err).WithField("contract", contract.ContractNumber).
				Error("recording contract expiry notification failed")
		}
	}

	return nil
}

// scanDocuments alerts on tenant passports and visas expiring within the
// document window. Both documents are evaluated independently, so one
// tenant can produce two notifications in a single sweep.
func (sc *Scanner) scanDocuments(ctx context.Context, today time.Time) error {
	tenants, err := sc.store.TenantsWithExpiringDocuments(ctx, today, documentScanWindowDays)
	if err != nil {
		return err
	}

	for _, tenant := range tenants {
		if tenant.PassportExpiry != nil {
			days := daysBetween(today, *tenant.PassportExpiry)
			if days <= documentScanWindowDays {
				sc.addDocumentAlert(ctx, tenant, "Passport", days)
			}
		}

		if tenant.VisaExpiry != nil {
			days := daysBetween(today, *tenant.VisaExpiry)
			if days <= documentScanWindowDays {
				sc.addDocumentAlert(ctx, tenant, "Visa", days)
			}
		}
	}

	return nil
}

// addDocumentAlert records one document_expiry notification for a tenant.
func (sc *Scanner) addDocumentAlert(ctx context.Context, tenant model.Tenant, document string, days int) {
	id := tenant.ID
	related := model.RelatedTenant
	_, err := sc.center.Add(ctx,
		model.NotificationDocumentExpiry,
		document+" Expiry Alert",
		fmt.Sprintf("%s for %s expires in %d days", document, tenant.FullName, days),
		&id, &related,
	)
	if err != nil {
		sc.log.WithError(err).WithField("tenant", tenant.FullName).
			Error("recording document expiry notification failed")
	}
}

// scanPayments alerts on every pending payment due within the payment
// window.
func (sc *Scanner) scanPayments(ctx context.Context, today time.Time) error {
	payments, err := sc.store.PendingPaymentsDue(ctx, today, paymentScanWindowDays)
	if err != nil {
		return err
	}

	for _, payment := range payments {
		days := daysBetween(today, payment.DueDate)

		id := payment.ID
		related := model.RelatedPayment
		_, err := sc.center.Add(ctx,
			model.NotificationPaymentDue,
			"Payment Due Alert",
			fmt.Sprintf("Payment of %s for %s is due in %d days",
				formatAmount(payment.Amount), payment.TenantName, days),
			&id, &related,
		)
		if err != nil {
			sc.log.WithError(err).WithField("payment", payment.ID).
				Error("recording payment due notification failed")
		}
	}

	return nil
}

// daysBetween returns the calendar-day difference between two instants,
// evaluated in from's location. Negative when to is already past.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = to.In(from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, from.Location())

	// Round so DST transitions inside the span cannot skew the count.
	return int(math.Round(toDay.Sub(fromDay).Hours() / 24))
}

// formatAmount renders a payment amount without a fixed precision, so
// whole amounts print without a decimal part.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
