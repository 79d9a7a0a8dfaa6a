package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rhaddad/propman/internal/model"
)

// newReceiptNumber generates an opaque receipt reference.
func newReceiptNumber() string {
	return "RC-" + strings.ToUpper(uuid.New().String()[:8])
}

// CreatePayment inserts a new payment and returns its assigned id.
// A receipt number is generated when none is provided.
func (s *SQLiteStore) CreatePayment(ctx context.Context, p model.Payment) (int64, error) {
	if p.Status == "" {
		p.Status = model.PaymentStatusPending
	}
	if p.ReceiptNumber == nil {
		rc := newReceiptNumber()
		p.ReceiptNumber = &rc
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (
			contract_id, payment_type, amount, payment_date, due_date,
			payment_method, cheque_number, receipt_number, description,
			status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ContractID, p.PaymentType, p.Amount, p.PaymentDate, p.DueDate,
		p.PaymentMethod, p.ChequeNumber, p.ReceiptNumber, p.Description,
		p.Status, time.Now().UTC(),
	)
	if err != nil {
		return 0, persistErr("creating payment", err)
	}
	return result.LastInsertId()
}

// MarkPaymentPaid transitions a pending payment to paid.
func (s *SQLiteStore) MarkPaymentPaid(ctx context.Context, id int64, method string, paidOn time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE payments SET status = ?, payment_method = ?, payment_date = ?
		WHERE id = ?`,
		model.PaymentStatusPaid, method, paidOn, id,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("marking payment %d paid", id), err)
	}
	return nil
}

// GetPaymentsForContract retrieves a contract's payments, oldest first.
func (s *SQLiteStore) GetPaymentsForContract(ctx context.Context, contractID int64) ([]model.Payment, error) {
	var payments []model.Payment
	err := s.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE contract_id = ? ORDER BY payment_date", contractID,
	)
	if err != nil {
		return nil, persistErr(fmt.Sprintf("querying payments for contract %d", contractID), err)
	}
	return payments, nil
}

// PendingPaymentsDue returns pending payments whose due date falls within
// [today, today+days], joined through contract to tenant.
func (s *SQLiteStore) PendingPaymentsDue(ctx context.Context, today time.Time, days int) ([]model.DuePayment, error) {
	lo, hi := dateWindow(today, days)

	var payments []model.DuePayment
	err := s.db.SelectContext(ctx, &payments, `
		SELECT p.id, p.due_date, p.amount, t.full_name, c.contract_number
		FROM payments p
		JOIN contracts c ON p.contract_id = c.id
		JOIN tenants t ON c.tenant_id = t.id
		WHERE p.status = ?
		  AND p.due_date >= ? AND p.due_date < ?
		ORDER BY p.id`,
		model.PaymentStatusPending, lo, hi,
	)
	if err != nil {
		return nil, persistErr("querying pending payments due", err)
	}
	return payments, nil
}
