package model

import "time"

// Payment status values.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// Payment represents a single rent or deposit payment under a contract.
type Payment struct {
	ID            int64      `db:"id"`
	ContractID    int64      `db:"contract_id"`
	PaymentType   string     `db:"payment_type"`
	Amount        float64    `db:"amount"`
	PaymentDate   time.Time  `db:"payment_date"`
	DueDate       *time.Time `db:"due_date"`
	PaymentMethod *string    `db:"payment_method"`
	ChequeNumber  *string    `db:"cheque_number"`
	ReceiptNumber *string    `db:"receipt_number"`
	Description   *string    `db:"description"`
	Status        string     `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
}

// DuePayment is a row from the payment-due scan: a pending payment
// approaching its due date, joined through contract to tenant.
type DuePayment struct {
	ID             int64     `db:"id"`
	DueDate        time.Time `db:"due_date"`
	Amount         float64   `db:"amount"`
	TenantName     string    `db:"full_name"`
	ContractNumber string    `db:"contract_number"`
}
