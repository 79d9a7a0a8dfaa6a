package model

import "time"

// Contract status values.
const (
	ContractStatusActive     = "active"
	ContractStatusExpired    = "expired"
	ContractStatusTerminated = "terminated"
)

// Contract represents a lease contract binding a tenant to a bed.
type Contract struct {
	ID              int64     `db:"id"`
	TenantID        int64     `db:"tenant_id"`
	BedID           int64     `db:"bed_id"`
	ContractNumber  string    `db:"contract_number"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	RentAmount      float64   `db:"rent_amount"`
	SecurityDeposit float64   `db:"security_deposit"`
	PaymentMode     string    `db:"payment_mode"`
	NumberOfChecks  int       `db:"number_of_checks"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// ExpiringContract is a row from the contract-expiry scan: an active
// contract approaching its end date, joined to its tenant.
type ExpiringContract struct {
	ID             int64     `db:"id"`
	ContractNumber string    `db:"contract_number"`
	EndDate        time.Time `db:"end_date"`
	TenantName     string    `db:"full_name"`
	MobileNumber   string    `db:"mobile_number"`
}
