package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rhaddad/propman/internal/model"
)

// newContractNumber generates an opaque contract reference.
func newContractNumber() string {
	return "CT-" + strings.ToUpper(uuid.New().String()[:8])
}

// CreateContract inserts a new contract and returns its assigned id.
// A contract number is generated when none is provided.
func (s *SQLiteStore) CreateContract(ctx context.Context, c model.Contract) (int64, error) {
	if c.ContractNumber == "" {
		c.ContractNumber = newContractNumber()
	}
	if c.Status == "" {
		c.Status = model.ContractStatusActive
	}
	if c.NumberOfChecks <= 0 {
		c.NumberOfChecks = 1
	}
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO contracts (
			tenant_id, bed_id, contract_number, start_date, end_date,
			rent_amount, security_deposit, payment_mode, number_of_checks,
			status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.TenantID, c.BedID, c.ContractNumber, c.StartDate, c.EndDate,
		c.RentAmount, c.SecurityDeposit, c.PaymentMode, c.NumberOfChecks,
		c.Status, now, now,
	)
	if err != nil {
		return 0, persistErr("creating contract", err)
	}
	return result.LastInsertId()
}

// UpdateContractStatus transitions a contract to the given status.
func (s *SQLiteStore) UpdateContractStatus(ctx context.Context, id int64, status string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE contracts SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("updating contract %d status", id), err)
	}
	return nil
}

// GetContractByID retrieves a single contract by id.
func (s *SQLiteStore) GetContractByID(ctx context.Context, id int64) (*model.Contract, error) {
	var c model.Contract
	err := s.db.GetContext(ctx, &c, "SELECT * FROM contracts WHERE id = ?", id)
	if err != nil {
		return nil, persistErr(fmt.Sprintf("getting contract %d", id), err)
	}
	return &c, nil
}

// GetContractsForTenant retrieves a tenant's contracts, newest first.
func (s *SQLiteStore) GetContractsForTenant(ctx context.Context, tenantID int64) ([]model.Contract, error) {
	var contracts []model.Contract
	err := s.db.SelectContext(ctx, &contracts,
		"SELECT * FROM contracts WHERE tenant_id = ? ORDER BY start_date DESC", tenantID,
	)
	if err != nil {
		return nil, persistErr(fmt.Sprintf("querying contracts for tenant %d", tenantID), err)
	}
	return contracts, nil
}

// ExpiringContracts returns active contracts whose end date falls within
// [today, today+days], joined to their tenants. The window is wider than
// the alert threshold applied by the scanner; rows between the two are
// fetched and skipped.
func (s *SQLiteStore) ExpiringContracts(ctx context.Context, today time.Time, days int) ([]model.ExpiringContract, error) {
	lo, hi := dateWindow(today, days)

	var contracts []model.ExpiringContract
	err := s.db.SelectContext(ctx, &contracts, `
		SELECT c.id, c.contract_number, c.end_date, t.full_name, t.mobile_number
		FROM contracts c
		JOIN tenants t ON c.tenant_id = t.id
		WHERE c.status = ?
		  AND c.end_date >= ? AND c.end_date < ?
		ORDER BY c.id`,
		model.ContractStatusActive, lo, hi,
	)
	if err != nil {
		return nil, persistErr("querying expiring contracts", err)
	}
	return contracts, nil
}
