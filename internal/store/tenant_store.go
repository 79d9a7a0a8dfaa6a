package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rhaddad/propman/internal/model"
)

// CreateTenant inserts a new tenant and returns its assigned id.
func (s *SQLiteStore) CreateTenant(ctx context.Context, t model.Tenant) (int64, error) {
	if strings.TrimSpace(t.FullName) == "" {
		return 0, fmt.Errorf("tenant name must not be empty")
	}
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO tenants (
			full_name, mobile_number, email, nationality, profession, employer,
			passport_number, passport_expiry, visa_number, visa_expiry,
			emergency_contact, emergency_phone, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.FullName, t.MobileNumber, t.Email, t.Nationality, t.Profession, t.Employer,
		t.PassportNumber, t.PassportExpiry, t.VisaNumber, t.VisaExpiry,
		t.EmergencyContact, t.EmergencyPhone, now, now,
	)
	if err != nil {
		return 0, persistErr("creating tenant", err)
	}
	return result.LastInsertId()
}

// UpdateTenant updates an existing tenant by id.
func (s *SQLiteStore) UpdateTenant(ctx context.Context, t model.Tenant) error {
	if strings.TrimSpace(t.FullName) == "" {
		return fmt.Errorf("tenant name must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE tenants SET
			full_name = ?, mobile_number = ?, email = ?, nationality = ?,
			profession = ?, employer = ?, passport_number = ?, passport_expiry = ?,
			visa_number = ?, visa_expiry = ?, emergency_contact = ?,
			emergency_phone = ?, updated_at = ?
		WHERE id = ?`,
		t.FullName, t.MobileNumber, t.Email, t.Nationality,
		t.Profession, t.Employer, t.PassportNumber, t.PassportExpiry,
		t.VisaNumber, t.VisaExpiry, t.EmergencyContact,
		t.EmergencyPhone, time.Now().UTC(),
		t.ID,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("updating tenant %d", t.ID), err)
	}
	return nil
}

// DeleteTenant removes a tenant by id.
func (s *SQLiteStore) DeleteTenant(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tenants WHERE id = ?", id)
	if err != nil {
		return persistErr(fmt.Sprintf("deleting tenant %d", id), err)
	}
	return nil
}

// GetTenantByID retrieves a single tenant by id.
func (s *SQLiteStore) GetTenantByID(ctx context.Context, id int64) (*model.Tenant, error) {
	var t model.Tenant
	err := s.db.GetContext(ctx, &t, "SELECT * FROM tenants WHERE id = ?", id)
	if err != nil {
		return nil, persistErr(fmt.Sprintf("getting tenant %d", id), err)
	}
	return &t, nil
}

// GetTenants retrieves all tenants ordered by name.
func (s *SQLiteStore) GetTenants(ctx context.Context) ([]model.Tenant, error) {
	var tenants []model.Tenant
	err := s.db.SelectContext(ctx, &tenants, "SELECT * FROM tenants ORDER BY full_name")
	if err != nil {
		return nil, persistErr("querying tenants", err)
	}
	return tenants, nil
}

// TenantsWithExpiringDocuments returns tenants whose passport or visa
// expiry falls within [today, today+days].
func (s *SQLiteStore) TenantsWithExpiringDocuments(ctx context.Context, today time.Time, days int) ([]model.Tenant, error) {
	lo, hi := dateWindow(today, days)

	var tenants []model.Tenant
	err := s.db.SelectContext(ctx, &tenants, `
		SELECT * FROM tenants
		WHERE (passport_expiry >= ? AND passport_expiry < ?)
		   OR (visa_expiry >= ? AND visa_expiry < ?)
		ORDER BY id`,
		lo, hi, lo, hi,
	)
	if err != nil {
		return nil, persistErr("querying tenants with expiring documents", err)
	}
	return tenants, nil
}
