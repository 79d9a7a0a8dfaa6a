package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rhaddad/propman/internal/model"
)

// CreateBed inserts a new bed and returns its assigned id.
func (s *SQLiteStore) CreateBed(ctx context.Context, b model.Bed) (int64, error) {
	if b.Status == "" {
		b.Status = model.StatusAvailable
	}
	if b.BedType == "" {
		b.BedType = "single"
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO beds (room_id, bed_number, bed_type, status, monthly_rent, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.RoomID, b.BedNumber, b.BedType, b.Status, b.MonthlyRent, time.Now().UTC(),
	)
	if err != nil {
		return 0, persistErr("creating bed", err)
	}
	return result.LastInsertId()
}

// UpdateBedStatus transitions a bed to the given status.
func (s *SQLiteStore) UpdateBedStatus(ctx context.Context, id int64, status string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE beds SET status = ? WHERE id = ?", status, id,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("updating bed %d status", id), err)
	}
	return nil
}

// DeleteBed removes a bed by id.
func (s *SQLiteStore) DeleteBed(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM beds WHERE id = ?", id)
	if err != nil {
		return persistErr(fmt.Sprintf("deleting bed %d", id), err)
	}
	return nil
}

// GetBedsForRoom retrieves a room's beds ordered by bed number.
func (s *SQLiteStore) GetBedsForRoom(ctx context.Context, roomID int64) ([]model.Bed, error) {
	var beds []model.Bed
	err := s.db.SelectContext(ctx, &beds,
		"SELECT * FROM beds WHERE room_id = ? ORDER BY bed_number", roomID,
	)
	if err != nil {
		return nil, persistErr(fmt.Sprintf("querying beds for room %d", roomID), err)
	}
	return beds, nil
}

// AssignBed records a tenant's occupancy of a bed and marks the bed
// occupied.
func (s *SQLiteStore) AssignBed(ctx context.Context, a model.BedAssignment) (int64, error) {
	if a.Status == "" {
		a.Status = "active"
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO bed_assignments (bed_id, tenant_id, assigned_date, end_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.BedID, a.TenantID, a.AssignedDate, a.EndDate, a.Status, time.Now().UTC(),
	)
	if err != nil {
		return 0, persistErr("creating bed assignment", err)
	}

	if err := s.UpdateBedStatus(ctx, a.BedID, model.StatusOccupied); err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// EndBedAssignment closes an assignment and frees the bed.
func (s *SQLiteStore) EndBedAssignment(ctx context.Context, id int64, endDate time.Time) error {
	var bedID int64
	err := s.db.GetContext(ctx, &bedID,
		"SELECT bed_id FROM bed_assignments WHERE id = ?", id,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("getting bed assignment %d", id), err)
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE bed_assignments SET end_date = ?, status = 'ended' WHERE id = ?",
		endDate, id,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("ending bed assignment %d", id), err)
	}

	return s.UpdateBedStatus(ctx, bedID, model.StatusAvailable)
}
