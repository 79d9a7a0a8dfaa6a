package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rhaddad/propman/internal/model"
)

// CreateMaintenanceRequest inserts a new maintenance request and returns
// its assigned id.
func (s *SQLiteStore) CreateMaintenanceRequest(ctx context.Context, r model.MaintenanceRequest) (int64, error) {
	if strings.TrimSpace(r.Title) == "" {
		return 0, fmt.Errorf("maintenance request title must not be empty")
	}
	if r.Status == "" {
		r.Status = model.MaintenanceStatusNew
	}
	if r.Priority == "" {
		r.Priority = model.MaintenancePriorityMedium
	}
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO maintenance_requests (
			tenant_id, room_id, title, description, priority, status,
			assigned_to, completed_date, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.TenantID, r.RoomID, r.Title, r.Description, r.Priority, r.Status,
		r.AssignedTo, r.CompletedDate, now, now,
	)
	if err != nil {
		return 0, persistErr("creating maintenance request", err)
	}
	return result.LastInsertId()
}

// UpdateMaintenanceStatus transitions a request to the given status,
// stamping the completion time when it completes.
func (s *SQLiteStore) UpdateMaintenanceStatus(ctx context.Context, id int64, status string) error {
	now := time.Now().UTC()

	var completed *time.Time
	if status == model.MaintenanceStatusCompleted {
		completed = &now
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE maintenance_requests SET status = ?, completed_date = ?, updated_at = ?
		WHERE id = ?`,
		status, completed, now, id,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("updating maintenance request %d status", id), err)
	}
	return nil
}

// GetMaintenanceRequests retrieves requests matching the filter, newest
// first.
func (s *SQLiteStore) GetMaintenanceRequests(ctx context.Context, filter MaintenanceFilter) ([]model.MaintenanceRequest, error) {
	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, *filter.Priority)
	}
	if filter.RoomID != nil {
		conditions = append(conditions, "room_id = ?")
		args = append(args, *filter.RoomID)
	}

	query := "SELECT * FROM maintenance_requests"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	var requests []model.MaintenanceRequest
	err := s.db.SelectContext(ctx, &requests, query, args...)
	if err != nil {
		return nil, persistErr("querying maintenance requests", err)
	}
	return requests, nil
}
