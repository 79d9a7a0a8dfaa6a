package model

import "time"

// Maintenance request status values.
const (
	MaintenanceStatusNew        = "new"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
)

// Maintenance request priority values.
const (
	MaintenancePriorityLow    = "low"
	MaintenancePriorityMedium = "medium"
	MaintenancePriorityHigh   = "high"
)

// MaintenanceRequest represents a repair or service request raised
// by a tenant for a room.
type MaintenanceRequest struct {
	ID            int64      `db:"id"`
	TenantID      int64      `db:"tenant_id"`
	RoomID        int64      `db:"room_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	Priority      string     `db:"priority"`
	Status        string     `db:"status"`
	AssignedTo    *string    `db:"assigned_to"`
	CompletedDate *time.Time `db:"completed_date"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}
