package model

import "time"

// AuditLog records a single data-changing action for later review.
type AuditLog struct {
	ID        int64     `db:"id"`
	UserID    *int64    `db:"user_id"`
	Action    string    `db:"action"`
	TableName string    `db:"table_name"`
	RecordID  *int64    `db:"record_id"`
	OldValues *string   `db:"old_values"`
	NewValues *string   `db:"new_values"`
	CreatedAt time.Time `db:"created_at"`
}
