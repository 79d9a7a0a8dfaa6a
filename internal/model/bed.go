package model

import "time"

// Bed represents a rentable bed within a room.
type Bed struct {
	ID          int64     `db:"id"`
	RoomID      int64     `db:"room_id"`
	BedNumber   string    `db:"bed_number"`
	BedType     string    `db:"bed_type"`
	Status      string    `db:"status"`
	MonthlyRent *float64  `db:"monthly_rent"`
	CreatedAt   time.Time `db:"created_at"`
}

// BedAssignment records which tenant occupies which bed over a period.
type BedAssignment struct {
	ID           int64      `db:"id"`
	BedID        int64      `db:"bed_id"`
	TenantID     int64      `db:"tenant_id"`
	AssignedDate time.Time  `db:"assigned_date"`
	EndDate      *time.Time `db:"end_date"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
}
