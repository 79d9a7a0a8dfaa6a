package model

import "time"

// Room and bed status values.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

// Room represents a room within a property.
type Room struct {
	ID             int64     `db:"id"`
	PropertyID     int64     `db:"property_id"`
	RoomNumber     string    `db:"room_number"`
	RoomType       string    `db:"room_type"`
	FloorNumber    *int      `db:"floor_number"`
	OccupancyLimit int       `db:"occupancy_limit"`
	MonthlyRent    *float64  `db:"monthly_rent"`
	Status         string    `db:"status"`
	Description    *string   `db:"description"`
	CreatedAt      time.Time `db:"created_at"`
}
