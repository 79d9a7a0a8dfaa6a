package model

import "time"

// Property represents a managed building or villa.
type Property struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Address      string    `db:"address"`
	PropertyType string    `db:"property_type"`
	TotalRooms   int       `db:"total_rooms"`
	TotalBeds    int       `db:"total_beds"`
	Description  *string   `db:"description"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
