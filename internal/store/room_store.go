package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rhaddad/propman/internal/model"
)

// CreateRoom inserts a new room and returns its assigned id.
func (s *SQLiteStore) CreateRoom(ctx context.Context, r model.Room) (int64, error) {
	if r.Status == "" {
		r.Status = model.StatusAvailable
	}
	if r.OccupancyLimit <= 0 {
		r.OccupancyLimit = 1
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO rooms (
			property_id, room_number, room_type, floor_number,
			occupancy_limit, monthly_rent, status, description, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.PropertyID, r.RoomNumber, r.RoomType, r.FloorNumber,
		r.OccupancyLimit, r.MonthlyRent, r.Status, r.Description, time.Now().UTC(),
	)
	if err != nil {
		return 0, persistErr("creating room", err)
	}
	return result.LastInsertId()
}

// UpdateRoom updates an existing room by id.
func (s *SQLiteStore) UpdateRoom(ctx context.Context, r model.Room) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE rooms SET
			room_number = ?, room_type = ?, floor_number = ?,
			occupancy_limit = ?, monthly_rent = ?, status = ?, description = ?
		WHERE id = ?`,
		r.RoomNumber, r.RoomType, r.FloorNumber,
		r.OccupancyLimit, r.MonthlyRent, r.Status, r.Description,
		r.ID,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("updating room %d", r.ID), err)
	}
	return nil
}

// DeleteRoom removes a room by id.
func (s *SQLiteStore) DeleteRoom(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	if err != nil {
		return persistErr(fmt.Sprintf("deleting room %d", id), err)
	}
	return nil
}

// GetRoomsForProperty retrieves a property's rooms ordered by room number.
func (s *SQLiteStore) GetRoomsForProperty(ctx context.Context, propertyID int64) ([]model.Room, error) {
	var rooms []model.Room
	err := s.db.SelectContext(ctx, &rooms,
		"SELECT * FROM rooms WHERE property_id = ? ORDER BY room_number", propertyID,
	)
	if err != nil {
		return nil, persistErr(fmt.Sprintf("querying rooms for property %d", propertyID), err)
	}
	return rooms, nil
}
