package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rhaddad/propman/internal/model"
)

// CreateProperty inserts a new property and returns its assigned id.
func (s *SQLiteStore) CreateProperty(ctx context.Context, p model.Property) (int64, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, fmt.Errorf("property name must not be empty")
	}
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO properties (
			name, address, property_type, total_rooms, total_beds,
			description, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Address, p.PropertyType, p.TotalRooms, p.TotalBeds,
		p.Description, now, now,
	)
	if err != nil {
		return 0, persistErr("creating property", err)
	}
	return result.LastInsertId()
}

// UpdateProperty updates an existing property by id.
func (s *SQLiteStore) UpdateProperty(ctx context.Context, p model.Property) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("property name must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE properties SET
			name = ?, address = ?, property_type = ?, total_rooms = ?,
			total_beds = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Address, p.PropertyType, p.TotalRooms,
		p.TotalBeds, p.Description, time.Now().UTC(),
		p.ID,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("updating property %d", p.ID), err)
	}
	return nil
}

// DeleteProperty removes a property by id. Rooms and beds under it are
// removed by the cascading foreign keys.
func (s *SQLiteStore) DeleteProperty(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return persistErr(fmt.Sprintf("deleting property %d", id), err)
	}
	return nil
}

// GetPropertyByID retrieves a single property by id.
func (s *SQLiteStore) GetPropertyByID(ctx context.Context, id int64) (*model.Property, error) {
	var p model.Property
	err := s.db.GetContext(ctx, &p, "SELECT * FROM properties WHERE id = ?", id)
	if err != nil {
		return nil, persistErr(fmt.Sprintf("getting property %d", id), err)
	}
	return &p, nil
}

// GetProperties retrieves all properties ordered by name.
func (s *SQLiteStore) GetProperties(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	err := s.db.SelectContext(ctx, &properties, "SELECT * FROM properties ORDER BY name")
	if err != nil {
		return nil, persistErr("querying properties", err)
	}
	return properties, nil
}
