package model

import "time"

// Tenant represents a person renting a bed in one of the managed properties.
type Tenant struct {
	ID               int64      `db:"id"`
	FullName         string     `db:"full_name"`
	MobileNumber     string     `db:"mobile_number"`
	Email            *string    `db:"email"`
	Nationality      *string    `db:"nationality"`
	Profession       *string    `db:"profession"`
	Employer         *string    `db:"employer"`
	PassportNumber   *string    `db:"passport_number"`
	PassportExpiry   *time.Time `db:"passport_expiry"`
	VisaNumber       *string    `db:"visa_number"`
	VisaExpiry       *time.Time `db:"visa_expiry"`
	EmergencyContact *string    `db:"emergency_contact"`
	EmergencyPhone   *string    `db:"emergency_phone"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}
