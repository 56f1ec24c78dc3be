package models

import (
	"time"
)

// Flat represents a billable unit in the society
type Flat struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FlatNumber string    `gorm:"uniqueIndex;not null" json:"flat_number"`
	OwnerID    uint      `gorm:"not null;index" json:"owner_id"`
	OwnerName  string    `gorm:"not null" json:"owner_name"`
	OwnerEmail string    `gorm:"not null" json:"owner_email"`
	OwnerPhone string    `gorm:"not null" json:"owner_phone"`
	SquareSize float64   `gorm:"not null" json:"square_size"`
	FlatType   string    `gorm:"not null;default:resident" json:"flat_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Associations
	Owner              User                `gorm:"foreignKey:OwnerID" json:"-"`
	TenancyRecords     []TenancyRecord     `gorm:"foreignKey:FlatID" json:"tenancy_records,omitempty"`
	Residents          []Resident          `gorm:"foreignKey:FlatID" json:"residents,omitempty"`
	MaintenanceRecords []MaintenanceRecord `gorm:"foreignKey:FlatID" json:"maintenance_records,omitempty"`
}

// TableName specifies the table name for Flat
func (Flat) TableName() string {
	return "flats"
}

// Flat type constants
const (
	FlatTypeResident = "resident"
	FlatTypeTenant   = "tenant"
)

// ValidFlatType reports whether t is a known flat type
func ValidFlatType(t string) bool {
	return t == FlatTypeResident || t == FlatTypeTenant
}

// FlatResponse is the JSON response format for flats
type FlatResponse struct {
	ID         uint      `json:"id"`
	FlatNumber string    `json:"flat_number"`
	OwnerID    uint      `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email"`
	OwnerPhone string    `json:"owner_phone"`
	SquareSize float64   `json:"square_size"`
	FlatType   string    `json:"flat_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToResponse converts Flat to FlatResponse
func (f *Flat) ToResponse() FlatResponse {
	return FlatResponse{
		ID:         f.ID,
		FlatNumber: f.FlatNumber,
		OwnerID:    f.OwnerID,
		OwnerName:  f.OwnerName,
		OwnerEmail: f.OwnerEmail,
		OwnerPhone: f.OwnerPhone,
		SquareSize: f.SquareSize,
		FlatType:   f.FlatType,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
