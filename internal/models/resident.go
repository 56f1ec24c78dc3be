package models

import (
	"time"
)

// Resident is a person occupying a flat (owner's family, staff, etc.).
// Residents have no lifecycle coupling to tenancy records.
type Resident struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FlatID       uint      `gorm:"not null;index" json:"flat_id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Relationship *string   `json:"relationship"` // e.g. Family, Self, Staff
	Age          *int      `json:"age"`
	IDProof      *string   `json:"id_proof"` // path to ID document
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Associations
	Flat Flat `gorm:"foreignKey:FlatID" json:"-"`
}

// TableName specifies the table name for Resident
func (Resident) TableName() string {
	return "residents"
}

// ResidentResponse is the JSON response format for residents
type ResidentResponse struct {
	ID           uint      `json:"id"`
	FlatID       uint      `json:"flat_id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Relationship *string   `json:"relationship"`
	Age          *int      `json:"age"`
	IDProof      *string   `json:"id_proof"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToResponse converts Resident to ResidentResponse
func (r *Resident) ToResponse() ResidentResponse {
	return ResidentResponse{
		ID:           r.ID,
		FlatID:       r.FlatID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Relationship: r.Relationship,
		Age:          r.Age,
		IDProof:      r.IDProof,
		CreatedAt:    r.CreatedAt,
	}
}
