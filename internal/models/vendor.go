package models

import (
	"time"
)

// VendorAccount tracks engagement and running balance for an external
// service provider (plumber, security agency, etc.).
type VendorAccount struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Work            string    `gorm:"not null" json:"work"`
	Phone           string    `gorm:"not null" json:"phone"`
	Email           *string   `json:"email"`
	BusinessDetails *string   `gorm:"type:text" json:"business_details"`
	Status          string    `gorm:"default:active;index" json:"status"`
	TotalCharges    float64   `gorm:"type:decimal(10,2);default:0" json:"total_charges"`
	AmountPaid      float64   `gorm:"type:decimal(10,2);default:0" json:"amount_paid"`
	AmountRemaining float64   `gorm:"type:decimal(10,2);default:0" json:"amount_remaining"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for VendorAccount
func (VendorAccount) TableName() string {
	return "vendors"
}

// Vendor status constants
const (
	VendorStatusActive    = "active"
	VendorStatusCompleted = "completed"
	VendorStatusOnHold    = "on_hold"
)

// ValidVendorStatus reports whether s is a known vendor status
func ValidVendorStatus(s string) bool {
	switch s {
	case VendorStatusActive, VendorStatusCompleted, VendorStatusOnHold:
		return true
	}
	return false
}

// RecomputeRemaining keeps amount_remaining derived from the other two
// balance fields. It must be called on every mutation that touches either.
func (v *VendorAccount) RecomputeRemaining() {
	v.AmountRemaining = v.TotalCharges - v.AmountPaid
}

// VendorResponse is the JSON response format for vendor accounts
type VendorResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Work            string    `json:"work"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email"`
	BusinessDetails *string   `json:"business_details"`
	Status          string    `json:"status"`
	TotalCharges    float64   `json:"total_charges"`
	AmountPaid      float64   `json:"amount_paid"`
	AmountRemaining float64   `json:"amount_remaining"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToResponse converts VendorAccount to VendorResponse
func (v *VendorAccount) ToResponse() VendorResponse {
	return VendorResponse{
		ID:              v.ID,
		Name:            v.Name,
		Work:            v.Work,
		Phone:           v.Phone,
		Email:           v.Email,
		BusinessDetails: v.BusinessDetails,
		Status:          v.Status,
		TotalCharges:    v.TotalCharges,
		AmountPaid:      v.AmountPaid,
		AmountRemaining: v.AmountRemaining,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
