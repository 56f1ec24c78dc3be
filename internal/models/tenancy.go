package models

import (
	"time"
)

// TenancyRecord represents a time-boxed occupancy agreement for a flat.
// At most one record per flat is current at any moment; the flip to a new
// current record happens inside a single transaction in the repository,
// and the partial unique index on (flat_id) WHERE is_current rejects any
// racer that slips a second current record past the flip.
type TenancyRecord struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	FlatID             uint       `gorm:"not null;index;index:idx_one_current_tenancy,unique,where:is_current" json:"flat_id"`
	TenantName         string     `gorm:"not null" json:"tenant_name"`
	TenantEmail        string     `gorm:"not null" json:"tenant_email"`
	TenantPhone        string     `gorm:"not null" json:"tenant_phone"`
	OccupantCount      int        `gorm:"not null" json:"occupant_count"`
	TenantIDProofs     *string    `gorm:"type:text" json:"tenant_id_proofs"` // JSON blob of ID details
	AgreementDocument  *string    `json:"agreement_document"`                // path to agreement file
	AgreementDuration  int        `json:"agreement_duration"`                // in months
	AgreementStartDate time.Time  `gorm:"not null;index" json:"agreement_start_date"`
	AgreementEndDate   *time.Time `json:"agreement_end_date"`
	IsCurrent          bool       `gorm:"index" json:"is_current"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Associations
	Flat Flat `gorm:"foreignKey:FlatID" json:"-"`
}

// TableName specifies the table name for TenancyRecord
func (TenancyRecord) TableName() string {
	return "tenancy_records"
}

// TenancyResponse is the JSON response format for tenancy records
type TenancyResponse struct {
	ID                 uint       `json:"id"`
	FlatID             uint       `json:"flat_id"`
	TenantName         string     `json:"tenant_name"`
	TenantEmail        string     `json:"tenant_email"`
	TenantPhone        string     `json:"tenant_phone"`
	OccupantCount      int        `json:"occupant_count"`
	TenantIDProofs     *string    `json:"tenant_id_proofs"`
	AgreementDocument  *string    `json:"agreement_document"`
	AgreementDuration  int        `json:"agreement_duration"`
	AgreementStartDate time.Time  `json:"agreement_start_date"`
	AgreementEndDate   *time.Time `json:"agreement_end_date"`
	IsCurrent          bool       `json:"is_current"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ToResponse converts TenancyRecord to TenancyResponse
func (t *TenancyRecord) ToResponse() TenancyResponse {
	return TenancyResponse{
		ID:                 t.ID,
		FlatID:             t.FlatID,
		TenantName:         t.TenantName,
		TenantEmail:        t.TenantEmail,
		TenantPhone:        t.TenantPhone,
		OccupantCount:      t.OccupantCount,
		TenantIDProofs:     t.TenantIDProofs,
		AgreementDocument:  t.AgreementDocument,
		AgreementDuration:  t.AgreementDuration,
		AgreementStartDate: t.AgreementStartDate,
		AgreementEndDate:   t.AgreementEndDate,
		IsCurrent:          t.IsCurrent,
		CreatedAt:          t.CreatedAt,
	}
}
