package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User        UserRepository
	Flat        FlatRepository
	Tenancy     TenancyRepository
	Resident    ResidentRepository
	Maintenance MaintenanceRepository
	Vendor      VendorRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Flat:        NewFlatRepository(db),
		Tenancy:     NewTenancyRepository(db),
		Resident:    NewResidentRepository(db),
		Maintenance: NewMaintenanceRepository(db),
		Vendor:      NewVendorRepository(db),
	}
}

// ErrDuplicate is returned when an insert or update violates a uniqueness
// constraint. Services translate it into their conflict taxonomy.
var ErrDuplicate = errors.New("duplicate record")

// isUniqueViolation detects a unique-constraint violation from the driver.
// Postgres reports SQLSTATE 23505; gorm's translated error covers other
// dialects (sqlite in tests).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// ListQuery represents common offset/limit query parameters
type ListQuery struct {
	Skip  int
	Limit int
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Skip:  0,
		Limit: 100,
	}
}

// orDefault returns the query, or fresh defaults when nil
func (q *ListQuery) orDefault() *ListQuery {
	if q == nil {
		return NewListQuery()
	}
	return q
}
