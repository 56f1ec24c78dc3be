package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// testAuditService backs the audit trail with an in-memory database so
// service tests exercise the real logging path.
func testAuditService(t *testing.T) *AuditService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	return NewAuditService(db)
}

type mockUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

type mockFlatRepo struct {
	flats  map[uint]*models.Flat
	nextID uint
}

func newMockFlatRepo() *mockFlatRepo {
	return &mockFlatRepo{flats: map[uint]*models.Flat{}, nextID: 1}
}

func (m *mockFlatRepo) add(flat *models.Flat) *models.Flat {
	flat.ID = m.nextID
	m.nextID++
	m.flats[flat.ID] = flat
	return flat
}

func (m *mockFlatRepo) FindByID(ctx context.Context, id uint) (*models.Flat, error) {
	if f, ok := m.flats[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFlatRepo) FindByNumber(ctx context.Context, flatNumber string) (*models.Flat, error) {
	for _, f := range m.flats {
		if f.FlatNumber == flatNumber {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFlatRepo) Create(ctx context.Context, flat *models.Flat) error {
	for _, f := range m.flats {
		if f.FlatNumber == flat.FlatNumber {
			return repository.ErrDuplicate
		}
	}
	m.add(flat)
	return nil
}

func (m *mockFlatRepo) Update(ctx context.Context, flat *models.Flat) error {
	m.flats[flat.ID] = flat
	return nil
}

func (m *mockFlatRepo) Delete(ctx context.Context, id uint) error {
	delete(m.flats, id)
	return nil
}

func (m *mockFlatRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.Flat, int64, error) {
	var out []models.Flat
	for _, f := range m.flats {
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

type mockTenancyRepo struct {
	records map[uint]*models.TenancyRecord
	nextID  uint
}

func newMockTenancyRepo() *mockTenancyRepo {
	return &mockTenancyRepo{records: map[uint]*models.TenancyRecord{}, nextID: 1}
}

func (m *mockTenancyRepo) FindByID(ctx context.Context, id uint) (*models.TenancyRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTenancyRepo) CurrentForFlat(ctx context.Context, flatID uint) (*models.TenancyRecord, error) {
	for _, r := range m.records {
		if r.FlatID == flatID && r.IsCurrent {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTenancyRepo) HistoryForFlat(ctx context.Context, flatID uint) ([]models.TenancyRecord, error) {
	var out []models.TenancyRecord
	for _, r := range m.records {
		if r.FlatID == flatID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockTenancyRepo) CreateCurrent(ctx context.Context, record *models.TenancyRecord) error {
	for _, r := range m.records {
		if r.FlatID == record.FlatID {
			r.IsCurrent = false
		}
	}
	record.IsCurrent = true
	record.ID = m.nextID
	m.nextID++
	m.records[record.ID] = record
	return nil
}

func (m *mockTenancyRepo) Update(ctx context.Context, record *models.TenancyRecord) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockTenancyRepo) Delete(ctx context.Context, id uint) error {
	delete(m.records, id)
	return nil
}

type mockMaintenanceRepo struct {
	records map[uint]*models.MaintenanceRecord
	nextID  uint
}

func newMockMaintenanceRepo() *mockMaintenanceRepo {
	return &mockMaintenanceRepo{records: map[uint]*models.MaintenanceRecord{}, nextID: 1}
}

func (m *mockMaintenanceRepo) FindByID(ctx context.Context, id uint) (*models.MaintenanceRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMaintenanceRepo) FindByFlat(ctx context.Context, flatID uint, query *repository.ListQuery) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	for _, r := range m.records {
		if r.FlatID == flatID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockMaintenanceRepo) FindByMonthYear(ctx context.Context, month, year int) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	for _, r := range m.records {
		if r.Month == month && r.Year == year {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockMaintenanceRepo) CreateInvoice(ctx context.Context, record *models.MaintenanceRecord) error {
	for _, r := range m.records {
		if r.FlatID == record.FlatID && r.Month == record.Month && r.Year == record.Year {
			return repository.ErrDuplicate
		}
	}
	record.ID = m.nextID
	m.nextID++
	m.records[record.ID] = record
	return nil
}

func (m *mockMaintenanceRepo) Update(ctx context.Context, record *models.MaintenanceRecord) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockMaintenanceRepo) FindOverduePending(ctx context.Context, asOf time.Time) ([]models.MaintenanceRecord, error) {
	var out []models.MaintenanceRecord
	for _, r := range m.records {
		if r.IsOverdue(asOf) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockMaintenanceRepo) ApplyOverdueInterest(ctx context.Context, asOf time.Time, rate float64) (int64, error) {
	var affected int64
	for _, r := range m.records {
		if r.IsOverdue(asOf) {
			r.Interest = r.BaseAmount * rate
			r.TotalAmount = r.BaseAmount * (1 + rate)
			r.PaymentStatus = models.PaymentStatusOverdue
			affected++
		}
	}
	return affected, nil
}

type mockVendorRepo struct {
	vendors map[uint]*models.VendorAccount
	nextID  uint
}

func newMockVendorRepo() *mockVendorRepo {
	return &mockVendorRepo{vendors: map[uint]*models.VendorAccount{}, nextID: 1}
}

func (m *mockVendorRepo) FindByID(ctx context.Context, id uint) (*models.VendorAccount, error) {
	if v, ok := m.vendors[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVendorRepo) FindByStatus(ctx context.Context, status string) ([]models.VendorAccount, error) {
	var out []models.VendorAccount
	for _, v := range m.vendors {
		if v.Status == status {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *models.VendorAccount) error {
	vendor.ID = m.nextID
	m.nextID++
	m.vendors[vendor.ID] = vendor
	return nil
}

func (m *mockVendorRepo) Update(ctx context.Context, vendor *models.VendorAccount) error {
	m.vendors[vendor.ID] = vendor
	return nil
}

func (m *mockVendorRepo) Delete(ctx context.Context, id uint) error {
	delete(m.vendors, id)
	return nil
}

func (m *mockVendorRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.VendorAccount, int64, error) {
	var out []models.VendorAccount
	for _, v := range m.vendors {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}
