package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/societyhub/societyhub-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Flat{},
		&models.TenancyRecord{},
		&models.Resident{},
		&models.MaintenanceRecord{},
		&models.VendorAccount{},
	))
	return db
}

func seedTestFlat(t *testing.T, db *gorm.DB, number string) *models.Flat {
	t.Helper()
	owner := &models.User{
		Username:       "owner_" + number,
		Email:          "owner_" + number + "@example.com",
		HashedPassword: "x",
		FullName:       "Owner " + number,
		Role:           models.RoleFlatOwner,
		IsActive:       true,
	}
	require.NoError(t, db.Create(owner).Error)

	flat := &models.Flat{
		FlatNumber: number,
		OwnerID:    owner.ID,
		OwnerName:  owner.FullName,
		OwnerEmail: owner.Email,
		OwnerPhone: "9800000000",
		FlatType:   models.FlatTypeResident,
	}
	require.NoError(t, db.Create(flat).Error)
	return flat
}
