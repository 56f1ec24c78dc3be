package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/societyhub-api/internal/models"
)

func newTenancyFixture(t *testing.T) (*TenancyService, *mockTenancyRepo, *mockFlatRepo) {
	t.Helper()
	repo := newMockTenancyRepo()
	flats := newMockFlatRepo()
	svc := NewTenancyService(repo, flats, testAuditService(t))
	return svc, repo, flats
}

func tenancyFor(flatID uint, name string, start time.Time, months int) *models.TenancyRecord {
	return &models.TenancyRecord{
		FlatID:             flatID,
		TenantName:         name,
		TenantEmail:        "tenant@example.com",
		TenantPhone:        "9811111111",
		OccupantCount:      2,
		AgreementDuration:  months,
		AgreementStartDate: start,
	}
}

func TestRecordNewTenancyComputesEndDate(t *testing.T) {
	svc, _, flats := newTenancyFixture(t)
	flat := seedFlat(flats)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	record := tenancyFor(flat.ID, "Ravi Kumar", start, 11)
	require.NoError(t, svc.RecordNewTenancy(context.Background(), record, 1))

	require.NotNil(t, record.AgreementEndDate)
	assert.Equal(t, start.Add(11*30*24*time.Hour), *record.AgreementEndDate)
	assert.True(t, record.IsCurrent)
}

func TestRecordNewTenancySupersedesCurrent(t *testing.T) {
	svc, repo, flats := newTenancyFixture(t)
	flat := seedFlat(flats)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	first := tenancyFor(flat.ID, "First Tenant", start, 12)
	require.NoError(t, svc.RecordNewTenancy(context.Background(), first, 1))

	second := tenancyFor(flat.ID, "Second Tenant", start.AddDate(1, 0, 0), 12)
	require.NoError(t, svc.RecordNewTenancy(context.Background(), second, 1))

	current, err := svc.CurrentTenant(context.Background(), flat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second Tenant", current.TenantName)

	old, err := repo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, old.IsCurrent)

	history, err := svc.HistoryForFlat(context.Background(), flat.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRecordNewTenancyValidation(t *testing.T) {
	svc, _, flats := newTenancyFixture(t)
	flat := seedFlat(flats)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	bad := tenancyFor(flat.ID, "X", start, 0)
	assert.ErrorIs(t, svc.RecordNewTenancy(context.Background(), bad, 1), ErrValidation)

	bad = tenancyFor(flat.ID, "X", start, 12)
	bad.OccupantCount = 0
	assert.ErrorIs(t, svc.RecordNewTenancy(context.Background(), bad, 1), ErrValidation)

	bad = tenancyFor(999, "X", start, 12)
	assert.ErrorIs(t, svc.RecordNewTenancy(context.Background(), bad, 1), ErrValidation)
}

func TestCurrentTenantNotFound(t *testing.T) {
	svc, _, flats := newTenancyFixture(t)
	flat := seedFlat(flats)

	_, err := svc.CurrentTenant(context.Background(), flat.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTenancyUpdateCannotForgeSecondCurrent(t *testing.T) {
	svc, repo, flats := newTenancyFixture(t)
	flat := seedFlat(flats)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	first := tenancyFor(flat.ID, "First Tenant", start, 12)
	require.NoError(t, svc.RecordNewTenancy(context.Background(), first, 1))
	second := tenancyFor(flat.ID, "Second Tenant", start.AddDate(1, 0, 0), 12)
	require.NoError(t, svc.RecordNewTenancy(context.Background(), second, 1))

	// Updating the superseded record cannot flip is_current back.
	name := "Renamed Tenant"
	updated, err := svc.Update(context.Background(), first.ID, TenancyUpdate{TenantName: &name}, 1)
	require.NoError(t, err)
	assert.False(t, updated.IsCurrent)

	count := 0
	for _, r := range repo.records {
		if r.IsCurrent {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
