package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/societyhub-api/internal/models"
)

func record(status string) *models.MaintenanceRecord {
	return &models.MaintenanceRecord{PaymentStatus: status}
}

func TestPaymentTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"pending to paid", models.PaymentStatusPending, models.PaymentStatusPaid, false},
		{"overdue to paid", models.PaymentStatusOverdue, models.PaymentStatusPaid, false},
		{"pending to overdue", models.PaymentStatusPending, models.PaymentStatusOverdue, false},
		{"paid to pending", models.PaymentStatusPaid, models.PaymentStatusPending, false},
		{"overdue to pending", models.PaymentStatusOverdue, models.PaymentStatusPending, false},
		{"paid to overdue", models.PaymentStatusPaid, models.PaymentStatusOverdue, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record(tt.from)
			sm := NewMaintenanceFSM(r)

			err := sm.TransitionTo(context.Background(), tt.to)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.from, r.PaymentStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, r.PaymentStatus)
			assert.Equal(t, tt.to, sm.Current())
		})
	}
}

func TestTransitionToSameStatusIsNoop(t *testing.T) {
	r := record(models.PaymentStatusPaid)
	sm := NewMaintenanceFSM(r)

	require.NoError(t, sm.TransitionTo(context.Background(), models.PaymentStatusPaid))
	assert.Equal(t, models.PaymentStatusPaid, r.PaymentStatus)
}

func TestTransitionToUnknownStatus(t *testing.T) {
	sm := NewMaintenanceFSM(record(models.PaymentStatusPending))
	assert.Error(t, sm.TransitionTo(context.Background(), "cancelled"))
}
