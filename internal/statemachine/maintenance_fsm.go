package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/societyhub/societyhub-api/internal/models"
)

// MaintenanceFSM wraps a maintenance record with its payment state machine
type MaintenanceFSM struct {
	record *models.MaintenanceRecord
	fsm    *fsm.FSM
}

// NewMaintenanceFSM creates the payment-status state machine for a record
func NewMaintenanceFSM(record *models.MaintenanceRecord) *MaintenanceFSM {
	m := &MaintenanceFSM{
		record: record,
	}

	m.fsm = fsm.NewFSM(
		record.PaymentStatus,
		fsm.Events{
			// pending/overdue → paid
			{Name: "pay", Src: []string{models.PaymentStatusPending, models.PaymentStatusOverdue}, Dst: models.PaymentStatusPaid},

			// pending → overdue (interest sweep)
			{Name: "mark_overdue", Src: []string{models.PaymentStatusPending}, Dst: models.PaymentStatusOverdue},

			// paid/overdue → pending (accounts correction)
			{Name: "reset", Src: []string{models.PaymentStatusPaid, models.PaymentStatusOverdue}, Dst: models.PaymentStatusPending},
		},
		fsm.Callbacks{},
	)

	return m
}

// Pay transitions the record to paid
func (m *MaintenanceFSM) Pay(ctx context.Context) error {
	if err := m.fsm.Event(ctx, "pay"); err != nil {
		return fmt.Errorf("record cannot be marked paid in current state %s: %w", m.record.PaymentStatus, err)
	}
	m.record.PaymentStatus = m.fsm.Current()
	return nil
}

// MarkOverdue transitions the record to overdue
func (m *MaintenanceFSM) MarkOverdue(ctx context.Context) error {
	if err := m.fsm.Event(ctx, "mark_overdue"); err != nil {
		return fmt.Errorf("record cannot be marked overdue in current state %s: %w", m.record.PaymentStatus, err)
	}
	m.record.PaymentStatus = m.fsm.Current()
	return nil
}

// Reset transitions the record back to pending
func (m *MaintenanceFSM) Reset(ctx context.Context) error {
	if err := m.fsm.Event(ctx, "reset"); err != nil {
		return fmt.Errorf("record cannot be reset in current state %s: %w", m.record.PaymentStatus, err)
	}
	m.record.PaymentStatus = m.fsm.Current()
	return nil
}

// TransitionTo drives the machine to the requested status, or fails when no
// event leads there from the current state. A no-op when already there.
func (m *MaintenanceFSM) TransitionTo(ctx context.Context, status string) error {
	if m.record.PaymentStatus == status {
		return nil
	}
	switch status {
	case models.PaymentStatusPaid:
		return m.Pay(ctx)
	case models.PaymentStatusOverdue:
		return m.MarkOverdue(ctx)
	case models.PaymentStatusPending:
		return m.Reset(ctx)
	default:
		return fmt.Errorf("unknown payment status %q", status)
	}
}

// Current returns the current state
func (m *MaintenanceFSM) Current() string {
	return m.fsm.Current()
}

// Can checks if a transition is possible
func (m *MaintenanceFSM) Can(event string) bool {
	return m.fsm.Can(event)
}
