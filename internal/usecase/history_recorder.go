package usecase

import (
	"context"
	"log"

	"taller_mecanico/internal/domain/billing"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompletionResult reports the outcome of recording a finished job.
// Created is false when the vehicle already had a completion record.
type CompletionResult struct {
	Created bool
	Record  entities.WorkOrder
}

// HistoryRecorder appends the "job completed" entry of a vehicle. It runs
// inside the caller's unit of work so the gate that allowed it (a paid
// invoice) and the record land together.
type HistoryRecorder struct {
	clock Clock
}

func NewHistoryRecorder(clock Clock) *HistoryRecorder {
	return &HistoryRecorder{clock: clock}
}

// RecordCompletion is idempotent per vehicle.
func (h *HistoryRecorder) RecordCompletion(ctx context.Context, tx interfaces.ILedgerTx, vehicleID, vehicleLabel string) (CompletionResult, error) {
	existing, err := tx.FindCompletion(ctx, vehicleID)
	if err != nil {
		return CompletionResult{}, err
	}
	if existing.ID != "" {
		log.Printf("[history][recorder] already recorded vehicle_id=%s work_order_id=%s", vehicleID, existing.ID)
		return CompletionResult{Record: existing}, nil
	}

	if vehicleLabel == "" {
		vehicleLabel = vehicleID
	}
	wo := entities.WorkOrder{
		ID:          uuid.NewString(),
		VehicleID:   vehicleID,
		Kind:        entities.WorkOrderKindTerminado,
		Date:        h.clock.today(),
		Description: billing.CompletionDescription(vehicleLabel),
		LaborCost:   decimal.Zero,
		Lines:       []entities.WorkOrderLine{},
		CreatedAt:   h.clock.now(),
	}
	if err := tx.InsertCompletion(ctx, wo); err != nil {
		return CompletionResult{}, err
	}
	log.Printf("[history][recorder] completion recorded vehicle_id=%s work_order_id=%s", vehicleID, wo.ID)
	return CompletionResult{Created: true, Record: wo}, nil
}
