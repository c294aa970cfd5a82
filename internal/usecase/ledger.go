package usecase

import (
	"context"
	"errors"
	"log"

	"taller_mecanico/internal/domain/billing"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInvoiceID = errors.New("invoice id is required")
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrConcurrentUpdate = errors.New("the invoice was modified by another request, retry")
)

// ensureOpenInvoiceTx returns the vehicle's open invoice, opening a new one
// dated today when none exists. Uniqueness is enforced by the store.
func ensureOpenInvoiceTx(ctx context.Context, tx interfaces.ILedgerTx, vehicleID string, clock Clock) (entities.Invoice, error) {
	inv, err := tx.FindOpenInvoice(ctx, vehicleID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID != "" {
		return inv, nil
	}

	now := clock.now()
	created, err := tx.CreateInvoice(ctx, entities.Invoice{
		ID:        uuid.NewString(),
		VehicleID: vehicleID,
		Date:      clock.today(),
		Total:     decimal.Zero,
		Status:    entities.InvoiceStatusEmitida,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][ledger] open invoice resolved vehicle_id=%s invoice_id=%s", vehicleID, created.ID)
	return created, nil
}

// recalcTotalTx sets the total to the sum of the invoice lines and saves it.
func recalcTotalTx(ctx context.Context, tx interfaces.ILedgerTx, inv entities.Invoice, clock Clock) (entities.Invoice, error) {
	lines, err := tx.ListInvoiceLines(ctx, inv.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Total = billing.SumLines(lines)
	inv.UpdatedAt = clock.now()
	return tx.SaveInvoice(ctx, inv)
}

// storageFailure maps store-level outcomes into use case errors and logs the
// cause of anything else. Errors matching one of rules are business outcomes
// raised inside the unit of work and are returned untouched.
func storageFailure(scope string, err error, generic error, rules ...error) error {
	for _, rule := range rules {
		if errors.Is(err, rule) {
			return err
		}
	}
	switch {
	case errors.Is(err, interfaces.ErrConcurrentModification), errors.Is(err, interfaces.ErrConflict):
		log.Printf("%s concurrent write detected err=%v", scope, err)
		return ErrConcurrentUpdate
	}
	log.Printf("%s storage failure err=%v", scope, err)
	if generic == nil {
		return err
	}
	return generic
}
