package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"taller_mecanico/internal/domain/billing"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxWorkOrderLines keeps a posting inside a single store transaction.
	MaxWorkOrderLines = 50

	DefaultHistoryLimit = 50

	defaultWorkOrderDescription = "Trabajo general"
)

var (
	ErrInvalidVehicleID      = errors.New("vehicle is required")
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrPartNotFound          = errors.New("spare part not found")
	ErrTooManyWorkOrderLines = fmt.Errorf("a work order accepts at most %d lines", MaxWorkOrderLines)
	ErrCreateWorkOrder       = errors.New("could not create work order")
)

// WorkOrderLineInput is a requested part usage. UnitPrice overrides the
// part's list price when set.
type WorkOrderLineInput struct {
	PartID    string
	Quantity  int
	UnitPrice decimal.NullDecimal
	// Malformed is set by the transport when a field could not be read.
	Malformed bool
}

type CreateWorkOrderInput struct {
	VehicleID   string
	Description string
	LaborCost   decimal.Decimal
	Lines       []WorkOrderLineInput
}

// WorkOrderResult identifies what a posting produced.
type WorkOrderResult struct {
	WorkOrder    entities.WorkOrder
	Invoice      entities.Invoice
	InvoiceLines []entities.InvoiceLine
}

// IWorkOrderUseCase turns shop jobs into invoice line items.
//
//   - CreateWorkOrder => persists the job and mirrors it onto the vehicle's open invoice
//   - History => completed and ordinary jobs, newest first
type IWorkOrderUseCase interface {
	CreateWorkOrder(ctx context.Context, in CreateWorkOrderInput) (WorkOrderResult, error)
	History(ctx context.Context, limit int) ([]entities.HistoryEntry, error)
}

type WorkOrderUseCase struct {
	catalog interfaces.ICatalogReader
	ledger  interfaces.ILedgerRepository
	clock   Clock
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(catalog interfaces.ICatalogReader, ledger interfaces.ILedgerRepository, clock Clock) *WorkOrderUseCase {
	return &WorkOrderUseCase{catalog: catalog, ledger: ledger, clock: clock}
}

type resolvedLine struct {
	line     entities.WorkOrderLine
	partName string
}

func (u *WorkOrderUseCase) CreateWorkOrder(ctx context.Context, in CreateWorkOrderInput) (WorkOrderResult, error) {
	vehicleID := strings.TrimSpace(in.VehicleID)
	log.Printf("[work-order][usecase] create start vehicle_id=%q lines=%d", vehicleID, len(in.Lines))
	if vehicleID == "" {
		return WorkOrderResult{}, ErrInvalidVehicleID
	}
	if len(in.Lines) > MaxWorkOrderLines {
		return WorkOrderResult{}, ErrTooManyWorkOrderLines
	}

	vehicle, err := u.catalog.GetVehicle(ctx, vehicleID)
	if err != nil {
		return WorkOrderResult{}, storageFailure("[work-order][usecase]", err, ErrCreateWorkOrder)
	}
	if vehicle.ID == "" {
		log.Printf("[work-order][usecase] vehicle not found vehicle_id=%s", vehicleID)
		return WorkOrderResult{}, ErrVehicleNotFound
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = defaultWorkOrderDescription
	}
	labor := billing.NormalizeLaborCost(in.LaborCost)

	lines, err := u.resolveLines(ctx, in.Lines)
	if err != nil {
		return WorkOrderResult{}, err
	}

	now := u.clock.now()
	wo := entities.WorkOrder{
		ID:          uuid.NewString(),
		VehicleID:   vehicle.ID,
		Kind:        entities.WorkOrderKindTrabajo,
		Date:        u.clock.today(),
		Description: description,
		LaborCost:   labor,
		Lines:       make([]entities.WorkOrderLine, 0, len(lines)),
		CreatedAt:   now,
	}
	for _, l := range lines {
		wo.Lines = append(wo.Lines, l.line)
	}

	var result WorkOrderResult
	err = u.ledger.WithinUnitOfWork(ctx, func(ctx context.Context, tx interfaces.ILedgerTx) error {
		if err := tx.InsertWorkOrder(ctx, wo); err != nil {
			return err
		}

		inv, err := ensureOpenInvoiceTx(ctx, tx, vehicle.ID, u.clock)
		if err != nil {
			return err
		}

		invoiceLines := buildInvoiceLines(inv.ID, wo, lines, now)
		if len(invoiceLines) > 0 {
			if err := tx.InsertInvoiceLines(ctx, invoiceLines); err != nil {
				return err
			}
		}

		inv, err = recalcTotalTx(ctx, tx, inv, u.clock)
		if err != nil {
			return err
		}

		result = WorkOrderResult{WorkOrder: wo, Invoice: inv, InvoiceLines: invoiceLines}
		return nil
	})
	if err != nil {
		return WorkOrderResult{}, storageFailure("[work-order][usecase]", err, ErrCreateWorkOrder)
	}

	log.Printf("[work-order][usecase] create success work_order_id=%s invoice_id=%s total=%s", wo.ID, result.Invoice.ID, result.Invoice.Total)
	return result, nil
}

// resolveLines drops malformed lines and snapshots prices. A well-formed line
// pointing at an unknown part fails the whole request.
func (u *WorkOrderUseCase) resolveLines(ctx context.Context, in []WorkOrderLineInput) ([]resolvedLine, error) {
	out := make([]resolvedLine, 0, len(in))
	for i, l := range in {
		partID := strings.TrimSpace(l.PartID)
		if l.Malformed || partID == "" || l.Quantity <= 0 || (l.UnitPrice.Valid && l.UnitPrice.Decimal.IsNegative()) {
			log.Printf("[work-order][usecase] skipping invalid line index=%d part_id=%q quantity=%d", i, partID, l.Quantity)
			continue
		}

		part, err := u.catalog.GetPart(ctx, partID)
		if err != nil {
			return nil, storageFailure("[work-order][usecase]", err, ErrCreateWorkOrder)
		}
		if part.ID == "" {
			log.Printf("[work-order][usecase] part not found part_id=%s", partID)
			return nil, ErrPartNotFound
		}

		price := part.Price
		if l.UnitPrice.Valid {
			price = l.UnitPrice.Decimal
		}
		price = billing.RoundMoney(price)
		out = append(out, resolvedLine{
			line:     entities.WorkOrderLine{PartID: part.ID, Quantity: l.Quantity, UnitPrice: price},
			partName: part.Name,
		})
	}
	return out, nil
}

func buildInvoiceLines(invoiceID string, wo entities.WorkOrder, lines []resolvedLine, now time.Time) []entities.InvoiceLine {
	out := make([]entities.InvoiceLine, 0, len(lines)+1)
	if wo.LaborCost.IsPositive() {
		out = append(out, entities.InvoiceLine{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			WorkOrderID: wo.ID,
			Kind:        entities.InvoiceLineKindManoDeObra,
			Concept:     billing.LaborConcept(wo.Description),
			Quantity:    1,
			UnitPrice:   wo.LaborCost,
			CreatedAt:   now,
		})
	}
	for _, l := range lines {
		out = append(out, entities.InvoiceLine{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			WorkOrderID: wo.ID,
			Kind:        entities.InvoiceLineKindRepuesto,
			Concept:     billing.PartConcept(l.partName),
			Quantity:    l.line.Quantity,
			UnitPrice:   l.line.UnitPrice,
			CreatedAt:   now,
		})
	}
	return out
}

func (u *WorkOrderUseCase) History(ctx context.Context, limit int) ([]entities.HistoryEntry, error) {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}

	orders, err := u.ledger.ListWorkOrders(ctx, limit)
	if err != nil {
		return nil, storageFailure("[work-order][usecase]", err, nil)
	}

	plates := make(map[string]string)
	entries := make([]entities.HistoryEntry, 0, len(orders))
	for _, wo := range orders {
		plate, ok := plates[wo.VehicleID]
		if !ok {
			v, err := u.catalog.GetVehicle(ctx, wo.VehicleID)
			if err != nil {
				return nil, storageFailure("[work-order][usecase]", err, nil)
			}
			plate = v.Plate
			plates[wo.VehicleID] = plate
		}
		entries = append(entries, entities.HistoryEntry{WorkOrder: wo, Plate: plate})
	}
	return entries, nil
}
