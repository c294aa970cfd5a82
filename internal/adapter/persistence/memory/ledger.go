// Package memory keeps every store in process memory. It backs local runs
// (STORAGE_DRIVER=memory) and the use case tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type ledgerState struct {
	workOrders    []entities.WorkOrder
	invoices      map[string]entities.Invoice
	lines         map[string][]entities.InvoiceLine
	payments      map[string][]entities.Payment
	openByVehicle map[string]string
	completions   map[string]entities.WorkOrder
}

func newLedgerState() *ledgerState {
	return &ledgerState{
		invoices:      make(map[string]entities.Invoice),
		lines:         make(map[string][]entities.InvoiceLine),
		payments:      make(map[string][]entities.Payment),
		openByVehicle: make(map[string]string),
		completions:   make(map[string]entities.WorkOrder),
	}
}

func (s *ledgerState) clone() *ledgerState {
	c := newLedgerState()
	c.workOrders = append([]entities.WorkOrder(nil), s.workOrders...)
	for k, v := range s.invoices {
		c.invoices[k] = v
	}
	for k, v := range s.lines {
		c.lines[k] = append([]entities.InvoiceLine(nil), v...)
	}
	for k, v := range s.payments {
		c.payments[k] = append([]entities.Payment(nil), v...)
	}
	for k, v := range s.openByVehicle {
		c.openByVehicle[k] = v
	}
	for k, v := range s.completions {
		c.completions[k] = v
	}
	return c
}

// Ledger serialises units of work behind a single mutex. Each unit runs on a
// copy of the state that replaces the committed one only when fn succeeds.
type Ledger struct {
	mu    sync.RWMutex
	state *ledgerState
}

var _ interfaces.ILedgerRepository = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{state: newLedgerState()}
}

func (l *Ledger) WithinUnitOfWork(ctx context.Context, fn func(ctx context.Context, tx interfaces.ILedgerTx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := l.state.clone()
	if err := fn(ctx, &ledgerTx{s: work}); err != nil {
		return err
	}
	l.state = work
	return nil
}

func (l *Ledger) GetInvoice(_ context.Context, id string) (entities.Invoice, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.invoices[id], nil
}

func (l *Ledger) ListInvoices(_ context.Context) ([]entities.Invoice, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entities.Invoice, 0, len(l.state.invoices))
	for _, inv := range l.state.invoices {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (l *Ledger) ListInvoiceLines(_ context.Context, invoiceID string) ([]entities.InvoiceLine, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]entities.InvoiceLine{}, l.state.lines[invoiceID]...), nil
}

func (l *Ledger) ListPayments(_ context.Context, invoiceID string) ([]entities.Payment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]entities.Payment{}, l.state.payments[invoiceID]...), nil
}

func (l *Ledger) SumAllLines(_ context.Context) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	for _, lines := range l.state.lines {
		for _, line := range lines {
			total = total.Add(line.Amount())
		}
	}
	return total, nil
}

func (l *Ledger) ListWorkOrders(_ context.Context, limit int) ([]entities.WorkOrder, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.state.workOrders)
	out := make([]entities.WorkOrder, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, l.state.workOrders[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type ledgerTx struct {
	s *ledgerState
}

func (t *ledgerTx) FindOpenInvoice(_ context.Context, vehicleID string) (entities.Invoice, error) {
	id, ok := t.s.openByVehicle[vehicleID]
	if !ok {
		return entities.Invoice{}, nil
	}
	return t.s.invoices[id], nil
}

func (t *ledgerTx) CreateInvoice(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if id, ok := t.s.openByVehicle[inv.VehicleID]; ok {
		return t.s.invoices[id], nil
	}
	if _, ok := t.s.invoices[inv.ID]; ok {
		return entities.Invoice{}, fmt.Errorf("invoice %s: %w", inv.ID, interfaces.ErrConflict)
	}
	inv.Version = 1
	t.s.invoices[inv.ID] = inv
	if inv.Status.IsOpen() {
		t.s.openByVehicle[inv.VehicleID] = inv.ID
	}
	return inv, nil
}

func (t *ledgerTx) GetInvoiceForUpdate(_ context.Context, id string) (entities.Invoice, error) {
	return t.s.invoices[id], nil
}

func (t *ledgerTx) SaveInvoice(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	current, ok := t.s.invoices[inv.ID]
	if !ok {
		return entities.Invoice{}, fmt.Errorf("save invoice %s: not found", inv.ID)
	}
	if current.Version != inv.Version {
		return entities.Invoice{}, fmt.Errorf("save invoice %s: %w", inv.ID, interfaces.ErrConcurrentModification)
	}
	current.Total = inv.Total
	current.Status = inv.Status
	current.UpdatedAt = inv.UpdatedAt
	current.Version++
	t.s.invoices[inv.ID] = current
	return current, nil
}

func (t *ledgerTx) InsertWorkOrder(_ context.Context, wo entities.WorkOrder) error {
	for _, existing := range t.s.workOrders {
		if existing.ID == wo.ID {
			return fmt.Errorf("work order %s: %w", wo.ID, interfaces.ErrConflict)
		}
	}
	wo.Lines = append([]entities.WorkOrderLine{}, wo.Lines...)
	t.s.workOrders = append(t.s.workOrders, wo)
	return nil
}

func (t *ledgerTx) InsertInvoiceLines(_ context.Context, lines []entities.InvoiceLine) error {
	for _, line := range lines {
		if _, ok := t.s.invoices[line.InvoiceID]; !ok {
			return fmt.Errorf("invoice line %s: unknown invoice %s", line.ID, line.InvoiceID)
		}
		t.s.lines[line.InvoiceID] = append(t.s.lines[line.InvoiceID], line)
	}
	return nil
}

func (t *ledgerTx) ListInvoiceLines(_ context.Context, invoiceID string) ([]entities.InvoiceLine, error) {
	return append([]entities.InvoiceLine{}, t.s.lines[invoiceID]...), nil
}

func (t *ledgerTx) InsertPayment(_ context.Context, p entities.Payment) error {
	if _, ok := t.s.invoices[p.InvoiceID]; !ok {
		return fmt.Errorf("payment %s: unknown invoice %s", p.ID, p.InvoiceID)
	}
	t.s.payments[p.InvoiceID] = append(t.s.payments[p.InvoiceID], p)
	return nil
}

func (t *ledgerTx) ListPayments(_ context.Context, invoiceID string) ([]entities.Payment, error) {
	return append([]entities.Payment{}, t.s.payments[invoiceID]...), nil
}

func (t *ledgerTx) FindCompletion(_ context.Context, vehicleID string) (entities.WorkOrder, error) {
	return t.s.completions[vehicleID], nil
}

func (t *ledgerTx) InsertCompletion(ctx context.Context, wo entities.WorkOrder) error {
	if _, ok := t.s.completions[wo.VehicleID]; ok {
		return fmt.Errorf("completion for vehicle %s: %w", wo.VehicleID, interfaces.ErrConflict)
	}
	if err := t.InsertWorkOrder(ctx, wo); err != nil {
		return err
	}
	t.s.completions[wo.VehicleID] = wo
	return nil
}
