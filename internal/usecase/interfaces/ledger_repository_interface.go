package interfaces

import (
	"context"

	"taller_mecanico/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ILedgerRepository persists work orders, invoices, invoice lines and payments.
//
// Every multi-step mutation runs through WithinUnitOfWork: either all writes
// made through the ILedgerTx land, or none do. fn returning an error rolls the
// unit back and the same error is returned.
type ILedgerRepository interface {
	WithinUnitOfWork(ctx context.Context, fn func(ctx context.Context, tx ILedgerTx) error) error

	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	ListInvoices(ctx context.Context) ([]entities.Invoice, error)
	ListInvoiceLines(ctx context.Context, invoiceID string) ([]entities.InvoiceLine, error)
	ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error)
	// SumAllLines is the grand total billed across every invoice.
	SumAllLines(ctx context.Context) (decimal.Decimal, error)
	// ListWorkOrders returns the newest work orders first.
	ListWorkOrders(ctx context.Context, limit int) ([]entities.WorkOrder, error)
}

// ILedgerTx is the set of reads and writes available inside a unit of work.
//
// Reads of an invoice (FindOpenInvoice, GetInvoiceForUpdate) serialise
// concurrent units touching the same invoice: either by a row lock, or by
// failing the later commit with ErrConcurrentModification. List reads include
// rows written earlier in the same unit.
type ILedgerTx interface {
	// FindOpenInvoice returns the vehicle's open invoice, zero value when none.
	FindOpenInvoice(ctx context.Context, vehicleID string) (entities.Invoice, error)
	// CreateInvoice inserts inv as the vehicle's open invoice. When the store
	// finds another open invoice committed concurrently it returns that one
	// instead, or fails with ErrConflict / ErrConcurrentModification.
	CreateInvoice(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, id string) (entities.Invoice, error)
	// SaveInvoice persists total and status and bumps the version.
	SaveInvoice(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)

	InsertWorkOrder(ctx context.Context, wo entities.WorkOrder) error
	InsertInvoiceLines(ctx context.Context, lines []entities.InvoiceLine) error
	ListInvoiceLines(ctx context.Context, invoiceID string) ([]entities.InvoiceLine, error)

	InsertPayment(ctx context.Context, p entities.Payment) error
	ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error)

	// FindCompletion returns the vehicle's completion record, zero value when none.
	FindCompletion(ctx context.Context, vehicleID string) (entities.WorkOrder, error)
	// InsertCompletion stores a completion record; a second one for the same
	// vehicle fails with ErrConflict.
	InsertCompletion(ctx context.Context, wo entities.WorkOrder) error
}
