package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle of an invoice (factura).
//
// The only transition is emitida -> pagada, taken when cumulative payments
// reach the total. Nothing leaves pagada.
type InvoiceStatus string

const (
	InvoiceStatusEmitida InvoiceStatus = "emitida"
	InvoiceStatusPagada  InvoiceStatus = "pagada"
)

// IsOpen reports whether the status counts towards the one-open-invoice-per-vehicle rule.
func (s InvoiceStatus) IsOpen() bool {
	return s == InvoiceStatusEmitida || s == InvoiceStatusPagada
}

// Invoice is the billing document attached to a vehicle.
//
// Total is a cached sum of its lines and is only ever written by a
// recalculation. Version is bumped on every save and backs optimistic
// locking on stores without row locks.
type Invoice struct {
	ID        string          `json:"id"`
	VehicleID string          `json:"vehicle_id"`
	Date      string          `json:"date"`
	Total     decimal.Decimal `json:"total"`
	Status    InvoiceStatus   `json:"status"`
	Version   int64           `json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (i Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPagada
}

type InvoiceLineKind string

const (
	InvoiceLineKindManoDeObra InvoiceLineKind = "mano_de_obra"
	InvoiceLineKindRepuesto   InvoiceLineKind = "repuesto"
)

// InvoiceLine is an append-only billable entry.
type InvoiceLine struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	WorkOrderID string          `json:"work_order_id,omitempty"`
	Kind        InvoiceLineKind `json:"kind"`
	Concept     string          `json:"concept"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Amount is quantity x unit price.
func (l InvoiceLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// InvoiceSummary is the per-vehicle projection used by the billing list.
type InvoiceSummary struct {
	VehicleID string          `json:"vehicle_id"`
	Plate     string          `json:"plate"`
	Model     string          `json:"model"`
	InvoiceID string          `json:"invoice_id"`
	Date      string          `json:"date"`
	Status    InvoiceStatus   `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
}

// Balance is what is still owed. Overpayment yields a negative balance.
func (s InvoiceSummary) Balance() decimal.Decimal {
	return s.Total.Sub(s.Paid)
}
