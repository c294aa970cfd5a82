package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderKind discriminates ordinary jobs from completion records.
type WorkOrderKind string

const (
	WorkOrderKindTrabajo   WorkOrderKind = "trabajo"
	WorkOrderKindTerminado WorkOrderKind = "terminado"
)

// WorkOrder is an immutable job record (orden de trabajo).
//
// Completion records share this shape with Kind == WorkOrderKindTerminado,
// zero labor and no lines, so they surface through the same history listing.
type WorkOrder struct {
	ID          string          `json:"id"`
	VehicleID   string          `json:"vehicle_id"`
	Kind        WorkOrderKind   `json:"kind"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	LaborCost   decimal.Decimal `json:"labor_cost"`
	Lines       []WorkOrderLine `json:"lines"`
	CreatedAt   time.Time       `json:"created_at"`
}

// WorkOrderLine records a part usage. UnitPrice is a snapshot.
type WorkOrderLine struct {
	PartID    string          `json:"part_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (wo WorkOrder) IsCompletion() bool {
	return wo.Kind == WorkOrderKindTerminado
}

// HistoryEntry is a work order joined with its vehicle plate for listings.
type HistoryEntry struct {
	WorkOrder
	Plate string `json:"plate"`
}
