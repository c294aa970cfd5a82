package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase"
)

type WorkOrderLineResponse struct {
	PartID    string `json:"part_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type WorkOrderResponse struct {
	ID          string                  `json:"id"`
	VehicleID   string                  `json:"vehicle_id"`
	Kind        string                  `json:"kind"`
	Date        string                  `json:"date"`
	Description string                  `json:"description"`
	LaborCost   string                  `json:"labor_cost"`
	Lines       []WorkOrderLineResponse `json:"lines"`
	CreatedAt   time.Time               `json:"created_at"`
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	lines := make([]WorkOrderLineResponse, 0, len(wo.Lines))
	for _, l := range wo.Lines {
		lines = append(lines, WorkOrderLineResponse{PartID: l.PartID, Quantity: l.Quantity, UnitPrice: l.UnitPrice.StringFixed(2)})
	}
	return WorkOrderResponse{
		ID:          wo.ID,
		VehicleID:   wo.VehicleID,
		Kind:        string(wo.Kind),
		Date:        wo.Date,
		Description: wo.Description,
		LaborCost:   wo.LaborCost.StringFixed(2),
		Lines:       lines,
		CreatedAt:   wo.CreatedAt,
	}
}

type WorkOrderResultResponse struct {
	WorkOrder    WorkOrderResponse     `json:"work_order"`
	Invoice      InvoiceResponse       `json:"invoice"`
	InvoiceLines []InvoiceLineResponse `json:"invoice_lines"`
}

func FromWorkOrderResult(r usecase.WorkOrderResult) WorkOrderResultResponse {
	return WorkOrderResultResponse{
		WorkOrder:    FromWorkOrder(r.WorkOrder),
		Invoice:      FromInvoice(r.Invoice),
		InvoiceLines: FromInvoiceLines(r.InvoiceLines),
	}
}

type HistoryEntryResponse struct {
	WorkOrderResponse
	Plate string `json:"plate"`
}

func FromHistory(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{WorkOrderResponse: FromWorkOrder(e.WorkOrder), Plate: e.Plate})
	}
	return out
}
