package request

import (
	"taller_mecanico/internal/usecase"
)

type WorkOrderLineRequest struct {
	PartID    string        `json:"part_id"`
	Quantity  LooseQuantity `json:"quantity" swaggertype:"integer"`
	UnitPrice LoosePrice    `json:"unit_price" swaggertype:"number"`
}

type WorkOrderRequest struct {
	VehicleID   string                 `json:"vehicle_id"`
	Description string                 `json:"description"`
	LaborCost   LooseAmount            `json:"labor_cost" swaggertype:"number"`
	Lines       []WorkOrderLineRequest `json:"lines"`
}

func (r WorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	lines := make([]usecase.WorkOrderLineInput, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, usecase.WorkOrderLineInput{
			PartID:    l.PartID,
			Quantity:  int(l.Quantity),
			UnitPrice: l.UnitPrice.NullDecimal,
			Malformed: l.UnitPrice.Malformed,
		})
	}
	return usecase.CreateWorkOrderInput{
		VehicleID:   r.VehicleID,
		Description: r.Description,
		LaborCost:   r.LaborCost.Decimal,
		Lines:       lines,
	}
}
