package repository

import (
	"taller_mecanico/internal/domain/entities"
)

type vehicleItem struct {
	ID        string `dynamodbav:"id"`
	Plate     string `dynamodbav:"plate"`
	Model     string `dynamodbav:"model"`
	ClientID  string `dynamodbav:"client_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:        v.ID,
		Plate:     v.Plate,
		Model:     v.Model,
		ClientID:  v.ClientID,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:        it.ID,
		Plate:     it.Plate,
		Model:     it.Model,
		ClientID:  it.ClientID,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, CreatedAt: formatTime(c.CreatedAt)}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{ID: it.ID, Name: it.Name, Phone: it.Phone, Email: it.Email, CreatedAt: parseTime(it.CreatedAt)}
}

type sparePartItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
	CreatedAt string `dynamodbav:"created_at"`
}

func toSparePartItem(p entities.SparePart) sparePartItem {
	return sparePartItem{ID: p.ID, Name: p.Name, Price: decimalToString(p.Price), CreatedAt: formatTime(p.CreatedAt)}
}

func fromSparePartItem(it sparePartItem) entities.SparePart {
	return entities.SparePart{ID: it.ID, Name: it.Name, Price: parseDecimal(it.Price), CreatedAt: parseTime(it.CreatedAt)}
}

type workOrderLineItem struct {
	PartID    string `dynamodbav:"part_id"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type workOrderItem struct {
	ID          string              `dynamodbav:"id"`
	VehicleID   string              `dynamodbav:"vehicle_id"`
	Kind        string              `dynamodbav:"kind"`
	Date        string              `dynamodbav:"date"`
	Description string              `dynamodbav:"description"`
	LaborCost   string              `dynamodbav:"labor_cost"`
	Lines       []workOrderLineItem `dynamodbav:"lines"`
	CreatedAt   string              `dynamodbav:"created_at"`
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	lines := make([]workOrderLineItem, 0, len(wo.Lines))
	for _, l := range wo.Lines {
		lines = append(lines, workOrderLineItem{PartID: l.PartID, Quantity: l.Quantity, UnitPrice: decimalToString(l.UnitPrice)})
	}
	return workOrderItem{
		ID:          wo.ID,
		VehicleID:   wo.VehicleID,
		Kind:        string(wo.Kind),
		Date:        wo.Date,
		Description: wo.Description,
		LaborCost:   decimalToString(wo.LaborCost),
		Lines:       lines,
		CreatedAt:   formatTime(wo.CreatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	lines := make([]entities.WorkOrderLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.WorkOrderLine{PartID: l.PartID, Quantity: l.Quantity, UnitPrice: parseDecimal(l.UnitPrice)})
	}
	return entities.WorkOrder{
		ID:          it.ID,
		VehicleID:   it.VehicleID,
		Kind:        entities.WorkOrderKind(it.Kind),
		Date:        it.Date,
		Description: it.Description,
		LaborCost:   parseDecimal(it.LaborCost),
		Lines:       lines,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

type invoiceItem struct {
	ID        string `dynamodbav:"id"`
	VehicleID string `dynamodbav:"vehicle_id"`
	Date      string `dynamodbav:"date"`
	Total     string `dynamodbav:"total"`
	Status    string `dynamodbav:"status"`
	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:        inv.ID,
		VehicleID: inv.VehicleID,
		Date:      inv.Date,
		Total:     decimalToString(inv.Total),
		Status:    string(inv.Status),
		Version:   inv.Version,
		CreatedAt: formatTime(inv.CreatedAt),
		UpdatedAt: formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:        it.ID,
		VehicleID: it.VehicleID,
		Date:      it.Date,
		Total:     parseDecimal(it.Total),
		Status:    entities.InvoiceStatus(it.Status),
		Version:   it.Version,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

type invoiceLineItem struct {
	InvoiceID   string `dynamodbav:"invoice_id"`
	ID          string `dynamodbav:"id"`
	WorkOrderID string `dynamodbav:"work_order_id,omitempty"`
	Kind        string `dynamodbav:"kind"`
	Concept     string `dynamodbav:"concept"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	CreatedAt   string `dynamodbav:"created_at"`
}

func toInvoiceLineItem(l entities.InvoiceLine) invoiceLineItem {
	return invoiceLineItem{
		InvoiceID:   l.InvoiceID,
		ID:          l.ID,
		WorkOrderID: l.WorkOrderID,
		Kind:        string(l.Kind),
		Concept:     l.Concept,
		Quantity:    l.Quantity,
		UnitPrice:   decimalToString(l.UnitPrice),
		CreatedAt:   formatTime(l.CreatedAt),
	}
}

func fromInvoiceLineItem(it invoiceLineItem) entities.InvoiceLine {
	return entities.InvoiceLine{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		WorkOrderID: it.WorkOrderID,
		Kind:        entities.InvoiceLineKind(it.Kind),
		Concept:     it.Concept,
		Quantity:    it.Quantity,
		UnitPrice:   parseDecimal(it.UnitPrice),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

type paymentItem struct {
	InvoiceID         string `dynamodbav:"invoice_id"`
	ID                string `dynamodbav:"id"`
	Date              string `dynamodbav:"date"`
	Amount            string `dynamodbav:"amount"`
	Method            string `dynamodbav:"method"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		InvoiceID:         p.InvoiceID,
		ID:                p.ID,
		Date:              p.Date,
		Amount:            decimalToString(p.Amount),
		Method:            p.Method,
		ProviderPaymentID: p.ProviderPaymentID,
		CreatedAt:         formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		Date:              it.Date,
		Amount:            parseDecimal(it.Amount),
		Method:            it.Method,
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}

// openInvoiceItem points a vehicle at its open invoice. Its key is the
// uniqueness guard of the one-open-invoice rule.
type openInvoiceItem struct {
	VehicleID string `dynamodbav:"vehicle_id"`
	InvoiceID string `dynamodbav:"invoice_id"`
}

type completionItem struct {
	VehicleID   string `dynamodbav:"vehicle_id"`
	WorkOrderID string `dynamodbav:"work_order_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type userItem struct {
	Username     string `dynamodbav:"username"`
	ID           string `dynamodbav:"id"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
}

type calendarEventItem struct {
	Date  string `dynamodbav:"date"`
	Month string `dynamodbav:"month"`
	Text  string `dynamodbav:"text"`
}
