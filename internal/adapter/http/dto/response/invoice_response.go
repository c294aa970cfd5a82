package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase"
)

// Money is rendered as decimal strings so no precision is lost in transit.

type InvoiceResponse struct {
	ID        string    `json:"id"`
	VehicleID string    `json:"vehicle_id"`
	Date      string    `json:"date"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		VehicleID: inv.VehicleID,
		Date:      inv.Date,
		Total:     inv.Total.StringFixed(2),
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

type InvoiceLineResponse struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id,omitempty"`
	Kind        string `json:"kind"`
	Concept     string `json:"concept"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"`
}

func FromInvoiceLines(lines []entities.InvoiceLine) []InvoiceLineResponse {
	out := make([]InvoiceLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, InvoiceLineResponse{
			ID:          l.ID,
			WorkOrderID: l.WorkOrderID,
			Kind:        string(l.Kind),
			Concept:     l.Concept,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Amount:      l.Amount().StringFixed(2),
		})
	}
	return out
}

type PaymentResponse struct {
	ID                string `json:"id"`
	InvoiceID         string `json:"invoice_id"`
	Date              string `json:"date"`
	Amount            string `json:"amount"`
	Method            string `json:"method"`
	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		Date:              p.Date,
		Amount:            p.Amount.StringFixed(2),
		Method:            p.Method,
		ProviderPaymentID: p.ProviderPaymentID,
	}
}

type InvoiceDetailResponse struct {
	Invoice  InvoiceResponse       `json:"invoice"`
	Lines    []InvoiceLineResponse `json:"lines"`
	Payments []PaymentResponse     `json:"payments"`
	Paid     string                `json:"paid"`
	Balance  string                `json:"balance"`
}

func FromInvoiceDetail(d usecase.InvoiceDetail) InvoiceDetailResponse {
	payments := make([]PaymentResponse, 0, len(d.Payments))
	for _, p := range d.Payments {
		payments = append(payments, FromPayment(p))
	}
	return InvoiceDetailResponse{
		Invoice:  FromInvoice(d.Invoice),
		Lines:    FromInvoiceLines(d.Lines),
		Payments: payments,
		Paid:     d.Paid.StringFixed(2),
		Balance:  d.Invoice.Total.Sub(d.Paid).StringFixed(2),
	}
}

type PaymentResultResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
	Paid    string          `json:"paid"`
	Settled bool            `json:"settled"`
}

func FromPaymentResult(r usecase.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		Payment: FromPayment(r.Payment),
		Invoice: FromInvoice(r.Invoice),
		Paid:    r.Paid.StringFixed(2),
		Settled: r.Invoice.IsPaid(),
	}
}

type InvoiceSummaryResponse struct {
	VehicleID string `json:"vehicle_id"`
	Plate     string `json:"plate"`
	Model     string `json:"model"`
	InvoiceID string `json:"invoice_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Total     string `json:"total"`
	Paid      string `json:"paid"`
	Balance   string `json:"balance"`
}

func FromInvoiceSummaries(rows []entities.InvoiceSummary) []InvoiceSummaryResponse {
	out := make([]InvoiceSummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, InvoiceSummaryResponse{
			VehicleID: s.VehicleID,
			Plate:     s.Plate,
			Model:     s.Model,
			InvoiceID: s.InvoiceID,
			Date:      s.Date,
			Status:    string(s.Status),
			Total:     s.Total.StringFixed(2),
			Paid:      s.Paid.StringFixed(2),
			Balance:   s.Balance().StringFixed(2),
		})
	}
	return out
}

type CompletionResponse struct {
	Created   bool              `json:"created"`
	WorkOrder WorkOrderResponse `json:"work_order"`
}

func FromCompletion(r usecase.CompletionResult) CompletionResponse {
	return CompletionResponse{Created: r.Created, WorkOrder: FromWorkOrder(r.Record)}
}

type TotalResponse struct {
	Total string `json:"total"`
}
