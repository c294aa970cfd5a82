package interfaces

import "taller_mecanico/internal/domain/entities"

// IInvoiceReportRenderer turns the billing list into a downloadable document.
type IInvoiceReportRenderer interface {
	RenderInvoices(rows []entities.InvoiceSummary) ([]byte, error)
	ContentType() string
	FileExtension() string
}
