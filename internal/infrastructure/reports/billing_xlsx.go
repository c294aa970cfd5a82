package reports

import (
	"strings"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	InvoicesSheet = "Facturacion"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var invoiceHeaders = []string{"Patente", "Modelo", "Factura", "Fecha", "Estado", "Total", "Pagado", "Saldo"}

// BillingWorkbook renders the billing list as a single styled sheet.
type BillingWorkbook struct{}

var _ interfaces.IInvoiceReportRenderer = BillingWorkbook{}

func (BillingWorkbook) ContentType() string   { return xlsxContentType }
func (BillingWorkbook) FileExtension() string { return "xlsx" }

func (BillingWorkbook) RenderInvoices(rows []entities.InvoiceSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(InvoicesSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, header := range invoiceHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(InvoicesSheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(InvoicesSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		values := []any{
			row.Plate,
			row.Model,
			row.InvoiceID,
			row.Date,
			strings.ToUpper(string(row.Status)),
			row.Total.InexactFloat64(),
			row.Paid.InexactFloat64(),
			row.Balance().InexactFloat64(),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(InvoicesSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(InvoicesSheet, "A", "H", 15); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(InvoicesSheet, "C", "C", 38); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
