package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"taller_mecanico/internal/usecase/interfaces"
)

var ErrRenderReport = errors.New("could not render report")

// Report is a rendered document ready to be downloaded.
type Report struct {
	Filename    string
	ContentType string
	Body        []byte
}

type IReportUseCase interface {
	ExportInvoices(ctx context.Context) (Report, error)
}

type ReportUseCase struct {
	invoices IInvoiceUseCase
	renderer interfaces.IInvoiceReportRenderer
	clock    Clock
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(invoices IInvoiceUseCase, renderer interfaces.IInvoiceReportRenderer, clock Clock) *ReportUseCase {
	return &ReportUseCase{invoices: invoices, renderer: renderer, clock: clock}
}

func (u *ReportUseCase) ExportInvoices(ctx context.Context) (Report, error) {
	rows, err := u.invoices.ListInvoices(ctx)
	if err != nil {
		return Report{}, err
	}

	body, err := u.renderer.RenderInvoices(rows)
	if err != nil {
		log.Printf("[report][usecase] render failed rows=%d err=%v", len(rows), err)
		return Report{}, ErrRenderReport
	}
	log.Printf("[report][usecase] invoices exported rows=%d bytes=%d", len(rows), len(body))
	return Report{
		Filename:    fmt.Sprintf("facturacion_%s.%s", u.clock.today(), u.renderer.FileExtension()),
		ContentType: u.renderer.ContentType(),
		Body:        body,
	}, nil
}
