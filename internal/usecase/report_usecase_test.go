package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_mecanico/internal/domain/entities"
	mock_interfaces "taller_mecanico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_ExportInvoices(t *testing.T) {
	t.Run("renders the billing list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newShopFixture(t, nil)
		f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
		f.addPart(t, "p-1", "Filtro", 50)
		f.postJob(t, "veh-1", 100, "p-1", 2, 50)

		renderer := mock_interfaces.NewMockIInvoiceReportRenderer(ctrl)
		renderer.EXPECT().RenderInvoices(gomock.Any()).DoAndReturn(func(rows []entities.InvoiceSummary) ([]byte, error) {
			if len(rows) != 1 || rows[0].Plate != "AB123CD" {
				t.Fatalf("unexpected rows: %+v", rows)
			}
			return []byte("xlsx"), nil
		})
		renderer.EXPECT().FileExtension().Return("xlsx")
		renderer.EXPECT().ContentType().Return("application/test")

		uc := NewReportUseCase(f.invoices, renderer, testClock())
		report, err := uc.ExportInvoices(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if report.Filename != "facturacion_2024-05-10.xlsx" || string(report.Body) != "xlsx" || report.ContentType != "application/test" {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("render failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newShopFixture(t, nil)
		renderer := mock_interfaces.NewMockIInvoiceReportRenderer(ctrl)
		renderer.EXPECT().RenderInvoices(gomock.Any()).Return(nil, errors.New("disk full"))

		uc := NewReportUseCase(f.invoices, renderer, testClock())
		if _, err := uc.ExportInvoices(context.Background()); !errors.Is(err, ErrRenderReport) {
			t.Fatalf("expected ErrRenderReport, got %v", err)
		}
	})
}
