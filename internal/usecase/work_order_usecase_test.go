package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"
	mock_interfaces "taller_mecanico/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestWorkOrderUseCase_CreateWorkOrder_LaborAndPart(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Filtro de aceite", 80)

	res := f.postJob(t, "veh-1", 100, "p-1", 2, 50)

	if res.Invoice.ID == "" || res.WorkOrder.ID == "" {
		t.Fatalf("expected ids, got %+v", res)
	}
	if !res.Invoice.Total.Equal(dec(200)) {
		t.Fatalf("expected total 200, got %s", res.Invoice.Total)
	}
	if res.Invoice.Status != entities.InvoiceStatusEmitida {
		t.Fatalf("expected emitida, got %s", res.Invoice.Status)
	}

	lines, err := f.ledger.ListInvoiceLines(context.Background(), res.Invoice.ID)
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Kind != entities.InvoiceLineKindManoDeObra || lines[0].Concept != "Mano de obra: Cambio de aceite" || lines[0].Quantity != 1 {
		t.Fatalf("unexpected labor line: %+v", lines[0])
	}
	if lines[1].Kind != entities.InvoiceLineKindRepuesto || lines[1].Concept != "Repuesto: Filtro de aceite" || lines[1].Quantity != 2 || !lines[1].UnitPrice.Equal(dec(50)) {
		t.Fatalf("unexpected part line: %+v", lines[1])
	}
	if res.WorkOrder.Lines[0].UnitPrice.String() != "50" {
		t.Fatalf("expected override price on the work order line, got %s", res.WorkOrder.Lines[0].UnitPrice)
	}
}

func TestWorkOrderUseCase_CreateWorkOrder_ReusesOpenInvoice(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Bujia", 10)

	first := f.postJob(t, "veh-1", 100, "p-1", 1, 10)
	second := f.postJob(t, "veh-1", 0, "p-1", 3, 10)

	if first.Invoice.ID != second.Invoice.ID {
		t.Fatalf("expected the same open invoice, got %s and %s", first.Invoice.ID, second.Invoice.ID)
	}
	if !second.Invoice.Total.Equal(dec(140)) {
		t.Fatalf("expected total 140, got %s", second.Invoice.Total)
	}
	if len(second.InvoiceLines) != 1 {
		t.Fatalf("expected no labor line for zero labor, got %d lines", len(second.InvoiceLines))
	}

	invoices, _ := f.ledger.ListInvoices(context.Background())
	if len(invoices) != 1 {
		t.Fatalf("expected a single invoice, got %d", len(invoices))
	}
}

func TestWorkOrderUseCase_CreateWorkOrder_Normalisation(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Pastillas", 75)

	res, err := f.workOrders.CreateWorkOrder(context.Background(), CreateWorkOrderInput{
		VehicleID:   "veh-1",
		Description: "   ",
		LaborCost:   decimal.RequireFromString("99.9"),
		Lines: []WorkOrderLineInput{
			{PartID: "", Quantity: 1},
			{PartID: "p-1", Quantity: 0},
			{PartID: "p-1", Quantity: -2},
			{PartID: "p-1", Quantity: 1, UnitPrice: decimal.NewNullDecimal(dec(-5))},
			{PartID: "p-1", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if res.WorkOrder.Description != defaultWorkOrderDescription {
		t.Fatalf("expected default description, got %q", res.WorkOrder.Description)
	}
	if !res.WorkOrder.LaborCost.Equal(dec(99)) {
		t.Fatalf("expected labor truncated to 99, got %s", res.WorkOrder.LaborCost)
	}
	if len(res.WorkOrder.Lines) != 1 {
		t.Fatalf("expected malformed lines to be skipped, got %d", len(res.WorkOrder.Lines))
	}
	if !res.WorkOrder.Lines[0].UnitPrice.Equal(dec(75)) {
		t.Fatalf("expected list price snapshot, got %s", res.WorkOrder.Lines[0].UnitPrice)
	}
	if !res.Invoice.Total.Equal(dec(249)) {
		t.Fatalf("expected total 99 + 2x75 = 249, got %s", res.Invoice.Total)
	}

	t.Run("negative labor is clamped", func(t *testing.T) {
		res, err := f.workOrders.CreateWorkOrder(context.Background(), CreateWorkOrderInput{VehicleID: "veh-1", LaborCost: dec(-10)})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !res.WorkOrder.LaborCost.IsZero() || len(res.InvoiceLines) != 0 {
			t.Fatalf("expected zero labor and no lines, got %+v", res)
		}
	})
}

func TestWorkOrderUseCase_CreateWorkOrder_Rejections(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")

	t.Run("missing vehicle id", func(t *testing.T) {
		_, err := f.workOrders.CreateWorkOrder(context.Background(), CreateWorkOrderInput{VehicleID: " "})
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := f.workOrders.CreateWorkOrder(context.Background(), CreateWorkOrderInput{VehicleID: "veh-404"})
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("unknown part rolls nothing in", func(t *testing.T) {
		_, err := f.workOrders.CreateWorkOrder(context.Background(), CreateWorkOrderInput{
			VehicleID: "veh-1",
			LaborCost: dec(100),
			Lines:     []WorkOrderLineInput{{PartID: "p-404", Quantity: 1}},
		})
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
		orders, _ := f.ledger.ListWorkOrders(context.Background(), 50)
		invoices, _ := f.ledger.ListInvoices(context.Background())
		if len(orders) != 0 || len(invoices) != 0 {
			t.Fatalf("expected no writes, got %d work orders and %d invoices", len(orders), len(invoices))
		}
	})

	t.Run("too many lines", func(t *testing.T) {
		lines := make([]WorkOrderLineInput, MaxWorkOrderLines+1)
		_, err := f.workOrders.CreateWorkOrder(context.Background(), CreateWorkOrderInput{VehicleID: "veh-1", Lines: lines})
		if !errors.Is(err, ErrTooManyWorkOrderLines) {
			t.Fatalf("expected ErrTooManyWorkOrderLines, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_CreateWorkOrder_StorageFailures(t *testing.T) {
	vehicle := entities.Vehicle{ID: "veh-1", Plate: "AB123CD"}

	t.Run("unit of work fails with a generic error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogReader(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewWorkOrderUseCase(catalog, ledger, testClock())

		catalog.EXPECT().GetVehicle(gomock.Any(), "veh-1").Return(vehicle, nil)
		ledger.EXPECT().WithinUnitOfWork(gomock.Any(), gomock.Any()).Return(errors.New("dynamodb unavailable"))

		_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderInput{VehicleID: "veh-1", LaborCost: dec(10)})
		if !errors.Is(err, ErrCreateWorkOrder) {
			t.Fatalf("expected ErrCreateWorkOrder, got %v", err)
		}
	})

	t.Run("concurrent write is reported as retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogReader(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewWorkOrderUseCase(catalog, ledger, testClock())

		catalog.EXPECT().GetVehicle(gomock.Any(), "veh-1").Return(vehicle, nil)
		ledger.EXPECT().WithinUnitOfWork(gomock.Any(), gomock.Any()).Return(fmt.Errorf("commit: %w", interfaces.ErrConcurrentModification))

		_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderInput{VehicleID: "veh-1", LaborCost: dec(10)})
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("line insert failure stops before the total is saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogReader(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		tx := mock_interfaces.NewMockILedgerTx(ctrl)
		uc := NewWorkOrderUseCase(catalog, ledger, testClock())

		catalog.EXPECT().GetVehicle(gomock.Any(), "veh-1").Return(vehicle, nil)
		ledger.EXPECT().WithinUnitOfWork(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context, interfaces.ILedgerTx) error) error {
				return fn(ctx, tx)
			})
		tx.EXPECT().InsertWorkOrder(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().FindOpenInvoice(gomock.Any(), "veh-1").Return(entities.Invoice{ID: "inv-1", VehicleID: "veh-1", Status: entities.InvoiceStatusEmitida}, nil)
		tx.EXPECT().InsertInvoiceLines(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

		_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderInput{VehicleID: "veh-1", LaborCost: dec(10)})
		if !errors.Is(err, ErrCreateWorkOrder) {
			t.Fatalf("expected ErrCreateWorkOrder, got %v", err)
		}
	})

	t.Run("catalog lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogReader(ctrl)
		uc := NewWorkOrderUseCase(catalog, nil, testClock())

		catalog.EXPECT().GetVehicle(gomock.Any(), "veh-1").Return(entities.Vehicle{}, errors.New("timeout"))

		_, err := uc.CreateWorkOrder(context.Background(), CreateWorkOrderInput{VehicleID: "veh-1"})
		if !errors.Is(err, ErrCreateWorkOrder) {
			t.Fatalf("expected ErrCreateWorkOrder, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_History(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addVehicle(t, "veh-2", "XY987ZW", "Ford Ka")
	f.addPart(t, "p-1", "Bujia", 10)

	f.postJob(t, "veh-1", 100, "p-1", 1, 10)
	f.postJob(t, "veh-2", 50, "p-1", 1, 10)
	f.postJob(t, "veh-1", 20, "p-1", 1, 10)

	entries, err := f.workOrders.History(context.Background(), 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Plate != "AB123CD" || !entries[0].LaborCost.Equal(dec(20)) {
		t.Fatalf("expected newest entry first, got %+v", entries[0])
	}
	if entries[1].Plate != "XY987ZW" {
		t.Fatalf("expected plate join, got %+v", entries[1])
	}

	limited, _ := f.workOrders.History(context.Background(), 2)
	if len(limited) != 2 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}
}

func TestWorkOrderUseCase_CreateWorkOrder_RoundsPricesToCents(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Arandela", 1)

	res, err := f.workOrders.CreateWorkOrder(context.Background(), CreateWorkOrderInput{
		VehicleID: "veh-1",
		Lines: []WorkOrderLineInput{
			{PartID: "p-1", Quantity: 3, UnitPrice: decimal.NewNullDecimal(decimal.RequireFromString("0.333"))},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.WorkOrder.Lines[0].UnitPrice.Equal(decimal.RequireFromString("0.33")) {
		t.Fatalf("expected snapshot 0.33, got %s", res.WorkOrder.Lines[0].UnitPrice)
	}
	if !res.InvoiceLines[0].UnitPrice.Equal(decimal.RequireFromString("0.33")) {
		t.Fatalf("expected invoice line price 0.33, got %s", res.InvoiceLines[0].UnitPrice)
	}
	if !res.Invoice.Total.Equal(decimal.RequireFromString("0.99")) {
		t.Fatalf("expected total 0.99, got %s", res.Invoice.Total)
	}

	paid, err := f.invoices.RecordPayment(context.Background(), res.Invoice.ID, PaymentInput{
		Date:   "2024-05-10",
		Amount: decimal.RequireFromString("0.994"),
		Method: "efectivo",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !paid.Payment.Amount.Equal(decimal.RequireFromString("0.99")) {
		t.Fatalf("expected payment rounded to 0.99, got %s", paid.Payment.Amount)
	}
	if paid.Invoice.Status != entities.InvoiceStatusPagada {
		t.Fatalf("expected pagada, got %s", paid.Invoice.Status)
	}

	if _, err := f.invoices.RecordPayment(context.Background(), res.Invoice.ID, PaymentInput{
		Date:   "2024-05-10",
		Amount: decimal.RequireFromString("0.004"),
		Method: "efectivo",
	}); !errors.Is(err, ErrInvalidPaymentAmount) {
		t.Fatalf("expected sub-cent payment to be rejected, got %v", err)
	}
}
