package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"taller_mecanico/internal/adapter/persistence/memory"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// testClock ticks one second per call so creation order is observable.
func testClock() Clock {
	var mu sync.Mutex
	t := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	return Clock{
		Now: func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			t = t.Add(time.Second)
			return t
		},
		Location: time.UTC,
	}
}

type shopFixture struct {
	catalog    *memory.Catalog
	ledger     *memory.Ledger
	workOrders *WorkOrderUseCase
	invoices   *InvoiceUseCase
}

func newShopFixture(t *testing.T, gateway interfaces.IPaymentGateway) *shopFixture {
	t.Helper()
	clock := testClock()
	catalog := memory.NewCatalog()
	ledger := memory.NewLedger()
	return &shopFixture{
		catalog:    catalog,
		ledger:     ledger,
		workOrders: NewWorkOrderUseCase(catalog, ledger, clock),
		invoices:   NewInvoiceUseCase(catalog, ledger, gateway, NewHistoryRecorder(clock), clock),
	}
}

func (f *shopFixture) addVehicle(t *testing.T, id, plate, model string) {
	t.Helper()
	if _, err := f.catalog.CreateVehicle(context.Background(), entities.Vehicle{ID: id, Plate: plate, Model: model}); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
}

func (f *shopFixture) addPart(t *testing.T, id, name string, price int64) {
	t.Helper()
	if _, err := f.catalog.CreatePart(context.Background(), entities.SparePart{ID: id, Name: name, Price: decimal.NewFromInt(price)}); err != nil {
		t.Fatalf("seed part: %v", err)
	}
}

// postJob creates a work order with labor and one part line and returns the invoice.
func (f *shopFixture) postJob(t *testing.T, vehicleID string, labor int64, partID string, qty int, unitPrice int64) WorkOrderResult {
	t.Helper()
	res, err := f.workOrders.CreateWorkOrder(context.Background(), CreateWorkOrderInput{
		VehicleID:   vehicleID,
		Description: "Cambio de aceite",
		LaborCost:   decimal.NewFromInt(labor),
		Lines: []WorkOrderLineInput{
			{PartID: partID, Quantity: qty, UnitPrice: decimal.NewNullDecimal(decimal.NewFromInt(unitPrice))},
		},
	})
	if err != nil {
		t.Fatalf("create work order: %v", err)
	}
	return res
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
