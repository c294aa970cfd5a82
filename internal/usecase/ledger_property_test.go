package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"taller_mecanico/internal/domain/billing"
	"taller_mecanico/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// checkLedgerInvariants asserts the invoice rules over the whole store.
func checkLedgerInvariants(t *testing.T, f *shopFixture, everPaid map[string]bool) {
	t.Helper()
	ctx := context.Background()

	invoices, err := f.ledger.ListInvoices(ctx)
	require.NoError(t, err)

	openPerVehicle := map[string]int{}
	for _, inv := range invoices {
		lines, err := f.ledger.ListInvoiceLines(ctx, inv.ID)
		require.NoError(t, err)
		require.True(t, inv.Total.Equal(billing.SumLines(lines)), "invoice %s total %s != sum of lines", inv.ID, inv.Total)

		if inv.Status.IsOpen() {
			openPerVehicle[inv.VehicleID]++
		}

		payments, err := f.ledger.ListPayments(ctx, inv.ID)
		require.NoError(t, err)
		paid := billing.SumPayments(payments)

		if everPaid[inv.ID] {
			require.Equal(t, entities.InvoiceStatusPagada, inv.Status, "invoice %s left pagada", inv.ID)
		}
		if inv.Status == entities.InvoiceStatusEmitida && len(payments) > 0 {
			require.True(t, paid.LessThan(inv.Total), "invoice %s is emitida with paid %s >= total %s", inv.ID, paid, inv.Total)
		}
		if inv.IsPaid() {
			everPaid[inv.ID] = true
		}
	}
	for vehicleID, n := range openPerVehicle {
		require.LessOrEqual(t, n, 1, "vehicle %s has %d open invoices", vehicleID, n)
	}
}

func TestLedgerProperties_RandomSequences(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			ctx := context.Background()
			f := newShopFixture(t, nil)

			vehicles := []string{"veh-1", "veh-2", "veh-3"}
			for i, id := range vehicles {
				f.addVehicle(t, id, fmt.Sprintf("AA%03dBB", i), "Modelo")
			}
			parts := []string{"p-1", "p-2"}
			f.addPart(t, "p-1", "Filtro", 35)
			f.addPart(t, "p-2", "Correa", 120)

			everPaid := map[string]bool{}
			for step := 0; step < 60; step++ {
				vehicleID := vehicles[rng.Intn(len(vehicles))]
				switch rng.Intn(3) {
				case 0, 1:
					lines := make([]WorkOrderLineInput, rng.Intn(4))
					for i := range lines {
						lines[i] = WorkOrderLineInput{PartID: parts[rng.Intn(len(parts))], Quantity: rng.Intn(4) - 1}
						if rng.Intn(2) == 0 {
							lines[i].UnitPrice = decimal.NewNullDecimal(decimal.New(int64(rng.Intn(10000)), -2))
						}
					}
					_, err := f.workOrders.CreateWorkOrder(ctx, CreateWorkOrderInput{
						VehicleID: vehicleID,
						LaborCost: decimal.NewFromInt(int64(rng.Intn(300) - 50)),
						Lines:     lines,
					})
					require.NoError(t, err)
				case 2:
					inv, err := f.invoices.EnsureOpenInvoice(ctx, vehicleID)
					require.NoError(t, err)
					_, err = f.invoices.RecordPayment(ctx, inv.ID, PaymentInput{
						Date:   "2024-05-10",
						Amount: decimal.New(int64(1+rng.Intn(20000)), -2),
						Method: "efectivo",
					})
					require.NoError(t, err)
				}
				checkLedgerInvariants(t, f, everPaid)
			}
		})
	}
}

func TestLedgerProperties_ConcurrentPaymentsSerialise(t *testing.T) {
	ctx := context.Background()
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Filtro", 50)
	job := f.postJob(t, "veh-1", 100, "p-1", 2, 50)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.invoices.RecordPayment(ctx, job.Invoice.ID, PaymentInput{Date: "2024-05-10", Amount: dec(25), Method: "efectivo"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	detail, err := f.invoices.GetInvoice(ctx, job.Invoice.ID)
	require.NoError(t, err)
	require.Len(t, detail.Payments, 8)
	require.True(t, detail.Paid.Equal(dec(200)))
	require.Equal(t, entities.InvoiceStatusPagada, detail.Invoice.Status)
}

func TestLedgerProperties_ConcurrentWorkOrdersShareOneInvoice(t *testing.T) {
	ctx := context.Background()
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.workOrders.CreateWorkOrder(ctx, CreateWorkOrderInput{VehicleID: "veh-1", LaborCost: dec(10)})
		}()
	}
	wg.Wait()

	invoices, err := f.ledger.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	require.True(t, invoices[0].Total.Equal(dec(100)))
}
