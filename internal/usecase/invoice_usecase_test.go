package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"
	mock_interfaces "taller_mecanico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pay(t *testing.T, uc *InvoiceUseCase, invoiceID string, amount int64) PaymentResult {
	t.Helper()
	res, err := uc.RecordPayment(context.Background(), invoiceID, PaymentInput{Date: "2024-05-10", Amount: dec(amount), Method: "efectivo"})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	return res
}

func TestInvoiceUseCase_RecordPayment_PaidGate(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Filtro", 50)
	job := f.postJob(t, "veh-1", 100, "p-1", 2, 50)

	partial := pay(t, f.invoices, job.Invoice.ID, 150)
	if partial.Invoice.Status != entities.InvoiceStatusEmitida {
		t.Fatalf("expected emitida after partial payment, got %s", partial.Invoice.Status)
	}

	settled := pay(t, f.invoices, job.Invoice.ID, 50)
	if settled.Invoice.Status != entities.InvoiceStatusPagada {
		t.Fatalf("expected pagada, got %s", settled.Invoice.Status)
	}
	if !settled.Paid.Equal(dec(200)) {
		t.Fatalf("expected paid 200, got %s", settled.Paid)
	}

	extra := pay(t, f.invoices, job.Invoice.ID, 50)
	if extra.Invoice.Status != entities.InvoiceStatusPagada {
		t.Fatalf("expected pagada to stick, got %s", extra.Invoice.Status)
	}
	if !extra.Paid.Equal(dec(250)) {
		t.Fatalf("expected paid 250, got %s", extra.Paid)
	}

	detail, err := f.invoices.GetInvoice(context.Background(), job.Invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if len(detail.Payments) != 3 || len(detail.Lines) != 2 || !detail.Invoice.Total.Equal(dec(200)) {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	t.Run("more work after payment keeps pagada", func(t *testing.T) {
		more := f.postJob(t, "veh-1", 500, "p-1", 1, 50)
		if more.Invoice.ID != job.Invoice.ID || more.Invoice.Status != entities.InvoiceStatusPagada {
			t.Fatalf("expected the paid invoice to stay open and paid, got %+v", more.Invoice)
		}
	})
}

func TestInvoiceUseCase_RecordPayment_FullPaymentScenario(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Filtro", 50)
	job := f.postJob(t, "veh-1", 100, "p-1", 2, 50)

	first := pay(t, f.invoices, job.Invoice.ID, 200)
	if first.Invoice.Status != entities.InvoiceStatusPagada {
		t.Fatalf("expected pagada, got %s", first.Invoice.Status)
	}
	second := pay(t, f.invoices, job.Invoice.ID, 50)
	if second.Invoice.Status != entities.InvoiceStatusPagada || !second.Paid.Equal(dec(250)) {
		t.Fatalf("expected pagada with 250 paid, got %s / %s", second.Invoice.Status, second.Paid)
	}
}

func TestInvoiceUseCase_RecordPayment_Validation(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Filtro", 50)
	job := f.postJob(t, "veh-1", 100, "p-1", 2, 50)

	cases := []struct {
		name string
		id   string
		in   PaymentInput
		want error
	}{
		{name: "missing invoice id", id: " ", in: PaymentInput{Date: "2024-05-10", Amount: dec(1), Method: "efectivo"}, want: ErrInvalidInvoiceID},
		{name: "malformed date", id: job.Invoice.ID, in: PaymentInput{Date: "2024-13-40", Amount: dec(10), Method: "efectivo"}, want: ErrInvalidPaymentDate},
		{name: "empty date", id: job.Invoice.ID, in: PaymentInput{Amount: dec(10), Method: "efectivo"}, want: ErrInvalidPaymentDate},
		{name: "zero amount", id: job.Invoice.ID, in: PaymentInput{Date: "2024-05-10", Method: "efectivo"}, want: ErrInvalidPaymentAmount},
		{name: "negative amount", id: job.Invoice.ID, in: PaymentInput{Date: "2024-05-10", Amount: dec(-5), Method: "efectivo"}, want: ErrInvalidPaymentAmount},
		{name: "missing method", id: job.Invoice.ID, in: PaymentInput{Date: "2024-05-10", Amount: dec(10), Method: "  "}, want: ErrInvalidPaymentMethod},
		{name: "unknown invoice", id: "inv-404", in: PaymentInput{Date: "2024-05-10", Amount: dec(10), Method: "efectivo"}, want: ErrInvoiceNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.invoices.RecordPayment(context.Background(), tc.id, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	payments, _ := f.ledger.ListPayments(context.Background(), job.Invoice.ID)
	if len(payments) != 0 {
		t.Fatalf("expected no payment to be recorded, got %d", len(payments))
	}
}

func TestInvoiceUseCase_RecordPayment_NormalisesDate(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Filtro", 50)
	job := f.postJob(t, "veh-1", 100, "p-1", 2, 50)

	res, err := f.invoices.RecordPayment(context.Background(), job.Invoice.ID, PaymentInput{Date: "05/03/2024", Amount: dec(20), Method: "transferencia"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Payment.Date != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %s", res.Payment.Date)
	}
}

func TestInvoiceUseCase_RecordPayment_Card(t *testing.T) {
	setup := func(t *testing.T) (*shopFixture, *mock_interfaces.MockIPaymentGateway, string) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		f := newShopFixture(t, gateway)
		f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
		f.addPart(t, "p-1", "Filtro", 50)
		job := f.postJob(t, "veh-1", 100, "p-1", 2, 50)
		return f, gateway, job.Invoice.ID
	}

	t.Run("approved charge is recorded with the provider id", func(t *testing.T) {
		f, gateway, invoiceID := setup(t)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload is not json: %v", err)
				}
				if body["external_reference"] != invoiceID || body["transaction_amount"] != float64(200) {
					t.Fatalf("unexpected payload: %v", body)
				}
				return "mp-123", "approved", json.RawMessage(`{"id":123}`), nil
			})

		res, err := f.invoices.RecordPayment(context.Background(), invoiceID, PaymentInput{
			Date: "2024-05-10", Amount: dec(200), Method: PaymentMethodMercadoPago,
			MPPayload: json.RawMessage(`{"payment_method_id":"visa","token":"tok"}`),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if res.Payment.ProviderPaymentID != "mp-123" || res.Invoice.Status != entities.InvoiceStatusPagada {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("declined charge records nothing", func(t *testing.T) {
		f, gateway, invoiceID := setup(t)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "rejected", nil, nil)

		_, err := f.invoices.RecordPayment(context.Background(), invoiceID, PaymentInput{Date: "2024-05-10", Amount: dec(200), Method: "MercadoPago"})
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
		payments, _ := f.ledger.ListPayments(context.Background(), invoiceID)
		if len(payments) != 0 {
			t.Fatalf("expected no payments, got %d", len(payments))
		}
	})

	t.Run("gateway error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
			{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
			{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
			{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f, gateway, invoiceID := setup(t)
				gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

				_, err := f.invoices.RecordPayment(context.Background(), invoiceID, PaymentInput{Date: "2024-05-10", Amount: dec(10), Method: PaymentMethodMercadoPago})
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		f, _, invoiceID := setup(t)
		_, err := f.invoices.RecordPayment(context.Background(), invoiceID, PaymentInput{
			Date: "2024-05-10", Amount: dec(10), Method: PaymentMethodMercadoPago, MPPayload: json.RawMessage(`[1,2]`),
		})
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("unknown invoice is not charged", func(t *testing.T) {
		f, _, _ := setup(t)
		_, err := f.invoices.RecordPayment(context.Background(), "inv-404", PaymentInput{Date: "2024-05-10", Amount: dec(10), Method: PaymentMethodMercadoPago})
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		f := newShopFixture(t, nil)
		f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
		inv, err := f.invoices.EnsureOpenInvoice(context.Background(), "veh-1")
		if err != nil {
			t.Fatalf("ensure invoice: %v", err)
		}
		_, err = f.invoices.RecordPayment(context.Background(), inv.ID, PaymentInput{Date: "2024-05-10", Amount: dec(10), Method: PaymentMethodMercadoPago})
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestInvoiceUseCase_MarkTerminated(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Filtro", 50)
	job := f.postJob(t, "veh-1", 100, "p-1", 2, 50)

	t.Run("unpaid invoice is rejected", func(t *testing.T) {
		_, err := f.invoices.MarkTerminated(context.Background(), job.Invoice.ID)
		if !errors.Is(err, ErrInvoiceNotPaid) {
			t.Fatalf("expected ErrInvoiceNotPaid, got %v", err)
		}
		history, _ := f.workOrders.History(context.Background(), 0)
		for _, h := range history {
			if h.IsCompletion() {
				t.Fatalf("expected no completion record, got %+v", h)
			}
		}
	})

	t.Run("unknown invoice", func(t *testing.T) {
		_, err := f.invoices.MarkTerminated(context.Background(), "inv-404")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("paid invoice records completion once", func(t *testing.T) {
		pay(t, f.invoices, job.Invoice.ID, 200)

		first, err := f.invoices.MarkTerminated(context.Background(), job.Invoice.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !first.Created || first.Record.Kind != entities.WorkOrderKindTerminado {
			t.Fatalf("expected a new completion record, got %+v", first)
		}
		if first.Record.Description != "Trabajo terminado: AB123CD Fiat Uno" || !first.Record.LaborCost.IsZero() {
			t.Fatalf("unexpected completion record: %+v", first.Record)
		}

		second, err := f.invoices.MarkTerminated(context.Background(), job.Invoice.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if second.Created || second.Record.ID != first.Record.ID {
			t.Fatalf("expected already recorded, got %+v", second)
		}

		history, _ := f.workOrders.History(context.Background(), 0)
		completions := 0
		for _, h := range history {
			if h.IsCompletion() {
				completions++
			}
		}
		if completions != 1 {
			t.Fatalf("expected exactly one completion record, got %d", completions)
		}
		if history[0].ID != first.Record.ID || history[0].Plate != "AB123CD" {
			t.Fatalf("expected completion to surface first in history, got %+v", history[0])
		}
	})
}

func TestInvoiceUseCase_MarkTerminated_ConcurrentCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogReader(ctrl)
	ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
	tx := mock_interfaces.NewMockILedgerTx(ctrl)
	clock := testClock()
	uc := NewInvoiceUseCase(catalog, ledger, nil, NewHistoryRecorder(clock), clock)

	winner := entities.WorkOrder{ID: "wo-done", VehicleID: "veh-1", Kind: entities.WorkOrderKindTerminado, Description: "Trabajo terminado: AB123CD"}

	ledger.EXPECT().WithinUnitOfWork(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, interfaces.ILedgerTx) error) error {
			return fn(ctx, tx)
		})
	tx.EXPECT().GetInvoiceForUpdate(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", VehicleID: "veh-1", Status: entities.InvoiceStatusPagada}, nil)
	catalog.EXPECT().GetVehicle(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", Plate: "AB123CD"}, nil)
	gomock.InOrder(
		tx.EXPECT().FindCompletion(gomock.Any(), "veh-1").Return(entities.WorkOrder{}, nil),
		tx.EXPECT().InsertCompletion(gomock.Any(), gomock.Any()).Return(interfaces.ErrConflict),
		tx.EXPECT().FindCompletion(gomock.Any(), "veh-1").Return(winner, nil),
	)

	res, err := uc.MarkTerminated(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("expected already recorded without error, got %v", err)
	}
	if res.Created {
		t.Fatalf("expected Created=false, got %+v", res)
	}
	if res.Record.ID != "wo-done" || res.Record.Kind != entities.WorkOrderKindTerminado {
		t.Fatalf("expected the concurrently recorded completion, got %+v", res.Record)
	}
}

func TestInvoiceUseCase_EnsureOpenInvoiceAndRecalculate(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addPart(t, "p-1", "Filtro", 50)

	opened, err := f.invoices.EnsureOpenInvoice(context.Background(), "veh-1")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if opened.Status != entities.InvoiceStatusEmitida || !opened.Total.IsZero() || opened.Date != "2024-05-10" {
		t.Fatalf("unexpected fresh invoice: %+v", opened)
	}

	again, _ := f.invoices.EnsureOpenInvoice(context.Background(), "veh-1")
	if again.ID != opened.ID {
		t.Fatalf("expected the same open invoice, got %s and %s", opened.ID, again.ID)
	}

	job := f.postJob(t, "veh-1", 100, "p-1", 2, 50)
	if job.Invoice.ID != opened.ID {
		t.Fatalf("expected the work order to land on the open invoice")
	}

	first, err := f.invoices.RecalculateTotal(context.Background(), opened.ID)
	if err != nil {
		t.Fatalf("recalc: %v", err)
	}
	second, _ := f.invoices.RecalculateTotal(context.Background(), opened.ID)
	if !first.Equal(dec(200)) || !first.Equal(second) {
		t.Fatalf("expected idempotent total 200, got %s then %s", first, second)
	}

	t.Run("errors", func(t *testing.T) {
		if _, err := f.invoices.EnsureOpenInvoice(context.Background(), "veh-404"); !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
		if _, err := f.invoices.EnsureOpenInvoice(context.Background(), ""); !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
		if _, err := f.invoices.RecalculateTotal(context.Background(), "inv-404"); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
		if _, err := f.invoices.GetInvoice(context.Background(), "inv-404"); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_ListInvoicesAndBillingTotal(t *testing.T) {
	f := newShopFixture(t, nil)
	f.addVehicle(t, "veh-1", "AB123CD", "Fiat Uno")
	f.addVehicle(t, "veh-2", "XY987ZW", "Ford Ka")
	f.addVehicle(t, "veh-3", "ZZ000ZZ", "Sin trabajos")
	f.addPart(t, "p-1", "Filtro", 50)

	a := f.postJob(t, "veh-1", 100, "p-1", 2, 50)
	f.postJob(t, "veh-2", 30, "p-1", 1, 20)
	pay(t, f.invoices, a.Invoice.ID, 60)

	rows, err := f.invoices.ListInvoices(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected one row per invoiced vehicle, got %d", len(rows))
	}
	var row entities.InvoiceSummary
	for _, r := range rows {
		if r.VehicleID == "veh-1" {
			row = r
		}
	}
	if row.Plate != "AB123CD" || row.InvoiceID != a.Invoice.ID || !row.Paid.Equal(dec(60)) || !row.Balance().Equal(dec(140)) {
		t.Fatalf("unexpected summary row: %+v", row)
	}

	total, err := f.invoices.BillingTotal(context.Background())
	if err != nil {
		t.Fatalf("billing total: %v", err)
	}
	if !total.Equal(dec(250)) {
		t.Fatalf("expected 200 + 50 = 250, got %s", total)
	}
}
