package postgres_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"taller_mecanico/internal/adapter/persistence/postgres"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := postgres.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	_, err = pool.Exec(ctx, `
		TRUNCATE payments, invoice_lines, invoices, work_order_lines, work_orders,
			vehicles, clients, spare_parts, users, calendar_events
	`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

type pgShop struct {
	catalog    *postgres.CatalogRepository
	ledger     *postgres.LedgerRepository
	workOrders *usecase.WorkOrderUseCase
	invoices   *usecase.InvoiceUseCase
}

func newPgShop(t *testing.T) *pgShop {
	pool := setupTestDB(t)
	clock := usecase.Clock{}
	catalog := postgres.NewCatalogRepository(pool)
	ledger := postgres.NewLedgerRepository(pool)
	return &pgShop{
		catalog:    catalog,
		ledger:     ledger,
		workOrders: usecase.NewWorkOrderUseCase(catalog, ledger, clock),
		invoices:   usecase.NewInvoiceUseCase(catalog, ledger, nil, nil, clock),
	}
}

func (s *pgShop) seed(t *testing.T) (vehicleID, partID string) {
	t.Helper()
	ctx := context.Background()
	vehicleID, partID = uuid.NewString(), uuid.NewString()
	_, err := s.catalog.CreateVehicle(ctx, entities.Vehicle{ID: vehicleID, Plate: "AB123CD", Model: "Fiat Uno"})
	require.NoError(t, err)
	_, err = s.catalog.CreatePart(ctx, entities.SparePart{ID: partID, Name: "Filtro de aceite", Price: decimal.NewFromInt(3500)})
	require.NoError(t, err)
	return vehicleID, partID
}

func TestPostgresLedger_WorkOrderToCompletion(t *testing.T) {
	s := newPgShop(t)
	ctx := context.Background()
	vehicleID, partID := s.seed(t)

	res, err := s.workOrders.CreateWorkOrder(ctx, usecase.CreateWorkOrderInput{
		VehicleID:   vehicleID,
		Description: "Cambio de aceite",
		LaborCost:   decimal.NewFromInt(10000),
		Lines:       []usecase.WorkOrderLineInput{{PartID: partID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.True(t, res.Invoice.Total.Equal(decimal.NewFromInt(17000)))

	again, err := s.invoices.EnsureOpenInvoice(ctx, vehicleID)
	require.NoError(t, err)
	require.Equal(t, res.Invoice.ID, again.ID)

	pay, err := s.invoices.RecordPayment(ctx, res.Invoice.ID, usecase.PaymentInput{Date: "2024-05-10", Amount: decimal.NewFromInt(17000), Method: "efectivo"})
	require.NoError(t, err)
	require.Equal(t, entities.InvoiceStatusPagada, pay.Invoice.Status)

	first, err := s.invoices.MarkTerminated(ctx, res.Invoice.ID)
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := s.invoices.MarkTerminated(ctx, res.Invoice.ID)
	require.NoError(t, err)
	require.False(t, second.Created)
	require.Equal(t, first.Record.ID, second.Record.ID)

	history, err := s.workOrders.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, entities.WorkOrderKindTerminado, history[0].Kind)
}

func TestPostgresLedger_ConcurrentPaymentsSerialise(t *testing.T) {
	s := newPgShop(t)
	ctx := context.Background()
	vehicleID, partID := s.seed(t)

	res, err := s.workOrders.CreateWorkOrder(ctx, usecase.CreateWorkOrderInput{
		VehicleID: vehicleID,
		LaborCost: decimal.NewFromInt(1000),
		Lines:     []usecase.WorkOrderLineInput{{PartID: partID, Quantity: 1}},
	})
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.invoices.RecordPayment(ctx, res.Invoice.ID, usecase.PaymentInput{Date: "2024-05-10", Amount: decimal.NewFromInt(100), Method: "efectivo"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		if !errors.Is(err, usecase.ErrConcurrentUpdate) {
			t.Fatalf("unexpected error %v", err)
		}
	}

	payments, err := s.ledger.ListPayments(ctx, res.Invoice.ID)
	require.NoError(t, err)
	require.Len(t, payments, ok)
}

func TestPostgresLedger_SecondOpenInvoiceRejected(t *testing.T) {
	s := newPgShop(t)
	ctx := context.Background()
	vehicleID, _ := s.seed(t)

	first, err := s.invoices.EnsureOpenInvoice(ctx, vehicleID)
	require.NoError(t, err)

	err = s.ledger.WithinUnitOfWork(ctx, func(ctx context.Context, tx interfaces.ILedgerTx) error {
		inv, err := tx.CreateInvoice(ctx, entities.Invoice{ID: uuid.NewString(), VehicleID: vehicleID, Date: "2024-05-11", Status: entities.InvoiceStatusEmitida})
		if err != nil {
			return err
		}
		require.Equal(t, first.ID, inv.ID, "existing open invoice is returned")
		return nil
	})
	require.NoError(t, err)

	invoices, err := s.ledger.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	total, err := s.ledger.SumAllLines(ctx)
	require.NoError(t, err)
	require.True(t, total.IsZero())
}

func TestPostgresCalendarAndUsers(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	cal := postgres.NewCalendarRepository(pool)
	require.NoError(t, cal.Upsert(ctx, entities.CalendarEvent{Date: "2024-05-10", Text: "Turno Fiat"}))
	require.NoError(t, cal.Upsert(ctx, entities.CalendarEvent{Date: "2024-05-10", Text: "Turno Fiat Uno"}))
	require.NoError(t, cal.Upsert(ctx, entities.CalendarEvent{Date: "2024-06-01", Text: "Otro mes"}))

	events, err := cal.ListMonth(ctx, 2024, 5)
	require.NoError(t, err)
	require.Equal(t, []entities.CalendarEvent{{Date: "2024-05-10", Text: "Turno Fiat Uno"}}, events)

	require.NoError(t, cal.Delete(ctx, "2024-05-10"))
	events, err = cal.ListMonth(ctx, 2024, 5)
	require.NoError(t, err)
	require.Empty(t, events)

	users := postgres.NewUserRepository(pool)
	_, err = users.Create(ctx, entities.User{ID: uuid.NewString(), Username: "Admin", PasswordHash: "x", Role: "admin"})
	require.NoError(t, err)
	_, err = users.Create(ctx, entities.User{ID: uuid.NewString(), Username: "admin", PasswordHash: "y", Role: "admin"})
	if !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	got, err := users.GetByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	require.Equal(t, "Admin", got.Username)
}
