package postgres

import (
	"context"
	"errors"
	"fmt"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ILedgerRepository = (*LedgerRepository)(nil)

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) WithinUnitOfWork(ctx context.Context, fn func(ctx context.Context, tx interfaces.ILedgerTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return translate("begin unit of work", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, &ledgerTx{q: tx}); err != nil {
		return err
	}
	return translate("commit unit of work", tx.Commit(ctx))
}

const invoiceColumns = `id, vehicle_id, to_char(date, 'YYYY-MM-DD'), total, status, version, created_at, updated_at`

func scanInvoice(row pgx.Row) (entities.Invoice, error) {
	var inv entities.Invoice
	var status string
	err := row.Scan(&inv.ID, &inv.VehicleID, &inv.Date, &inv.Total, &status, &inv.Version, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Invoice{}, nil
	}
	inv.Status = entities.InvoiceStatus(status)
	return inv, err
}

func (r *LedgerRepository) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	return inv, translate("get invoice", err)
}

func (r *LedgerRepository) ListInvoices(ctx context.Context) ([]entities.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at, id`)
	if err != nil {
		return nil, translate("list invoices", err)
	}
	defer rows.Close()

	out := []entities.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, translate("scan invoice", err)
		}
		out = append(out, inv)
	}
	return out, translate("list invoices", rows.Err())
}

func (r *LedgerRepository) ListInvoiceLines(ctx context.Context, invoiceID string) ([]entities.InvoiceLine, error) {
	return listInvoiceLines(ctx, r.pool, invoiceID)
}

func (r *LedgerRepository) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	return listPayments(ctx, r.pool, invoiceID)
}

func (r *LedgerRepository) SumAllLines(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(quantity * unit_price), 0) FROM invoice_lines`).Scan(&total)
	if err != nil {
		return decimal.Zero, translate("sum invoice lines", err)
	}
	return total, nil
}

func (r *LedgerRepository) ListWorkOrders(ctx context.Context, limit int) ([]entities.WorkOrder, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, vehicle_id, kind, to_char(date, 'YYYY-MM-DD'), description, labor_cost, created_at
		FROM work_orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, translate("list work orders", err)
	}

	out := []entities.WorkOrder{}
	for rows.Next() {
		var wo entities.WorkOrder
		var kind string
		if err := rows.Scan(&wo.ID, &wo.VehicleID, &kind, &wo.Date, &wo.Description, &wo.LaborCost, &wo.CreatedAt); err != nil {
			rows.Close()
			return nil, translate("scan work order", err)
		}
		wo.Kind = entities.WorkOrderKind(kind)
		wo.Lines = []entities.WorkOrderLine{}
		out = append(out, wo)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, translate("list work orders", err)
	}

	for i := range out {
		lines, err := listWorkOrderLines(ctx, r.pool, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Lines = lines
	}
	return out, nil
}

func listWorkOrderLines(ctx context.Context, q querier, workOrderID string) ([]entities.WorkOrderLine, error) {
	rows, err := q.Query(ctx, `
		SELECT part_id, quantity, unit_price FROM work_order_lines
		WHERE work_order_id = $1 ORDER BY position
	`, workOrderID)
	if err != nil {
		return nil, translate("list work order lines", err)
	}
	defer rows.Close()

	out := []entities.WorkOrderLine{}
	for rows.Next() {
		var l entities.WorkOrderLine
		if err := rows.Scan(&l.PartID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, translate("scan work order line", err)
		}
		out = append(out, l)
	}
	return out, translate("list work order lines", rows.Err())
}

func listInvoiceLines(ctx context.Context, q querier, invoiceID string) ([]entities.InvoiceLine, error) {
	rows, err := q.Query(ctx, `
		SELECT id, invoice_id, work_order_id, kind, concept, quantity, unit_price, created_at
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY seq
	`, invoiceID)
	if err != nil {
		return nil, translate("list invoice lines", err)
	}
	defer rows.Close()

	out := []entities.InvoiceLine{}
	for rows.Next() {
		var l entities.InvoiceLine
		var kind string
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.WorkOrderID, &kind, &l.Concept, &l.Quantity, &l.UnitPrice, &l.CreatedAt); err != nil {
			return nil, translate("scan invoice line", err)
		}
		l.Kind = entities.InvoiceLineKind(kind)
		out = append(out, l)
	}
	return out, translate("list invoice lines", rows.Err())
}

func listPayments(ctx context.Context, q querier, invoiceID string) ([]entities.Payment, error) {
	rows, err := q.Query(ctx, `
		SELECT id, invoice_id, to_char(date, 'YYYY-MM-DD'), amount, method, provider_payment_id, created_at
		FROM payments WHERE invoice_id = $1 ORDER BY seq
	`, invoiceID)
	if err != nil {
		return nil, translate("list payments", err)
	}
	defer rows.Close()

	out := []entities.Payment{}
	for rows.Next() {
		var p entities.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Date, &p.Amount, &p.Method, &p.ProviderPaymentID, &p.CreatedAt); err != nil {
			return nil, translate("scan payment", err)
		}
		out = append(out, p)
	}
	return out, translate("list payments", rows.Err())
}

type ledgerTx struct {
	q pgx.Tx
}

var _ interfaces.ILedgerTx = (*ledgerTx)(nil)

func (t *ledgerTx) FindOpenInvoice(ctx context.Context, vehicleID string) (entities.Invoice, error) {
	inv, err := scanInvoice(t.q.QueryRow(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		WHERE vehicle_id = $1 AND status IN ('emitida', 'pagada')
		FOR UPDATE
	`, vehicleID))
	return inv, translate("find open invoice", err)
}

// CreateInvoice relies on the partial unique index: a concurrent insert for
// the same vehicle waits, then falls into DO NOTHING and the winner is read back.
func (t *ledgerTx) CreateInvoice(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.Version = 1
	created, err := scanInvoice(t.q.QueryRow(ctx, `
		INSERT INTO invoices (id, vehicle_id, date, total, status, version, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING
		RETURNING `+invoiceColumns,
		inv.ID, inv.VehicleID, inv.Date, inv.Total, string(inv.Status), inv.Version, inv.CreatedAt, inv.UpdatedAt))
	if err != nil {
		return entities.Invoice{}, translate("create invoice", err)
	}
	if created.ID != "" {
		return created, nil
	}

	existing, err := t.FindOpenInvoice(ctx, inv.VehicleID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID == "" {
		return entities.Invoice{}, fmt.Errorf("create invoice %s: %w", inv.ID, interfaces.ErrConflict)
	}
	return existing, nil
}

func (t *ledgerTx) GetInvoiceForUpdate(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := scanInvoice(t.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id))
	return inv, translate("get invoice for update", err)
}

func (t *ledgerTx) SaveInvoice(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	saved, err := scanInvoice(t.q.QueryRow(ctx, `
		UPDATE invoices SET total = $3, status = $4, updated_at = $5, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING `+invoiceColumns,
		inv.ID, inv.Version, inv.Total, string(inv.Status), inv.UpdatedAt))
	if err != nil {
		return entities.Invoice{}, translate("save invoice", err)
	}
	if saved.ID == "" {
		return entities.Invoice{}, fmt.Errorf("save invoice %s: %w", inv.ID, interfaces.ErrConcurrentModification)
	}
	return saved, nil
}

func (t *ledgerTx) InsertWorkOrder(ctx context.Context, wo entities.WorkOrder) error {
	_, err := t.q.Exec(ctx, `
		INSERT INTO work_orders (id, vehicle_id, kind, date, description, labor_cost, created_at)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7)
	`, wo.ID, wo.VehicleID, string(wo.Kind), wo.Date, wo.Description, wo.LaborCost, wo.CreatedAt)
	if err != nil {
		return translate("insert work order", err)
	}

	if len(wo.Lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, l := range wo.Lines {
		batch.Queue(`
			INSERT INTO work_order_lines (work_order_id, position, part_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, wo.ID, i, l.PartID, l.Quantity, l.UnitPrice)
	}
	return translate("insert work order lines", t.q.SendBatch(ctx, batch).Close())
}

func (t *ledgerTx) InsertInvoiceLines(ctx context.Context, lines []entities.InvoiceLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(`
			INSERT INTO invoice_lines (id, invoice_id, work_order_id, kind, concept, quantity, unit_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, l.ID, l.InvoiceID, l.WorkOrderID, string(l.Kind), l.Concept, l.Quantity, l.UnitPrice, l.CreatedAt)
	}
	return translate("insert invoice lines", t.q.SendBatch(ctx, batch).Close())
}

func (t *ledgerTx) ListInvoiceLines(ctx context.Context, invoiceID string) ([]entities.InvoiceLine, error) {
	return listInvoiceLines(ctx, t.q, invoiceID)
}

func (t *ledgerTx) InsertPayment(ctx context.Context, p entities.Payment) error {
	_, err := t.q.Exec(ctx, `
		INSERT INTO payments (id, invoice_id, date, amount, method, provider_payment_id, created_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7)
	`, p.ID, p.InvoiceID, p.Date, p.Amount, p.Method, p.ProviderPaymentID, p.CreatedAt)
	return translate("insert payment", err)
}

func (t *ledgerTx) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	return listPayments(ctx, t.q, invoiceID)
}

func (t *ledgerTx) FindCompletion(ctx context.Context, vehicleID string) (entities.WorkOrder, error) {
	var wo entities.WorkOrder
	var kind string
	err := t.q.QueryRow(ctx, `
		SELECT id, vehicle_id, kind, to_char(date, 'YYYY-MM-DD'), description, labor_cost, created_at
		FROM work_orders WHERE vehicle_id = $1 AND kind = 'terminado'
	`, vehicleID).Scan(&wo.ID, &wo.VehicleID, &kind, &wo.Date, &wo.Description, &wo.LaborCost, &wo.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.WorkOrder{}, nil
	}
	if err != nil {
		return entities.WorkOrder{}, translate("find completion", err)
	}
	wo.Kind = entities.WorkOrderKind(kind)
	wo.Lines = []entities.WorkOrderLine{}
	return wo, nil
}

// InsertCompletion leans on work_orders_one_completion for uniqueness.
func (t *ledgerTx) InsertCompletion(ctx context.Context, wo entities.WorkOrder) error {
	wo.Kind = entities.WorkOrderKindTerminado
	return t.InsertWorkOrder(ctx, wo)
}
