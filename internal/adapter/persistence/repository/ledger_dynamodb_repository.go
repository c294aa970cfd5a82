package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/infrastructure/config"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// maxTransactItems is the DynamoDB limit for a single TransactWriteItems call.
const maxTransactItems = 100

var ErrUnitOfWorkTooLarge = errors.New("unit of work exceeds the DynamoDB transaction limit")

type ledgerTables struct {
	workOrders   string
	invoices     string
	invoiceLines string
	payments     string
	openInvoices string
	completions  string
}

// LedgerDynamoRepository runs each unit of work as one TransactWriteItems
// call. Reads are strongly consistent; every invoice read inside the unit is
// guarded on its version at commit, so a concurrent writer makes the later
// commit fail instead of being overwritten.
type LedgerDynamoRepository struct {
	client DynamoDBAPI
	tables ledgerTables
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(client DynamoDBAPI, tables config.Tables) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		client: client,
		tables: ledgerTables{
			workOrders:   tables.WorkOrders,
			invoices:     tables.Invoices,
			invoiceLines: tables.InvoiceLines,
			payments:     tables.Payments,
			openInvoices: tables.OpenInvoices,
			completions:  tables.Completions,
		},
	}
}

func (r *LedgerDynamoRepository) WithinUnitOfWork(ctx context.Context, fn func(ctx context.Context, tx interfaces.ILedgerTx) error) error {
	tx := newDynamoLedgerTx(r.client, r.tables)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit(ctx)
}

func (r *LedgerDynamoRepository) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	if id == "" {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	found, err := getItem(ctx, r.client, r.tables.invoices, map[string]types.AttributeValue{"id": stringAttr(id)}, &it)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *LedgerDynamoRepository) ListInvoices(ctx context.Context) ([]entities.Invoice, error) {
	var items []invoiceItem
	if err := scanAll(ctx, r.client, r.tables.invoices, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		out = append(out, fromInvoiceItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *LedgerDynamoRepository) ListInvoiceLines(ctx context.Context, invoiceID string) ([]entities.InvoiceLine, error) {
	return queryInvoiceLines(ctx, r.client, r.tables.invoiceLines, invoiceID)
}

func (r *LedgerDynamoRepository) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	return queryPayments(ctx, r.client, r.tables.payments, invoiceID)
}

func (r *LedgerDynamoRepository) SumAllLines(ctx context.Context) (decimal.Decimal, error) {
	var items []invoiceLineItem
	if err := scanAll(ctx, r.client, r.tables.invoiceLines, &items); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(fromInvoiceLineItem(it).Amount())
	}
	return total, nil
}

func (r *LedgerDynamoRepository) ListWorkOrders(ctx context.Context, limit int) ([]entities.WorkOrder, error) {
	var items []workOrderItem
	if err := scanAll(ctx, r.client, r.tables.workOrders, &items); err != nil {
		return nil, err
	}
	out := make([]entities.WorkOrder, 0, len(items))
	for _, it := range items {
		out = append(out, fromWorkOrderItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func queryInvoiceLines(ctx context.Context, client DynamoDBAPI, table, invoiceID string) ([]entities.InvoiceLine, error) {
	var items []invoiceLineItem
	if err := queryPartition(ctx, client, table, "invoice_id", invoiceID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.InvoiceLine, 0, len(items))
	for _, it := range items {
		out = append(out, fromInvoiceLineItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func queryPayments(ctx context.Context, client DynamoDBAPI, table, invoiceID string) ([]entities.Payment, error) {
	var items []paymentItem
	if err := queryPartition(ctx, client, table, "invoice_id", invoiceID, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// stagedWrite is one item of the pending transaction. onConditionFail is the
// error reported when DynamoDB cancels the transaction on this item's condition.
type stagedWrite struct {
	item            types.TransactWriteItem
	onConditionFail error
}

// trackedInvoice is an invoice the unit has read or created.
type trackedInvoice struct {
	current     entities.Invoice
	readVersion int64
	isNew       bool
	// writeIdx is the position of its Put in writes, -1 while unsaved.
	writeIdx int
}

type dynamoLedgerTx struct {
	client DynamoDBAPI
	tables ledgerTables

	writes      []stagedWrite
	invoices    map[string]*trackedInvoice
	openByVeh   map[string]string
	lines       map[string][]entities.InvoiceLine
	payments    map[string][]entities.Payment
	completions map[string]entities.WorkOrder
}

var _ interfaces.ILedgerTx = (*dynamoLedgerTx)(nil)

func newDynamoLedgerTx(client DynamoDBAPI, tables ledgerTables) *dynamoLedgerTx {
	return &dynamoLedgerTx{
		client:      client,
		tables:      tables,
		invoices:    make(map[string]*trackedInvoice),
		openByVeh:   make(map[string]string),
		lines:       make(map[string][]entities.InvoiceLine),
		payments:    make(map[string][]entities.Payment),
		completions: make(map[string]entities.WorkOrder),
	}
}

func (t *dynamoLedgerTx) FindOpenInvoice(ctx context.Context, vehicleID string) (entities.Invoice, error) {
	if id, ok := t.openByVeh[vehicleID]; ok {
		return t.GetInvoiceForUpdate(ctx, id)
	}

	var ptr openInvoiceItem
	found, err := getItem(ctx, t.client, t.tables.openInvoices, map[string]types.AttributeValue{"vehicle_id": stringAttr(vehicleID)}, &ptr)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	inv, err := t.GetInvoiceForUpdate(ctx, ptr.InvoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID != "" {
		t.openByVeh[vehicleID] = inv.ID
	}
	return inv, nil
}

func (t *dynamoLedgerTx) CreateInvoice(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	existing, err := t.FindOpenInvoice(ctx, inv.VehicleID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	inv.Version = 1
	item, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}
	ptr, err := attributevalue.MarshalMap(openInvoiceItem{VehicleID: inv.VehicleID, InvoiceID: inv.ID})
	if err != nil {
		return entities.Invoice{}, err
	}

	idx := t.stage(types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(t.tables.invoices),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, interfaces.ErrConflict)
	t.stage(types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(t.tables.openInvoices),
		Item:                     ptr,
		ConditionExpression:      aws.String("attribute_not_exists(#vehicle_id)"),
		ExpressionAttributeNames: map[string]string{"#vehicle_id": "vehicle_id"},
	}}, interfaces.ErrConflict)

	t.invoices[inv.ID] = &trackedInvoice{current: inv, readVersion: inv.Version, isNew: true, writeIdx: idx}
	t.openByVeh[inv.VehicleID] = inv.ID
	return inv, nil
}

func (t *dynamoLedgerTx) GetInvoiceForUpdate(ctx context.Context, id string) (entities.Invoice, error) {
	if tracked, ok := t.invoices[id]; ok {
		return tracked.current, nil
	}
	if id == "" {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	found, err := getItem(ctx, t.client, t.tables.invoices, map[string]types.AttributeValue{"id": stringAttr(id)}, &it)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	inv := fromInvoiceItem(it)
	t.invoices[id] = &trackedInvoice{current: inv, readVersion: inv.Version, writeIdx: -1}
	return inv, nil
}

func (t *dynamoLedgerTx) SaveInvoice(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	tracked, ok := t.invoices[inv.ID]
	if !ok {
		return entities.Invoice{}, fmt.Errorf("save invoice %s: not read in this unit of work", inv.ID)
	}
	if tracked.current.Version != inv.Version {
		return entities.Invoice{}, fmt.Errorf("save invoice %s: %w", inv.ID, interfaces.ErrConcurrentModification)
	}

	next := tracked.current
	next.Total = inv.Total
	next.Status = inv.Status
	next.UpdatedAt = inv.UpdatedAt
	next.Version++

	item, err := attributevalue.MarshalMap(toInvoiceItem(next))
	if err != nil {
		return entities.Invoice{}, err
	}

	// A new invoice keeps its creation guard; an existing one is fenced on
	// the version read at the start of the unit.
	put := &types.Put{
		TableName:                 aws.String(t.tables.invoices),
		Item:                      item,
		ConditionExpression:       aws.String("#version = :expected"),
		ExpressionAttributeNames:  map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":expected": numberAttr(tracked.readVersion)},
	}
	onFail := interfaces.ErrConcurrentModification
	if tracked.isNew {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
		put.ExpressionAttributeNames = map[string]string{"#id": "id"}
		put.ExpressionAttributeValues = nil
		onFail = interfaces.ErrConflict
	}

	if tracked.writeIdx >= 0 {
		t.writes[tracked.writeIdx] = stagedWrite{item: types.TransactWriteItem{Put: put}, onConditionFail: onFail}
	} else {
		tracked.writeIdx = t.stage(types.TransactWriteItem{Put: put}, onFail)
	}
	tracked.current = next
	return next, nil
}

func (t *dynamoLedgerTx) InsertWorkOrder(_ context.Context, wo entities.WorkOrder) error {
	item, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return err
	}
	t.stage(types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(t.tables.workOrders),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, interfaces.ErrConflict)
	return nil
}

func (t *dynamoLedgerTx) InsertInvoiceLines(_ context.Context, lines []entities.InvoiceLine) error {
	for _, line := range lines {
		item, err := attributevalue.MarshalMap(toInvoiceLineItem(line))
		if err != nil {
			return err
		}
		t.stage(types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(t.tables.invoiceLines),
			Item:                     item,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}}, interfaces.ErrConflict)
		t.lines[line.InvoiceID] = append(t.lines[line.InvoiceID], line)
	}
	return nil
}

func (t *dynamoLedgerTx) ListInvoiceLines(ctx context.Context, invoiceID string) ([]entities.InvoiceLine, error) {
	var committed []entities.InvoiceLine
	if tracked, ok := t.invoices[invoiceID]; !ok || !tracked.isNew {
		var err error
		committed, err = queryInvoiceLines(ctx, t.client, t.tables.invoiceLines, invoiceID)
		if err != nil {
			return nil, err
		}
	}
	return append(committed, t.lines[invoiceID]...), nil
}

func (t *dynamoLedgerTx) InsertPayment(_ context.Context, p entities.Payment) error {
	item, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return err
	}
	t.stage(types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(t.tables.payments),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, interfaces.ErrConflict)
	t.payments[p.InvoiceID] = append(t.payments[p.InvoiceID], p)
	return nil
}

func (t *dynamoLedgerTx) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	var committed []entities.Payment
	if tracked, ok := t.invoices[invoiceID]; !ok || !tracked.isNew {
		var err error
		committed, err = queryPayments(ctx, t.client, t.tables.payments, invoiceID)
		if err != nil {
			return nil, err
		}
	}
	return append(committed, t.payments[invoiceID]...), nil
}

func (t *dynamoLedgerTx) FindCompletion(ctx context.Context, vehicleID string) (entities.WorkOrder, error) {
	if wo, ok := t.completions[vehicleID]; ok {
		return wo, nil
	}

	var c completionItem
	found, err := getItem(ctx, t.client, t.tables.completions, map[string]types.AttributeValue{"vehicle_id": stringAttr(vehicleID)}, &c)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	var it workOrderItem
	found, err = getItem(ctx, t.client, t.tables.workOrders, map[string]types.AttributeValue{"id": stringAttr(c.WorkOrderID)}, &it)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (t *dynamoLedgerTx) InsertCompletion(ctx context.Context, wo entities.WorkOrder) error {
	if _, ok := t.completions[wo.VehicleID]; ok {
		return fmt.Errorf("completion for vehicle %s: %w", wo.VehicleID, interfaces.ErrConflict)
	}
	item, err := attributevalue.MarshalMap(completionItem{
		VehicleID:   wo.VehicleID,
		WorkOrderID: wo.ID,
		CreatedAt:   formatTime(wo.CreatedAt),
	})
	if err != nil {
		return err
	}
	t.stage(types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(t.tables.completions),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#vehicle_id)"),
		ExpressionAttributeNames: map[string]string{"#vehicle_id": "vehicle_id"},
	}}, interfaces.ErrConflict)
	if err := t.InsertWorkOrder(ctx, wo); err != nil {
		return err
	}
	t.completions[wo.VehicleID] = wo
	return nil
}

func (t *dynamoLedgerTx) stage(item types.TransactWriteItem, onConditionFail error) int {
	t.writes = append(t.writes, stagedWrite{item: item, onConditionFail: onConditionFail})
	return len(t.writes) - 1
}

// pendingItems adds a version check for every invoice read but not saved, so
// units that only read an invoice still conflict with writers of it.
func (t *dynamoLedgerTx) pendingItems() []stagedWrite {
	out := append([]stagedWrite(nil), t.writes...)

	ids := make([]string, 0, len(t.invoices))
	for id, tracked := range t.invoices {
		if !tracked.isNew && tracked.writeIdx < 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		out = append(out, stagedWrite{
			item: types.TransactWriteItem{ConditionCheck: &types.ConditionCheck{
				TableName:                 aws.String(t.tables.invoices),
				Key:                       map[string]types.AttributeValue{"id": stringAttr(id)},
				ConditionExpression:       aws.String("#version = :expected"),
				ExpressionAttributeNames:  map[string]string{"#version": "version"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":expected": numberAttr(t.invoices[id].readVersion)},
			}},
			onConditionFail: interfaces.ErrConcurrentModification,
		})
	}
	return out
}

func (t *dynamoLedgerTx) commit(ctx context.Context) error {
	if len(t.writes) == 0 {
		return nil
	}
	staged := t.pendingItems()
	if len(staged) > maxTransactItems {
		return fmt.Errorf("%w: %d items", ErrUnitOfWorkTooLarge, len(staged))
	}

	items := make([]types.TransactWriteItem, 0, len(staged))
	for _, w := range staged {
		items = append(items, w.item)
	}
	_, err := t.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		mapped := translateTransactionError(err, staged)
		log.Printf("[ledger][dynamodb] transaction failed items=%d err=%v", len(items), mapped)
		return mapped
	}
	return nil
}

// translateTransactionError maps the per-item cancellation reasons onto the
// storage sentinels.
func translateTransactionError(err error, staged []stagedWrite) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		var conflict *types.TransactionConflictException
		if errors.As(err, &conflict) {
			return fmt.Errorf("%w: %v", interfaces.ErrConcurrentModification, err)
		}
		return err
	}

	var sentinel error
	for i, reason := range tce.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed":
			if i < len(staged) && staged[i].onConditionFail != nil {
				// A version fence failing explains any uniqueness failure too.
				if sentinel == nil || errors.Is(staged[i].onConditionFail, interfaces.ErrConcurrentModification) {
					sentinel = staged[i].onConditionFail
				}
			}
		case "TransactionConflict":
			sentinel = interfaces.ErrConcurrentModification
		}
	}
	if sentinel == nil {
		return err
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
