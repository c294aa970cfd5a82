package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"taller_mecanico/internal/domain/billing"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentDate   = errors.New("invalid payment date, expected YYYY-MM-DD or DD/MM/YYYY")
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")
	ErrInvalidPaymentMethod = errors.New("payment method is required")
	ErrInvoiceNotPaid       = errors.New("invoice is not paid, the job cannot be marked as completed")
	ErrRecordPayment        = errors.New("could not record payment")
	ErrMarkTerminated       = errors.New("could not mark the job as completed")
)

type PaymentInput struct {
	Date   string
	Amount decimal.Decimal
	Method string
	// MPPayload is forwarded to the card gateway when Method is mercadopago.
	MPPayload json.RawMessage
}

type PaymentResult struct {
	Payment entities.Payment
	Invoice entities.Invoice
	Paid    decimal.Decimal
}

type InvoiceDetail struct {
	Invoice  entities.Invoice
	Lines    []entities.InvoiceLine
	Payments []entities.Payment
	Paid     decimal.Decimal
}

// IInvoiceUseCase owns the invoice lifecycle.
//
//   - EnsureOpenInvoice => resolve or open the vehicle's invoice
//   - RecalculateTotal => total = sum(lines), idempotent
//   - RecordPayment => append a payment and apply the emitida -> pagada gate
//   - MarkTerminated => completion record, only for paid invoices
type IInvoiceUseCase interface {
	EnsureOpenInvoice(ctx context.Context, vehicleID string) (entities.Invoice, error)
	RecalculateTotal(ctx context.Context, invoiceID string) (decimal.Decimal, error)
	RecordPayment(ctx context.Context, invoiceID string, in PaymentInput) (PaymentResult, error)
	MarkTerminated(ctx context.Context, invoiceID string) (CompletionResult, error)

	GetInvoice(ctx context.Context, invoiceID string) (InvoiceDetail, error)
	ListInvoices(ctx context.Context) ([]entities.InvoiceSummary, error)
	BillingTotal(ctx context.Context) (decimal.Decimal, error)
}

type InvoiceUseCase struct {
	catalog  interfaces.ICatalogReader
	ledger   interfaces.ILedgerRepository
	gateway  interfaces.IPaymentGateway
	recorder *HistoryRecorder
	clock    Clock
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(catalog interfaces.ICatalogReader, ledger interfaces.ILedgerRepository, gateway interfaces.IPaymentGateway, recorder *HistoryRecorder, clock Clock) *InvoiceUseCase {
	if recorder == nil {
		recorder = NewHistoryRecorder(clock)
	}
	return &InvoiceUseCase{catalog: catalog, ledger: ledger, gateway: gateway, recorder: recorder, clock: clock}
}

func (u *InvoiceUseCase) EnsureOpenInvoice(ctx context.Context, vehicleID string) (entities.Invoice, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return entities.Invoice{}, ErrInvalidVehicleID
	}

	vehicle, err := u.catalog.GetVehicle(ctx, vehicleID)
	if err != nil {
		return entities.Invoice{}, storageFailure("[invoice][usecase]", err, nil)
	}
	if vehicle.ID == "" {
		return entities.Invoice{}, ErrVehicleNotFound
	}

	var inv entities.Invoice
	err = u.ledger.WithinUnitOfWork(ctx, func(ctx context.Context, tx interfaces.ILedgerTx) error {
		var err error
		inv, err = ensureOpenInvoiceTx(ctx, tx, vehicle.ID, u.clock)
		return err
	})
	if err != nil {
		return entities.Invoice{}, storageFailure("[invoice][usecase]", err, nil)
	}
	return inv, nil
}

func (u *InvoiceUseCase) RecalculateTotal(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return decimal.Zero, ErrInvalidInvoiceID
	}

	var total decimal.Decimal
	err := u.ledger.WithinUnitOfWork(ctx, func(ctx context.Context, tx interfaces.ILedgerTx) error {
		inv, err := tx.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv.ID == "" {
			return ErrInvoiceNotFound
		}
		inv, err = recalcTotalTx(ctx, tx, inv, u.clock)
		if err != nil {
			return err
		}
		total = inv.Total
		return nil
	})
	if err != nil {
		return decimal.Zero, storageFailure("[invoice][usecase]", err, nil, ErrInvoiceNotFound)
	}
	log.Printf("[invoice][usecase] total recalculated invoice_id=%s total=%s", invoiceID, total)
	return total, nil
}

func (u *InvoiceUseCase) RecordPayment(ctx context.Context, invoiceID string, in PaymentInput) (PaymentResult, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	log.Printf("[payment][usecase] record start invoice_id=%q amount=%s method=%q", invoiceID, in.Amount, in.Method)
	if invoiceID == "" {
		return PaymentResult{}, ErrInvalidInvoiceID
	}
	date, err := billing.NormalizeDate(in.Date)
	if err != nil {
		return PaymentResult{}, ErrInvalidPaymentDate
	}
	in.Amount = billing.RoundMoney(in.Amount)
	if !in.Amount.IsPositive() {
		return PaymentResult{}, ErrInvalidPaymentAmount
	}
	method := strings.TrimSpace(in.Method)
	if method == "" {
		return PaymentResult{}, ErrInvalidPaymentMethod
	}

	var providerPaymentID string
	if isCardMethod(method) {
		// Do not charge a card for an invoice that does not exist.
		inv, err := u.ledger.GetInvoice(ctx, invoiceID)
		if err != nil {
			return PaymentResult{}, storageFailure("[payment][usecase]", err, ErrRecordPayment)
		}
		if inv.ID == "" {
			return PaymentResult{}, ErrInvoiceNotFound
		}
		providerPaymentID, err = u.chargeCard(ctx, invoiceID, in.Amount, in.MPPayload)
		if err != nil {
			return PaymentResult{}, err
		}
	}

	payment := entities.Payment{
		ID:                uuid.NewString(),
		InvoiceID:         invoiceID,
		Date:              date,
		Amount:            in.Amount,
		Method:            method,
		ProviderPaymentID: providerPaymentID,
		CreatedAt:         u.clock.now(),
	}

	var result PaymentResult
	err = u.ledger.WithinUnitOfWork(ctx, func(ctx context.Context, tx interfaces.ILedgerTx) error {
		inv, err := tx.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv.ID == "" {
			return ErrInvoiceNotFound
		}

		if err := tx.InsertPayment(ctx, payment); err != nil {
			return err
		}

		lines, err := tx.ListInvoiceLines(ctx, inv.ID)
		if err != nil {
			return err
		}
		payments, err := tx.ListPayments(ctx, inv.ID)
		if err != nil {
			return err
		}

		paid := billing.SumPayments(payments)
		previous := inv.Status
		inv.Total = billing.SumLines(lines)
		inv.Status = billing.NextStatus(inv.Status, paid, inv.Total)
		inv.UpdatedAt = u.clock.now()
		inv, err = tx.SaveInvoice(ctx, inv)
		if err != nil {
			return err
		}
		if previous != inv.Status {
			log.Printf("[invoice][usecase] status changed invoice_id=%s from=%s to=%s", inv.ID, previous, inv.Status)
		}

		result = PaymentResult{Payment: payment, Invoice: inv, Paid: paid}
		return nil
	})
	if err != nil {
		if providerPaymentID != "" {
			log.Printf("[payment][usecase] charged but not recorded invoice_id=%s provider_payment_id=%s", invoiceID, providerPaymentID)
		}
		return PaymentResult{}, storageFailure("[payment][usecase]", err, ErrRecordPayment, ErrInvoiceNotFound)
	}

	log.Printf("[payment][usecase] record success invoice_id=%s payment_id=%s paid=%s total=%s status=%s", invoiceID, payment.ID, result.Paid, result.Invoice.Total, result.Invoice.Status)
	return result, nil
}

func (u *InvoiceUseCase) MarkTerminated(ctx context.Context, invoiceID string) (CompletionResult, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return CompletionResult{}, ErrInvalidInvoiceID
	}

	var (
		result    CompletionResult
		vehicleID string
	)
	err := u.ledger.WithinUnitOfWork(ctx, func(ctx context.Context, tx interfaces.ILedgerTx) error {
		inv, err := tx.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv.ID == "" {
			return ErrInvoiceNotFound
		}
		vehicleID = inv.VehicleID
		if !inv.IsPaid() {
			log.Printf("[invoice][usecase] terminate rejected invoice_id=%s status=%s", inv.ID, inv.Status)
			return ErrInvoiceNotPaid
		}

		vehicle, err := u.catalog.GetVehicle(ctx, inv.VehicleID)
		if err != nil {
			return err
		}
		label := vehicle.Label()

		result, err = u.recorder.RecordCompletion(ctx, tx, inv.VehicleID, label)
		return err
	})
	if errors.Is(err, interfaces.ErrConflict) {
		// Another request recorded the completion between our read and commit.
		log.Printf("[invoice][usecase] completion recorded concurrently invoice_id=%s", invoiceID)
		return u.existingCompletion(ctx, vehicleID)
	}
	if err != nil {
		return CompletionResult{}, storageFailure("[invoice][usecase]", err, ErrMarkTerminated, ErrInvoiceNotFound, ErrInvoiceNotPaid)
	}
	return result, nil
}

// existingCompletion re-reads the record a concurrent request committed.
func (u *InvoiceUseCase) existingCompletion(ctx context.Context, vehicleID string) (CompletionResult, error) {
	var record entities.WorkOrder
	err := u.ledger.WithinUnitOfWork(ctx, func(ctx context.Context, tx interfaces.ILedgerTx) error {
		var err error
		record, err = tx.FindCompletion(ctx, vehicleID)
		return err
	})
	if err != nil {
		return CompletionResult{}, storageFailure("[invoice][usecase]", err, ErrMarkTerminated)
	}
	if record.ID == "" {
		return CompletionResult{}, storageFailure("[invoice][usecase]", fmt.Errorf("completion of vehicle %s not found after conflict", vehicleID), ErrMarkTerminated)
	}
	return CompletionResult{Record: record}, nil
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, invoiceID string) (InvoiceDetail, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return InvoiceDetail{}, ErrInvalidInvoiceID
	}

	inv, err := u.ledger.GetInvoice(ctx, invoiceID)
	if err != nil {
		return InvoiceDetail{}, storageFailure("[invoice][usecase]", err, nil)
	}
	if inv.ID == "" {
		return InvoiceDetail{}, ErrInvoiceNotFound
	}

	lines, err := u.ledger.ListInvoiceLines(ctx, inv.ID)
	if err != nil {
		return InvoiceDetail{}, storageFailure("[invoice][usecase]", err, nil)
	}
	payments, err := u.ledger.ListPayments(ctx, inv.ID)
	if err != nil {
		return InvoiceDetail{}, storageFailure("[invoice][usecase]", err, nil)
	}
	return InvoiceDetail{Invoice: inv, Lines: lines, Payments: payments, Paid: billing.SumPayments(payments)}, nil
}

// ListInvoices projects the latest invoice of each vehicle.
func (u *InvoiceUseCase) ListInvoices(ctx context.Context) ([]entities.InvoiceSummary, error) {
	invoices, err := u.ledger.ListInvoices(ctx)
	if err != nil {
		return nil, storageFailure("[invoice][usecase]", err, nil)
	}

	latest := make(map[string]entities.Invoice)
	for _, inv := range invoices {
		if cur, ok := latest[inv.VehicleID]; !ok || inv.CreatedAt.After(cur.CreatedAt) {
			latest[inv.VehicleID] = inv
		}
	}

	out := make([]entities.InvoiceSummary, 0, len(latest))
	for _, inv := range latest {
		vehicle, err := u.catalog.GetVehicle(ctx, inv.VehicleID)
		if err != nil {
			return nil, storageFailure("[invoice][usecase]", err, nil)
		}
		payments, err := u.ledger.ListPayments(ctx, inv.ID)
		if err != nil {
			return nil, storageFailure("[invoice][usecase]", err, nil)
		}
		out = append(out, entities.InvoiceSummary{
			VehicleID: inv.VehicleID,
			Plate:     vehicle.Plate,
			Model:     vehicle.Model,
			InvoiceID: inv.ID,
			Date:      inv.Date,
			Status:    inv.Status,
			Total:     inv.Total,
			Paid:      billing.SumPayments(payments),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].InvoiceID < out[j].InvoiceID
	})
	return out, nil
}

func (u *InvoiceUseCase) BillingTotal(ctx context.Context) (decimal.Decimal, error) {
	total, err := u.ledger.SumAllLines(ctx)
	if err != nil {
		return decimal.Zero, storageFailure("[invoice][usecase]", err, nil)
	}
	return total, nil
}
