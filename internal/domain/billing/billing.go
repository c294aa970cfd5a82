// Package billing holds the pure numeric and date rules shared by the
// work-order and invoice use cases.
package billing

import (
	"errors"
	"strings"
	"time"

	"taller_mecanico/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical calendar date format.
const DateLayout = "2006-01-02"

// localDateLayout accepts D/M/YYYY with or without zero padding.
const localDateLayout = "2/1/2006"

const (
	laborConceptPrefix   = "Mano de obra: "
	partConceptPrefix    = "Repuesto: "
	completionDescPrefix = "Trabajo terminado: "
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or DD/MM/YYYY")

// NormalizeDate accepts YYYY-MM-DD or DD/MM/YYYY and returns YYYY-MM-DD.
// Out-of-range months or days are rejected.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidDate
	}
	if strings.Contains(raw, "-") {
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return "", ErrInvalidDate
		}
		return t.Format(DateLayout), nil
	}
	if strings.Count(raw, "/") == 2 {
		parts := strings.Split(raw, "/")
		if len(parts[2]) != 4 {
			return "", ErrInvalidDate
		}
		t, err := time.Parse(localDateLayout, raw)
		if err != nil {
			return "", ErrInvalidDate
		}
		return t.Format(DateLayout), nil
	}
	return "", ErrInvalidDate
}

// DateOf formats t as a calendar date in loc. A nil loc means UTC.
func DateOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

// ParseAmount reads a loosely typed numeric value. Anything that is not a
// number yields zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	if raw == "" || raw == "null" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeLaborCost clamps labor at zero and drops the fractional part.
func NormalizeLaborCost(v decimal.Decimal) decimal.Decimal {
	if !v.IsPositive() {
		return decimal.Zero
	}
	return v.Truncate(0)
}

// MoneyScale is the number of decimals every stored amount carries.
const MoneyScale = 2

// RoundMoney rounds an amount half away from zero to MoneyScale decimals.
// Prices, labor and payments pass through it before they reach a store so
// every backend sums the same values.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(MoneyScale)
}

// SumLines is the invoice total implied by its lines.
func SumLines(lines []entities.InvoiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount())
	}
	return total
}

func SumPayments(payments []entities.Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	return paid
}

// NextStatus applies the payment gate. Once pagada, always pagada;
// overpayment still settles.
func NextStatus(current entities.InvoiceStatus, paid, total decimal.Decimal) entities.InvoiceStatus {
	if current == entities.InvoiceStatusPagada {
		return current
	}
	if paid.GreaterThanOrEqual(total) {
		return entities.InvoiceStatusPagada
	}
	return entities.InvoiceStatusEmitida
}

func LaborConcept(description string) string {
	return laborConceptPrefix + strings.TrimSpace(description)
}

func PartConcept(partName string) string {
	return partConceptPrefix + strings.TrimSpace(partName)
}

// CompletionDescription is the history text of a completion record.
func CompletionDescription(vehicleLabel string) string {
	return completionDescPrefix + strings.TrimSpace(vehicleLabel)
}
