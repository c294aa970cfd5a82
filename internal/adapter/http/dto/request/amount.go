package request

import (
	"strings"

	"taller_mecanico/internal/domain/billing"

	"github.com/shopspring/decimal"
)

// LooseAmount accepts a JSON number, a numeric string, or anything else,
// which reads as zero. The shop forms send labor as free text.
type LooseAmount struct {
	decimal.Decimal
}

func (a *LooseAmount) UnmarshalJSON(b []byte) error {
	a.Decimal = billing.ParseAmount(string(b))
	return nil
}

// LooseQuantity reads a line quantity. Fractions, non-numeric text and
// values out of range read as zero, which the work-order flow skips.
type LooseQuantity int

func (q *LooseQuantity) UnmarshalJSON(b []byte) error {
	d := billing.ParseAmount(string(b))
	if !d.IsInteger() || d.GreaterThan(maxQuantity) || d.LessThan(maxQuantity.Neg()) {
		*q = 0
		return nil
	}
	*q = LooseQuantity(d.IntPart())
	return nil
}

var maxQuantity = decimal.NewFromInt(1_000_000)

// LoosePrice reads an optional unit price. Absent or null leaves it unset;
// anything that is not a number marks the line as malformed.
type LoosePrice struct {
	decimal.NullDecimal
	Malformed bool
}

func (p *LoosePrice) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" || raw == "null" {
		*p = LoosePrice{}
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		*p = LoosePrice{Malformed: true}
		return nil
	}
	*p = LoosePrice{NullDecimal: decimal.NewNullDecimal(d)}
	return nil
}
