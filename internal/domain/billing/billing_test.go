package billing

import (
	"errors"
	"testing"

	"taller_mecanico/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-03-05", want: "2024-03-05"},
		{in: " 2024-03-05 ", want: "2024-03-05"},
		{in: "05/03/2024", want: "2024-03-05"},
		{in: "5/3/2024", want: "2024-03-05"},
		{in: "29/02/2024", want: "2024-02-29"},
		{in: "2024-13-40", wantErr: true},
		{in: "2023-02-29", wantErr: true},
		{in: "31/04/2024", wantErr: true},
		{in: "05/03/24", wantErr: true},
		{in: "2024/03/05", wantErr: true},
		{in: "march 5", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeDate(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseAmountAndLaborCost(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "100", want: "100"},
		{raw: `"150.75"`, want: "150"},
		{raw: "-20", want: "0"},
		{raw: "abc", want: "0"},
		{raw: "null", want: "0"},
		{raw: "", want: "0"},
	}
	for _, tc := range cases {
		got := NormalizeLaborCost(ParseAmount(tc.raw))
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("raw %q: expected %s, got %s", tc.raw, tc.want, got)
		}
	}
}

func TestSumsAndStatus(t *testing.T) {
	lines := []entities.InvoiceLine{
		{Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		{Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
	}
	total := SumLines(lines)
	if !total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected 200, got %s", total)
	}

	paid := SumPayments([]entities.Payment{{Amount: decimal.NewFromInt(150)}})
	if got := NextStatus(entities.InvoiceStatusEmitida, paid, total); got != entities.InvoiceStatusEmitida {
		t.Fatalf("expected emitida, got %s", got)
	}
	paid = paid.Add(decimal.NewFromInt(50))
	if got := NextStatus(entities.InvoiceStatusEmitida, paid, total); got != entities.InvoiceStatusPagada {
		t.Fatalf("expected pagada, got %s", got)
	}
	if got := NextStatus(entities.InvoiceStatusPagada, decimal.Zero, total); got != entities.InvoiceStatusPagada {
		t.Fatalf("pagada must never revert, got %s", got)
	}
}

func TestConcepts(t *testing.T) {
	if got := LaborConcept(" cambio de aceite "); got != "Mano de obra: cambio de aceite" {
		t.Fatalf("unexpected labor concept %q", got)
	}
	if got := PartConcept("Filtro"); got != "Repuesto: Filtro" {
		t.Fatalf("unexpected part concept %q", got)
	}
	if got := CompletionDescription("AB123CD Fiat Uno"); got != "Trabajo terminado: AB123CD Fiat Uno" {
		t.Fatalf("unexpected completion description %q", got)
	}
}

func TestRoundMoney(t *testing.T) {
	cases := map[string]string{
		"0.333":  "0.33",
		"0.335":  "0.34",
		"0.999":  "1",
		"-0.004": "0",
		"1200":   "1200",
		"15.5":   "15.5",
	}
	for in, want := range cases {
		if got := RoundMoney(decimal.RequireFromString(in)); !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}
