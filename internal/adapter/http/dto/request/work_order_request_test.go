package request

import (
	"encoding/json"
	"testing"
)

func TestWorkOrderRequest_LooseLaborCost(t *testing.T) {
	cases := map[string]string{
		`{"vehicle_id":"v1","labor_cost":15000}`:     "15000",
		`{"vehicle_id":"v1","labor_cost":"2500.75"}`: "2500.75",
		`{"vehicle_id":"v1","labor_cost":"mucho"}`:   "0",
		`{"vehicle_id":"v1","labor_cost":null}`:      "0",
		`{"vehicle_id":"v1"}`:                        "0",
	}
	for body, want := range cases {
		var r WorkOrderRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		if got := r.ToInput().LaborCost.String(); got != want {
			t.Fatalf("%s: expected %s, got %s", body, want, got)
		}
	}
}

func TestWorkOrderRequest_ToInputKeepsPriceOverride(t *testing.T) {
	var r WorkOrderRequest
	body := `{"vehicle_id":"v1","lines":[{"part_id":"p1","quantity":2,"unit_price":"99.5"},{"part_id":"p2","quantity":1}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	in := r.ToInput()
	if len(in.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(in.Lines))
	}
	if !in.Lines[0].UnitPrice.Valid || in.Lines[0].UnitPrice.Decimal.String() != "99.5" {
		t.Fatalf("expected override 99.5, got %+v", in.Lines[0].UnitPrice)
	}
	if in.Lines[1].UnitPrice.Valid {
		t.Fatalf("expected no override on second line")
	}
}

func TestWorkOrderRequest_LooseLineFields(t *testing.T) {
	cases := []struct {
		line      string
		quantity  int
		malformed bool
	}{
		{`{"part_id":"p1","quantity":3}`, 3, false},
		{`{"part_id":"p1","quantity":"2"}`, 2, false},
		{`{"part_id":"p1","quantity":1.5}`, 0, false},
		{`{"part_id":"p1","quantity":"abc"}`, 0, false},
		{`{"part_id":"p1","quantity":[1]}`, 0, false},
		{`{"part_id":"p1","quantity":1,"unit_price":"x"}`, 1, true},
		{`{"part_id":"p1","quantity":1,"unit_price":null}`, 1, false},
	}
	for _, tc := range cases {
		var r WorkOrderRequest
		if err := json.Unmarshal([]byte(`{"vehicle_id":"v1","lines":[`+tc.line+`]}`), &r); err != nil {
			t.Fatalf("%s: expected lenient decode, got %v", tc.line, err)
		}
		got := r.ToInput().Lines[0]
		if got.Quantity != tc.quantity || got.Malformed != tc.malformed {
			t.Fatalf("%s: expected quantity=%d malformed=%v, got %+v", tc.line, tc.quantity, tc.malformed, got)
		}
		if got.Malformed && got.UnitPrice.Valid {
			t.Fatalf("%s: malformed price must not carry a value", tc.line)
		}
	}
}
