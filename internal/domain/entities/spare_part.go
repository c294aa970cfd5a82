package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SparePart is a catalog item (repuesto). Price is the current list price;
// work orders copy it at use time so later changes never touch history.
type SparePart struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}
