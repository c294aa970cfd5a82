package entities

import (
	"strings"
	"time"
)

// Vehicle is a car registered in the shop catalog.
//
// ClientID is optional: walk-in vehicles may have no owner on file.
type Vehicle struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	ClientID  string    `json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Label is the display name used on history entries ("AB123CD Fiat Uno").
func (v Vehicle) Label() string {
	return strings.TrimSpace(v.Plate + " " + v.Model)
}
