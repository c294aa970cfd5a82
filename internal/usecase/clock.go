package usecase

import (
	"time"

	"taller_mecanico/internal/domain/billing"
)

// Clock supplies "now" and the shop timezone used to decide what "today" is.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}

func (c Clock) today() string {
	return billing.DateOf(c.now(), c.Location)
}
