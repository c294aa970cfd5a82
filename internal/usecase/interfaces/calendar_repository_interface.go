package interfaces

import (
	"context"

	"taller_mecanico/internal/domain/entities"
)

// ICalendarRepository stores one note per calendar day.
type ICalendarRepository interface {
	ListMonth(ctx context.Context, year, month int) ([]entities.CalendarEvent, error)
	Upsert(ctx context.Context, e entities.CalendarEvent) error
	Delete(ctx context.Context, date string) error
}
