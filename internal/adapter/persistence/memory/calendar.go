package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"
)

type Calendar struct {
	mu     sync.RWMutex
	events map[string]string
}

var _ interfaces.ICalendarRepository = (*Calendar)(nil)

func NewCalendar() *Calendar {
	return &Calendar{events: make(map[string]string)}
}

func (c *Calendar) ListMonth(_ context.Context, year, month int) ([]entities.CalendarEvent, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []entities.CalendarEvent{}
	for date, text := range c.events {
		if strings.HasPrefix(date, prefix) {
			out = append(out, entities.CalendarEvent{Date: date, Text: text})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (c *Calendar) Upsert(_ context.Context, e entities.CalendarEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events[e.Date] = e.Text
	return nil
}

func (c *Calendar) Delete(_ context.Context, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.events, date)
	return nil
}
