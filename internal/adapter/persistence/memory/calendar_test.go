package memory

import (
	"context"
	"testing"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
)

func TestCalendar_ListMonth(t *testing.T) {
	ctx := context.Background()
	c := NewCalendar()

	require.NoError(t, c.Upsert(ctx, entities.CalendarEvent{Date: "2024-05-20", Text: "Turno Fiat"}))
	require.NoError(t, c.Upsert(ctx, entities.CalendarEvent{Date: "2024-05-02", Text: "Pedido repuestos"}))
	require.NoError(t, c.Upsert(ctx, entities.CalendarEvent{Date: "2024-06-01", Text: "Otro mes"}))

	events, err := c.ListMonth(ctx, 2024, 5)
	require.NoError(t, err)
	require.Equal(t, []entities.CalendarEvent{
		{Date: "2024-05-02", Text: "Pedido repuestos"},
		{Date: "2024-05-20", Text: "Turno Fiat"},
	}, events)

	require.NoError(t, c.Delete(ctx, "2024-05-02"))
	events, err = c.ListMonth(ctx, 2024, 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestUsers_CaseInsensitiveUsername(t *testing.T) {
	ctx := context.Background()
	r := NewUsers()

	_, err := r.Create(ctx, entities.User{ID: "u-1", Username: "Admin"})
	require.NoError(t, err)

	u, err := r.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, "u-1", u.ID)

	_, err = r.Create(ctx, entities.User{ID: "u-2", Username: "ADMIN"})
	require.ErrorIs(t, err, interfaces.ErrConflict)
}
