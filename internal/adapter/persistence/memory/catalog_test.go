package memory

import (
	"context"
	"testing"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Vehicles(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog()

	_, err := c.CreateVehicle(ctx, entities.Vehicle{ID: "veh-1", Plate: "AB123CD", Model: "Fiat Uno"})
	require.NoError(t, err)

	_, err = c.CreateVehicle(ctx, entities.Vehicle{ID: "veh-1", Plate: "X", Model: "Y"})
	require.ErrorIs(t, err, interfaces.ErrConflict)

	updated, err := c.UpdateVehicle(ctx, entities.Vehicle{ID: "veh-1", Plate: "AB123CD", Model: "Fiat Uno Way"})
	require.NoError(t, err)
	require.Equal(t, "Fiat Uno Way", updated.Model)

	missing, err := c.UpdateVehicle(ctx, entities.Vehicle{ID: "nope"})
	require.NoError(t, err)
	require.Empty(t, missing.ID)

	deleted, err := c.DeleteVehicle(ctx, "veh-1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = c.DeleteVehicle(ctx, "veh-1")
	require.NoError(t, err)
	require.False(t, deleted)

	v, err := c.GetVehicle(ctx, "veh-1")
	require.NoError(t, err)
	require.Empty(t, v.ID)
}

func TestCatalog_PartsAndClients(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog()

	_, err := c.CreatePart(ctx, entities.SparePart{ID: "p-1", Name: "Filtro", Price: decimal.NewFromInt(50)})
	require.NoError(t, err)
	_, err = c.CreateClient(ctx, entities.Client{ID: "c-1", Name: "Ana"})
	require.NoError(t, err)

	p, err := c.GetPart(ctx, "p-1")
	require.NoError(t, err)
	require.Equal(t, "Filtro", p.Name)

	parts, err := c.ListParts(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 1)

	clients, err := c.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}
