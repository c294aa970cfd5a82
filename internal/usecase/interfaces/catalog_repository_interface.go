package interfaces

import (
	"context"

	"taller_mecanico/internal/domain/entities"
)

// ICatalogReader is the narrow view of the catalog the billing core needs.
//
// Lookups return a zero value (empty ID) and a nil error when the record does
// not exist.
type ICatalogReader interface {
	GetVehicle(ctx context.Context, id string) (entities.Vehicle, error)
	GetPart(ctx context.Context, id string) (entities.SparePart, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)
}

// ICatalogRepository abstracts persistence for vehicles, clients and spare parts.
type ICatalogRepository interface {
	ICatalogReader

	CreateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	// UpdateVehicle returns a zero value when the vehicle does not exist.
	UpdateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) (bool, error)

	CreateClient(ctx context.Context, c entities.Client) (entities.Client, error)
	ListClients(ctx context.Context) ([]entities.Client, error)

	CreatePart(ctx context.Context, p entities.SparePart) (entities.SparePart, error)
	ListParts(ctx context.Context) ([]entities.SparePart, error)
}
