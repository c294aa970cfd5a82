package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"taller_mecanico/internal/domain/billing"
	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPlate      = errors.New("plate is required")
	ErrInvalidModel      = errors.New("model is required")
	ErrInvalidClientName = errors.New("client name is required")
	ErrInvalidClientID   = errors.New("client id is required")
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidPartName   = errors.New("spare part name is required")
	ErrInvalidPartPrice  = errors.New("spare part price must be zero or greater")
	ErrInvalidPartID     = errors.New("spare part id is required")
)

type VehicleInput struct {
	Plate    string
	Model    string
	ClientID string
}

type ClientInput struct {
	Name  string
	Phone string
	Email string
}

type PartInput struct {
	Name  string
	Price decimal.Decimal
}

// ICatalogUseCase is the CRUD surface of vehicles, clients and spare parts.
type ICatalogUseCase interface {
	CreateVehicle(ctx context.Context, in VehicleInput) (entities.Vehicle, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error

	CreateClient(ctx context.Context, in ClientInput) (entities.Client, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
	GetClient(ctx context.Context, id string) (entities.Client, error)

	CreatePart(ctx context.Context, in PartInput) (entities.SparePart, error)
	ListParts(ctx context.Context) ([]entities.SparePart, error)
	GetPart(ctx context.Context, id string) (entities.SparePart, error)
}

type CatalogUseCase struct {
	repo  interfaces.ICatalogRepository
	clock Clock
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, clock Clock) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, clock: clock}
}

func (u *CatalogUseCase) validateVehicle(ctx context.Context, in VehicleInput) (VehicleInput, error) {
	in.Plate = strings.ToUpper(strings.TrimSpace(in.Plate))
	in.Model = strings.TrimSpace(in.Model)
	in.ClientID = strings.TrimSpace(in.ClientID)
	if in.Plate == "" {
		return in, ErrInvalidPlate
	}
	if in.Model == "" {
		return in, ErrInvalidModel
	}
	if in.ClientID != "" {
		c, err := u.repo.GetClient(ctx, in.ClientID)
		if err != nil {
			return in, storageFailure("[catalog][usecase]", err, nil)
		}
		if c.ID == "" {
			return in, ErrClientNotFound
		}
	}
	return in, nil
}

func (u *CatalogUseCase) CreateVehicle(ctx context.Context, in VehicleInput) (entities.Vehicle, error) {
	in, err := u.validateVehicle(ctx, in)
	if err != nil {
		return entities.Vehicle{}, err
	}

	now := u.clock.now()
	v, err := u.repo.CreateVehicle(ctx, entities.Vehicle{
		ID:        uuid.NewString(),
		Plate:     in.Plate,
		Model:     in.Model,
		ClientID:  in.ClientID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Vehicle{}, storageFailure("[catalog][usecase]", err, nil)
	}
	log.Printf("[catalog][usecase] vehicle created vehicle_id=%s plate=%s", v.ID, v.Plate)
	return v, nil
}

func (u *CatalogUseCase) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	items, err := u.repo.ListVehicles(ctx)
	if err != nil {
		return nil, storageFailure("[catalog][usecase]", err, nil)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (u *CatalogUseCase) GetVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := u.repo.GetVehicle(ctx, id)
	if err != nil {
		return entities.Vehicle{}, storageFailure("[catalog][usecase]", err, nil)
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *CatalogUseCase) UpdateVehicle(ctx context.Context, id string, in VehicleInput) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	in, err := u.validateVehicle(ctx, in)
	if err != nil {
		return entities.Vehicle{}, err
	}

	v, err := u.repo.UpdateVehicle(ctx, entities.Vehicle{
		ID:        id,
		Plate:     in.Plate,
		Model:     in.Model,
		ClientID:  in.ClientID,
		UpdatedAt: u.clock.now(),
	})
	if err != nil {
		return entities.Vehicle{}, storageFailure("[catalog][usecase]", err, nil)
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *CatalogUseCase) DeleteVehicle(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	deleted, err := u.repo.DeleteVehicle(ctx, id)
	if err != nil {
		return storageFailure("[catalog][usecase]", err, nil)
	}
	if !deleted {
		return ErrVehicleNotFound
	}
	log.Printf("[catalog][usecase] vehicle deleted vehicle_id=%s", id)
	return nil
}

func (u *CatalogUseCase) CreateClient(ctx context.Context, in ClientInput) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	c, err := u.repo.CreateClient(ctx, entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: u.clock.now(),
	})
	if err != nil {
		return entities.Client{}, storageFailure("[catalog][usecase]", err, nil)
	}
	return c, nil
}

func (u *CatalogUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	items, err := u.repo.ListClients(ctx)
	if err != nil {
		return nil, storageFailure("[catalog][usecase]", err, nil)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (u *CatalogUseCase) GetClient(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetClient(ctx, id)
	if err != nil {
		return entities.Client{}, storageFailure("[catalog][usecase]", err, nil)
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *CatalogUseCase) CreatePart(ctx context.Context, in PartInput) (entities.SparePart, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.SparePart{}, ErrInvalidPartName
	}
	if in.Price.IsNegative() {
		return entities.SparePart{}, ErrInvalidPartPrice
	}
	p, err := u.repo.CreatePart(ctx, entities.SparePart{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     billing.RoundMoney(in.Price),
		CreatedAt: u.clock.now(),
	})
	if err != nil {
		return entities.SparePart{}, storageFailure("[catalog][usecase]", err, nil)
	}
	return p, nil
}

func (u *CatalogUseCase) ListParts(ctx context.Context) ([]entities.SparePart, error) {
	items, err := u.repo.ListParts(ctx)
	if err != nil {
		return nil, storageFailure("[catalog][usecase]", err, nil)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (u *CatalogUseCase) GetPart(ctx context.Context, id string) (entities.SparePart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SparePart{}, ErrInvalidPartID
	}
	p, err := u.repo.GetPart(ctx, id)
	if err != nil {
		return entities.SparePart{}, storageFailure("[catalog][usecase]", err, nil)
	}
	if p.ID == "" {
		return entities.SparePart{}, ErrPartNotFound
	}
	return p, nil
}
