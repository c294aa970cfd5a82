package memory

import (
	"context"
	"fmt"
	"sync"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"
)

type Catalog struct {
	mu       sync.RWMutex
	vehicles map[string]entities.Vehicle
	clients  map[string]entities.Client
	parts    map[string]entities.SparePart
}

var _ interfaces.ICatalogRepository = (*Catalog)(nil)

func NewCatalog() *Catalog {
	return &Catalog{
		vehicles: make(map[string]entities.Vehicle),
		clients:  make(map[string]entities.Client),
		parts:    make(map[string]entities.SparePart),
	}
}

func (c *Catalog) GetVehicle(_ context.Context, id string) (entities.Vehicle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vehicles[id], nil
}

func (c *Catalog) GetPart(_ context.Context, id string) (entities.SparePart, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parts[id], nil
}

func (c *Catalog) GetClient(_ context.Context, id string) (entities.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clients[id], nil
}

func (c *Catalog) CreateVehicle(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.vehicles[v.ID]; ok {
		return entities.Vehicle{}, fmt.Errorf("vehicle %s: %w", v.ID, interfaces.ErrConflict)
	}
	c.vehicles[v.ID] = v
	return v, nil
}

func (c *Catalog) ListVehicles(_ context.Context) ([]entities.Vehicle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entities.Vehicle, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (c *Catalog) UpdateVehicle(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.vehicles[v.ID]
	if !ok {
		return entities.Vehicle{}, nil
	}
	current.Plate = v.Plate
	current.Model = v.Model
	current.ClientID = v.ClientID
	current.UpdatedAt = v.UpdatedAt
	c.vehicles[v.ID] = current
	return current, nil
}

func (c *Catalog) DeleteVehicle(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.vehicles[id]; !ok {
		return false, nil
	}
	delete(c.vehicles, id)
	return true, nil
}

func (c *Catalog) CreateClient(_ context.Context, cl entities.Client) (entities.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.clients[cl.ID]; ok {
		return entities.Client{}, fmt.Errorf("client %s: %w", cl.ID, interfaces.ErrConflict)
	}
	c.clients[cl.ID] = cl
	return cl, nil
}

func (c *Catalog) ListClients(_ context.Context) ([]entities.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entities.Client, 0, len(c.clients))
	for _, cl := range c.clients {
		out = append(out, cl)
	}
	return out, nil
}

func (c *Catalog) CreatePart(_ context.Context, p entities.SparePart) (entities.SparePart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.parts[p.ID]; ok {
		return entities.SparePart{}, fmt.Errorf("spare part %s: %w", p.ID, interfaces.ErrConflict)
	}
	c.parts[p.ID] = p
	return p, nil
}

func (c *Catalog) ListParts(_ context.Context) ([]entities.SparePart, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entities.SparePart, 0, len(c.parts))
	for _, p := range c.parts {
		out = append(out, p)
	}
	return out, nil
}
