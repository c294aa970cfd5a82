package response

import (
	"time"

	"taller_mecanico/internal/domain/entities"
)

type VehicleResponse struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	ClientID  string    `json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{ID: v.ID, Plate: v.Plate, Model: v.Model, ClientID: v.ClientID, CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}

type SparePartResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func FromSparePart(p entities.SparePart) SparePartResponse {
	return SparePartResponse{ID: p.ID, Name: p.Name, Price: p.Price.StringFixed(2)}
}

func FromSpareParts(ps []entities.SparePart) []SparePartResponse {
	out := make([]SparePartResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromSparePart(p))
	}
	return out
}

// Clients, calendar events and users are rendered straight from the entity;
// their JSON tags already hide internal fields.

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}
