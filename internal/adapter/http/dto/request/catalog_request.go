package request

import (
	"taller_mecanico/internal/usecase"

	"github.com/shopspring/decimal"
)

type VehicleRequest struct {
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	ClientID string `json:"client_id"`
}

func (r VehicleRequest) ToInput() usecase.VehicleInput {
	return usecase.VehicleInput{Plate: r.Plate, Model: r.Model, ClientID: r.ClientID}
}

type ClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{Name: r.Name, Phone: r.Phone, Email: r.Email}
}

type PartRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

func (r PartRequest) ToInput() usecase.PartInput {
	return usecase.PartInput{Name: r.Name, Price: r.Price}
}

type CalendarEventRequest struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
