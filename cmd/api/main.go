package main

import (
	"taller_mecanico/internal/adapter/http/routes"
	"taller_mecanico/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Taller Mecanico API
// @version         1.0
// @description     Work orders, invoices, payments and completion records of a mechanic shop.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run(config.Load())
}
