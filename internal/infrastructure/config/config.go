package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	defaultShopTimezone = "America/Argentina/Buenos_Aires"
)

// Tables holds the DynamoDB table names.
type Tables struct {
	Vehicles     string
	Clients      string
	Parts        string
	WorkOrders   string
	Invoices     string
	InvoiceLines string
	Payments     string
	OpenInvoices string
	Completions  string
	Users        string
	Events       string
}

type AWS struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint points the client at DynamoDB Local when set.
	Endpoint string
}

type Config struct {
	Port          int
	StorageDriver string
	DatabaseURL   string
	AWS           AWS
	Tables        Tables

	CORSAllowedOrigins []string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	SeedFile string
	Location *time.Location
}

// Load reads the configuration from the environment. Unknown or malformed
// values fall back to defaults.
func Load() Config {
	cfg := Config{
		Port:          getenvInt("PORT", 8080),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AWS: AWS{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: Tables{
			Vehicles:     getenvDefault("VEHICLES_TABLE", "vehicles"),
			Clients:      getenvDefault("CLIENTS_TABLE", "clients"),
			Parts:        getenvDefault("PARTS_TABLE", "spare_parts"),
			WorkOrders:   getenvDefault("WORK_ORDERS_TABLE", "work_orders"),
			Invoices:     getenvDefault("INVOICES_TABLE", "invoices"),
			InvoiceLines: getenvDefault("INVOICE_LINES_TABLE", "invoice_lines"),
			Payments:     getenvDefault("PAYMENTS_TABLE", "payments"),
			OpenInvoices: getenvDefault("OPEN_INVOICES_TABLE", "open_invoices"),
			Completions:  getenvDefault("COMPLETIONS_TABLE", "completions"),
			Users:        getenvDefault("USERS_TABLE", "users"),
			Events:       getenvDefault("EVENTS_TABLE", "calendar_events"),
		},
		CORSAllowedOrigins:     splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		SeedFile:               os.Getenv("SEED_FILE"),
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StoragePostgres, StorageMemory:
	default:
		log.Printf("[config] unknown STORAGE_DRIVER=%q, using %s", cfg.StorageDriver, StorageDynamoDB)
		cfg.StorageDriver = StorageDynamoDB
	}

	tz := getenvDefault("SHOP_TIMEZONE", defaultShopTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("[config] unknown SHOP_TIMEZONE=%q, using UTC err=%v", tz, err)
		loc = time.UTC
	}
	cfg.Location = loc

	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
