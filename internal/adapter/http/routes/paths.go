package routes

import (
	"taller_mecanico/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing       = "/ping"
	PathLogin      = "/login"
	PathVehicles   = "/vehicles"
	PathClients    = "/clients"
	PathParts      = "/parts"
	PathWorkOrders = "/work-orders"
	PathHistory    = "/history"
	PathInvoices   = "/invoices"
	PathEvents     = "/events"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST(PathLogin, authHandler.Login)
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, invoiceHandler *handlers.InvoiceHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", catalogHandler.CreateVehicle)
		vehicles.GET("", catalogHandler.ListVehicles)
		vehicles.GET("/:id", catalogHandler.GetVehicle)
		vehicles.PUT("/:id", catalogHandler.UpdateVehicle)
		vehicles.DELETE("/:id", catalogHandler.DeleteVehicle)
		vehicles.POST("/:id/invoice", invoiceHandler.EnsureOpenInvoice)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", catalogHandler.CreateClient)
		clients.GET("", catalogHandler.ListClients)
		clients.GET("/:id", catalogHandler.GetClient)
	}

	parts := rg.Group(PathParts)
	{
		parts.POST("", catalogHandler.CreatePart)
		parts.GET("", catalogHandler.ListParts)
		parts.GET("/:id", catalogHandler.GetPart)
	}
}

func addBillingRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler, invoiceHandler *handlers.InvoiceHandler) {
	rg.POST(PathWorkOrders, workOrderHandler.CreateWorkOrder)
	rg.GET(PathHistory, workOrderHandler.History)

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/total", invoiceHandler.BillingTotal)
		invoices.GET("/export", invoiceHandler.ExportInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/recalculate", invoiceHandler.RecalculateTotal)
		invoices.POST("/:id/payments", invoiceHandler.RecordPayment)
		invoices.POST("/:id/terminate", invoiceHandler.MarkTerminated)
	}
}

func addCalendarRoutes(rg *gin.RouterGroup, calendarHandler *handlers.CalendarHandler) {
	rg.GET(PathEvents, calendarHandler.ListMonth)
	rg.POST(PathEvents, calendarHandler.Upsert)
}
