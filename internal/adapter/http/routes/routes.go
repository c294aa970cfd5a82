package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "taller_mecanico/docs" // generated by swag init
	"taller_mecanico/internal/adapter/http/handlers"
	"taller_mecanico/internal/infrastructure/config"
	"taller_mecanico/internal/infrastructure/payments"
	"taller_mecanico/internal/infrastructure/reports"
	"taller_mecanico/internal/infrastructure/security"
	"taller_mecanico/internal/infrastructure/seed"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"
)

// Run will start the server
func Run(cfg config.Config) {
	ctx := context.Background()

	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer st.close()

	uc := newUseCases(cfg, st, newPaymentGateway(cfg))

	if _, err := seed.NewLoader(uc.auth, uc.catalog).LoadFile(ctx, cfg.SeedFile); err != nil {
		log.Fatalf("Failed to load seed file %s: %v", cfg.SeedFile, err)
	}

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, uc)

	log.Printf("[app] listening port=%d storage=%s", cfg.Port, cfg.StorageDriver)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type useCases struct {
	auth      usecase.IAuthUseCase
	catalog   usecase.ICatalogUseCase
	workOrder usecase.IWorkOrderUseCase
	invoice   usecase.IInvoiceUseCase
	report    usecase.IReportUseCase
	calendar  usecase.ICalendarUseCase
}

func newUseCases(cfg config.Config, st stores, gateway interfaces.IPaymentGateway) useCases {
	clock := usecase.Clock{Now: time.Now, Location: cfg.Location}

	invoiceUseCase := usecase.NewInvoiceUseCase(st.catalog, st.ledger, gateway, usecase.NewHistoryRecorder(clock), clock)
	return useCases{
		auth:      usecase.NewAuthUseCase(st.users, security.NewBcryptHasher(bcrypt.DefaultCost)),
		catalog:   usecase.NewCatalogUseCase(st.catalog, clock),
		workOrder: usecase.NewWorkOrderUseCase(st.catalog, st.ledger, clock),
		invoice:   invoiceUseCase,
		report:    usecase.NewReportUseCase(invoiceUseCase, reports.BillingWorkbook{}, clock),
		calendar:  usecase.NewCalendarUseCase(st.calendar),
	}
}

// newPaymentGateway returns nil when card payments are not configured; the
// invoice use case then rejects the mercadopago method.
func newPaymentGateway(cfg config.Config) interfaces.IPaymentGateway {
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return mpGateway
}

func getRoutes(router *gin.Engine, uc useCases) {
	workOrderHandler := handlers.NewWorkOrderHandler(uc.workOrder)
	invoiceHandler := handlers.NewInvoiceHandler(uc.invoice, uc.report)
	catalogHandler := handlers.NewCatalogHandler(uc.catalog)
	calendarHandler := handlers.NewCalendarHandler(uc.calendar)
	authHandler := handlers.NewAuthHandler(uc.auth)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addCatalogRoutes(v1, catalogHandler, invoiceHandler)
	addBillingRoutes(v1, workOrderHandler, invoiceHandler)
	addCalendarRoutes(v1, calendarHandler)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware(cfg.CORSAllowedOrigins))
}
