// Package router assembles the gin engine: middleware chain, public auth
// routes, and the authenticated API surface.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/auth"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/logger"
	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/telemetry"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/handler"
	"github.com/ilidanrock/ecohome-sub001/internal/interfaces/http/middleware"
)

// Dependencies carries everything the router needs to wire the API.
type Dependencies struct {
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist

	// Telemetry; nil MeterProvider or TracingEnabled=false disables the
	// corresponding middleware.
	MeterProvider  *telemetry.MeterProvider
	TracingEnabled bool
	ServiceName    string

	CORS middleware.CORSConfig

	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Property *handler.PropertyHandler
	Rental   *handler.RentalHandler
	Bill     *handler.BillHandler
	Invoice  *handler.InvoiceHandler
	Payment  *handler.PaymentHandler
}

// New builds the gin engine with the full middleware chain and all routes
// registered.
func New(deps Dependencies) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(logger.Recovery(deps.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(deps.CORS))

	serviceName := deps.ServiceName
	if serviceName == "" {
		serviceName = "ecohome-backend"
	}
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: serviceName,
		Enabled:     deps.TracingEnabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: deps.MeterProvider,
		ServiceName:   serviceName,
		Enabled:       deps.MeterProvider != nil,
	}))

	// Liveness endpoints sit outside the API group and skip auth.
	engine.GET("/health", deps.System.Health)
	engine.GET("/ping", deps.System.Ping)

	jwtCfg := middleware.DefaultJWTConfig(deps.JWTService)
	jwtCfg.TokenBlacklist = deps.TokenBlacklist
	jwtCfg.Logger = deps.Logger

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))
	api.Use(middleware.TracingAttributeInjector())

	api.GET("/health", deps.System.Health)

	registerAuthRoutes(api, deps)
	registerPropertyRoutes(api, deps)
	registerRentalRoutes(api, deps)
	registerBillRoutes(api, deps)
	registerInvoiceRoutes(api, deps)
	registerPaymentRoutes(api, deps)

	return engine
}

func registerAuthRoutes(api *gin.RouterGroup, deps Dependencies) {
	authGroup := api.Group("/auth")
	// login, refresh and register pass through the JWT middleware via its
	// skip list; the rest require a valid token.
	authGroup.POST("/login", deps.Auth.Login)
	authGroup.POST("/refresh", deps.Auth.RefreshToken)
	authGroup.POST("/register", deps.User.Register)
	authGroup.POST("/logout", deps.Auth.Logout)
	authGroup.GET("/me", deps.Auth.Me)
	authGroup.POST("/change-password", deps.Auth.ChangePassword)

	api.GET("/users/:id", middleware.RequireAdmin(), deps.User.GetUser)
}

func registerPropertyRoutes(api *gin.RouterGroup, deps Dependencies) {
	properties := api.Group("/properties")
	properties.Use(middleware.RequireAdmin())
	properties.POST("", deps.Property.CreateProperty)
	properties.GET("", deps.Property.ListProperties)
	properties.GET("/:id", deps.Property.GetProperty)
	properties.PUT("/:id", deps.Property.UpdateProperty)
	properties.DELETE("/:id", deps.Property.DeleteProperty)
	properties.GET("/:id/rentals", deps.Rental.ListRentalsByProperty)
	properties.GET("/:id/bills/electricity", deps.Bill.ListElectricityBills)
	properties.GET("/:id/bills/water", deps.Bill.ListWaterBills)
}

func registerRentalRoutes(api *gin.RouterGroup, deps Dependencies) {
	rentals := api.Group("/rentals")
	rentals.POST("", middleware.RequireAdmin(), deps.Rental.CreateRental)
	rentals.GET("", deps.Rental.ListMyRentals)
	rentals.GET("/:id", deps.Rental.GetRental)
	rentals.POST("/:id/terminate", middleware.RequireAdmin(), deps.Rental.TerminateRental)
	rentals.GET("/:id/consumptions", middleware.RequireAdmin(), deps.Bill.ListConsumptions)
}

func registerBillRoutes(api *gin.RouterGroup, deps Dependencies) {
	bills := api.Group("/bills")
	bills.Use(middleware.RequireAdmin())
	bills.POST("/electricity", deps.Bill.CreateElectricityBill)
	bills.POST("/water", deps.Bill.CreateWaterBill)

	api.POST("/consumptions", middleware.RequireAdmin(), deps.Bill.RecordConsumption)
}

func registerInvoiceRoutes(api *gin.RouterGroup, deps Dependencies) {
	invoices := api.Group("/invoices")
	invoices.POST("/generate", middleware.RequireAdmin(), deps.Invoice.GenerateInvoices)
	invoices.GET("", deps.Invoice.ListMyInvoices)
	invoices.GET("/:id", deps.Invoice.GetInvoice)
}

func registerPaymentRoutes(api *gin.RouterGroup, deps Dependencies) {
	payments := api.Group("/payments")
	payments.POST("/rental", middleware.RequireAdmin(), deps.Payment.RecordRentalPayment)
	payments.POST("/service", middleware.RequireAdmin(), deps.Payment.RecordServicePayment)
	payments.GET("/invoice/:id", deps.Payment.ListPaymentsByInvoice)
	payments.GET("/rental/:id", deps.Payment.ListPaymentsByRental)
}
