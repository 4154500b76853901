// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ActivationHandler *handler.ActivationHandler
	StatsHandler      *handler.StatsHandler
	BarcodeHandler    *handler.BarcodeHandler
	ProductHandler    *handler.ProductHandler
	DealerHandler     *handler.DealerHandler
	CustomerHandler   *handler.CustomerHandler
	DeviceHandler     *handler.DeviceHandler
	AuditHandler      *handler.AuditHandler
	LiveHandler       *handler.LiveHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

func (r *router) require(op Operation) echo.MiddlewareFunc {
	return r.AuthMiddleware.Require(CapabilityFor(op))
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/otp/request", r.AuthHandler.RequestOTP)
		authGroup.POST("/otp/verify", r.AuthHandler.VerifyOTP)
		authGroup.POST("/refresh", r.AuthHandler.Refresh)
		authGroup.POST("/logout", r.AuthHandler.Logout)
		authGroup.GET("/me", r.AuthHandler.Me, r.AuthMiddleware.Authenticate, r.require(OpMe))
	}

	// Public lookups
	e.GET("/products/by-barcode/:code", r.ProductHandler.ProductByBarcode)
	e.GET("/dealers/lookup", r.DealerHandler.LookupDealer)
	e.GET("/dealers/:code/qrcode", r.DealerHandler.DealerQRCode)

	// The live feed authenticates with a query parameter, so it is registered
	// outside the header-authenticated group.
	e.GET("/api/v1/live", r.LiveHandler.Subscribe, r.AuthMiddleware.AuthenticateQuery, r.require(OpLiveFeed))

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.AuthMiddleware.Authenticate)

	apiV1.POST("/staff", r.AuthHandler.CreateStaff, r.require(OpCreateStaff))

	activations := apiV1.Group("/activations")
	{
		activations.POST("", r.ActivationHandler.Activate, r.require(OpActivate))
		activations.GET("", r.ActivationHandler.ListActivations, r.require(OpListActivations))
		activations.GET("/export", r.ActivationHandler.ExportActivations, r.require(OpExportActivations))
	}

	apiV1.GET("/stats", r.StatsHandler.ActivationReport, r.require(OpAdminStats))

	barcodes := apiV1.Group("/barcodes")
	{
		barcodes.POST("", r.BarcodeHandler.RegisterBarcode, r.require(OpRegisterBarcodes))
		barcodes.POST("/scan", r.BarcodeHandler.ScanBarcode, r.require(OpRegisterBarcodes))
		barcodes.POST("/batch", r.BarcodeHandler.BatchRegister, r.require(OpRegisterBarcodes))
		barcodes.GET("", r.BarcodeHandler.ListBarcodes, r.require(OpListBarcodes))
	}

	products := apiV1.Group("/products")
	{
		products.GET("", r.ProductHandler.ListProducts, r.require(OpListProducts))
		products.POST("", r.ProductHandler.CreateProduct, r.require(OpCreateProduct))
	}

	dealers := apiV1.Group("/dealers")
	{
		dealers.GET("", r.DealerHandler.ListDealers, r.require(OpManageDealers))
		dealers.POST("", r.DealerHandler.CreateDealer, r.require(OpManageDealers))
		dealers.PUT("/:id", r.DealerHandler.UpdateDealer, r.require(OpManageDealers))
		dealers.DELETE("/:id", r.DealerHandler.DeactivateDealer, r.require(OpManageDealers))
		dealers.GET("/:dealerId/stats", r.StatsHandler.DealerReport, r.require(OpDealerStats))
		dealers.GET("/:dealerId/activations", r.ActivationHandler.ListDealerActivations, r.require(OpDealerActivations))
	}

	customers := apiV1.Group("/customers")
	{
		customers.GET("", r.CustomerHandler.ListCustomers, r.require(OpListCustomers))
		customers.GET("/by-phone/:phone", r.CustomerHandler.CustomerByPhone, r.require(OpCustomerByPhone))
		customers.GET("/:customerId/activations", r.ActivationHandler.ListCustomerActivations, r.require(OpCustomerActivations))
	}

	devices := apiV1.Group("/devices")
	{
		devices.POST("", r.DeviceHandler.RegisterDevice, r.require(OpManageDevices))
		devices.DELETE("/:id", r.DeviceHandler.UnregisterDevice, r.require(OpManageDevices))
	}

	apiV1.GET("/audit-logs", r.AuditHandler.ListAuditLogs, r.require(OpListAuditLogs))
}
