// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rangriti/internal/delivery/http/middleware"
	"rangriti/internal/delivery/http/router/handler"
	"rangriti/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProfileHandler  *handler.ProfileHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	WorkshopHandler *handler.WorkshopHandler
	MediaHandler    *handler.MediaHandler
	SpeechHandler   *handler.SpeechHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	requireBuyer := auth.RequireRole(entity.RoleBuyer.String())
	requireArtist := auth.RequireRole(entity.RoleArtist.String())

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/register/user", r.params.UserHandler.RegisterBuyer)
		apiGroup.POST("/register/artist", r.params.UserHandler.RegisterArtist)
		apiGroup.POST("/login", r.params.UserHandler.Login)
		apiGroup.POST("/refresh", r.params.UserHandler.Refresh)
		apiGroup.POST("/logout", r.params.UserHandler.Logout)

		// Text-to-speech proxy is public; the upstream key stays server-side.
		apiGroup.POST("/tts", r.params.SpeechHandler.Synthesize)

		// Public workshop calendar feed and share code.
		apiGroup.GET("/workshops", r.params.WorkshopHandler.ListCalendar)
		apiGroup.GET("/workshops/:id/qr", r.params.WorkshopHandler.WorkshopShareQR)
	}

	// Profile routes for any authenticated account
	profileGroup := e.Group("/api/profile")
	profileGroup.Use(auth.Authenticate)
	{
		profileGroup.GET("", r.params.ProfileHandler.GetProfile)
		profileGroup.PUT("", r.params.ProfileHandler.UpdateProfile)
	}

	// Catalogue reads are public; mutations require the "artist" role
	catalogGroup := e.Group("/catalogue")
	{
		catalogGroup.GET("", r.params.CatalogHandler.ListProducts)
		catalogGroup.GET("/:id", r.params.CatalogHandler.GetProduct)
	}
	catalogWriteGroup := e.Group("/catalogue")
	catalogWriteGroup.Use(auth.Authenticate)
	catalogWriteGroup.Use(requireArtist)
	{
		catalogWriteGroup.POST("", r.params.CatalogHandler.CreateProduct)
		catalogWriteGroup.PUT("/:id", r.params.CatalogHandler.UpdateProduct)
		catalogWriteGroup.DELETE("/:id", r.params.CatalogHandler.DeleteProduct)
	}

	// Cart and purchase routes require the "buyer" role
	cartGroup := e.Group("/cart")
	cartGroup.Use(auth.Authenticate)
	cartGroup.Use(requireBuyer)
	{
		cartGroup.GET("", r.params.CartHandler.GetCart)
		cartGroup.POST("/add", r.params.CartHandler.AddToCart)
		cartGroup.POST("/update", r.params.CartHandler.UpdateCart)
	}

	buyGroup := e.Group("")
	buyGroup.Use(auth.Authenticate)
	buyGroup.Use(requireBuyer)
	{
		buyGroup.POST("/buy-now/:productId", r.params.OrderHandler.BuyNow)
		buyGroup.POST("/checkout", r.params.OrderHandler.Checkout)
		buyGroup.GET("/orders", r.params.OrderHandler.ListBuyerOrders)
	}

	// Artist-side order ledger and workshop management
	artistGroup := e.Group("/artist")
	artistGroup.Use(auth.Authenticate)
	artistGroup.Use(requireArtist)
	{
		artistGroup.GET("/orders", r.params.OrderHandler.ListArtistOrders)
		artistGroup.POST("/orders/:id/status", r.params.OrderHandler.UpdateOrderStatus)
	}

	artistAPIGroup := e.Group("/api")
	artistAPIGroup.Use(auth.Authenticate)
	artistAPIGroup.Use(requireArtist)
	{
		artistAPIGroup.POST("/workshops/create", r.params.WorkshopHandler.CreateWorkshop)
		artistAPIGroup.POST("/uploads", r.params.MediaHandler.Upload)
	}
}
