package routes

import (
	"os"
	"strings"
	"time"

	"matrace_backend/internal/handlers"
	"matrace_backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(corsConfig()))

	api := r.Group("/api")

	// Catalog
	api.GET("/catalog/layers", handlers.GetLayers)
	api.GET("/catalog/covers", handlers.GetCovers)
	api.GET("/payment-methods", handlers.GetPaymentMethods)

	// Cart
	api.GET("/cart", handlers.GetCart)
	api.POST("/cart/items", handlers.AddCartItem)
	api.PATCH("/cart/items/:itemId", handlers.UpdateCartItem)
	api.DELETE("/cart/items/:itemId", handlers.RemoveCartItem)
	api.DELETE("/cart", handlers.ClearCart)

	// Checkout
	api.POST("/checkout", middleware.CheckoutRateLimit(), handlers.SubmitCheckout)
}

// corsConfig accepts the storefront's cross-origin calls, including the
// preflight for the cart id header.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}

	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "X-Cart-ID"}
	cfg.ExposeHeaders = []string{"X-Cart-ID"}
	cfg.MaxAge = 12 * time.Hour

	return cfg
}
