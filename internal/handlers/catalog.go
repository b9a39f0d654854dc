package handlers

import (
	"net/http"

	"matrace_backend/internal/cache"
	"matrace_backend/internal/payment"
	"matrace_backend/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🛏️ GET /api/catalog/layers
//
func GetLayers(c *gin.Context) {
	ctx := c.Request.Context()

	layers, err := cache.GetLayers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Katalog se nepodařilo načíst"})
		return
	}

	for i := range layers {
		layers[i].Icon = services.SignedIconURL(ctx, layers[i].Icon)
	}

	c.JSON(http.StatusOK, gin.H{"layers": layers})
}

//
// 🛏️ GET /api/catalog/covers
//
func GetCovers(c *gin.Context) {
	ctx := c.Request.Context()

	covers, err := cache.GetCovers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Katalog se nepodařilo načíst"})
		return
	}

	for i := range covers {
		covers[i].Icon = services.SignedIconURL(ctx, covers[i].Icon)
	}

	c.JSON(http.StatusOK, gin.H{"covers": covers})
}

//
// 💳 GET /api/payment-methods
//
func GetPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"methods": payment.ListMethods()})
}
