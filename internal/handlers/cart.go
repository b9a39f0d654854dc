package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"matrace_backend/internal/database"
	"matrace_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Carts are anonymous: the storefront keeps a cart id in local storage and
// sends it in the X-Cart-ID header. A fresh id is minted when none comes in.

const (
	cartIDHeader = "X-Cart-ID"
	cartTTL      = 30 * 24 * time.Hour
)

func cartKey(cartID string) string {
	return "cart:" + cartID
}

// cartIDFrom reads the cart id from the request, minting one when missing.
// The (possibly new) id is always echoed back in the response header.
func cartIDFrom(c *gin.Context) string {
	cartID := c.GetHeader(cartIDHeader)
	if cartID == "" {
		cartID = uuid.New().String()
	}
	c.Header(cartIDHeader, cartID)
	return cartID
}

// loadCart reads the cart from Redis. A missing key is an empty cart; any
// other Redis failure is an error, never silently an empty cart.
func loadCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	data, err := database.Redis.Get(ctx, cartKey(cartID)).Result()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart []models.CartItem
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		// A corrupt payload is unrecoverable; start the cart over.
		log.Printf("⚠️ Corrupt cart payload for %s, resetting: %v", cartID, err)
		return []models.CartItem{}, nil
	}
	return cart, nil
}

func saveCart(ctx context.Context, cartID string, cart []models.CartItem) error {
	jsonData, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, cartKey(cartID), jsonData, cartTTL).Err()
}

// mergeCartItem adds the item, folding it into an existing line with the
// same id.
func mergeCartItem(cart []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range cart {
		if cart[i].ID == item.ID {
			cart[i].Quantity += item.Quantity
			return cart
		}
	}
	return append(cart, item)
}

// setCartQuantity sets an item's quantity. Quantity stays ≥ 1 here; removal
// is an explicit delete, never a zero write.
func setCartQuantity(cart []models.CartItem, itemID, quantity int) ([]models.CartItem, bool) {
	for i := range cart {
		if cart[i].ID == itemID {
			cart[i].Quantity = quantity
			return cart, true
		}
	}
	return cart, false
}

func removeCartItem(cart []models.CartItem, itemID int) ([]models.CartItem, bool) {
	out := make([]models.CartItem, 0, len(cart))
	found := false
	for _, item := range cart {
		if item.ID == itemID {
			found = true
			continue
		}
		out = append(out, item)
	}
	return out, found
}

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	cartID := cartIDFrom(c)
	cart, err := loadCart(c.Request.Context(), cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo načíst"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartId":     cartID,
		"items":      cart,
		"totalPrice": models.CartTotal(cart),
	})
}

//
// 🟢 POST /api/cart/items
//
func AddCartItem(c *gin.Context) {
	cartID := cartIDFrom(c)

	var input models.CartItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatná data"})
		return
	}
	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatné množství"})
		return
	}
	if input.Name == "" || input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatná položka"})
		return
	}

	ctx := c.Request.Context()
	cart, err := loadCart(ctx, cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo načíst"})
		return
	}
	cart = mergeCartItem(cart, input)

	if err := saveCart(ctx, cartID, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo uložit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartId":     cartID,
		"items":      cart,
		"totalPrice": models.CartTotal(cart),
	})
}

//
// ✏️ PATCH /api/cart/items/:itemId
//
func UpdateCartItem(c *gin.Context) {
	cartID := cartIDFrom(c)

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatné ID položky"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatná data"})
		return
	}
	if input.Quantity < 1 {
		// Dropping to zero is a removal and must come in as DELETE.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Množství musí být alespoň 1"})
		return
	}

	ctx := c.Request.Context()
	stored, err := loadCart(ctx, cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo načíst"})
		return
	}
	cart, found := setCartQuantity(stored, itemID, input.Quantity)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Položka nenalezena"})
		return
	}

	if err := saveCart(ctx, cartID, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo uložit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartId":     cartID,
		"items":      cart,
		"totalPrice": models.CartTotal(cart),
	})
}

//
// ❌ DELETE /api/cart/items/:itemId
//
func RemoveCartItem(c *gin.Context) {
	cartID := cartIDFrom(c)

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatné ID položky"})
		return
	}

	ctx := c.Request.Context()
	stored, err := loadCart(ctx, cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo načíst"})
		return
	}
	cart, found := removeCartItem(stored, itemID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Položka nenalezena"})
		return
	}

	if err := saveCart(ctx, cartID, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo uložit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartId":     cartID,
		"items":      cart,
		"totalPrice": models.CartTotal(cart),
	})
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	cartID := cartIDFrom(c)

	if err := database.Redis.Del(c.Request.Context(), cartKey(cartID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo vyprázdnit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cartId": cartID,
		"items":  []models.CartItem{},
	})
}
