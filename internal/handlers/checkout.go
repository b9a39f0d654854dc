package handlers

import (
	"log"
	"net/http"
	"sync"

	"matrace_backend/internal/checkout"
	"matrace_backend/internal/database"
	"matrace_backend/internal/mailer"
	"matrace_backend/internal/models"
	"matrace_backend/internal/payment"
	"matrace_backend/internal/store"

	"github.com/gin-gonic/gin"
)

var (
	orchestratorOnce sync.Once
	orchestrator     *checkout.Orchestrator
)

// checkoutOrchestrator wires the production adapters together once.
func checkoutOrchestrator() *checkout.Orchestrator {
	orchestratorOnce.Do(func() {
		orchestrator = checkout.NewOrchestrator(
			payment.NewSimulator(),
			store.NewScyllaOrderStore(),
			mailer.NewDispatcher(),
			checkout.NewRedisGuard(),
			store.NewRedisReconciler(),
		)
	})
	return orchestrator
}

//
// 📦 POST /api/checkout
//
func SubmitCheckout(c *gin.Context) {
	cartID := c.GetHeader(cartIDHeader)
	if cartID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chybí identifikátor košíku"})
		return
	}

	var form models.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatná data"})
		return
	}

	ctx := c.Request.Context()
	items, err := loadCart(ctx, cartID)
	if err != nil {
		// A cart that cannot be read is not an empty cart.
		log.Printf("❌ Could not load cart %s for checkout: %v", cartID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Košík se nepodařilo načíst"})
		return
	}

	outcome := checkoutOrchestrator().Submit(ctx, cartID, form, items)

	switch outcome.Kind {
	case checkout.OutcomeValidationErrors:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": outcome.Errors})

	case checkout.OutcomeInFlight:
		c.JSON(http.StatusConflict, gin.H{"error": outcome.Message})

	case checkout.OutcomePaymentFailure:
		c.JSON(http.StatusPaymentRequired, gin.H{"error": outcome.Message})

	case checkout.OutcomePersistenceFailure:
		c.JSON(http.StatusInternalServerError, gin.H{"error": outcome.Message})

	case checkout.OutcomeSuccess:
		// The cart is cleared only once the order is durable.
		if err := database.Redis.Del(ctx, cartKey(cartID)).Err(); err != nil {
			log.Printf("⚠️ Could not clear cart %s after order %s: %v", cartID, outcome.Order.ID, err)
		} else {
			log.Printf("🧹 Cart %s cleared after order %s", cartID, outcome.Order.ID)
		}
		c.JSON(http.StatusCreated, gin.H{"order": outcome.Order})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Neznámý výsledek objednávky"})
	}
}
