package checkout

import (
	"context"
	"log"
	"time"

	"matrace_backend/internal/models"
	"matrace_backend/internal/store"
)

// OutcomeKind classifies the result of one submit. Every attempt is a
// fresh run; both terminal outcomes hand control back to the form.
type OutcomeKind string

const (
	OutcomeSuccess            OutcomeKind = "success"
	OutcomeValidationErrors   OutcomeKind = "validationErrors"
	OutcomePaymentFailure     OutcomeKind = "paymentFailure"
	OutcomePersistenceFailure OutcomeKind = "persistenceFailure"
	OutcomeInFlight           OutcomeKind = "inFlight"
)

// Outcome is what the UI layer reconciles against: inline field errors, a
// blocking payment alert, a generic retry prompt, or the persisted order.
type Outcome struct {
	Kind    OutcomeKind
	Errors  models.ErrorMap
	Message string
	Order   models.PersistedOrder
}

// Orchestrator drives one checkout attempt through
// validate → authorize → persist → notify.
type Orchestrator struct {
	Payments   Authorizer
	Orders     OrderCreator
	Notifier   Notifier
	Guard      Guard
	Reconciler Reconciler // optional
}

func NewOrchestrator(payments Authorizer, orders OrderCreator, notifier Notifier, guard Guard, reconciler Reconciler) *Orchestrator {
	return &Orchestrator{
		Payments:   payments,
		Orders:     orders,
		Notifier:   notifier,
		Guard:      guard,
		Reconciler: reconciler,
	}
}

// Submit runs one checkout attempt. The draft reaches the payment gateway
// and the store at most once; a concurrent submit for the same cart is
// rejected before any side effect.
func (o *Orchestrator) Submit(ctx context.Context, cartID string, form models.CheckoutForm, items []models.CartItem) Outcome {
	if !o.Guard.TryAcquire(cartID) {
		return Outcome{Kind: OutcomeInFlight, Message: "Objednávka se právě zpracovává"}
	}
	defer o.Guard.Release(cartID)

	// Validating
	if len(items) == 0 {
		return Outcome{Kind: OutcomeValidationErrors, Errors: models.ErrorMap{"cart": "Košík je prázdný"}}
	}
	if errs := ValidateCheckoutForm(form); len(errs) > 0 {
		return Outcome{Kind: OutcomeValidationErrors, Errors: errs}
	}

	// Total is recomputed here; stale UI totals are never trusted.
	draft := models.NewOrderDraft(form, items)

	// Authorizing
	result, err := o.Payments.Authorize(ctx, form.PaymentMethod, draft)
	if err != nil {
		log.Printf("❌ Payment authorization error (%s): %v", form.PaymentMethod, err)
		return Outcome{Kind: OutcomePaymentFailure, Message: "Platbu se nepodařilo zpracovat"}
	}
	if !result.Success {
		log.Printf("💳 Payment declined via %s: %s", form.PaymentMethod, result.Message)
		return Outcome{Kind: OutcomePaymentFailure, Message: result.Message}
	}

	// Persisting
	order, err := o.Orders.Create(ctx, draft, result)
	if err != nil {
		// The payment already went through; there is no refund path, so the
		// attempt is queued for manual reconciliation.
		log.Printf("❌ Order persistence failed after payment %s: %v", result.TransactionID, err)
		if o.Reconciler != nil {
			o.Reconciler.Record(ctx, store.ReconciliationRecord{
				TransactionID: result.TransactionID,
				PaymentMethod: form.PaymentMethod,
				CustomerEmail: form.Email,
				TotalPrice:    draft.TotalPrice,
				FailedAt:      time.Now().UTC(),
				Reason:        err.Error(),
			})
		}
		return Outcome{Kind: OutcomePersistenceFailure, Message: "Došlo k chybě při odesílání objednávky. Zkuste to prosím znovu."}
	}

	// Notifying, fire-and-forget. The order is durable; email failures are
	// logged and never surface to the customer.
	go func(order models.PersistedOrder) {
		if err := o.Notifier.NotifyCustomer(order); err != nil {
			log.Printf("❌ Customer email failed for order %s: %v", order.ID, err)
		}
	}(order)
	go func(order models.PersistedOrder) {
		if err := o.Notifier.NotifyMerchant(order); err != nil {
			log.Printf("❌ Merchant email failed for order %s: %v", order.ID, err)
		}
	}(order)

	log.Printf("✅ Checkout succeeded: order %s (%.2f Kč, %s)", order.ID, order.TotalPrice, order.PaymentMethod)
	return Outcome{Kind: OutcomeSuccess, Order: order}
}
