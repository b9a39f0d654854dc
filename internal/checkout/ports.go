package checkout

import (
	"context"

	"matrace_backend/internal/models"
	"matrace_backend/internal/store"
)

// Authorizer is the payment gateway contract. The simulator implements it
// today; a live gateway replaces it without touching the orchestrator.
type Authorizer interface {
	Authorize(ctx context.Context, method string, draft models.OrderDraft) (models.PaymentResult, error)
}

// OrderCreator persists one order draft with its payment outcome.
type OrderCreator interface {
	Create(ctx context.Context, draft models.OrderDraft, pay models.PaymentResult) (models.PersistedOrder, error)
}

// Notifier sends the customer and merchant emails. Both sends are
// independent of each other and of the checkout outcome.
type Notifier interface {
	NotifyCustomer(order models.PersistedOrder) error
	NotifyMerchant(order models.PersistedOrder) error
}

// Guard rejects a second submit while one is still in flight for a cart.
type Guard interface {
	TryAcquire(cartID string) bool
	Release(cartID string)
}

// Reconciler records orders whose payment went through but whose
// persistence failed, for manual follow-up.
type Reconciler interface {
	Record(ctx context.Context, rec store.ReconciliationRecord)
}
