package checkout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"matrace_backend/internal/models"
	"matrace_backend/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuthorizer struct {
	calls   int32
	result  models.PaymentResult
	err     error
	blockOn chan struct{} // when set, Authorize waits here
}

func (m *mockAuthorizer) Authorize(ctx context.Context, method string, draft models.OrderDraft) (models.PaymentResult, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.blockOn != nil {
		<-m.blockOn
	}
	if m.err != nil {
		return models.PaymentResult{}, m.err
	}
	result := m.result
	result.Method = method
	return result, nil
}

type mockOrderCreator struct {
	calls int32
	err   error
}

func (m *mockOrderCreator) Create(ctx context.Context, draft models.OrderDraft, pay models.PaymentResult) (models.PersistedOrder, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.err != nil {
		return models.PersistedOrder{}, m.err
	}
	return models.PersistedOrder{
		ID:                 uuid.New().String(),
		CustomerName:       draft.Name,
		CustomerEmail:      draft.Email,
		CustomerPhone:      draft.Phone,
		DeliveryMethod:     draft.DeliveryMethod,
		PaymentMethod:      draft.PaymentMethod,
		DeliveryAddress:    draft.Address,
		DeliveryCity:       draft.City,
		DeliveryPostalCode: draft.PostalCode,
		DeliveryNotes:      draft.DeliveryNotes,
		Items:              draft.Items,
		TotalPrice:         draft.TotalPrice,
		TransactionID:      pay.TransactionID,
		Status:             "pending",
		CreatedAt:          time.Now().UTC(),
	}, nil
}

type mockNotifier struct {
	mu       sync.Mutex
	customer []models.PersistedOrder
	merchant []models.PersistedOrder
}

func (m *mockNotifier) NotifyCustomer(order models.PersistedOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customer = append(m.customer, order)
	return nil
}

func (m *mockNotifier) NotifyMerchant(order models.PersistedOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.merchant = append(m.merchant, order)
	return nil
}

func (m *mockNotifier) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.customer), len(m.merchant)
}

type mockReconciler struct {
	mu      sync.Mutex
	records []store.ReconciliationRecord
}

func (m *mockReconciler) Record(ctx context.Context, rec store.ReconciliationRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
}

func pickupForm() models.CheckoutForm {
	return models.CheckoutForm{
		Name:           "Jan Novák",
		Email:          "jan@example.cz",
		Phone:          "123456789",
		DeliveryMethod: models.DeliveryPickup,
		PaymentMethod:  models.PaymentDobirka,
	}
}

func cartItems() []models.CartItem {
	return []models.CartItem{
		{ID: 1, Name: "Matrace Comfort 90x200", Price: 3500, Quantity: 1},
		{ID: 2, Name: "Potah Premium", Price: 750, Quantity: 2},
	}
}

func successfulPayment() models.PaymentResult {
	return models.PaymentResult{Success: true, TransactionID: "DB_1700000000000_abc123def", Message: "Platba úspěšně dokončena"}
}

func TestSubmitSuccess(t *testing.T) {
	notifier := &mockNotifier{}
	o := NewOrchestrator(
		&mockAuthorizer{result: successfulPayment()},
		&mockOrderCreator{},
		notifier,
		NewMemoryGuard(),
		&mockReconciler{},
	)

	outcome := o.Submit(context.Background(), "cart-1", pickupForm(), cartItems())

	require.Equal(t, OutcomeSuccess, outcome.Kind)
	assert.Empty(t, outcome.Errors)
	assert.NotEmpty(t, outcome.Order.ID)
	assert.Equal(t, 5000.0, outcome.Order.TotalPrice)
	assert.Equal(t, "pending", outcome.Order.Status)
	assert.Equal(t, "DB_1700000000000_abc123def", outcome.Order.TransactionID)

	require.Eventually(t, func() bool {
		c, m := notifier.counts()
		return c == 1 && m == 1
	}, time.Second, 10*time.Millisecond, "both emails should be dispatched")
}

func TestSubmitEmptyCart(t *testing.T) {
	payments := &mockAuthorizer{result: successfulPayment()}
	o := NewOrchestrator(payments, &mockOrderCreator{}, &mockNotifier{}, NewMemoryGuard(), nil)

	outcome := o.Submit(context.Background(), "cart-1", pickupForm(), nil)

	require.Equal(t, OutcomeValidationErrors, outcome.Kind)
	assert.Equal(t, "Košík je prázdný", outcome.Errors["cart"])
	assert.Zero(t, atomic.LoadInt32(&payments.calls))
}

func TestSubmitValidationStopsBeforePayment(t *testing.T) {
	payments := &mockAuthorizer{result: successfulPayment()}
	orders := &mockOrderCreator{}
	o := NewOrchestrator(payments, orders, &mockNotifier{}, NewMemoryGuard(), nil)

	form := pickupForm()
	form.DeliveryMethod = models.DeliveryCourier // address fields left empty

	outcome := o.Submit(context.Background(), "cart-1", form, cartItems())

	require.Equal(t, OutcomeValidationErrors, outcome.Kind)
	assert.Len(t, outcome.Errors, 3)
	assert.Contains(t, outcome.Errors, "address")
	assert.Contains(t, outcome.Errors, "city")
	assert.Contains(t, outcome.Errors, "postalCode")
	assert.Zero(t, atomic.LoadInt32(&payments.calls), "no payment attempt on an invalid form")
	assert.Zero(t, atomic.LoadInt32(&orders.calls))
}

func TestSubmitPaymentDeclined(t *testing.T) {
	orders := &mockOrderCreator{}
	notifier := &mockNotifier{}
	o := NewOrchestrator(
		&mockAuthorizer{result: models.PaymentResult{Success: false, Message: "Platba kartou byla odmítnuta"}},
		orders,
		notifier,
		NewMemoryGuard(),
		nil,
	)

	form := pickupForm()
	form.PaymentMethod = models.PaymentCard

	outcome := o.Submit(context.Background(), "cart-1", form, cartItems())

	require.Equal(t, OutcomePaymentFailure, outcome.Kind)
	assert.Equal(t, "Platba kartou byla odmítnuta", outcome.Message)
	assert.Zero(t, atomic.LoadInt32(&orders.calls), "declined payment must not persist an order")

	// The guard is released; the customer can retry with the same cart.
	outcome = o.Submit(context.Background(), "cart-1", form, cartItems())
	assert.Equal(t, OutcomePaymentFailure, outcome.Kind)

	c, m := notifier.counts()
	assert.Zero(t, c)
	assert.Zero(t, m)
}

func TestSubmitPaymentError(t *testing.T) {
	o := NewOrchestrator(
		&mockAuthorizer{err: errors.New("gateway unreachable")},
		&mockOrderCreator{},
		&mockNotifier{},
		NewMemoryGuard(),
		nil,
	)

	outcome := o.Submit(context.Background(), "cart-1", pickupForm(), cartItems())

	require.Equal(t, OutcomePaymentFailure, outcome.Kind)
	assert.Equal(t, "Platbu se nepodařilo zpracovat", outcome.Message)
}

func TestSubmitPersistenceFailure(t *testing.T) {
	notifier := &mockNotifier{}
	reconciler := &mockReconciler{}
	o := NewOrchestrator(
		&mockAuthorizer{result: successfulPayment()},
		&mockOrderCreator{err: errors.New("scylla timeout")},
		notifier,
		NewMemoryGuard(),
		reconciler,
	)

	outcome := o.Submit(context.Background(), "cart-1", pickupForm(), cartItems())

	require.Equal(t, OutcomePersistenceFailure, outcome.Kind)
	assert.Equal(t, "Došlo k chybě při odesílání objednávky. Zkuste to prosím znovu.", outcome.Message)

	// No order means no emails.
	time.Sleep(50 * time.Millisecond)
	c, m := notifier.counts()
	assert.Zero(t, c)
	assert.Zero(t, m)

	// The paid-but-unpersisted attempt lands in the reconciliation queue.
	reconciler.mu.Lock()
	defer reconciler.mu.Unlock()
	require.Len(t, reconciler.records, 1)
	rec := reconciler.records[0]
	assert.Equal(t, "DB_1700000000000_abc123def", rec.TransactionID)
	assert.Equal(t, "jan@example.cz", rec.CustomerEmail)
	assert.Equal(t, 5000.0, rec.TotalPrice)
	assert.Equal(t, "scylla timeout", rec.Reason)
}

func TestSubmitRejectsConcurrentAttempt(t *testing.T) {
	release := make(chan struct{})
	payments := &mockAuthorizer{result: successfulPayment(), blockOn: release}
	o := NewOrchestrator(payments, &mockOrderCreator{}, &mockNotifier{}, NewMemoryGuard(), nil)

	first := make(chan Outcome, 1)
	go func() {
		first <- o.Submit(context.Background(), "cart-1", pickupForm(), cartItems())
	}()

	// Wait until the first submit sits inside the payment stub.
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&payments.calls) == 1
	}, time.Second, 5*time.Millisecond)

	second := o.Submit(context.Background(), "cart-1", pickupForm(), cartItems())
	require.Equal(t, OutcomeInFlight, second.Kind)
	assert.Equal(t, "Objednávka se právě zpracovává", second.Message)

	// The closed channel unblocks every later Authorize immediately.
	close(release)
	assert.Equal(t, OutcomeSuccess, (<-first).Kind)

	// A different cart was never held by the guard.
	other := o.Submit(context.Background(), "cart-2", pickupForm(), cartItems())
	assert.Equal(t, OutcomeSuccess, other.Kind)

	// Guard released after completion; the same cart can submit again.
	again := o.Submit(context.Background(), "cart-1", pickupForm(), cartItems())
	assert.Equal(t, OutcomeSuccess, again.Kind)
}
