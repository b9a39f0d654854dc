package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"matrace_backend/internal/database"
)

// ReconciliationRecord marks an order whose payment was authorized but whose
// persistence failed. There is no automatic refund path; these records exist
// for manual follow-up.
type ReconciliationRecord struct {
	TransactionID string    `json:"transaction_id"`
	PaymentMethod string    `json:"payment_method"`
	CustomerEmail string    `json:"customer_email"`
	TotalPrice    float64   `json:"total_price"`
	FailedAt      time.Time `json:"failed_at"`
	Reason        string    `json:"reason"`
}

const reconciliationQueueKey = "reconciliation_queue"

// RedisReconciler pushes reconciliation records onto a Redis list. Writing
// is best-effort: losing the record must not change the checkout outcome.
type RedisReconciler struct{}

func NewRedisReconciler() *RedisReconciler {
	return &RedisReconciler{}
}

func (r *RedisReconciler) Record(ctx context.Context, rec ReconciliationRecord) {
	payload, err := json.Marshal(rec)
	if err != nil {
		log.Printf("❌ Could not serialize reconciliation record: %v", err)
		return
	}

	if err := database.Redis.LPush(ctx, reconciliationQueueKey, payload).Err(); err != nil {
		log.Printf("❌ Could not enqueue reconciliation record (tx %s): %v", rec.TransactionID, err)
		return
	}

	log.Printf("⚠️ Reconciliation record queued: tx=%s amount=%.2f", rec.TransactionID, rec.TotalPrice)
}
