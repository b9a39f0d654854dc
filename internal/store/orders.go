package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"matrace_backend/internal/database"
	"matrace_backend/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// ScyllaOrderStore persists orders into the orders keyspace. It never
// retries on its own; retry policy belongs to the caller.
type ScyllaOrderStore struct{}

func NewScyllaOrderStore() *ScyllaOrderStore {
	return &ScyllaOrderStore{}
}

// Create inserts one order row and returns the stored record with the
// server-assigned id and timestamp. New orders always start as "pending".
func (s *ScyllaOrderStore) Create(ctx context.Context, draft models.OrderDraft, pay models.PaymentResult) (models.PersistedOrder, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return models.PersistedOrder{}, fmt.Errorf("orders session: %w", err)
	}

	configJSON, err := json.Marshal(draft.Items)
	if err != nil {
		return models.PersistedOrder{}, fmt.Errorf("serialize configuration: %w", err)
	}

	orderID := uuid.New()
	createdAt := time.Now().UTC()

	// A fresh Query per insert: concurrent checkouts must never bind values
	// on a shared statement.
	args := insertOrderArgs(gocql.UUID(orderID), draft, pay, string(configJSON), createdAt)
	err = session.Query(database.InsertOrderCQL, args...).WithContext(ctx).Exec()
	if err != nil {
		return models.PersistedOrder{}, fmt.Errorf("insert order: %w", err)
	}

	log.Printf("✅ Order persisted: %s (%.2f Kč) for %s", orderID, draft.TotalPrice, draft.Email)

	return models.PersistedOrder{
		ID:                 orderID.String(),
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
		CreatedAt:          createdAt,
	}, nil
}

// insertOrderArgs builds the bind values for one orders row, in the column
// order of InsertOrderCQL. Each call returns its own slice.
func insertOrderArgs(orderID gocql.UUID, draft models.OrderDraft, pay models.PaymentResult, configJSON string, createdAt time.Time) []interface{} {
	return []interface{}{
		orderID,
		draft.Name,
		draft.Email,
		draft.Phone,
		draft.DeliveryMethod,
		draft.PaymentMethod,
		draft.Address,
		draft.City,
		draft.PostalCode,
		draft.DeliveryNotes,
		configJSON,
		draft.TotalPrice,
		pay.TransactionID,
		"pending",
		createdAt,
	}
}
