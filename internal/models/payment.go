package models

// PaymentResult is the outcome of one authorization attempt. The transaction
// id is scoped to the attempt; a retry after failure gets a fresh id.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Method        string `json:"method"`
	Message       string `json:"message"`
}
