package mailer

import (
	"strings"
	"testing"
	"time"

	"matrace_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() models.PersistedOrder {
	return models.PersistedOrder{
		ID:                 "3f2a1b4c-0000-0000-0000-000000000001",
		CustomerName:       "Jan Novák",
		CustomerEmail:      "jan@example.cz",
		CustomerPhone:      "+420123456789",
		DeliveryMethod:     models.DeliveryCourier,
		PaymentMethod:      models.PaymentComgate,
		DeliveryAddress:    "Dlouhá 12",
		DeliveryCity:       "Brno",
		DeliveryPostalCode: "602 00",
		Items: []models.CartItem{
			{ID: 1, Name: "Matrace Comfort 90x200", Price: 3500, Quantity: 1},
			{ID: 2, Name: "Potah Premium", Price: 750, Quantity: 2},
		},
		TotalPrice:    5000,
		TransactionID: "CG_1700000000000_abc123def",
		Status:        "pending",
		CreatedAt:     time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC),
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0 Kč"},
		{750, "750 Kč"},
		{5000, "5 000 Kč"},
		{12500, "12 500 Kč"},
		{1234567, "1 234 567 Kč"},
		{12500.5, "12 500,50 Kč"},
		{99.99, "99,99 Kč"},
		{4.999, "5 Kč"},
		{999.999, "1 000 Kč"},
		{-1234.5, "-1 234,50 Kč"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount), "amount %v", tt.amount)
	}
}

func TestMethodLabels(t *testing.T) {
	assert.Equal(t, "Dobírka (platba při převzetí)", PaymentMethodLabel(models.PaymentDobirka))
	assert.Equal(t, "Osobní odběr", DeliveryMethodLabel(models.DeliveryPickup))

	// Unknown codes fall back to the raw value.
	assert.Equal(t, "sepa", PaymentMethodLabel("sepa"))
	assert.Equal(t, "drone", DeliveryMethodLabel("drone"))
}

func TestDeliveryAddressLine(t *testing.T) {
	order := sampleOrder()
	assert.Equal(t, "Dlouhá 12, Brno, 602 00", deliveryAddressLine(order))

	order.DeliveryAddress = ""
	assert.Equal(t, "Osobní odběr", deliveryAddressLine(order))
}

func TestFormatItems(t *testing.T) {
	items := sampleOrder().Items
	lines := strings.Split(formatItems(items), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Matrace Comfort 90x200 - 3 500 Kč (1ks)", lines[0])
	assert.Equal(t, "Potah Premium - 750 Kč (2ks)", lines[1])

	assert.Equal(t, "Konfigurace není dostupná", formatItems(nil))
}

func TestCustomerEmailBodies(t *testing.T) {
	order := sampleOrder()
	order.DeliveryNotes = "Zvonek nefunguje, volejte"

	html := CustomerEmailHTML(order)
	assert.Contains(t, html, order.ID)
	assert.Contains(t, html, "Jan Novák")
	assert.Contains(t, html, "5. 3. 2026")
	assert.Contains(t, html, "Dlouhá 12, Brno, 602 00")
	assert.Contains(t, html, "Zvonek nefunguje, volejte")
	assert.Contains(t, html, "Matrace Comfort 90x200")
	assert.Contains(t, html, "5 000 Kč")

	text := CustomerEmailText(order)
	assert.Contains(t, text, "#"+order.ID)
	assert.Contains(t, text, "POZNÁMKY: Zvonek nefunguje, volejte")
	assert.Contains(t, text, "Potah Premium - 750 Kč (2ks)")
	assert.Contains(t, text, "jan@example.cz")
}

func TestCustomerEmailWithoutNotes(t *testing.T) {
	order := sampleOrder()

	assert.NotContains(t, CustomerEmailHTML(order), "Poznámky")
	assert.Contains(t, CustomerEmailText(order), "POZNÁMKY: Žádné poznámky")
}

func TestMerchantEmailBodies(t *testing.T) {
	order := sampleOrder()

	html := MerchantEmailHTML(order)
	assert.Contains(t, html, "NOVÁ OBJEDNÁVKA #"+order.ID)
	assert.Contains(t, html, "+420123456789")
	assert.Contains(t, html, "Dlouhá 12, Brno, 602 00")

	text := MerchantEmailText(order)
	assert.Contains(t, text, "NOVÁ OBJEDNÁVKA #"+order.ID)
	assert.Contains(t, text, "Comgate (karta, internetové bankovnictví)")
	assert.Contains(t, text, "Doručení na adresu")
}

func TestMerchantEmailPickupHidesAddressRow(t *testing.T) {
	order := sampleOrder()
	order.DeliveryMethod = models.DeliveryPickup
	order.DeliveryAddress = ""
	order.DeliveryCity = ""
	order.DeliveryPostalCode = ""

	assert.NotContains(t, MerchantEmailHTML(order), "<strong>Adresa:</strong>")
	assert.Contains(t, MerchantEmailText(order), "Adresa: Osobní odběr")
}
