package mailer

// Display labels for the fixed method enumerations. Unknown codes pass
// through unchanged so a new method never breaks an email.

var paymentLabels = map[string]string{
	"comgate":   "Comgate (karta, internetové bankovnictví)",
	"dobirka":   "Dobírka (platba při převzetí)",
	"card":      "Platební karta (Visa, Mastercard)",
	"googlepay": "Google Pay",
}

var deliveryLabels = map[string]string{
	"pickup":  "Osobní odběr",
	"courier": "Doručení na adresu",
}

func PaymentMethodLabel(method string) string {
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return method
}

func DeliveryMethodLabel(method string) string {
	if label, ok := deliveryLabels[method]; ok {
		return label
	}
	return method
}
