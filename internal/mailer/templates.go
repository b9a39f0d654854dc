package mailer

import (
	"fmt"
	"math"
	"strings"

	"matrace_backend/internal/models"
)

// FormatPrice renders an amount the Czech way: "12 500 Kč". The amount is
// rounded to whole cents first so a fraction like .999 carries into the
// whole part instead of wrapping back to ",00".
func FormatPrice(amount float64) string {
	cents := int64(math.Round(amount * 100))
	negative := cents < 0
	if negative {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, " ")
	if negative {
		out = "-" + out
	}
	if frac > 0 {
		out += fmt.Sprintf(",%02d", frac)
	}
	return out + " Kč"
}

// formatDate renders a timestamp the Czech way: "5. 3. 2026".
func formatDate(order models.PersistedOrder) string {
	return order.CreatedAt.Format("2. 1. 2006")
}

// deliveryAddressLine renders the address line, or the pickup label when the
// order carries no address.
func deliveryAddressLine(order models.PersistedOrder) string {
	if order.DeliveryAddress == "" {
		return "Osobní odběr"
	}
	return fmt.Sprintf("%s, %s, %s", order.DeliveryAddress, order.DeliveryCity, order.DeliveryPostalCode)
}

// formatItems renders the configuration as one line per item:
// "Matrace Comfort 160x200 - 5 000 Kč (1ks)".
func formatItems(items []models.CartItem) string {
	if len(items) == 0 {
		return "Konfigurace není dostupná"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s - %s (%dks)", item.Name, FormatPrice(item.Price), item.Quantity))
	}
	return strings.Join(lines, "\n")
}

func formatItemsHTML(items []models.CartItem) string {
	if len(items) == 0 {
		return "<p>Konfigurace není dostupná</p>"
	}

	var b strings.Builder
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
		<thead>
			<tr style="background-color: #f0f0f0;">
				<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Položka</th>
				<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Počet kusů</th>
				<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Cena</th>
				<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Celkem</th>
			</tr>
		</thead>
		<tbody>`)
	for _, item := range items {
		fmt.Fprintf(&b, `
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
			</tr>`, item.Name, item.Quantity, FormatPrice(item.Price), FormatPrice(item.Price*float64(item.Quantity)))
	}
	b.WriteString(`
		</tbody>
	</table>`)
	return b.String()
}

// CustomerEmailHTML builds the order-confirmation body sent to the customer.
func CustomerEmailHTML(order models.PersistedOrder) string {
	notesBlock := ""
	if order.DeliveryNotes != "" {
		notesBlock = fmt.Sprintf(`<p style="color: #6c757d;"><strong>Poznámky:</strong> %s</p>`, order.DeliveryNotes)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="cs">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Potvrzení objednávky #%s</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 30px; border-radius: 8px;">
		<h2 style="color: #0066cc;">✓ Objednávka potvrzena</h2>
		<p>Vážený/á <strong>%s</strong>,</p>
		<p>vaše objednávka byla úspěšně vytvořena a nyní ji zpracováváme.</p>

		<h3>Objednávka #%s</h3>
		<p style="color: #6c757d;">Datum: %s</p>

		<p><strong>Způsob platby:</strong> %s<br>
		<strong>Způsob doručení:</strong> %s<br>
		<strong>Adresa doručení:</strong> %s</p>
		%s

		%s

		<p style="font-size: 18px;"><strong>Celková cena: %s</strong></p>

		<p style="background-color: #e7f3ff; padding: 15px; border-radius: 8px; color: #0066cc;">
			⏱️ Náš tým vás bude kontaktovat do 24 hodin pro upřesnění dalších kroků a potvrzení dodávky.
		</p>

		<p style="margin-top: 30px; color: #555;">
			Děkujeme za důvěru!<br>
			<strong>Váš tým matrace-konfigurátor.cz</strong>
		</p>
	</div>
</body>
</html>`,
		order.ID,
		order.CustomerName,
		order.ID,
		formatDate(order),
		PaymentMethodLabel(order.PaymentMethod),
		DeliveryMethodLabel(order.DeliveryMethod),
		deliveryAddressLine(order),
		notesBlock,
		formatItemsHTML(order.Items),
		FormatPrice(order.TotalPrice),
	)
}

// CustomerEmailText is the plain-text twin required by the relay.
func CustomerEmailText(order models.PersistedOrder) string {
	notes := order.DeliveryNotes
	if notes == "" {
		notes = "Žádné poznámky"
	}

	return fmt.Sprintf(`Vážený/á %s,

děkujeme za vaši objednávku! Vaše objednávka byla úspěšně vytvořena.

DETAILY OBJEDNÁVKY:
- Číslo objednávky: #%s
- Datum: %s
- Celková částka: %s

ZPŮSOB PLATBY: %s
ZPŮSOB DORUČENÍ: %s
ADRESA DORUČENÍ: %s
POZNÁMKY: %s

OBJEDNANÉ PRODUKTY:
%s

KONTAKTNÍ ÚDAJE:
- E-mail: %s
- Telefon: %s

Náš tým vás bude kontaktovat do 24 hodin pro upřesnění dalších kroků.

Děkujeme za důvěru!

Váš tým matrace-konfigurátor.cz
`,
		order.CustomerName,
		order.ID,
		formatDate(order),
		FormatPrice(order.TotalPrice),
		PaymentMethodLabel(order.PaymentMethod),
		DeliveryMethodLabel(order.DeliveryMethod),
		deliveryAddressLine(order),
		notes,
		formatItems(order.Items),
		order.CustomerEmail,
		order.CustomerPhone,
	)
}

// MerchantEmailHTML builds the new-order alert for the shop staff.
func MerchantEmailHTML(order models.PersistedOrder) string {
	addressRow := ""
	if order.DeliveryAddress != "" {
		addressRow = fmt.Sprintf(`<p><strong>Adresa:</strong> %s</p>`, deliveryAddressLine(order))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="cs">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 30px; border-radius: 8px;">
		<h2 style="color: #dc3545;">⚠️ NOVÁ OBJEDNÁVKA #%s</h2>

		<h3 style="color: #1976d2;">Zákazník</h3>
		<p><strong>Jméno:</strong> %s<br>
		<strong>E-mail:</strong> %s<br>
		<strong>Telefon:</strong> %s</p>

		<h3 style="color: #c62828;">Detaily objednávky</h3>
		<p><strong>Číslo:</strong> #%s<br>
		<strong>Datum:</strong> %s<br>
		<strong>Částka:</strong> <span style="font-size: 18px; color: #dc3545;"><strong>%s</strong></span><br>
		<strong>Platba:</strong> %s<br>
		<strong>Doručení:</strong> %s</p>
		%s

		<h3>Produkty</h3>
		<pre style="background-color: #f8f9fa; padding: 15px; border-radius: 8px; font-family: monospace; white-space: pre-wrap;">%s</pre>

		<p style="background-color: #fff3cd; padding: 15px; border-radius: 8px; color: #856404;">
			⚡ Přihlašte se do administrace pro zpracování objednávky
		</p>
	</div>
</body>
</html>`,
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.ID,
		formatDate(order),
		FormatPrice(order.TotalPrice),
		PaymentMethodLabel(order.PaymentMethod),
		DeliveryMethodLabel(order.DeliveryMethod),
		addressRow,
		formatItems(order.Items),
	)
}

// MerchantEmailText is the plain-text twin of the merchant alert.
func MerchantEmailText(order models.PersistedOrder) string {
	return fmt.Sprintf(`NOVÁ OBJEDNÁVKA #%s

ZÁKAZNÍK:
- Jméno: %s
- E-mail: %s
- Telefon: %s

OBJEDNÁVKA:
- Číslo: #%s
- Datum: %s
- Částka: %s
- Platba: %s
- Doručení: %s
- Adresa: %s

PRODUKTY:
%s

Přihlašte se do administrace pro zpracování objednávky.
`,
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.ID,
		formatDate(order),
		FormatPrice(order.TotalPrice),
		PaymentMethodLabel(order.PaymentMethod),
		DeliveryMethodLabel(order.DeliveryMethod),
		deliveryAddressLine(order),
		formatItems(order.Items),
	)
}
