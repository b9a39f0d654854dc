package checkout

import (
	"regexp"
	"strings"

	"matrace_backend/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Czech mobile/landline: optional +420 prefix, then exactly 9 digits
	phoneRegex = regexp.MustCompile(`^(\+420)?[0-9]{9}$`)
	// PSČ: 3 digits, optional space, 2 digits
	postalRegex = regexp.MustCompile(`^[0-9]{3}\s?[0-9]{2}$`)
)

// ValidateCheckoutForm checks the submitted form and returns per-field Czech
// error messages. An empty map means the form can proceed to payment.
func ValidateCheckoutForm(form models.CheckoutForm) models.ErrorMap {
	errs := models.ErrorMap{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs["name"] = "Jméno je povinné"
	} else if len([]rune(name)) < 2 {
		errs["name"] = "Jméno musí mít minimálně 2 znaky"
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		errs["email"] = "Email je povinný"
	} else if !emailRegex.MatchString(email) {
		errs["email"] = "Neplatný formát emailu"
	}

	phone := strings.TrimSpace(form.Phone)
	if phone == "" {
		errs["phone"] = "Telefon je povinný"
	} else if !phoneRegex.MatchString(stripWhitespace(phone)) {
		errs["phone"] = "Neplatný formát telefonu"
	}

	// Address fields only matter for courier delivery.
	if form.DeliveryMethod == models.DeliveryCourier {
		if strings.TrimSpace(form.Address) == "" {
			errs["address"] = "Adresa je povinná pro doručení"
		}
		if strings.TrimSpace(form.City) == "" {
			errs["city"] = "Město je povinné pro doručení"
		}
		postal := strings.TrimSpace(form.PostalCode)
		if postal == "" {
			errs["postalCode"] = "PSČ je povinné"
		} else if !postalRegex.MatchString(postal) {
			errs["postalCode"] = "Neplatný formát PSČ (například: 110 00)"
		}
	}

	return errs
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
