package mailer

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"matrace_backend/internal/models"

	"github.com/wneessen/go-mail"
)

// Dispatcher sends the two order notifications through the SMTP relay.
// Neither send may block or reverse a checkout: the caller fires them off
// after the order is already durable and only logs failures.
type Dispatcher struct {
	// send is swappable for tests.
	send func(to, toName, subject, html, text string) error
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{send: sendViaSMTP}
}

// NewDispatcherWithSender builds a dispatcher over a custom transport.
func NewDispatcherWithSender(send func(to, toName, subject, html, text string) error) *Dispatcher {
	return &Dispatcher{send: send}
}

// NotifyCustomer sends the order confirmation to the customer.
func (d *Dispatcher) NotifyCustomer(order models.PersistedOrder) error {
	subject := fmt.Sprintf("Potvrzení objednávky #%s", order.ID)
	err := d.send(order.CustomerEmail, order.CustomerName, subject,
		CustomerEmailHTML(order), CustomerEmailText(order))
	if err != nil {
		return fmt.Errorf("customer notification: %w", err)
	}
	log.Printf("📧 Confirmation email sent to %s (order %s)", order.CustomerEmail, order.ID)
	return nil
}

// NotifyMerchant sends the new-order alert to the shop address.
func (d *Dispatcher) NotifyMerchant(order models.PersistedOrder) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("merchant notification: ADMIN_EMAIL is not configured")
	}

	subject := fmt.Sprintf("[NOVÁ OBJEDNÁVKA] #%s - %s", order.ID, order.CustomerName)
	err := d.send(adminEmail, "", subject,
		MerchantEmailHTML(order), MerchantEmailText(order))
	if err != nil {
		return fmt.Errorf("merchant notification: %w", err)
	}
	log.Printf("📧 Merchant alert sent to %s (order %s)", adminEmail, order.ID)
	return nil
}

// sendViaSMTP builds the message with the HTML body plus the plain-text
// alternative the relay requires, and ships it over SMTP.
func sendViaSMTP(to, toName, subject, html, text string) error {
	msg := mail.NewMsg()

	fromEmail := os.Getenv("SHOP_FROM_EMAIL")
	fromName := os.Getenv("SHOP_FROM_NAME")
	if fromName == "" {
		fromName = "Matrace Konfigurátor"
	}

	if err := msg.FromFormat(fromName, fromEmail); err != nil {
		return err
	}
	if toName != "" {
		if err := msg.AddToFormat(toName, to); err != nil {
			return err
		}
	} else {
		if err := msg.To(to); err != nil {
			return err
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending email to", to)
	return client.DialAndSend(msg)
}
