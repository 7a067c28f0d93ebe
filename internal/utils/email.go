package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"

	"cakelandia_back_end/internal/models"
)

func newMailClient() (*mail.Client, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST non configuré")
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	return mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
}

func senderAddress() string {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@cakelandia.example"
	}
	return from
}

// SendOrderNotification prévient l'opérateur qu'une commande vient d'être
// passée. Appelé en fire-and-forget depuis le checkout : un échec est
// loggé, jamais remonté — la commande est déjà persistée.
func SendOrderNotification(order models.Order) error {
	to := os.Getenv("ORDER_NOTIFY_EMAIL")
	if to == "" {
		to = "owner@example.com"
	}

	msg := mail.NewMsg()
	if err := msg.From(senderAddress()); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("New Order Placed - %s", order.TrackingNumber))
	msg.SetBodyString(mail.TypeTextPlain, orderNotificationBody(order))

	// QR du lien de suivi en pièce jointe, pratique pour préparer le colis.
	if png, err := GenerateTrackingQR(order.TrackingNumber); err == nil {
		msg.AttachReader("tracking_qr.png", bytes.NewReader(png))
	}

	client, err := newMailClient()
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de la notification commande à", to)
	return client.DialAndSend(msg)
}

func orderNotificationBody(order models.Order) string {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, "- %s x %d ($%.2f each)\n", item.Product.Name, item.Quantity, item.Product.Price)
	}

	notes := order.Notes
	if notes == "" {
		notes = "None"
	}

	return fmt.Sprintf(`New order received:

Tracking: %s
Customer: %s
Email: %s
Phone: %s
Address: %s

Items:
%s
Total: $%.2f

Notes: %s
`, order.TrackingNumber, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.Address, items.String(), order.Total, notes)
}

// SendOrderStatusEmail prévient le client d'un changement de statut.
// Même règle d'isolement que la notification de commande.
func SendOrderStatusEmail(order models.Order) error {
	msg := mail.NewMsg()
	if err := msg.From(senderAddress()); err != nil {
		return err
	}
	if err := msg.To(order.CustomerEmail); err != nil {
		return err
	}
	msg.Subject(statusEmailSubject(order.Status))
	msg.SetBodyString(mail.TypeTextHTML, statusEmailHTML(order))

	client, err := newMailClient()
	if err != nil {
		return err
	}

	log.Printf("📧 Email de statut envoyé: %s → %s", order.Status, order.CustomerEmail)
	return client.DialAndSend(msg)
}

func statusEmailSubject(status string) string {
	switch status {
	case models.StatusProcessing:
		return "👩‍🍳 Your order is being prepared - Cakelandia"
	case models.StatusShipped:
		return "📦 Your order is on its way - Cakelandia"
	case models.StatusDelivered:
		return "🎉 Your order has been delivered - Cakelandia"
	case models.StatusCancelled:
		return "❌ Your order has been cancelled - Cakelandia"
	default:
		return "📋 Update on your order - Cakelandia"
	}
}

func statusEmailHTML(order models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Order update</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Your order %s</h2>
		<p>Hi %s,</p>
		<p>Your order status is now: <strong>%s</strong>.</p>
		<p>You can follow your order anytime at
			<a href="%s/tracking?trackingNumber=%s">our tracking page</a>.</p>
		<p style="margin-top: 30px; color: #555;">
			Sweet regards,<br>
			<strong>The Cakelandia team</strong>
		</p>
	</div>
</body>
</html>`, order.TrackingNumber, firstNameOf(order.CustomerName), order.Status,
		FrontendBaseURL(), order.TrackingNumber)
}

// firstNameOf ne garde que le prénom, comme la vue publique de suivi.
func firstNameOf(fullName string) string {
	if fields := strings.Fields(fullName); len(fields) > 0 {
		return fields[0]
	}
	return fullName
}
