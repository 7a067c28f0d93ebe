package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"cakelandia_back_end/internal/models"
)

// NotifyNewOrderTelegram pousse la commande sur le Telegram de l'opérateur,
// en plus de l'email. Canal optionnel : sans TELEGRAM_BOT_TOKEN on ne fait
// rien. Fire-and-forget comme l'email — la commande est déjà persistée.
func NotifyNewOrderTelegram(order models.Order) error {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil
	}
	chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if err != nil {
		return fmt.Errorf("TELEGRAM_CHAT_ID invalide: %v", err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("connexion bot Telegram: %v", err)
	}

	text := fmt.Sprintf("🧁 New order %s\n%s — $%.2f\n%d item(s), deliver to: %s",
		order.TrackingNumber, order.CustomerName, order.Total, len(order.Items), order.Address)

	if _, err := bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("envoi message Telegram: %v", err)
	}

	log.Printf("✅ Notification Telegram envoyée pour %s", order.TrackingNumber)
	return nil
}
