package utils

import (
	"log"
	"os"
	"time"

	"github.com/SHSW-Syu/SSend/models"
	"github.com/go-resty/resty/v2"
)

// NotifyOrderPlaced posts a committed order to the configured webhook.
// Delivery failures are logged and never affect the order response.
func NotifyOrderPlaced(order models.Order) {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	resp, err := resty.New().
		SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"orderId":    order.ID,
			"projectId":  order.ProjectID,
			"userId":     order.UserID,
			"totalPrice": order.TotalPrice,
		}).
		Post(webhookURL)
	if err != nil {
		log.Println("Order webhook error:", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Order webhook returned status %d", resp.StatusCode())
	}
}
