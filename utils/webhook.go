package utils

import (
	"fithub/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyAdminWebhook posts an event to the configured admin webhook. A
// missing URL disables the feature; delivery failures are logged and
// never surfaced to the request that triggered them.
func NotifyAdminWebhook(event string, payload map[string]interface{}) {
	webhookURL := config.AppConfig.AdminWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":   event,
			"payload": payload,
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error calling admin webhook: %v", err)
		return
	}

	if resp.IsError() {
		log.Printf("Admin webhook returned %d for event %s", resp.StatusCode(), event)
	}
}
