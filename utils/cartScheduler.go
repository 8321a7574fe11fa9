package utils

import (
	"fithub/config"
	"fithub/database"
	"fithub/models"
	"fmt"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CART-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeStaleCartItems removes cart rows abandoned longer than the
// configured TTL. The cutoff sits on a day boundary so the purge is
// stable across runs within the same day.
func purgeStaleCartItems() {
	ttlDays := config.AppConfig.CartItemTTLDays
	if ttlDays <= 0 {
		return
	}

	cutoff := now.With(time.Now().AddDate(0, 0, -ttlDays)).BeginningOfDay()

	result := database.Database.Db.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&models.CartItem{})
	if result.Error != nil {
		logScheduler("Error purging stale cart items: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler(fmt.Sprintf("Purged %d stale cart items", result.RowsAffected))
	}
}

// StartCartScheduler runs the stale-cart purge every hour.
func StartCartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", purgeStaleCartItems); err != nil {
		log.Fatalf("Failed to schedule cart purge: %v", err)
	}

	c.Start()
	logScheduler("Cart scheduler started")
}
