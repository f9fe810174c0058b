package utils

import (
	"log"
	"time"

	"tutorlink/config"
	"tutorlink/database"
	"tutorlink/models"

	"github.com/robfig/cron/v3"
)

// InitializePurchaseScheduler sets up the purchase expiry scheduler
func InitializePurchaseScheduler() {
	if config.AppConfig.PurchaseExpiryDays <= 0 {
		log.Println("[PURCHASE-SCHEDULER] Expiry disabled (PURCHASE_EXPIRY_DAYS not set)")
		return
	}

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[PURCHASE-SCHEDULER] Running daily purchase expiry check...")
		ExpirePurchases()
	})

	c.Start()
	log.Printf("[PURCHASE-SCHEDULER] Started - purchases expire after %d days", config.AppConfig.PurchaseExpiryDays)
}

// ExpirePurchases flips stale ACTIVE purchases to EXPIRED. One conditional
// update; COMPLETED and REFUNDED purchases are never touched.
func ExpirePurchases() {
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.PurchaseExpiryDays)

	res := database.Database.Db.Model(&models.Purchase{}).
		Where("status = ? AND purchase_date < ?", models.PurchaseActive, cutoff).
		Update("status", models.PurchaseExpired)

	if res.Error != nil {
		log.Printf("[PURCHASE-SCHEDULER] Error expiring purchases: %v", res.Error)
		return
	}

	if res.RowsAffected > 0 {
		log.Printf("[PURCHASE-SCHEDULER] Expired %d purchases", res.RowsAffected)
	}
}
