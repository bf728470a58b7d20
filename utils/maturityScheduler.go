package utils

import (
	"bankflow/database"
	"bankflow/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[MATURITY-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ProcessMaturedDeposits deactivates fixed and recurring deposit accounts whose
// maturity date has passed
func ProcessMaturedDeposits() {
	db := database.Database.Db
	today := time.Now()

	var matured []models.AccountDetails
	if err := db.
		Where("account_type IN ? AND is_active = ? AND maturity_date IS NOT NULL", []string{models.AccountTypeFixedDeposit, models.AccountTypeRecurringDeposit}, true).
		Where("maturity_date <= ?", today).
		Find(&matured).Error; err != nil {
		logScheduler("Error fetching matured deposits: " + err.Error())
		return
	}

	for _, account := range matured {
		account.IsActive = false
		if err := db.Save(&account).Error; err != nil {
			logScheduler("Error deactivating matured account: " + err.Error())
			continue
		}
	}

	if len(matured) > 0 {
		logScheduler("Deactivated matured deposit accounts")
	}
}

// InitializeMaturityScheduler runs the maturity sweep daily at midnight
func InitializeMaturityScheduler() *cron.Cron {
	logScheduler("Initializing maturity scheduler...")

	c := cron.New()
	c.AddFunc("0 0 * * *", func() {
		logScheduler("Running daily maturity sweep...")
		ProcessMaturedDeposits()
	})
	c.Start()

	logScheduler("Maturity scheduler started - runs daily at midnight")
	return c
}
