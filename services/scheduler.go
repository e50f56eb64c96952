package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler wires the periodic maintenance jobs: nightly series
// extension and daily visit reminders.
func StartScheduler(db *gorm.DB) *cron.Cron {
	extension := NewExtensionService(NewBookingStore(db))
	reminders := NewReminderService(db)

	c := cron.New()

	// Top up recurring series every night at 2 AM
	c.AddFunc("0 2 * * *", func() {
		result, err := extension.Run()
		if err != nil {
			log.Printf("Series extension run failed: %v", err)
			return
		}
		log.Printf("Series extension run: %d checked, %d updated, %d rows inserted",
			result.SeriesChecked, result.SeriesUpdated, result.RowsInserted)
	})

	// Remind customers about tomorrow's visits every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		reminders.SendDailyReminders()
	})

	c.Start()
	log.Println("Maintenance scheduler started")
	return c
}
