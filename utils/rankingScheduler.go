package utils

import (
	"log"
	"strconv"
	"time"

	"onlynerds/database"
	"onlynerds/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[RANKING-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileRankings re-asserts score = upvotes - downvotes on every ranking
// row. Votes apply atomically so this should be a no-op; it exists to repair
// rows touched by out-of-band writes.
func ReconcileRankings() {
	db := database.Database.Db

	res := db.Model(&models.CourseRanking{}).
		Where("score <> upvotes - downvotes").
		Update("score", gorm.Expr("upvotes - downvotes"))
	if res.Error != nil {
		logScheduler("Error reconciling ranking scores: " + res.Error.Error())
		return
	}

	if res.RowsAffected > 0 {
		logScheduler("Repaired ranking scores: " + strconv.FormatInt(res.RowsAffected, 10))
	}
}

// StartRankingScheduler runs the ranking reconciler every hour.
func StartRankingScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", ReconcileRankings); err != nil {
		logScheduler("Failed to register reconciler: " + err.Error())
		return
	}

	c.Start()
	logScheduler("Ranking scheduler started")
}
