package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/startpage-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Notes storage (key/value)
		&domain.Preference{},

		// Flash-card study
		&domain.ReviewAttempt{},
	)
}
