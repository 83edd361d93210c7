package migration

import (
	"github.com/memoday/memoday-backend/internal/domain"
	"gorm.io/gorm"
)

// Run applies the schema for all persisted entities
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Memo{},
		&domain.OAuthAccount{},
	)
}
