package database

import (
	"github.com/arkanasution/lentera-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.GenerationCache{},
	)
	return err
}
