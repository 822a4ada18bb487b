package mysql

import (
	"gorm.io/gorm"

	"github.com/cldprgm/Network-vibe/internal/repository/mysql/model"
)

// Migrate creates or updates every table the engine reads and writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Community{},
		&model.Post{},
		&model.Comment{},
		&model.Membership{},
		&model.Rating{},
	)
}
