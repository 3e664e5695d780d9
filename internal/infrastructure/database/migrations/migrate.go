package migrations

import (
	"github.com/DOXOPOKC/checklists/internal/domain/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.UserProfile{},
		&entities.Survey{},
		&entities.Question{},
		&entities.Response{},
		&entities.Answer{},
		&entities.Attachment{},
		&entities.Report{},
	)
}
