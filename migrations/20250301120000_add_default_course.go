package migrations

import (
	"team-maker/models"

	"github.com/ottomillrath/goose/v2"
	"gorm.io/gorm"
)

func init() {
	goose.AddMigration(service, upAddDefaultCourse, downAddDefaultCourse)
}

func upAddDefaultCourse(tx *gorm.DB) error {
	course := &models.Course{
		Name: "Fábrica de Software",
	}

	r := tx.Create(course)

	return r.Error
}

func downAddDefaultCourse(tx *gorm.DB) error {
	r := tx.Where(models.Course{
		Name: "Fábrica de Software",
	}, "Name").Delete(&models.Course{})
	return r.Error
}
