package migrations

import (
	"team-maker/models"

	"github.com/ottomillrath/goose/v2"
	"gorm.io/gorm"
)

func init() {
	goose.AddMigration(service, upAddDefaultAcademicLevels, downAddDefaultAcademicLevels)
}

func upAddDefaultAcademicLevels(tx *gorm.DB) error {
	// assume-se que o course é ID 1, igual às outras migrações de seed

	levels := []*models.AcademicLevel{
		{
			CourseId: 1,
			Name:     "Calouro",
		},
		{
			CourseId: 1,
			Name:     "Veterano",
		},
		{
			CourseId: 1,
			Name:     "Formando",
		},
	}

	for _, level := range levels {
		r := tx.Create(level)
		if r.Error != nil {
			return r.Error
		}
	}

	return nil
}

func downAddDefaultAcademicLevels(tx *gorm.DB) error {
	return tx.Where(models.AcademicLevel{
		CourseId: 1,
	}, "CourseId").Delete(&models.AcademicLevel{}).Error
}
