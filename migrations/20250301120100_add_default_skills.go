package migrations

import (
	"team-maker/models"

	"github.com/ottomillrath/goose/v2"
	"gorm.io/gorm"
)

func init() {
	goose.AddMigration(service, upAddDefaultSkills, downAddDefaultSkills)
}

func upAddDefaultSkills(tx *gorm.DB) error {
	// assume-se que o course criado na migração anterior é ID 1
	// se não for, alterar aqui ou mudar essa func pra pegar pelo nome

	skills := []*models.Skill{
		{
			CourseId: 1,
			Name:     "Backend",
		},
		{
			CourseId: 1,
			Name:     "Frontend",
		},
		{
			CourseId: 1,
			Name:     "Banco de Dados",
		},
		{
			CourseId: 1,
			Name:     "QA",
		},
		{
			CourseId: 1,
			Name:     "UX/UI",
		},
		{
			CourseId: 1,
			Name:     "DevOps",
		},
	}

	for _, skill := range skills {
		r := tx.Create(skill)
		if r.Error != nil {
			return r.Error
		}
	}

	return nil
}

func downAddDefaultSkills(tx *gorm.DB) error {
	// também assume-se que o course ID é 1
	return tx.Where(models.Skill{
		CourseId: 1,
	}, "CourseId").Delete(&models.Skill{}).Error
}
