package migrations

import (
	"team-maker/models"

	"github.com/ottomillrath/goose/v2"
	"gorm.io/gorm"
)

func init() {
	goose.AddMigration(service, upAddProfessorDummyUser, downAddProfessorDummyUser)
}

func upAddProfessorDummyUser(tx *gorm.DB) error {
	user := &models.User{
		Name:  "Professor Dummy",
		Type:  models.UserTypeProfessor,
		Email: "professor@example.com",
	}

	r := tx.Create(user)
	if r.Error != nil {
		return r.Error
	}

	// vincula como responsável pelo course padrão, pra onde vai o
	// relatório de formação
	return tx.Model(&models.Course{}).Where("id = ?", 1).Update("professor_id", user.Id).Error
}

func downAddProfessorDummyUser(tx *gorm.DB) error {
	r := tx.Model(&models.Course{}).Where("id = ?", 1).Update("professor_id", nil)
	if r.Error != nil {
		return r.Error
	}

	return tx.Where(models.User{
		Email: "professor@example.com",
	}, "Email").Delete(&models.User{}).Error
}
