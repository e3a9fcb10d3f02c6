package models

import "team-maker/database"

type Team struct {
	database.BaseModelWithSoftDelete
	CourseId int64 `gorm:"not null"`
	Course   *Course
	Name     string `gorm:"not null"`
	// FormationRunId agrupa os times criados numa mesma execução do engine
	FormationRunId string `gorm:"not null;index"`
	// IsValid é o resultado da validação do engine no momento da criação;
	// times inválidos também são persistidos para ajuste manual
	IsValid bool `gorm:"not null;default:true"`

	Members []*TeamMember
}
