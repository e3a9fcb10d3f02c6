package models

import "team-maker/database"

type Skill struct {
	database.BaseModelWithSoftDelete
	CourseId int64 `gorm:"not null"`
	Course   *Course
	Name     string `gorm:"not null"`
}
