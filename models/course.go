package models

import "team-maker/database"

type Course struct {
	database.BaseModelWithSoftDelete
	Name        string `gorm:"not null"`
	ProfessorId *int64
	Professor   *User

	Students []*StudentCourseData
}
