package models

import "team-maker/database"

type UserType int32

const (
	UserTypeStudent   UserType = 1
	UserTypeProfessor UserType = 2
)

type User struct {
	database.BaseModelWithSoftDelete
	Type  UserType `gorm:"not null;type:integer"`
	Name  string   `gorm:"not null"`
	Email string   `gorm:"not null;index"`
}
