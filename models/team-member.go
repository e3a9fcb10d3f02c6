package models

type TeamMember struct {
	TeamId    int64 `gorm:"primaryKey;autoIncrement:false"`
	Team      *Team
	StudentId int64 `gorm:"primaryKey;autoIncrement:false"`
	Student   *User
	// Ordinal é a ordem de inserção durante a formação (semente = 0)
	Ordinal int32 `gorm:"not null;default:0"`
}
