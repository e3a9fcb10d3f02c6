package models

type StudentSkill struct {
	StudentId int64 `gorm:"primaryKey;autoIncrement:false"`
	Student   *User
	CourseId  int64 `gorm:"primaryKey;autoIncrement:false"`
	Course    *Course
	SkillId   int64 `gorm:"primaryKey;autoIncrement:false"`
	Skill     *Skill
	// Proficiency vai de 1 a 5
	Proficiency int32 `gorm:"not null;default:1"`
}
