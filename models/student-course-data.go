package models

import (
	"team-maker/formation"

	"github.com/lib/pq"
)

// StudentCourseData is the per-course record of a student: whether they are
// looking for a team, their skills and the data the formation engine scores
// on.
type StudentCourseData struct {
	StudentId int64 `gorm:"primaryKey;autoIncrement:false"`
	Student   *User
	CourseId  int64 `gorm:"primaryKey;autoIncrement:false"`
	Course    *Course

	LookingForTeam     bool `gorm:"not null;default:true"`
	AcademicLevelId    *int64
	AcademicLevel      *AcademicLevel
	AvailabilitySlots  pq.StringArray `gorm:"type:text[]"`
	ProjectPreferences pq.Int64Array  `gorm:"type:bigint[]"`
	TeamId             *int64
	Team               *Team
	HadFirstUpdate     bool `gorm:"not null;default:false"`

	Skills []*StudentSkill `gorm:"foreignKey:StudentId,CourseId;references:StudentId,CourseId"`
}

func (StudentCourseData) TableName() string {
	return "student_course_data"
}

// ConvertToFormationStudent maps the record (with Skills loaded) to the
// engine's input type.
func (scd *StudentCourseData) ConvertToFormationStudent() *formation.Student {
	skills := make(map[int64]int32, len(scd.Skills))
	for _, skill := range scd.Skills {
		skills[skill.SkillId] = skill.Proficiency
	}

	var academicLevelId int64
	if scd.AcademicLevelId != nil {
		academicLevelId = *scd.AcademicLevelId
	}

	return &formation.Student{
		Id:                 scd.StudentId,
		Skills:             skills,
		LookingForTeam:     scd.LookingForTeam,
		AlreadyInTeam:      scd.TeamId != nil,
		AvailabilitySlots:  []string(scd.AvailabilitySlots),
		ProjectPreferences: []int64(scd.ProjectPreferences),
		AcademicLevelId:    academicLevelId,
	}
}
