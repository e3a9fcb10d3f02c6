package models

import (
	"team-maker/database"
	"team-maker/formation"
)

// FormationRule is the instructor-authored constraint set of a course. Only
// one rule per course is active at a time.
type FormationRule struct {
	database.BaseModelWithSoftDelete
	CourseId int64 `gorm:"not null"`
	Course   *Course
	Name     string `gorm:"not null"`
	Active   bool   `gorm:"not null;default:false"`

	MinTeamSize          int     `gorm:"not null;default:2"`
	MaxTeamSize          int     `gorm:"not null;default:5"`
	DiversityWeight      float64 `gorm:"not null;default:0.5"`
	AcademicLevelBalance bool    `gorm:"not null;default:false"`

	RequiredSkills []*RuleRequiredSkill `gorm:"foreignKey:RuleId"`
}

// ConvertToFormationRule maps the record (with RequiredSkills loaded, in
// ordinal order) to the engine's input type.
func (fr *FormationRule) ConvertToFormationRule() *formation.Rule {
	rule := &formation.Rule{
		MinTeamSize:          fr.MinTeamSize,
		MaxTeamSize:          fr.MaxTeamSize,
		DiversityWeight:      fr.DiversityWeight,
		AcademicLevelBalance: fr.AcademicLevelBalance,
	}

	for _, rs := range fr.RequiredSkills {
		rule.RequiredSkills = append(rule.RequiredSkills, formation.RequiredSkill{
			SkillId:        rs.SkillId,
			MinCount:       rs.MinCount,
			MinProficiency: rs.MinProficiency,
		})
	}

	return rule
}
