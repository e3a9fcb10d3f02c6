package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToFormationStudent(t *testing.T) {
	teamId := int64(9)
	levelId := int64(2)

	scd := &StudentCourseData{
		StudentId:          42,
		CourseId:           1,
		LookingForTeam:     true,
		AcademicLevelId:    &levelId,
		AvailabilitySlots:  pq.StringArray{"seg-noite", "qua-noite"},
		ProjectPreferences: pq.Int64Array{7, 8},
		TeamId:             &teamId,
		Skills: []*StudentSkill{
			{StudentId: 42, CourseId: 1, SkillId: 5, Proficiency: 4},
			{StudentId: 42, CourseId: 1, SkillId: 6, Proficiency: 1},
		},
	}

	student := scd.ConvertToFormationStudent()

	assert.Equal(t, int64(42), student.Id)
	assert.True(t, student.LookingForTeam)
	assert.True(t, student.AlreadyInTeam)
	assert.Equal(t, int32(4), student.Skills[5])
	assert.Equal(t, int32(1), student.Skills[6])
	assert.Equal(t, []string{"seg-noite", "qua-noite"}, student.AvailabilitySlots)
	assert.Equal(t, []int64{7, 8}, student.ProjectPreferences)
	assert.Equal(t, int64(2), student.AcademicLevelId)
}

func TestConvertToFormationStudentWithoutOptionalData(t *testing.T) {
	scd := &StudentCourseData{
		StudentId:      7,
		CourseId:       1,
		LookingForTeam: true,
	}

	student := scd.ConvertToFormationStudent()

	assert.False(t, student.AlreadyInTeam)
	assert.Empty(t, student.Skills)
	assert.Empty(t, student.AvailabilitySlots)
	assert.Zero(t, student.AcademicLevelId)
}

func TestConvertToFormationRule(t *testing.T) {
	fr := &FormationRule{
		CourseId:             1,
		MinTeamSize:          3,
		MaxTeamSize:          5,
		DiversityWeight:      0.5,
		AcademicLevelBalance: true,
		RequiredSkills: []*RuleRequiredSkill{
			{SkillId: 10, MinCount: 1, MinProficiency: 3, Ordinal: 0},
			{SkillId: 20, MinCount: 2, MinProficiency: 2, Ordinal: 1},
		},
	}

	rule := fr.ConvertToFormationRule()

	assert.Equal(t, 3, rule.MinTeamSize)
	assert.Equal(t, 5, rule.MaxTeamSize)
	assert.Equal(t, 0.5, rule.DiversityWeight)
	assert.True(t, rule.AcademicLevelBalance)

	require.Len(t, rule.RequiredSkills, 2)
	assert.Equal(t, int64(10), rule.RequiredSkills[0].SkillId)
	assert.Equal(t, int64(2), rule.RequiredSkills[1].MinCount)
}
