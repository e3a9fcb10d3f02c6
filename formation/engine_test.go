package formation

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudent(id int64, skills map[int64]int32) *Student {
	return &Student{
		Id:             id,
		Skills:         skills,
		LookingForTeam: true,
	}
}

func memberIds(team *Team) []int64 {
	ids := make([]int64, 0, len(team.Members))
	for _, member := range team.Members {
		ids = append(ids, member.Id)
	}
	return ids
}

func TestFormTeamsInvalidRule(t *testing.T) {
	students := []*Student{newStudent(1, nil), newStudent(2, nil)}

	_, err := NewEngine(nil).FormTeams(students, &Rule{MinTeamSize: 1, MaxTeamSize: 3})
	require.Error(t, err)

	var validationErr *RuleValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.False(t, validationErr.Validation.IsValid)
	assert.NotEmpty(t, validationErr.Validation.Errors)
}

func TestFormTeamsNilRule(t *testing.T) {
	_, err := NewEngine(nil).FormTeams(nil, nil)
	assert.ErrorIs(t, err, ErrNilRule)
}

func TestFormTeamsNoStudentsAvailable(t *testing.T) {
	rule := &Rule{MinTeamSize: 2, MaxTeamSize: 3}

	// ninguém procurando time
	students := []*Student{
		{Id: 1, LookingForTeam: false},
		{Id: 2, LookingForTeam: true, AlreadyInTeam: true},
	}

	result, err := NewEngine(nil).FormTeams(students, rule)
	require.NoError(t, err)
	assert.Empty(t, result.Teams)
	assert.Empty(t, result.Unassigned)
	assert.Equal(t, ReasonNoStudentsAvailable, result.Diagnostics.Reason)
}

func TestFormTeamsInsufficientStudents(t *testing.T) {
	rule := &Rule{MinTeamSize: 2, MaxTeamSize: 3}
	students := []*Student{newStudent(1, nil)}

	result, err := NewEngine(nil).FormTeams(students, rule)
	require.NoError(t, err)
	assert.Empty(t, result.Teams)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, int64(1), result.Unassigned[0].Id)
	assert.Equal(t, ReasonInsufficientStudents, result.Diagnostics.Reason)
}

func TestFormTeamsSingleFullTeam(t *testing.T) {
	// 3 estudantes com a mesma skill no nível 5 formam um único time válido
	rule := &Rule{
		MinTeamSize: 2,
		MaxTeamSize: 3,
		RequiredSkills: []RequiredSkill{
			{SkillId: 10, MinCount: 1, MinProficiency: 3},
		},
	}
	students := []*Student{
		newStudent(1, map[int64]int32{10: 5}),
		newStudent(2, map[int64]int32{10: 5}),
		newStudent(3, map[int64]int32{10: 5}),
	}

	result, err := NewEngine(nil).FormTeams(students, rule)
	require.NoError(t, err)
	require.Len(t, result.Teams, 1)

	team := result.Teams[0]
	assert.Len(t, team.Members, 3)
	assert.Equal(t, int64(3), team.SkillCoverage[10])
	assert.True(t, team.Validation.IsValid)
	assert.Empty(t, result.Unassigned)
}

func TestFormTeamsSplitsPoolEvenly(t *testing.T) {
	// 5 estudantes sem required skills viram times de 3 e 2
	rule := &Rule{MinTeamSize: 2, MaxTeamSize: 3}

	var students []*Student
	for id := int64(1); id <= 5; id++ {
		students = append(students, newStudent(id, nil))
	}

	result, err := NewEngine(nil).FormTeams(students, rule)
	require.NoError(t, err)
	require.Len(t, result.Teams, 2)
	assert.Equal(t, 3, result.Diagnostics.TargetTeamSize)

	sizes := []int{len(result.Teams[0].Members), len(result.Teams[1].Members)}
	assert.ElementsMatch(t, []int{3, 2}, sizes)
	assert.Empty(t, result.Unassigned)
}

func TestFormTeamsReportsShortfalls(t *testing.T) {
	// só 1 de 6 estudantes tem a skill exigida com minCount 2:
	// nenhum time consegue atender e todos voltam com shortfall
	rule := &Rule{
		MinTeamSize: 2,
		MaxTeamSize: 3,
		RequiredSkills: []RequiredSkill{
			{SkillId: 7, MinCount: 2, MinProficiency: 3},
		},
	}

	students := []*Student{
		newStudent(1, map[int64]int32{7: 5}),
		newStudent(2, nil),
		newStudent(3, nil),
		newStudent(4, nil),
		newStudent(5, nil),
		newStudent(6, nil),
	}

	result, err := NewEngine(nil).FormTeams(students, rule)
	require.NoError(t, err)
	require.Len(t, result.Teams, 2)

	for _, team := range result.Teams {
		assert.False(t, team.Validation.IsValid)
		require.Len(t, team.Validation.Shortfalls, 1)

		shortfall := team.Validation.Shortfalls[0]
		assert.Equal(t, int64(7), shortfall.SkillId)
		assert.GreaterOrEqual(t, shortfall.Missing, int64(1))
	}
}

func TestFormTeamsPartitionAndConservation(t *testing.T) {
	rule := &Rule{
		MinTeamSize: 3,
		MaxTeamSize: 4,
		RequiredSkills: []RequiredSkill{
			{SkillId: 1, MinCount: 1, MinProficiency: 2},
			{SkillId: 2, MinCount: 1, MinProficiency: 3},
		},
		DiversityWeight: 0.7,
	}

	var students []*Student
	for id := int64(1); id <= 11; id++ {
		skills := map[int64]int32{}
		if id%2 == 0 {
			skills[1] = int32(id%5 + 1)
		}
		if id%3 == 0 {
			skills[2] = int32(id%5 + 1)
		}
		students = append(students, newStudent(id, skills))
	}

	result, err := NewEngine(nil).FormTeams(students, rule)
	require.NoError(t, err)

	seen := map[int64]bool{}
	total := 0
	for _, team := range result.Teams {
		assert.GreaterOrEqual(t, len(team.Members), rule.MinTeamSize)
		assert.LessOrEqual(t, len(team.Members), rule.MaxTeamSize)
		for _, member := range team.Members {
			assert.False(t, seen[member.Id], "student %d in more than one team", member.Id)
			seen[member.Id] = true
			total++
		}
	}
	for _, student := range result.Unassigned {
		assert.False(t, seen[student.Id])
		total++
	}

	// todo estudante elegível é contabilizado exatamente uma vez
	assert.Equal(t, len(students), total)
}

func TestFormTeamsDeterministicWithFixedSeed(t *testing.T) {
	rule := &Rule{
		MinTeamSize: 2,
		MaxTeamSize: 4,
		RequiredSkills: []RequiredSkill{
			{SkillId: 1, MinCount: 1, MinProficiency: 2},
		},
	}

	var students []*Student
	for id := int64(1); id <= 10; id++ {
		skills := map[int64]int32{}
		if id%2 == 0 {
			skills[1] = 4
		}
		students = append(students, newStudent(id, skills))
	}

	runOnce := func() [][]int64 {
		engine := NewEngine(ShuffleOrdering{Rand: rand.New(rand.NewSource(42))})
		result, err := engine.FormTeams(students, rule)
		require.NoError(t, err)

		var teams [][]int64
		for _, team := range result.Teams {
			teams = append(teams, memberIds(team))
		}
		return teams
	}

	assert.Equal(t, runOnce(), runOnce())
}

func TestFormTeamsAcademicLevelBalanceDiagnostic(t *testing.T) {
	rule := &Rule{
		MinTeamSize:          2,
		MaxTeamSize:          4,
		AcademicLevelBalance: true,
	}

	students := []*Student{
		{Id: 1, LookingForTeam: true, AcademicLevelId: 1},
		{Id: 2, LookingForTeam: true, AcademicLevelId: 1},
		{Id: 3, LookingForTeam: true, AcademicLevelId: 2},
		{Id: 4, LookingForTeam: true, AcademicLevelId: 2},
	}

	result, err := NewEngine(nil).FormTeams(students, rule)
	require.NoError(t, err)
	require.Len(t, result.Teams, 1)

	// diagnóstico presente e equilibrado (2 de cada nível)
	require.NotNil(t, result.Teams[0].BalancingScore)
	assert.Equal(t, int64(0), *result.Teams[0].BalancingScore)
}
