package formation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeRemainderPrefersSmallerTeamOnTie(t *testing.T) {
	rule := &Rule{MinTeamSize: 2, MaxTeamSize: 4}

	a := newStudent(1, nil)
	b := newStudent(2, nil)
	c := newStudent(3, nil)
	d := newStudent(4, nil)
	e := newStudent(5, nil)
	leftover := newStudent(6, nil)

	sc := newScorer(rule, ScoreFactors{}, a, b, c, d, e, leftover)
	bigger := teamOf(sc, a, b, c)
	smaller := teamOf(sc, d, e)

	unassigned := distributeRemainder([]*Student{leftover}, []*Team{bigger, smaller}, rule, sc)

	assert.Empty(t, unassigned)
	// pontuação empatada: vai pro time menor
	assert.Len(t, smaller.Members, 3)
	assert.Len(t, bigger.Members, 3)
}

func TestDistributeRemainderByScore(t *testing.T) {
	rule := &Rule{
		MinTeamSize: 2,
		MaxTeamSize: 4,
		RequiredSkills: []RequiredSkill{
			{SkillId: 1, MinCount: 1, MinProficiency: 3},
		},
	}

	covered1 := newStudent(1, map[int64]int32{1: 5})
	covered2 := newStudent(2, nil)
	needy1 := newStudent(3, nil)
	needy2 := newStudent(4, nil)
	leftover := newStudent(5, map[int64]int32{1: 4})

	sc := newScorer(rule, ScoreFactors{}, covered1, covered2, needy1, needy2, leftover)
	coveredTeam := teamOf(sc, covered1, covered2)
	needyTeam := teamOf(sc, needy1, needy2)

	unassigned := distributeRemainder([]*Student{leftover}, []*Team{coveredTeam, needyTeam}, rule, sc)

	assert.Empty(t, unassigned)
	// o time sem a skill pontua mais alto pro portador dela
	assert.Len(t, needyTeam.Members, 3)
	assert.Equal(t, int64(1), needyTeam.SkillCoverage[1])
}

func TestDistributeRemainderRespectsMaxSize(t *testing.T) {
	rule := &Rule{MinTeamSize: 2, MaxTeamSize: 2}

	a := newStudent(1, nil)
	b := newStudent(2, nil)
	leftover := newStudent(3, nil)

	sc := newScorer(rule, ScoreFactors{}, a, b, leftover)
	full := teamOf(sc, a, b)

	unassigned := distributeRemainder([]*Student{leftover}, []*Team{full}, rule, sc)

	// ninguém é descartado em silêncio: volta como não alocado
	require.Len(t, unassigned, 1)
	assert.Equal(t, int64(3), unassigned[0].Id)
	assert.Len(t, full.Members, 2)
}
