package formation

import "math"

// targetTeamSize spreads the pool evenly across the minimum number of teams
// that fits under MaxTeamSize, clamped to the rule's bounds. Computed once
// per run.
func targetTeamSize(poolSize int, rule *Rule) int {
	teamCount := int(math.Ceil(float64(poolSize) / float64(rule.MaxTeamSize)))
	if teamCount < 1 {
		teamCount = 1
	}
	size := int(math.Ceil(float64(poolSize) / float64(teamCount)))

	return min(max(size, rule.MinTeamSize), rule.MaxTeamSize)
}

// buildTeam consumes students from pool to grow one team: the first student
// of the pool seeds it, then the highest-scoring remaining candidate is added
// until the target size is reached or the pool runs out. Returns the team
// and the reduced pool.
func buildTeam(pool []*Student, targetSize int, sc *scorer) (*Team, []*Student) {
	team := &Team{
		SkillCoverage: map[int64]int64{},
	}

	// o primeiro da ordem é a semente do time
	addMember(team, pool[0], sc)
	pool = pool[1:]

	for len(team.Members) < targetSize && len(pool) > 0 {
		bestIndex := 0
		bestScore := sc.score(team, pool[0])
		for i := 1; i < len(pool); i++ {
			// empate mantém o primeiro encontrado na ordem do pool
			if s := sc.score(team, pool[i]); s > bestScore {
				bestIndex = i
				bestScore = s
			}
		}

		addMember(team, pool[bestIndex], sc)
		pool = append(pool[:bestIndex], pool[bestIndex+1:]...)
	}

	return team, pool
}

// addMember appends the student and updates the team's skill coverage
// incrementally from the student's contribution set.
func addMember(team *Team, student *Student, sc *scorer) {
	team.Members = append(team.Members, student)
	for skillId := range sc.contributions[student.Id] {
		team.SkillCoverage[skillId]++
	}
}
