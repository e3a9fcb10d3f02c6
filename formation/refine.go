package formation

// refineTeams is an optional bounded local-search pass over the formed
// teams: for each team that fails validation, try swapping one of its
// members with a member of another team. A swap is kept only when the
// combined score of both affected teams strictly improves, checked on both
// sides, so the pass always terminates within maxIterations sweeps.
func refineTeams(teams []*Team, rule *Rule, sc *scorer, maxIterations int) {
	for iteration := 0; iteration < maxIterations; iteration++ {
		improved := false

		for i, team := range teams {
			if validateTeam(team, rule).IsValid {
				continue
			}
			for j, other := range teams {
				if j == i {
					continue
				}
				if trySwap(team, other, sc) {
					improved = true
				}
			}
		}

		if !improved {
			return
		}
	}
}

// trySwap tests every member pair between the two teams and keeps the first
// swap that strictly improves the combined team score.
func trySwap(a, b *Team, sc *scorer) bool {
	before := teamScore(a, sc) + teamScore(b, sc)

	for i := range a.Members {
		for j := range b.Members {
			a.Members[i], b.Members[j] = b.Members[j], a.Members[i]
			rebuildCoverage(a, sc)
			rebuildCoverage(b, sc)

			if teamScore(a, sc)+teamScore(b, sc) > before {
				return true
			}

			// desfaz a troca
			a.Members[i], b.Members[j] = b.Members[j], a.Members[i]
			rebuildCoverage(a, sc)
			rebuildCoverage(b, sc)
		}
	}
	return false
}

// teamScore is the team-level counterpart of the candidate scorer, used only
// by the refinement pass: requirement coverage capped at each skill's
// minimum, plus the diversity term.
func teamScore(team *Team, sc *scorer) float64 {
	var total float64
	for _, rs := range sc.rule.RequiredSkills {
		total += float64(min(team.SkillCoverage[rs.SkillId], rs.MinCount)) * sc.weights.Requirement
	}

	var distinct int
	for _, covered := range team.SkillCoverage {
		if covered > 0 {
			distinct++
		}
	}
	total += sc.rule.DiversityWeight * float64(distinct)

	return total
}

func rebuildCoverage(team *Team, sc *scorer) {
	team.SkillCoverage = map[int64]int64{}
	for _, member := range team.Members {
		for skillId := range sc.contributions[member.Id] {
			team.SkillCoverage[skillId]++
		}
	}
}
