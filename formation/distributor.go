package formation

// distributeRemainder places leftover students (too few to seed a new team)
// into existing teams with room, by best compatibility score. Ties prefer the
// team with fewer members, then the earliest-created team. Students that fit
// nowhere are returned, never dropped.
func distributeRemainder(leftovers []*Student, teams []*Team, rule *Rule, sc *scorer) []*Student {
	var unassigned []*Student

	for _, student := range leftovers {
		var best *Team
		var bestScore float64

		for _, team := range teams {
			if len(team.Members) >= rule.MaxTeamSize {
				continue
			}

			score := sc.score(team, student)
			switch {
			case best == nil:
				best = team
				bestScore = score
			case score > bestScore:
				best = team
				bestScore = score
			case score == bestScore && len(team.Members) < len(best.Members):
				// favorece o time menor; persistindo o empate, fica o
				// time criado primeiro
				best = team
			}
		}

		if best == nil {
			// todos os times estão cheios
			unassigned = append(unassigned, student)
			continue
		}
		addMember(best, student, sc)
	}

	return unassigned
}
