package formation

// validateTeam checks a formed team against the rule's hard constraints:
// size bounds and per-skill minimum coverage. Invalid teams are still
// returned to the caller with their shortfall list, so an instructor can
// adjust them by hand.
func validateTeam(team *Team, rule *Rule) *TeamValidation {
	v := &TeamValidation{}

	sizeOk := len(team.Members) >= rule.MinTeamSize && len(team.Members) <= rule.MaxTeamSize

	for _, rs := range rule.RequiredSkills {
		covered := team.SkillCoverage[rs.SkillId]
		if covered < rs.MinCount {
			v.Shortfalls = append(v.Shortfalls, Shortfall{
				SkillId:  rs.SkillId,
				Required: rs.MinCount,
				Covered:  covered,
				Missing:  rs.MinCount - covered,
			})
		}
	}

	v.IsValid = sizeOk && len(v.Shortfalls) == 0
	return v
}
