package formation

import "fmt"

// ValidateRule checks a rule before a run. Every check is independent, so a
// bad rule reports all of its problems in one pass. Callers must refuse to
// run formation when IsValid is false.
func ValidateRule(rule *Rule) *RuleValidation {
	v := &RuleValidation{}

	if rule.MinTeamSize < 2 {
		v.Errors = append(v.Errors, fmt.Sprintf("min team size must be at least 2, got %d", rule.MinTeamSize))
	}
	if rule.MaxTeamSize > 10 {
		v.Errors = append(v.Errors, fmt.Sprintf("max team size must be at most 10, got %d", rule.MaxTeamSize))
	}
	if rule.MinTeamSize > rule.MaxTeamSize {
		v.Errors = append(v.Errors, fmt.Sprintf("min team size %d is greater than max team size %d", rule.MinTeamSize, rule.MaxTeamSize))
	}

	seen := map[int64]bool{}
	for _, rs := range rule.RequiredSkills {
		if rs.MinCount > int64(rule.MaxTeamSize) {
			v.Errors = append(v.Errors, fmt.Sprintf("required skill %d: min count %d exceeds max team size %d", rs.SkillId, rs.MinCount, rule.MaxTeamSize))
		}
		if rs.MinProficiency < 1 || rs.MinProficiency > 5 {
			v.Errors = append(v.Errors, fmt.Sprintf("required skill %d: min proficiency %d outside 1..5", rs.SkillId, rs.MinProficiency))
		}
		if seen[rs.SkillId] {
			v.Errors = append(v.Errors, fmt.Sprintf("required skill %d appears more than once", rs.SkillId))
		}
		seen[rs.SkillId] = true
	}

	if len(rule.RequiredSkills) == 0 {
		v.Warnings = append(v.Warnings, "rule has no required skills")
	}
	if rule.MaxTeamSize-rule.MinTeamSize > 3 {
		// times podem ficar com tamanhos muito desiguais
		v.Warnings = append(v.Warnings, fmt.Sprintf("size bounds %d..%d allow very uneven teams", rule.MinTeamSize, rule.MaxTeamSize))
	}

	v.IsValid = len(v.Errors) == 0
	return v
}
