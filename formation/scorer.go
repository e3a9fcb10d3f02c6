package formation

import (
	"slices"

	sliceUtils "team-maker/utils/slice"
)

// contributionSet holds the required skills one student can help cover.
type contributionSet map[int64]bool

// contributedSkills lists the required skills a student satisfies at the
// rule's minimum proficiency. A student may contribute to several.
func contributedSkills(student *Student, rule *Rule) []int64 {
	var skillIds []int64
	for _, rs := range rule.RequiredSkills {
		if student.Skills[rs.SkillId] >= rs.MinProficiency {
			skillIds = append(skillIds, rs.SkillId)
		}
	}
	return skillIds
}

// buildContributionCache precomputes every student's contribution set for one
// run. The cache travels as a value through builder and scorer, so parallel
// runs for different courses never share state.
func buildContributionCache(students []*Student, rule *Rule) map[int64]contributionSet {
	cache := make(map[int64]contributionSet, len(students))
	for _, student := range students {
		set := contributionSet{}
		for _, skillId := range contributedSkills(student, rule) {
			set[skillId] = true
		}
		cache[student.Id] = set
	}
	return cache
}

// scorer rates how well a candidate fits a partial team. One scorer instance
// serves one run.
type scorer struct {
	rule          *Rule
	weights       ScoreWeights
	factors       ScoreFactors
	contributions map[int64]contributionSet
}

// score returns the fit of adding candidate to team; higher is better.
// Scores are only comparable within one evaluation round.
func (s *scorer) score(team *Team, candidate *Student) float64 {
	contrib := s.contributions[candidate.Id]

	var total float64

	// requirement: só conta para required skills ainda não satisfeitas,
	// fechando o que falta em vez de empilhar no que já está coberto
	for _, rs := range s.rule.RequiredSkills {
		if team.SkillCoverage[rs.SkillId] >= rs.MinCount {
			continue
		}
		if contrib[rs.SkillId] {
			total += s.weights.Requirement
		}
	}

	// diversity: required skills distintas que o candidato cobre
	total += s.rule.DiversityWeight * float64(len(contrib))

	if s.factors.Availability {
		slots := make([][]string, 0, len(team.Members))
		for _, member := range team.Members {
			slots = append(slots, member.AvailabilitySlots)
		}
		total += s.weights.Availability * overlapFraction(candidate.AvailabilitySlots, slots)
	}

	if s.factors.Preference {
		prefs := make([][]int64, 0, len(team.Members))
		for _, member := range team.Members {
			prefs = append(prefs, member.ProjectPreferences)
		}
		total += s.weights.Preference * overlapFraction(candidate.ProjectPreferences, prefs)
	}

	return total
}

// overlapFraction returns |itens comuns a todos| / |itens vistos no grupo|,
// in [0,1]. An empty group scores zero.
func overlapFraction[T comparable](candidateItems []T, memberItems [][]T) float64 {
	common := sliceUtils.RemoveDuplicates(candidateItems)
	union := slices.Clone(common)

	for _, items := range memberItems {
		items = sliceUtils.RemoveDuplicates(items)
		common = sliceUtils.Intersection(common, items)
		union = sliceUtils.RemoveDuplicates(append(union, items...))
	}

	if len(union) == 0 {
		return 0
	}
	return float64(len(common)) / float64(len(union))
}
