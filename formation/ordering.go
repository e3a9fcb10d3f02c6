package formation

import (
	"math/rand"
	"slices"
	"sort"
	"time"

	"github.com/mroth/weightedrand/v2"
)

// OrderingStrategy decides the processing order of the eligible pool. The
// first students of the order seed new teams, so the strategy changes the
// final partition and must be an explicit choice of the caller.
type OrderingStrategy interface {
	// Order returns a permutation of students as a new slice; the input is
	// not mutated.
	Order(students []*Student, rule *Rule) []*Student
}

// SkillRichnessOrdering is the default strategy: students satisfying more of
// the rule's required skills come first, so skill-rich students seed the
// teams. Ties are broken by ascending id to keep runs reproducible.
type SkillRichnessOrdering struct{}

func (SkillRichnessOrdering) Order(students []*Student, rule *Rule) []*Student {
	richness := make(map[int64]int, len(students))
	for _, student := range students {
		richness[student.Id] = len(contributedSkills(student, rule))
	}

	ordered := slices.Clone(students)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := richness[ordered[i].Id], richness[ordered[j].Id]
		if ri != rj {
			return ri > rj
		}
		return ordered[i].Id < ordered[j].Id
	})
	return ordered
}

// ShuffleOrdering is a uniform Fisher-Yates shuffle. Rand must be provided
// for deterministic runs (tests); when nil, a time-seeded source is used.
type ShuffleOrdering struct {
	Rand *rand.Rand
}

func (o ShuffleOrdering) Order(students []*Student, rule *Rule) []*Student {
	r := o.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ordered := slices.Clone(students)
	r.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered
}

// WeightedShuffleOrdering draws students without replacement, weighting by
// required-skill richness: richer students are more likely (not guaranteed)
// to come first. Rand must be provided for deterministic runs.
type WeightedShuffleOrdering struct {
	Rand *rand.Rand
}

func (o WeightedShuffleOrdering) Order(students []*Student, rule *Rule) []*Student {
	remaining := slices.Clone(students)
	ordered := make([]*Student, 0, len(students))

	for len(remaining) > 0 {
		choices := make([]weightedrand.Choice[*Student, int64], 0, len(remaining))
		for _, student := range remaining {
			// peso base 5, mais 5 por required skill que o estudante atende
			weight := int64(5 + 5*len(contributedSkills(student, rule)))
			choices = append(choices, weightedrand.NewChoice(student, weight))
		}

		chooser, err := weightedrand.NewChooser(choices...)
		if err != nil {
			// não deveria ocorrer com pesos > 0; devolve o resto na ordem atual
			return append(ordered, remaining...)
		}

		var picked *Student
		if o.Rand != nil {
			picked = chooser.PickSource(o.Rand)
		} else {
			picked = chooser.Pick()
		}

		ordered = append(ordered, picked)
		remaining = slices.DeleteFunc(remaining, func(s *Student) bool { return s == picked })
	}
	return ordered
}
