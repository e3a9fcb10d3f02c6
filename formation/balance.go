package formation

import (
	"slices"

	otherUtils "team-maker/utils/other"
	sliceUtils "team-maker/utils/slice"
)

// balancingScore measures academic-level imbalance inside a team: the sum of
// absolute count differences over every pair of levels present in the pool.
// Lower means more balanced. This is advisory output only and never feeds
// back into the compatibility scorer.
func balancingScore(team *Team, levelIds []int64) int64 {
	var diffAbs int64

	iter := &otherUtils.Iterator{N: len(levelIds), K: 2}
	for iter.Next() {
		level1 := levelIds[iter.Comb[0]]
		level2 := levelIds[iter.Comb[1]]

		var count1, count2 int64
		for _, member := range team.Members {
			switch member.AcademicLevelId {
			case level1:
				count1++
			case level2:
				count2++
			}
		}

		if count1 > count2 {
			diffAbs += count1 - count2
		} else {
			diffAbs += count2 - count1
		}
	}

	return diffAbs
}

// poolAcademicLevels lists the distinct academic levels present in the
// eligible pool, ascending. Students without a level are skipped.
func poolAcademicLevels(students []*Student) []int64 {
	var levelIds []int64
	for _, student := range students {
		if student.AcademicLevelId != 0 {
			levelIds = append(levelIds, student.AcademicLevelId)
		}
	}

	levelIds = sliceUtils.RemoveDuplicates(levelIds)
	slices.Sort(levelIds)
	return levelIds
}
