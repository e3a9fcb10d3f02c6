package formation

// filterEligible keeps the students that can join a new team: flagged as
// looking for one and not already placed. The input order is preserved; any
// reordering is the ordering strategy's job.
func filterEligible(students []*Student) []*Student {
	var eligible []*Student
	for _, student := range students {
		if student == nil {
			// ignora registros deletados
			continue
		}
		if !student.LookingForTeam || student.AlreadyInTeam {
			continue
		}
		eligible = append(eligible, student)
	}
	return eligible
}
