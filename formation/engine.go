package formation

// Engine runs the full formation pipeline: rule validation, eligibility
// filter, ordering, greedy team building, remainder distribution and team
// validation. It is a pure computation over its inputs; persisting the
// resulting teams and flipping student flags is the caller's job.
type Engine struct {
	Ordering OrderingStrategy
	Weights  ScoreWeights
	Factors  ScoreFactors
	// RefineIterations bounds the optional swap-refinement pass over
	// invalid teams. Zero disables the pass.
	RefineIterations int
}

// NewEngine returns an engine with default score weights. A nil ordering
// falls back to SkillRichnessOrdering.
func NewEngine(ordering OrderingStrategy) *Engine {
	if ordering == nil {
		ordering = SkillRichnessOrdering{}
	}
	return &Engine{
		Ordering: ordering,
		Weights:  DefaultScoreWeights(),
	}
}

// FormTeams partitions the eligible students into teams under the rule.
//
// The only hard failure is an invalid rule (RuleValidationError). Every
// other condition — empty pool, insufficient pool, students that fit
// nowhere, teams missing required skills — comes back as data in the
// Result, so the caller can always render something.
func (e *Engine) FormTeams(students []*Student, rule *Rule) (*Result, error) {
	if rule == nil {
		return nil, ErrNilRule
	}
	if v := ValidateRule(rule); !v.IsValid {
		return nil, &RuleValidationError{Validation: v}
	}

	eligible := filterEligible(students)
	if len(eligible) == 0 {
		return &Result{
			Diagnostics: Diagnostics{Reason: ReasonNoStudentsAvailable},
		}, nil
	}
	if len(eligible) < rule.MinTeamSize {
		// tem gente procurando time, mas não o suficiente pra formar um
		return &Result{
			Unassigned: eligible,
			Diagnostics: Diagnostics{
				Reason:          ReasonInsufficientStudents,
				EligibleCount:   len(eligible),
				UnassignedCount: len(eligible),
			},
		}, nil
	}

	ordering := e.Ordering
	if ordering == nil {
		ordering = SkillRichnessOrdering{}
	}
	pool := ordering.Order(eligible, rule)

	sc := &scorer{
		rule:          rule,
		weights:       e.Weights,
		factors:       e.Factors,
		contributions: buildContributionCache(pool, rule),
	}

	target := targetTeamSize(len(pool), rule)

	var teams []*Team
	for len(pool) >= rule.MinTeamSize {
		var team *Team
		team, pool = buildTeam(pool, target, sc)
		teams = append(teams, team)
	}

	unassigned := distributeRemainder(pool, teams, rule, sc)

	if e.RefineIterations > 0 {
		refineTeams(teams, rule, sc, e.RefineIterations)
	}

	var levelIds []int64
	if rule.AcademicLevelBalance {
		levelIds = poolAcademicLevels(eligible)
	}

	for _, team := range teams {
		team.Validation = validateTeam(team, rule)
		if rule.AcademicLevelBalance {
			score := balancingScore(team, levelIds)
			team.BalancingScore = &score
		}
	}

	return &Result{
		Teams:      teams,
		Unassigned: unassigned,
		Diagnostics: Diagnostics{
			EligibleCount:   len(eligible),
			TargetTeamSize:  target,
			UnassignedCount: len(unassigned),
		},
	}, nil
}
