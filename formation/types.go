package formation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNilRule = errors.New("formation rule is required")
)

// Reason codes returned in Diagnostics when a run short-circuits.
const (
	ReasonNoStudentsAvailable  = "no students available"
	ReasonInsufficientStudents = "insufficient students"
)

// Student is the engine's view of a candidate. It is read-only during a run;
// flipping LookingForTeam after persistence is the caller's job.
type Student struct {
	Id                 int64
	Skills             map[int64]int32 // skillId -> proficiência (1..5)
	LookingForTeam     bool
	AlreadyInTeam      bool
	AvailabilitySlots  []string
	ProjectPreferences []int64
	AcademicLevelId    int64
}

// RequiredSkill is one entry of a rule: at least MinCount members must hold
// SkillId with proficiency >= MinProficiency.
type RequiredSkill struct {
	SkillId        int64
	MinCount       int64
	MinProficiency int32
}

// Rule is the instructor-authored constraint set for one formation run.
// It must pass ValidateRule before being handed to the engine.
type Rule struct {
	MinTeamSize          int
	MaxTeamSize          int
	RequiredSkills       []RequiredSkill
	DiversityWeight      float64
	AcademicLevelBalance bool
}

// RuleValidation is the outcome of ValidateRule. Errors block a run,
// warnings do not.
type RuleValidation struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// RuleValidationError is the hard error returned by FormTeams when the rule
// fails validation. It carries the full report so callers can surface every
// problem at once.
type RuleValidationError struct {
	Validation *RuleValidation
}

func (e *RuleValidationError) Error() string {
	return "invalid formation rule: " + strings.Join(e.Validation.Errors, "; ")
}

// Shortfall describes one unmet required skill of a team.
type Shortfall struct {
	SkillId  int64
	Required int64
	Covered  int64
	Missing  int64
}

func (s Shortfall) String() string {
	return fmt.Sprintf("skill %d: %d of %d required members", s.SkillId, s.Covered, s.Required)
}

// TeamValidation is the outcome of checking a formed team against the rule's
// hard constraints.
type TeamValidation struct {
	IsValid    bool
	Shortfalls []Shortfall
}

// Team is one formed team, prior to persistence. Members keep insertion
// order (seed first).
type Team struct {
	Members []*Student
	// SkillCoverage conta, por required skill, quantos membros a atendem
	// no nível mínimo de proficiência.
	SkillCoverage map[int64]int64
	Validation    *TeamValidation
	// BalancingScore só é preenchido quando a rule pede balanceamento de
	// nível acadêmico. Quanto menor, mais equilibrado. Diagnóstico apenas.
	BalancingScore *int64
}

// Diagnostics accompanies every Result, even empty ones.
type Diagnostics struct {
	// Reason fica vazio quando a formação rodou de fato.
	Reason          string
	EligibleCount   int
	TargetTeamSize  int
	UnassignedCount int
}

// Result is the full outcome of one FormTeams call. Soft failures
// (insufficient pool, unplaced students, constraint shortfalls) are data
// here, never errors.
type Result struct {
	Teams       []*Team
	Unassigned  []*Student
	Diagnostics Diagnostics
}

// ScoreWeights configures the compatibility scorer. The diversity factor is
// weighted by the rule's DiversityWeight, not here.
type ScoreWeights struct {
	Requirement  float64
	Availability float64
	Preference   float64
}

// DefaultScoreWeights returns the weights used when the caller does not
// override them.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Requirement:  10,
		Availability: 1,
		Preference:   1,
	}
}

// ScoreFactors selects which optional factors the scorer considers. This is
// explicit configuration: a factor missing data scores zero, it is never
// silently disabled.
type ScoreFactors struct {
	Availability bool
	Preference   bool
}
