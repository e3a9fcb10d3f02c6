package service

import (
	"context"
	"errors"
	"fmt"

	"team-maker/database"
	"team-maker/formation"
	"team-maker/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

// FormationOptions configures one run of FormTeamsForCourse.
type FormationOptions struct {
	// DryRun roda o engine mas não persiste nada
	DryRun bool
	// Engine nil usa o engine padrão (ordenação por riqueza de skills)
	Engine *formation.Engine
	// SendReport manda o resumo por e-mail pro professor do course
	SendReport bool
}

// FormationRun is the outcome of one formation run against the database.
type FormationRun struct {
	RunId   string
	Result  *formation.Result
	TeamIds []int64
}

// FormTeamsForCourse loads the course's student pool and active rule, runs
// the formation engine and persists the produced teams in one transaction:
// team rows, member rows, and the looking-for-team flip on each placed
// student. The engine itself never touches the database.
func FormTeamsForCourse(ctx context.Context, courseId int64, opts FormationOptions) (*FormationRun, error) {
	dbCon, err := database.GetConnectionWithContext(ctx)
	if err != nil {
		return nil, err
	}

	engine := opts.Engine
	if engine == nil {
		engine = formation.NewEngine(nil)
	}

	run := &FormationRun{
		RunId: uuid.NewString(),
	}

	err = dbCon.Transaction(func(tx *gorm.DB) error {
		course := &models.Course{}
		r := tx.First(course, courseId)
		if r.Error != nil {
			if errors.Is(r.Error, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return r.Error
		}

		// trava os registros dos estudantes do course; duas execuções
		// simultâneas não podem alocar o mesmo pool
		var studentData []*models.StudentCourseData
		r = tx.
			Clauses(database.GetLockForUpdateClause(tx.Dialector.Name(), false)).
			Preload("Skills").
			Where(models.StudentCourseData{CourseId: courseId}, "CourseId").
			Find(&studentData)
		if r.Error != nil {
			return r.Error
		}

		rule, err := loadActiveRule(tx, courseId)
		if err != nil {
			return err
		}

		students := make([]*formation.Student, 0, len(studentData))
		for _, scd := range studentData {
			students = append(students, scd.ConvertToFormationStudent())
		}

		result, err := engine.FormTeams(students, rule.ConvertToFormationRule())
		if err != nil {
			return err
		}
		run.Result = result

		if opts.DryRun {
			return nil
		}

		for i, team := range result.Teams {
			teamModel := &models.Team{
				CourseId:       courseId,
				Name:           fmt.Sprintf("Time %d", i+1),
				FormationRunId: run.RunId,
				IsValid:        team.Validation.IsValid,
			}
			r := tx.Create(teamModel)
			if r.Error != nil {
				return r.Error
			}
			run.TeamIds = append(run.TeamIds, teamModel.Id)

			for ordinal, member := range team.Members {
				teamMember := &models.TeamMember{
					TeamId:    teamModel.Id,
					StudentId: member.Id,
					Ordinal:   int32(ordinal),
				}
				r := tx.Create(teamMember)
				if r.Error != nil {
					return r.Error
				}

				// marca o estudante como alocado
				r = tx.
					Model(&models.StudentCourseData{}).
					Where("student_id = ? AND course_id = ?", member.Id, courseId).
					Updates(map[string]any{
						"team_id":          teamModel.Id,
						"looking_for_team": false,
					})
				if r.Error != nil {
					return r.Error
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.SendReport && !opts.DryRun {
		// relatório é melhor-esforço; falha no e-mail não desfaz a formação
		if err := sendFormationReport(ctx, courseId, run); err != nil {
			fmt.Println("failed to send formation report:", err)
		}
	}

	return run, nil
}

// loadActiveRule returns the course's active rule with its required skills in
// the order the professor registered them, or a default rule when none is
// saved yet.
func loadActiveRule(tx *gorm.DB, courseId int64) (*models.FormationRule, error) {
	rule := &models.FormationRule{}
	r := tx.
		Preload("RequiredSkills", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("ordinal")
		}).
		Where(models.FormationRule{
			CourseId: courseId,
			Active:   true,
		}, "CourseId", "Active").
		First(rule)
	if r.Error != nil {
		if errors.Is(r.Error, gorm.ErrRecordNotFound) {
			// sem regra cadastrada, usa uma regra padrão sem required skills
			return &models.FormationRule{
				CourseId:        courseId,
				Name:            "default",
				MinTeamSize:     3,
				MaxTeamSize:     5,
				DiversityWeight: 0.5,
			}, nil
		}
		return nil, r.Error
	}

	return rule, nil
}
