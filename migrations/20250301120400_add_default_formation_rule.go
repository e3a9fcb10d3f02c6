package migrations

import (
	"team-maker/models"

	"github.com/ottomillrath/goose/v2"
	"gorm.io/gorm"
)

func init() {
	goose.AddMigration(service, upAddDefaultFormationRule, downAddDefaultFormationRule)
}

const defaultRuleName = "Regra padrão"

func upAddDefaultFormationRule(tx *gorm.DB) error {
	rule := &models.FormationRule{
		CourseId:        1,
		Name:            defaultRuleName,
		Active:          true,
		MinTeamSize:     3,
		MaxTeamSize:     5,
		DiversityWeight: 0.5,
	}

	r := tx.Create(rule)
	if r.Error != nil {
		return r.Error
	}

	// exige pelo menos um Backend e um Frontend por time, no nível 3
	skillNames := []string{"Backend", "Frontend"}
	for i, name := range skillNames {
		skill := &models.Skill{}
		r := tx.Where(models.Skill{
			CourseId: 1,
			Name:     name,
		}, "CourseId", "Name").First(skill)
		if r.Error != nil {
			return r.Error
		}

		requiredSkill := &models.RuleRequiredSkill{
			RuleId:         rule.Id,
			SkillId:        skill.Id,
			MinCount:       1,
			MinProficiency: 3,
			Ordinal:        int32(i),
		}
		r = tx.Create(requiredSkill)
		if r.Error != nil {
			return r.Error
		}
	}

	return nil
}

func downAddDefaultFormationRule(tx *gorm.DB) error {
	rule := &models.FormationRule{}
	r := tx.Where(models.FormationRule{
		CourseId: 1,
		Name:     defaultRuleName,
	}, "CourseId", "Name").First(rule)
	if r.Error != nil {
		return r.Error
	}

	r = tx.Where(models.RuleRequiredSkill{
		RuleId: rule.Id,
	}, "RuleId").Delete(&models.RuleRequiredSkill{})
	if r.Error != nil {
		return r.Error
	}

	return tx.Delete(rule).Error
}
