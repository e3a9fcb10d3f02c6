package models

type RuleRequiredSkill struct {
	RuleId  int64 `gorm:"primaryKey;autoIncrement:false"`
	Rule    *FormationRule
	SkillId int64 `gorm:"primaryKey;autoIncrement:false"`
	Skill   *Skill
	// MinCount é o mínimo de membros que precisam ter a skill no nível
	// mínimo de proficiência
	MinCount       int64 `gorm:"not null;default:1"`
	MinProficiency int32 `gorm:"not null;default:1"`
	// Ordinal preserva a ordem em que o professor cadastrou as skills
	Ordinal int32 `gorm:"not null;default:0"`
}
