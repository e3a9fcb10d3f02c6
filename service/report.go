package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"team-maker/database"
	"team-maker/models"
	"team-maker/utils/env"
	mailUtils "team-maker/utils/mail"
	otherUtils "team-maker/utils/other"

	mail "github.com/xhit/go-simple-mail/v2"
)

// sendFormationReport mails the course professor a plain-text summary of a
// formation run. A missing MAIL_HOST disables the report without error.
func sendFormationReport(ctx context.Context, courseId int64, run *FormationRun) error {
	if _, err := env.GetStr("MAIL_HOST"); err != nil {
		// sem servidor de e-mail configurado
		return nil
	}

	dbCon, err := database.GetConnectionWithContext(ctx)
	if err != nil {
		return err
	}

	course := &models.Course{}
	r := dbCon.Preload("Professor").First(course, courseId)
	if r.Error != nil {
		return r.Error
	}
	if course.Professor == nil {
		return errors.New("course has no professor to notify")
	}

	smtpClient, err := mailUtils.GetNewSmtpClient()
	if err != nil {
		return err
	}
	defer smtpClient.Close()

	subject := "Formação de times - " + course.Name
	body := buildReportBody(course, run)

	return mailUtils.
		PrepareNewMail(course.Professor.Name, course.Professor.Email, subject, body, mail.TextPlain).
		Send(smtpClient)
}

func buildReportBody(course *models.Course, run *FormationRun) string {
	var b strings.Builder
	result := run.Result

	fmt.Fprintf(&b, "Course: %s\n", course.Name)
	fmt.Fprintf(&b, "Execução: %s\n", run.RunId)

	if result.Diagnostics.Reason != "" {
		fmt.Fprintf(&b, "\nNenhum time formado: %s\n", result.Diagnostics.Reason)
		return b.String()
	}

	fmt.Fprintf(&b, "%d estudantes elegíveis, %d time%s (tamanho alvo %d).\n",
		result.Diagnostics.EligibleCount,
		len(result.Teams),
		otherUtils.IIf(len(result.Teams) == 1, "", "s"),
		result.Diagnostics.TargetTeamSize)

	for i, team := range result.Teams {
		fmt.Fprintf(&b, "\nTime %d - %d membro%s%s\n",
			i+1,
			len(team.Members),
			otherUtils.IIf(len(team.Members) == 1, "", "s"),
			otherUtils.IIf(team.Validation.IsValid, "", " (requisitos não atendidos)"))

		for _, member := range team.Members {
			fmt.Fprintf(&b, "  - estudante %d\n", member.Id)
		}
		for _, shortfall := range team.Validation.Shortfalls {
			fmt.Fprintf(&b, "  falta: %s\n", shortfall)
		}
		if team.BalancingScore != nil {
			fmt.Fprintf(&b, "  desequilíbrio de nível acadêmico: %d\n", *team.BalancingScore)
		}
	}

	if len(result.Unassigned) > 0 {
		fmt.Fprintf(&b, "\n%d estudante%s sem time:\n",
			len(result.Unassigned),
			otherUtils.IIf(len(result.Unassigned) == 1, "", "s"))
		for _, student := range result.Unassigned {
			fmt.Fprintf(&b, "  - estudante %d\n", student.Id)
		}
	}

	return b.String()
}
