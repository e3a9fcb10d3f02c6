package main

import (
	_ "github.com/joho/godotenv/autoload"

	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"team-maker/formation"
	"team-maker/migrations"
	"team-maker/service"
)

func main() {
	courseId := flag.Int64("course", 1, "id do course")
	migrateOnly := flag.Bool("migrate-only", false, "roda as migrações e sai")
	dryRun := flag.Bool("dry-run", false, "roda o engine sem persistir nada")
	orderingName := flag.String("ordering", "skill-richness", "estratégia de ordenação: skill-richness, shuffle ou weighted")
	seed := flag.Int64("seed", 0, "seed das estratégias aleatórias (0 = relógio)")
	refine := flag.Int("refine", 0, "iterações do refino por troca entre times (0 desliga)")
	report := flag.Bool("report", false, "envia o relatório por e-mail pro professor do course")
	flag.Parse()

	ctx := context.Background()

	err := migrations.RunMigrations(ctx)
	if err != nil {
		fmt.Println("failed to run migrations:", err)
		os.Exit(1)
	}
	if *migrateOnly {
		return
	}

	engine := formation.NewEngine(buildOrdering(*orderingName, *seed))
	engine.RefineIterations = *refine

	run, err := service.FormTeamsForCourse(ctx, *courseId, service.FormationOptions{
		DryRun:     *dryRun,
		Engine:     engine,
		SendReport: *report,
	})
	if err != nil {
		fmt.Println("formation failed:", err)
		os.Exit(1)
	}

	printRun(run)
}

func buildOrdering(name string, seed int64) formation.OrderingStrategy {
	var r *rand.Rand
	if seed != 0 {
		r = rand.New(rand.NewSource(seed))
	}

	switch name {
	case "shuffle":
		return formation.ShuffleOrdering{Rand: r}
	case "weighted":
		return formation.WeightedShuffleOrdering{Rand: r}
	default:
		return formation.SkillRichnessOrdering{}
	}
}

func printRun(run *service.FormationRun) {
	result := run.Result

	fmt.Println("run", run.RunId)
	if result.Diagnostics.Reason != "" {
		fmt.Println("no teams formed:", result.Diagnostics.Reason)
		return
	}

	fmt.Printf("%d eligible, target size %d\n", result.Diagnostics.EligibleCount, result.Diagnostics.TargetTeamSize)
	for i, team := range result.Teams {
		fmt.Printf("team %d: %d members, valid=%v\n", i+1, len(team.Members), team.Validation.IsValid)
		for _, shortfall := range team.Validation.Shortfalls {
			fmt.Println("  shortfall:", shortfall)
		}
	}
	if len(result.Unassigned) > 0 {
		fmt.Printf("%d students unassigned\n", len(result.Unassigned))
	}
}
