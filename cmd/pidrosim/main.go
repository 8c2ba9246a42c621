// Package main provides the pidrosim CLI for batch-simulating Finnish Pidro
// games and reporting win-rate and decision-density statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/signalnine/pidro/simulation"
)

var (
	games             int
	seed              int64
	aiName            string
	opponentAIName    string
	rolloutIterations int
	workers           int
	verbose           bool
	showVersion       bool
)

var Version = "dev"

func init() {
	flag.IntVar(&games, "games", 1000, "Number of games to simulate")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.StringVar(&aiName, "ai", "rollout", "AI for north/south: random, greedy, rollout")
	flag.StringVar(&opponentAIName, "opponent-ai", "", "AI for east/west (default: same as -ai)")
	flag.IntVar(&rolloutIterations, "rollout-iterations", 64, "Rollout count per decision for the rollout AI")
	flag.IntVar(&workers, "workers", 0, "Worker goroutines (0 = auto-detect CPU count)")
	flag.BoolVar(&verbose, "verbose", false, "Print per-batch progress")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("pidrosim %s\n", Version)
		os.Exit(0)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ai, err := parseAI(aiName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	opponentAI := ai
	if opponentAIName != "" {
		opponentAI, err = parseAI(opponentAIName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	printBanner(ai, opponentAI)

	start := time.Now()
	var stats simulation.AggregatedStats
	if ai == opponentAI {
		stats = simulation.RunBatchParallelN(games, ai, rolloutIterations, uint64(seed), workers)
	} else {
		stats = simulation.RunBatchAsymmetricParallelN(games, ai, opponentAI, rolloutIterations, uint64(seed), workers)
	}
	elapsed := time.Since(start)

	printSummary(stats, elapsed)
}

func parseAI(name string) (simulation.AIPlayerType, error) {
	switch name {
	case "random":
		return simulation.RandomAI, nil
	case "greedy":
		return simulation.GreedyAI, nil
	case "rollout":
		return simulation.RolloutAI, nil
	default:
		return 0, fmt.Errorf("unknown -ai %q: expected random, greedy, or rollout", name)
	}
}

func aiLabel(ai simulation.AIPlayerType) string {
	switch ai {
	case simulation.RandomAI:
		return "random"
	case simulation.GreedyAI:
		return "greedy"
	case simulation.RolloutAI:
		return "rollout"
	default:
		return "unknown"
	}
}

func printBanner(ai, opponentAI simulation.AIPlayerType) {
	bold := color.New(color.Bold)
	bold.Println("pidro simulation")
	fmt.Printf("  games:    %d\n", games)
	fmt.Printf("  seed:     %d\n", seed)
	fmt.Printf("  north/south AI: %s\n", aiLabel(ai))
	fmt.Printf("  east/west AI:   %s\n", aiLabel(opponentAI))
	if ai == simulation.RolloutAI || opponentAI == simulation.RolloutAI {
		fmt.Printf("  rollout iterations: %d\n", rolloutIterations)
	}
	fmt.Println()
}

func printSummary(stats simulation.AggregatedStats, elapsed time.Duration) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	fmt.Printf("completed %d games in %s\n\n", stats.TotalGames, elapsed.Round(time.Millisecond))

	nsPct := winPct(stats.NorthSouthWins, stats.TotalGames)
	ewPct := winPct(stats.EastWestWins, stats.TotalGames)
	green.Printf("  north_south wins: %d (%.1f%%)\n", stats.NorthSouthWins, nsPct)
	green.Printf("  east_west wins:   %d (%.1f%%)\n", stats.EastWestWins, ewPct)
	if stats.Undecided > 0 {
		yellow.Printf("  undecided:        %d\n", stats.Undecided)
	}
	if stats.Errors > 0 {
		yellow.Printf("  errors:           %d\n", stats.Errors)
	}

	fmt.Printf("\n  avg hands/game:    %.1f\n", stats.AvgHands)
	fmt.Printf("  median hands/game: %d\n", stats.MedianHands)
	fmt.Printf("  avg duration/game: %s\n", time.Duration(stats.AvgDurationNs))

	if verbose && stats.TotalDecisions > 0 {
		avgBranching := float64(stats.TotalValidMoves) / float64(stats.TotalDecisions)
		forcedPct := float64(stats.ForcedDecisions) / float64(stats.TotalDecisions) * 100
		fmt.Printf("\n  decisions:         %d\n", stats.TotalDecisions)
		fmt.Printf("  avg branching:     %.2f\n", avgBranching)
		fmt.Printf("  forced decisions:  %.1f%%\n", forcedPct)
	}
}

func winPct(wins, total uint32) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}
