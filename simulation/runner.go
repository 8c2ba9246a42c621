package simulation

import (
	"math/rand"
	"time"

	"github.com/signalnine/pidro/engine"
	"github.com/signalnine/pidro/mcts"
)

// AIPlayerType selects how a simulated seat chooses its actions.
type AIPlayerType uint8

const (
	RandomAI AIPlayerType = iota
	GreedyAI
	RolloutAI
)

// GameMetrics holds per-game decision instrumentation: counters reinterpreted
// for action-legality rather than move-generation.
type GameMetrics struct {
	TotalDecisions  uint64 // every decision point, forced ones included
	TotalValidMoves uint64 // sum of legal-action-set sizes at each decision
	ForcedDecisions uint64 // decisions with exactly one legal action
	TotalActions    uint64 // total actions applied
}

// GameResult holds the outcome of one complete game.
type GameResult struct {
	Winner     engine.Team
	HasWinner  bool
	HandCount  int
	DurationNs uint64
	Error      string
	Metrics    GameMetrics
}

// AggregatedStats summarizes multiple game results.
type AggregatedStats struct {
	TotalGames       uint32
	NorthSouthWins   uint32
	EastWestWins     uint32
	Undecided        uint32
	AvgHands         float32
	MedianHands      uint32
	AvgDurationNs    uint64
	Errors           uint32
	TotalDecisions   uint64
	TotalValidMoves  uint64
	ForcedDecisions  uint64
	TotalActions     uint64
}

// maxHandsPerGame bounds a single game defensively; a legal ruleset never
// approaches it (cumulative scores are monotone enough in practice to end
// well before this).
const maxHandsPerGame = 500

// RunBatch simulates numGames games with the given AI configuration for
// every seat, deriving a deterministic per-game seed from seed.
func RunBatch(numGames int, aiType AIPlayerType, rolloutIterations int, seed uint64) AggregatedStats {
	results := make([]GameResult, numGames)
	rng := rand.New(rand.NewSource(int64(seed)))

	for i := 0; i < numGames; i++ {
		gameSeed := rng.Int63()
		results[i] = RunSingleGame(aiType, aiType, rolloutIterations, gameSeed)
	}

	return aggregateResults(results)
}

// RunBatchAsymmetric simulates games with northSouthAI controlling
// north/south and eastWestAI controlling east/west, useful for
// measuring a skill gap between two AI configurations.
func RunBatchAsymmetric(numGames int, northSouthAI, eastWestAI AIPlayerType, rolloutIterations int, seed uint64) AggregatedStats {
	results := make([]GameResult, numGames)
	rng := rand.New(rand.NewSource(int64(seed)))

	for i := 0; i < numGames; i++ {
		gameSeed := rng.Int63()
		results[i] = RunSingleGame(northSouthAI, eastWestAI, rolloutIterations, gameSeed)
	}

	return aggregateResults(results)
}

// RunSingleGame plays one complete game to a cumulative-score win,
// dispatching each seat's turn to northSouthAI or eastWestAI depending on
// which team holds that seat.
func RunSingleGame(northSouthAI, eastWestAI AIPlayerType, rolloutIterations int, seed int64) GameResult {
	start := time.Now()
	var metrics GameMetrics
	rng := rand.New(rand.NewSource(seed))

	state := engine.NewGame(seed)

	for step := 0; !engine.GameOver(state) && step < maxHandsPerGame*200; step++ {
		if state.Phase == engine.PhaseDealerSelection {
			state, _ = engine.ApplyAction(state, engine.North, engine.SelectDealerAction())
			continue
		}

		pos := state.CurrentTurn
		if pos == engine.NoPosition {
			return GameResult{
				HandCount:  state.HandNumber,
				DurationNs: uint64(time.Since(start).Nanoseconds()),
				Error:      "no seat on turn outside an automatic phase",
				Metrics:    metrics,
			}
		}

		actions := engine.LegalActions(state, pos)
		if len(actions) == 0 {
			return GameResult{
				HandCount:  state.HandNumber,
				DurationNs: uint64(time.Since(start).Nanoseconds()),
				Error:      "no legal actions",
				Metrics:    metrics,
			}
		}

		metrics.TotalDecisions++
		metrics.TotalValidMoves += uint64(len(actions))
		if len(actions) == 1 {
			metrics.ForcedDecisions++
		}

		aiType := northSouthAI
		if engine.TeamOf(pos) == engine.EastWest {
			aiType = eastWestAI
		}

		action := chooseAction(state, pos, actions, aiType, rolloutIterations, rng)
		metrics.TotalActions++

		next, err := engine.ApplyAction(state, pos, action)
		if err != nil {
			return GameResult{
				HandCount:  state.HandNumber,
				DurationNs: uint64(time.Since(start).Nanoseconds()),
				Error:      err.Error(),
				Metrics:    metrics,
			}
		}
		state = next
	}

	winner, hasWinner := engine.Winner(state)
	return GameResult{
		Winner:     winner,
		HasWinner:  hasWinner,
		HandCount:  state.HandNumber,
		DurationNs: uint64(time.Since(start).Nanoseconds()),
		Metrics:    metrics,
	}
}

// chooseAction picks an action from the legal set according to aiType.
func chooseAction(state engine.GameState, pos engine.Position, actions []engine.Action, aiType AIPlayerType, rolloutIterations int, rng *rand.Rand) engine.Action {
	switch aiType {
	case RandomAI:
		return actions[rng.Intn(len(actions))]
	case GreedyAI:
		return selectGreedyAction(state, pos, actions)
	case RolloutAI:
		return mcts.Search(state, pos, rolloutIterations, rng)
	default:
		return actions[0]
	}
}

// selectGreedyAction applies a simple per-phase heuristic: bid aggressively
// on a trump-rich hand, declare the suit held in most depth, and otherwise
// play the highest-scoring legal card.
func selectGreedyAction(state engine.GameState, pos engine.Position, actions []engine.Action) engine.Action {
	switch state.Phase {
	case engine.PhaseBidding:
		return selectGreedyBid(state, pos, actions)
	case engine.PhaseDeclaring:
		return selectGreedyTrump(state, pos, actions)
	case engine.PhasePlaying:
		return selectGreedyPlay(state, pos, actions)
	default:
		return actions[0]
	}
}

func selectGreedyBid(state engine.GameState, pos engine.Position, actions []engine.Action) engine.Action {
	trumpLikeCount := map[engine.Suit]int{}
	for _, suit := range []engine.Suit{engine.Hearts, engine.Diamonds, engine.Clubs, engine.Spades} {
		for _, c := range state.Players[pos].Hand {
			if engine.IsTrump(c, suit) {
				trumpLikeCount[suit]++
			}
		}
	}
	best := 0
	for _, n := range trumpLikeCount {
		if n > best {
			best = n
		}
	}

	var topBid engine.Action
	hasBid := false
	for _, a := range actions {
		if a.Kind != engine.ActionBid {
			continue
		}
		if !hasBid || a.Amount > topBid.Amount {
			topBid = a
			hasBid = true
		}
	}
	if !hasBid {
		return actions[0]
	}
	if best >= 5 {
		return topBid
	}
	for _, a := range actions {
		if a.Kind == engine.ActionPass {
			return a
		}
	}
	return topBid
}

func selectGreedyTrump(state engine.GameState, pos engine.Position, actions []engine.Action) engine.Action {
	best := actions[0]
	bestCount := -1
	for _, a := range actions {
		count := 0
		for _, c := range state.Players[pos].Hand {
			if engine.IsTrump(c, a.Suit) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = a
		}
	}
	return best
}

func selectGreedyPlay(state engine.GameState, pos engine.Position, actions []engine.Action) engine.Action {
	best := actions[0]
	bestScore := -1
	for _, a := range actions {
		if a.Kind != engine.ActionPlayCard {
			continue
		}
		score := engine.PointValue(a.Card, state.TrumpSuit)*100 + cardStrength(a.Card, state.TrumpSuit)
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

// cardStrength gives a rough total order over trump cards for the greedy
// heuristic, without depending on the unexported comparator internals.
func cardStrength(c engine.Card, trump engine.Suit) int {
	if engine.IsRightFive(c, trump) {
		return 55
	}
	if engine.IsWrongFive(c, trump) {
		return 54
	}
	return int(c.Rank) * 10
}

// aggregateResults computes summary statistics over a batch of results.
func aggregateResults(results []GameResult) AggregatedStats {
	stats := AggregatedStats{TotalGames: uint32(len(results))}

	handCounts := make([]uint32, 0, len(results))
	totalDuration := uint64(0)

	for _, r := range results {
		if r.Error != "" {
			stats.Errors++
			continue
		}

		switch {
		case !r.HasWinner:
			stats.Undecided++
		case r.Winner == engine.NorthSouth:
			stats.NorthSouthWins++
		case r.Winner == engine.EastWest:
			stats.EastWestWins++
		default:
			stats.Undecided++
		}

		handCounts = append(handCounts, uint32(r.HandCount))
		totalDuration += r.DurationNs

		stats.TotalDecisions += r.Metrics.TotalDecisions
		stats.TotalValidMoves += r.Metrics.TotalValidMoves
		stats.ForcedDecisions += r.Metrics.ForcedDecisions
		stats.TotalActions += r.Metrics.TotalActions
	}

	if len(handCounts) > 0 {
		sum := uint64(0)
		for _, hc := range handCounts {
			sum += uint64(hc)
		}
		stats.AvgHands = float32(sum) / float32(len(handCounts))
		stats.MedianHands = median(handCounts)
	}

	if stats.TotalGames > 0 {
		stats.AvgDurationNs = totalDuration / uint64(stats.TotalGames)
	}

	return stats
}

// median computes the median of a small slice; bubble sort is fine at batch
// scale (tens of thousands of games, not millions).
func median(values []uint32) uint32 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]uint32, len(values))
	copy(sorted, values)
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[i] > sorted[j] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
