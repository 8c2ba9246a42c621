// Package mcts scores candidate actions by random rollout. Finnish Pidro is a
// fixed-partnership, small-branching-factor game played here with full state
// visibility (the simulation harness is not a player-facing client), so a
// full hidden-information UCB tree search does not apply: there is nothing
// to explore blind to. This keeps the familiar expand/simulate/backpropagate
// shape but flattens it to one decision ply, averaging N random playouts per
// candidate action instead of building a search tree over them.
package mcts

import (
	"math/rand"

	"github.com/signalnine/pidro/engine"
)

// DefaultIterations is the rollout count used when a caller passes 0.
const DefaultIterations = 64

// maxRolloutSteps bounds a single playout defensively.
const maxRolloutSteps = 2000

// Search returns the action, among state's legal actions for pos, with the
// best average rollout outcome for pos's team.
func Search(state engine.GameState, pos engine.Position, iterations int, rng *rand.Rand) engine.Action {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	candidates := candidateActions(state, pos)
	if len(candidates) == 0 {
		return engine.Action{}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	team := engine.TeamOf(pos)
	best := candidates[0]
	bestScore := -1 << 62

	for _, action := range candidates {
		after, err := engine.ApplyAction(state, pos, action)
		if err != nil {
			continue
		}
		total := 0
		for i := 0; i < iterations; i++ {
			total += rollout(after, team, rng)
		}
		if total > bestScore {
			bestScore = total
			best = action
		}
	}

	return best
}

// candidateActions excludes the optional resign action: a rollout-scoring AI
// never has reason to concede voluntarily.
func candidateActions(state engine.GameState, pos engine.Position) []engine.Action {
	var out []engine.Action
	for _, a := range engine.LegalActions(state, pos) {
		if a.Kind == engine.ActionResign {
			continue
		}
		out = append(out, a)
	}
	return out
}

// rollout plays state to a hand boundary (or game end) using uniformly
// random legal actions for every seat, and returns the cumulative-score
// delta in favor of team.
func rollout(state engine.GameState, team engine.Team, rng *rand.Rand) int {
	startHand := state.HandNumber
	for step := 0; step < maxRolloutSteps; step++ {
		if engine.GameOver(state) || state.HandNumber != startHand {
			break
		}

		pos := state.CurrentTurn
		if pos == engine.NoPosition {
			break
		}
		actions := candidateActions(state, pos)
		if len(actions) == 0 {
			break
		}

		action := actions[rng.Intn(len(actions))]
		next, err := engine.ApplyAction(state, pos, action)
		if err != nil {
			break
		}
		state = next
	}

	return state.CumulativeScores[team] - state.CumulativeScores[engine.OtherTeam(team)]
}
