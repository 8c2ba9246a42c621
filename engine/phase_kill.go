package engine

import "sort"

// runKill applies the kill rule to every player (dealer included) whose hand
// exceeds config.HandSize, then opens play.
func runKill(state GameState) GameState {
	next := CloneState(state)

	for _, pos := range next.ActivePositions() {
		player := next.player(pos)
		excess := len(player.Hand) - next.Config.HandSize
		if excess <= 0 {
			continue
		}

		nonPointTrumps := make([]Card, 0, len(player.Hand))
		for _, c := range player.Hand {
			if IsTrump(c, next.TrumpSuit) && PointValue(c, next.TrumpSuit) == 0 {
				nonPointTrumps = append(nonPointTrumps, c)
			}
		}
		if len(nonPointTrumps) < excess {
			// Too few non-point trumps to cover the excess: the player keeps
			// everything and owes nothing.
			continue
		}

		sort.SliceStable(nonPointTrumps, func(i, j int) bool {
			return Compare(nonPointTrumps[i], nonPointTrumps[j], next.TrumpSuit) == Less
		})
		toKill := nonPointTrumps[:excess] // ascending: toKill[0] is lowest, becomes the top of the pile
		killCount := map[Card]int{}
		for _, c := range toKill {
			killCount[c]++
		}

		remaining := player.Hand[:0:0]
		for _, c := range player.Hand {
			if killCount[c] > 0 {
				killCount[c]--
				continue
			}
			remaining = append(remaining, c)
		}
		player.Hand = remaining
		next.KilledCards[pos] = append([]Card{}, toKill...)
		next.emit(Event{Kind: EventCardsKilled, Position: pos, Count: len(toKill)})
	}

	next.Phase = PhasePlaying
	next.TrickNumber = 1
	next.CurrentTurn = next.LeftOf(next.CurrentDealer)
	next.CurrentTrick = Trick{Number: 1, Leader: next.CurrentTurn}
	next.HasCurrentTrick = true
	return next
}
