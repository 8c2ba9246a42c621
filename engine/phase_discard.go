package engine

// runDiscard removes every non-trump Card from every player's hand.
// Non-trump cards have no further use once trump is fixed: they cannot be
// played, robbed, or killed.
func runDiscard(state GameState) GameState {
	next := CloneState(state)

	for _, pos := range Positions {
		player := next.player(pos)
		kept := player.Hand[:0:0]
		var discarded []Card
		for _, c := range player.Hand {
			if IsTrump(c, next.TrumpSuit) {
				kept = append(kept, c)
			} else {
				discarded = append(discarded, c)
			}
		}
		player.Hand = kept
		if len(discarded) > 0 {
			next.DiscardedCards = append(next.DiscardedCards, discarded...)
			next.emit(Event{Kind: EventCardsDiscarded, Position: pos, Count: len(discarded)})
		}
	}

	next.Phase = PhaseSecondDeal
	next.CurrentTurn = next.LeftOf(next.CurrentDealer)
	return next
}
