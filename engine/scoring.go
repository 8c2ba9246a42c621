package engine

// runScoring applies hand-end scoring: the bidding team is credited with
// what it took if it met its bid, otherwise debited the bid amount; the
// defending team is always credited with what it took.
// Same made/failed-credit shape as a contract-bid evaluator, rewritten here
// for a two-team partnership and a single scalar bid rather than per-player
// Nil/overtrick/bag scoring.
func runScoring(state GameState) GameState {
	next := CloneState(state)

	defendingTeam := OtherTeam(next.BiddingTeam)
	taken := map[Team]int{
		NorthSouth: next.HandPoints[NorthSouth],
		EastWest:   next.HandPoints[EastWest],
	}

	if taken[next.BiddingTeam] >= next.HighestBid.Amount {
		next.CumulativeScores[next.BiddingTeam] += taken[next.BiddingTeam]
	} else {
		next.CumulativeScores[next.BiddingTeam] -= next.HighestBid.Amount
	}
	next.CumulativeScores[defendingTeam] += taken[defendingTeam]

	next.emit(Event{
		Kind:             EventHandScored,
		TakenByTeam:      taken,
		CumulativeByTeam: copyTeamMap(next.CumulativeScores),
	})

	if winner, ok := checkGameOver(next); ok {
		next.emit(Event{Kind: EventGameWon, Team: winner})
		next.Phase = PhaseComplete
		return next
	}

	return startNextHand(next)
}

// checkGameOver reports the winning team once any cumulative score reaches
// config.WinningScore. Simultaneous qualification is broken in favor of the
// bidding team.
func checkGameOver(state GameState) (Team, bool) {
	nsWon := state.CumulativeScores[NorthSouth] >= state.Config.WinningScore
	ewWon := state.CumulativeScores[EastWest] >= state.Config.WinningScore
	switch {
	case nsWon && ewWon:
		return state.BiddingTeam, true
	case nsWon:
		return NorthSouth, true
	case ewWon:
		return EastWest, true
	default:
		return NoTeam, false
	}
}

// startNextHand clears all per-hand state while preserving cumulative scores
// and the event log, rotates into a new hand, and re-seeds the deck.
func startNextHand(next GameState) GameState {
	for i := range next.Players {
		next.Players[i].Hand = nil
		next.Players[i].Eliminated = false
	}

	next.Bids = nil
	next.HasBid = false
	next.HighestBid = Bid{}
	next.BiddingTeam = NoTeam
	next.HasTrump = false
	next.TrumpSuit = 0
	next.DiscardedCards = nil
	next.KilledCards = map[Position][]Card{}
	next.CardsRequested = map[Position]int{}
	next.DealerPoolSize = 0
	next.Tricks = nil
	next.CurrentTrick = Trick{}
	next.HasCurrentTrick = false
	next.TrickNumber = 0
	next.HandPoints = map[Team]int{}

	next.HandNumber++
	next.Phase = PhaseDealerSelection
	next.CurrentTurn = NoPosition
	return next
}

func copyTeamMap(m map[Team]int) map[Team]int {
	out := make(map[Team]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
