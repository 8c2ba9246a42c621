package engine

// CloneState returns a deep copy of s, safe to mutate freely. Every phase
// rule function calls this once at entry and then mutates only the copy,
// the same deep-copy discipline that gave rollout search an isolated state
// to mutate elsewhere in this module. Here it's what makes "never mutate in
// place" cheap to get right: small helpers, no lenses, no shared slices.
func CloneState(s GameState) GameState {
	next := s

	for i := range next.Players {
		next.Players[i].Hand = append([]Card(nil), s.Players[i].Hand...)
	}

	next.Deck = append([]Card(nil), s.Deck...)
	next.DiscardedCards = append([]Card(nil), s.DiscardedCards...)

	next.KilledCards = make(map[Position][]Card, len(s.KilledCards))
	for pos, cards := range s.KilledCards {
		next.KilledCards[pos] = append([]Card(nil), cards...)
	}

	next.CardsRequested = make(map[Position]int, len(s.CardsRequested))
	for pos, n := range s.CardsRequested {
		next.CardsRequested[pos] = n
	}

	next.Bids = append([]Bid(nil), s.Bids...)

	next.CurrentTrick = Trick{
		Number: s.CurrentTrick.Number,
		Leader: s.CurrentTrick.Leader,
		Plays:  append([]TrickPlay(nil), s.CurrentTrick.Plays...),
		Winner: s.CurrentTrick.Winner,
	}
	next.CurrentTrick.HasWinner = s.CurrentTrick.HasWinner

	next.Tricks = make([]Trick, len(s.Tricks))
	for i, t := range s.Tricks {
		next.Tricks[i] = Trick{
			Number:    t.Number,
			Leader:    t.Leader,
			Plays:     append([]TrickPlay(nil), t.Plays...),
			Winner:    t.Winner,
			HasWinner: t.HasWinner,
		}
	}

	next.HandPoints = make(map[Team]int, len(s.HandPoints))
	for team, pts := range s.HandPoints {
		next.HandPoints[team] = pts
	}

	next.CumulativeScores = make(map[Team]int, len(s.CumulativeScores))
	for team, pts := range s.CumulativeScores {
		next.CumulativeScores[team] = pts
	}

	next.Events = append([]Event(nil), s.Events...)

	return next
}
