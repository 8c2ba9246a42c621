package engine

// cutCard returns the index-th simulated cut card, drawn from a sequence
// independent of the real dealing deck.
func cutCard(rootSeed int64, index int) Card {
	deck := NewDeck(cutSeed(rootSeed))
	return deck[index%len(deck)]
}

// selectDealerByCut runs the first-hand cut-for-deal: each of the four seats
// cuts a simulated card in clockwise order starting at North; the
// highest-ranked cut wins, with ties re-cut among only the tied seats using
// the next cards in the simulated sequence.
func selectDealerByCut(rootSeed int64) (Position, Card) {
	candidates := append([]Position{}, Positions[:]...)
	cutIndex := 0

	for {
		type cut struct {
			pos  Position
			card Card
		}
		cuts := make([]cut, len(candidates))
		for i, pos := range candidates {
			cuts[i] = cut{pos: pos, card: cutCard(rootSeed, cutIndex)}
			cutIndex++
		}

		best := cuts[0].card.Rank
		for _, c := range cuts[1:] {
			if c.card.Rank > best {
				best = c.card.Rank
			}
		}

		var tied []cut
		for _, c := range cuts {
			if c.card.Rank == best {
				tied = append(tied, c)
			}
		}

		if len(tied) == 1 {
			return tied[0].pos, tied[0].card
		}

		candidates = candidates[:0]
		for _, c := range tied {
			candidates = append(candidates, c.pos)
		}
	}
}

// applySelectDealer handles the :select_dealer meta action, which is only
// meaningful (and only legal) on the very first hand: later hands rotate the
// dealer clockwise with nothing to decide, so Advance runs that
// automatically (see runDealerSelectionRotation).
func applySelectDealer(state GameState) (GameState, error) {
	if state.Phase != PhaseDealerSelection {
		return state, &InvalidPhaseError{Expected: PhaseDealerSelection, Got: state.Phase}
	}

	next := CloneState(state)
	dealer, card := selectDealerByCut(next.RNGSeed)
	next.CurrentDealer = dealer
	next.emit(Event{Kind: EventDealerSelected, Position: dealer, Card: card})
	next.Phase = PhaseDealing
	return next, nil
}

// runDealerSelectionRotation advances a hand-2+ dealer_selection phase
// automatically: the next dealer is simply the previous dealer's clockwise
// neighbor, a pure function of state with nothing for a caller to decide.
func runDealerSelectionRotation(state GameState) GameState {
	next := CloneState(state)
	next.CurrentDealer = next.CurrentDealer.Next()
	next.Phase = PhaseDealing
	return next
}
