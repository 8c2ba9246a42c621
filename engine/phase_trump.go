package engine

// applyDeclareTrump handles {declare_trump, suit}. Only the
// winning bidder, on their turn, may declare.
func applyDeclareTrump(state GameState, pos Position, suit Suit) (GameState, error) {
	if state.Phase != PhaseDeclaring {
		return state, &InvalidPhaseError{Expected: PhaseDeclaring, Got: state.Phase}
	}
	if state.CurrentTurn != pos || pos != state.HighestBid.Position {
		return state, ErrNotYourTurn
	}

	next := CloneState(state)
	next.HasTrump = true
	next.TrumpSuit = suit
	next.BiddingTeam = TeamOf(next.HighestBid.Position)
	next.emit(Event{Kind: EventTrumpDeclared, Position: pos, Suit: suit})
	next.Phase = PhaseDiscarding
	return next, nil
}
