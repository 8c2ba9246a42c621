package engine

// legalBidActions returns the actions the seat on turn may submit during
// PhaseBidding. The dealer-must-bid rule and bidBeats are the same checks
// applyPass and applyBid use, so LegalActions and those never diverge. No
// already-acted check is needed: the turn only moves forward and bidding
// closes once the dealer acts, so the seat on turn has not acted yet.
func legalBidActions(state GameState) []Action {
	if state.Phase != PhaseBidding || state.CurrentTurn == NoPosition {
		return nil
	}

	var actions []Action
	for amount := state.Config.MinBid; amount <= state.Config.MaxBid; amount++ {
		if bidBeats(state, amount) {
			actions = append(actions, BidAction(amount))
		}
	}

	if !(state.CurrentTurn == state.CurrentDealer && allOthersPassed(state)) {
		actions = append(actions, PassAction())
	}
	return actions
}

// bidBeats reports whether amount would be accepted as the next bid, per the
// strict-increase rule with the "14 may top 14" carve-out.
func bidBeats(state GameState, amount int) bool {
	if amount < state.Config.MinBid || amount > state.Config.MaxBid {
		return false
	}
	if !state.HasBid {
		return true
	}
	if amount > state.HighestBid.Amount {
		return true
	}
	return amount == state.Config.MaxBid && state.HighestBid.Amount == state.Config.MaxBid
}

// allOthersPassed reports whether every non-dealer has already passed.
func allOthersPassed(state GameState) bool {
	passed := map[Position]bool{}
	for _, b := range state.Bids {
		if b.Pass {
			passed[b.Position] = true
		}
	}
	for _, pos := range Positions {
		if pos == state.CurrentDealer {
			continue
		}
		if !passed[pos] {
			return false
		}
	}
	return true
}

// hasActed reports whether pos has already bid or passed this hand.
func hasActed(state GameState, pos Position) bool {
	for _, b := range state.Bids {
		if b.Position == pos {
			return true
		}
	}
	return false
}

// applyBid handles a {bid, amount} action.
func applyBid(state GameState, pos Position, amount int) (GameState, error) {
	if state.Phase != PhaseBidding {
		return state, &InvalidPhaseError{Expected: PhaseBidding, Got: state.Phase}
	}
	if state.CurrentTurn != pos {
		return state, ErrNotYourTurn
	}
	if hasActed(state, pos) {
		return state, &AlreadyActedError{Position: pos}
	}
	if amount < state.Config.MinBid || amount > state.Config.MaxBid {
		return state, ErrBidOutOfRange
	}
	if !bidBeats(state, amount) {
		return state, &BidTooLowError{Current: state.HighestBid.Amount}
	}

	next := CloneState(state)
	bid := Bid{Position: pos, Amount: amount, SequenceIndex: len(next.Bids)}
	next.Bids = append(next.Bids, bid)
	next.HasBid = true
	next.HighestBid = bid
	next.emit(Event{Kind: EventBidMade, Position: pos, Amount: amount})

	return advanceBidding(next), nil
}

// applyPass handles a :pass action.
func applyPass(state GameState, pos Position) (GameState, error) {
	if state.Phase != PhaseBidding {
		return state, &InvalidPhaseError{Expected: PhaseBidding, Got: state.Phase}
	}
	if state.CurrentTurn != pos {
		return state, ErrNotYourTurn
	}
	if hasActed(state, pos) {
		return state, &AlreadyActedError{Position: pos}
	}
	if pos == state.CurrentDealer && allOthersPassed(state) {
		return state, ErrDealerMustBid
	}

	next := CloneState(state)
	next.Bids = append(next.Bids, Bid{Position: pos, Pass: true, SequenceIndex: len(next.Bids)})
	next.emit(Event{Kind: EventBidPassed, Position: pos})

	return advanceBidding(next), nil
}

// advanceBidding moves the turn to the next bidder, or closes bidding once
// the dealer has acted.
func advanceBidding(next GameState) GameState {
	if next.CurrentTurn == next.CurrentDealer {
		next.emit(Event{Kind: EventBiddingComplete, Position: next.HighestBid.Position, Amount: next.HighestBid.Amount})
		next.BiddingTeam = TeamOf(next.HighestBid.Position)
		next.CurrentTurn = next.HighestBid.Position
		next.Phase = PhaseDeclaring
		return next
	}
	next.CurrentTurn = next.CurrentTurn.Next()
	return next
}
