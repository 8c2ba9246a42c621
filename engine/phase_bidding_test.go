package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerMustBidWhenAllOthersPassed(t *testing.T) {
	state := newDealtGame(t, 3)
	for state.CurrentTurn != state.CurrentDealer {
		var err error
		state, err = ApplyAction(state, state.CurrentTurn, PassAction())
		require.NoError(t, err)
	}

	_, err := ApplyAction(state, state.CurrentDealer, PassAction())
	assert.ErrorIs(t, err, ErrDealerMustBid)

	actions := LegalActions(state, state.CurrentDealer)
	for _, a := range actions {
		assert.NotEqual(t, ActionPass, a.Kind)
	}
}

func TestBiddingRejectsOutOfTurn(t *testing.T) {
	state := newDealtGame(t, 3)
	wrongSeat := state.CurrentDealer
	_, err := ApplyAction(state, wrongSeat, PassAction())
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestBiddingRejectsBidBelowMinimum(t *testing.T) {
	state := newDealtGame(t, 3)
	_, err := ApplyAction(state, state.CurrentTurn, BidAction(state.Config.MinBid-1))
	assert.ErrorIs(t, err, ErrBidOutOfRange)
}

func TestBiddingRejectsBidAboveMaximum(t *testing.T) {
	state := newDealtGame(t, 3)
	_, err := ApplyAction(state, state.CurrentTurn, BidAction(state.Config.MaxBid+1))
	assert.ErrorIs(t, err, ErrBidOutOfRange)
}

func TestBiddingRequiresStrictIncrease(t *testing.T) {
	state := newDealtGame(t, 3)
	first := state.CurrentTurn
	state, err := ApplyAction(state, first, BidAction(8))
	require.NoError(t, err)

	second := state.CurrentTurn
	_, err = ApplyAction(state, second, BidAction(8))
	var tooLow *BidTooLowError
	assert.ErrorAs(t, err, &tooLow)
	assert.Equal(t, 8, tooLow.Current)
}

func TestBiddingAllowsFourteenToTopFourteen(t *testing.T) {
	state := newDealtGame(t, 3)
	first := state.CurrentTurn
	state, err := ApplyAction(state, first, BidAction(14))
	require.NoError(t, err)

	second := state.CurrentTurn
	next, err := ApplyAction(state, second, BidAction(14))
	require.NoError(t, err)
	assert.Equal(t, 14, next.HighestBid.Amount)
	assert.Equal(t, second, next.HighestBid.Position)
}

func TestBiddingRejectsActingTwiceBeforeTurnComesAround(t *testing.T) {
	state := newDealtGame(t, 3)
	first := state.CurrentTurn
	state, err := ApplyAction(state, first, PassAction())
	require.NoError(t, err)

	// first seat tries to act again before their next turn comes around.
	_, err = ApplyAction(state, first, PassAction())
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestBiddingClosesOnDealerActionAndOpensDeclaring(t *testing.T) {
	state := playThroughBidding(t, newDealtGame(t, 3))
	assert.Equal(t, PhaseDeclaring, state.Phase)
	assert.Equal(t, state.HighestBid.Position, state.CurrentTurn)
	assert.Equal(t, TeamOf(state.HighestBid.Position), state.BiddingTeam)
}

func TestLegalBidActionsExcludesCoveredAmounts(t *testing.T) {
	state := newDealtGame(t, 3)
	first := state.CurrentTurn
	state, err := ApplyAction(state, first, BidAction(10))
	require.NoError(t, err)

	for _, a := range LegalActions(state, state.CurrentTurn) {
		if a.Kind == ActionBid {
			assert.Greater(t, a.Amount, 10)
		}
	}
}
