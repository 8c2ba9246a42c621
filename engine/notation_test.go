package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotationRoundTripDealerSelection(t *testing.T) {
	state := NewGame(7)
	roundTrip(t, state)
}

func TestNotationRoundTripMidBidding(t *testing.T) {
	state := newDealtGame(t, 7)
	roundTrip(t, state)
}

func TestNotationRoundTripWithTrumpAndScores(t *testing.T) {
	state := playThroughBidding(t, newDealtGame(t, 7))
	state.HasTrump = true
	state.TrumpSuit = Clubs
	state.CumulativeScores[NorthSouth] = 20
	state.CumulativeScores[EastWest] = 35
	roundTrip(t, state)
}

func roundTrip(t *testing.T, state GameState) {
	t.Helper()
	notation := ToNotation(state)
	decoded, err := FromNotation(notation)
	require.NoError(t, err)

	assert.Equal(t, state.Phase, decoded.Phase)
	assert.Equal(t, state.CurrentDealer, decoded.CurrentDealer)
	assert.Equal(t, state.CurrentTurn, decoded.CurrentTurn)
	assert.Equal(t, state.HasTrump, decoded.HasTrump)
	if state.HasTrump {
		assert.Equal(t, state.TrumpSuit, decoded.TrumpSuit)
	}
	assert.Equal(t, state.HasBid, decoded.HasBid)
	if state.HasBid {
		assert.Equal(t, state.HighestBid.Position, decoded.HighestBid.Position)
		assert.Equal(t, state.HighestBid.Amount, decoded.HighestBid.Amount)
	}
	assert.Equal(t, state.CumulativeScores[NorthSouth], decoded.CumulativeScores[NorthSouth])
	assert.Equal(t, state.CumulativeScores[EastWest], decoded.CumulativeScores[EastWest])
	assert.Equal(t, state.HandNumber, decoded.HandNumber)
	assert.Equal(t, state.TrickNumber, decoded.TrickNumber)

	// to_notation is itself deterministic given the same encoded fields.
	assert.Equal(t, notation, ToNotation(decoded))
}

func TestFromNotationRejectsWrongFieldCount(t *testing.T) {
	_, err := FromNotation("dealer_selection/north/east")
	assert.Error(t, err)
}

func TestFromNotationRejectsUnknownPhase(t *testing.T) {
	_, err := FromNotation("not_a_phase/north/east/-/-/-/0/0/1.0")
	assert.Error(t, err)
}

func TestFromNotationRejectsUnknownSuit(t *testing.T) {
	_, err := FromNotation("bidding/north/east/neon/-/-/0/0/1.0")
	assert.Error(t, err)
}

func TestFromNotationRejectsBadHandTrick(t *testing.T) {
	_, err := FromNotation("bidding/north/east/-/-/-/0/0/oops")
	assert.Error(t, err)
}
