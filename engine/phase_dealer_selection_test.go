package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDealerOnlyLegalHandOne(t *testing.T) {
	state := NewGame(1)
	assert.Equal(t, []Action{SelectDealerAction()}, LegalActions(state, North))
}

func TestApplySelectDealerAdvancesToDealing(t *testing.T) {
	state := NewGame(1)
	next, err := ApplyAction(state, North, SelectDealerAction())
	require.NoError(t, err)
	assert.Equal(t, PhaseBidding, next.Phase) // dealing is automatic, runs through
	assert.NotEqual(t, NoPosition, next.CurrentDealer)
}

func TestApplySelectDealerWrongPhaseRejected(t *testing.T) {
	state := readyToPlay(t, 1, Hearts)
	_, err := applySelectDealer(state)
	assert.Error(t, err)
}

func TestSelectDealerDeterministicForSeed(t *testing.T) {
	a := NewGame(55)
	b := NewGame(55)
	a, err := ApplyAction(a, North, SelectDealerAction())
	require.NoError(t, err)
	b, err = ApplyAction(b, North, SelectDealerAction())
	require.NoError(t, err)
	assert.Equal(t, a.CurrentDealer, b.CurrentDealer)
}

func TestDealerRotatesClockwiseOnLaterHands(t *testing.T) {
	state := readyToPlay(t, 9, Hearts)
	firstDealer := state.CurrentDealer

	// playOutHand's final ApplyAction already runs the automatic chain
	// (scoring, then hand-2+ dealer rotation and dealing) via Advance.
	state = playOutHand(t, state)

	if GameOver(state) {
		t.Skip("game concluded in one hand for this seed")
	}
	assert.Equal(t, firstDealer.Next(), state.CurrentDealer)
	assert.Equal(t, 2, state.HandNumber)
}
