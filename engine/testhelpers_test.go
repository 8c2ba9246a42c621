package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newDealtGame creates a game, resolves the hand-1 dealer cut, and returns
// the state parked at the start of bidding.
func newDealtGame(t *testing.T, seed int64) GameState {
	t.Helper()
	state := NewGame(seed)
	require.Equal(t, PhaseDealerSelection, state.Phase)
	state, err := ApplyAction(state, North, SelectDealerAction())
	require.NoError(t, err)
	require.Equal(t, PhaseBidding, state.Phase)
	return state
}

// playThroughBidding has every seat pass except the dealer, who is forced to
// bid the configured minimum, and returns the state parked at PhaseDeclaring
// with the dealer as the winning bidder.
func playThroughBidding(t *testing.T, state GameState) GameState {
	t.Helper()
	require.Equal(t, PhaseBidding, state.Phase)

	for state.Phase == PhaseBidding {
		pos := state.CurrentTurn
		var err error
		if pos == state.CurrentDealer {
			state, err = ApplyAction(state, pos, BidAction(state.Config.MinBid))
		} else {
			state, err = ApplyAction(state, pos, PassAction())
		}
		require.NoError(t, err)
	}
	return state
}

// declareTrump applies {declare_trump, suit} from whichever seat holds the
// winning bid and returns the resulting state.
func declareTrump(t *testing.T, state GameState, suit Suit) GameState {
	t.Helper()
	require.Equal(t, PhaseDeclaring, state.Phase)
	next, err := ApplyAction(state, state.HighestBid.Position, DeclareTrumpAction(suit))
	require.NoError(t, err)
	return next
}

// readyToPlay drives a fresh hand-1 game all the way to PhasePlaying using
// the automatic dealer robbing path (the default config), with trump
// declared as suit by whoever is forced to win the bid.
func readyToPlay(t *testing.T, seed int64, suit Suit) GameState {
	t.Helper()
	state := newDealtGame(t, seed)
	state = playThroughBidding(t, state)
	state = declareTrump(t, state, suit)
	require.Equal(t, PhasePlaying, state.Phase)
	return state
}

// totalCardCount sums every card still tracked anywhere in state: hands,
// deck, discarded_cards, killed_cards, and cards already played to a
// completed trick. A game that never loses or duplicates a card always
// reports 52 here.
func totalCardCount(state GameState) int {
	total := len(state.Deck) + len(state.DiscardedCards)
	for _, pos := range Positions {
		total += len(state.Players[pos].Hand)
		total += len(state.KilledCards[pos])
	}
	for _, trick := range state.Tricks {
		total += len(trick.Plays)
	}
	if state.HasCurrentTrick {
		total += len(state.CurrentTrick.Plays)
	}
	return total
}

// playOutHand plays every remaining trick of the current hand using only
// each seat's first legal action, and returns the resulting state. Useful
// for driving a game into PhaseScoring/PhaseDealerSelection/PhaseComplete
// without asserting on trick-by-trick outcomes.
func playOutHand(t *testing.T, state GameState) GameState {
	t.Helper()
	startHand := state.HandNumber
	for i := 0; i < 10000 && state.HandNumber == startHand && state.Phase == PhasePlaying; i++ {
		pos := state.CurrentTurn
		actions := LegalActions(state, pos)
		require.NotEmpty(t, actions)

		var action Action
		for _, a := range actions {
			if a.Kind == ActionPlayCard {
				action = a
				break
			}
		}
		require.Equal(t, ActionPlayCard, action.Kind)

		next, err := ApplyAction(state, pos, action)
		require.NoError(t, err)
		state = next
	}
	return state
}
