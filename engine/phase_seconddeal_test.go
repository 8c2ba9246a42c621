package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondDealTopsUpNonDealersToHandSize(t *testing.T) {
	state := readyToPlay(t, 3, Hearts)
	for _, pos := range Positions {
		if pos == state.CurrentDealer {
			continue
		}
		assert.LessOrEqual(t, len(state.Players[pos].Hand), state.Config.HandSize)
	}
}

func TestAutoDealerRobKeepsDealerAtHandSizeOrBelow(t *testing.T) {
	state := readyToPlay(t, 3, Hearts)
	assert.LessOrEqual(t, len(state.Players[state.CurrentDealer].Hand), state.Config.HandSize)
}

func TestManualDealerRobWaitsForSelectCards(t *testing.T) {
	state := newDealtGame(t, 3)
	state.Config.AutoDealerRob = false
	state = playThroughBidding(t, state)
	state = declareTrump(t, state, Hearts)

	assert.Equal(t, PhaseSecondDeal, state.Phase)
	assert.Equal(t, state.CurrentDealer, state.CurrentTurn)
	assert.Greater(t, state.DealerPoolSize, 0)
}

func TestManualDealerRobAppliesSelectedCards(t *testing.T) {
	state := newDealtGame(t, 3)
	state.Config.AutoDealerRob = false
	state = playThroughBidding(t, state)
	state = declareTrump(t, state, Hearts)
	require.Equal(t, PhaseSecondDeal, state.Phase)

	pool := append(append([]Card{}, state.Players[state.CurrentDealer].Hand...), state.Deck...)
	want := 6
	if len(pool) < want {
		want = len(pool)
	}
	picked := pool[:want]

	next, err := ApplyAction(state, state.CurrentDealer, SelectCardsAction(picked))
	require.NoError(t, err)
	assert.Equal(t, PhasePlaying, next.Phase)
}

func TestManualDealerRobRejectsWrongCardCount(t *testing.T) {
	state := newDealtGame(t, 3)
	state.Config.AutoDealerRob = false
	state = playThroughBidding(t, state)
	state = declareTrump(t, state, Hearts)

	_, err := ApplyAction(state, state.CurrentDealer, SelectCardsAction([]Card{{Rank: RankAce, Suit: Hearts}}))
	var countErr *InvalidCardCountError
	assert.ErrorAs(t, err, &countErr)
}

func TestManualDealerRobRejectsCardNotInPool(t *testing.T) {
	state := newDealtGame(t, 3)
	state.Config.AutoDealerRob = false
	state = playThroughBidding(t, state)
	state = declareTrump(t, state, Hearts)

	pool := append(append([]Card{}, state.Players[state.CurrentDealer].Hand...), state.Deck...)
	inPool := map[Card]bool{}
	for _, c := range pool {
		inPool[c] = true
	}
	var foreign Card
	for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
		for rank := uint8(RankTwo); rank <= RankAce; rank++ {
			c := Card{Rank: rank, Suit: suit}
			if !inPool[c] {
				foreign = c
			}
		}
	}

	picked := append([]Card{foreign}, pool[:5]...)
	_, err := ApplyAction(state, state.CurrentDealer, SelectCardsAction(picked))
	var cardErr *CardNotInHandError
	assert.ErrorAs(t, err, &cardErr)
}

func TestDealerRobSelectsAllTrumpWhenPoolHasAtLeastSix(t *testing.T) {
	trumps := []Card{
		{Rank: RankAce, Suit: Hearts},
		{Rank: RankKing, Suit: Hearts},
		{Rank: RankQueen, Suit: Hearts},
		{Rank: RankFive, Suit: Hearts},
		{Rank: RankFive, Suit: Diamonds},
		{Rank: RankSix, Suit: Hearts},
	}
	pool := append([]Card{}, trumps...)
	pool = append(pool,
		Card{Rank: RankAce, Suit: Clubs},
		Card{Rank: RankAce, Suit: Spades},
		Card{Rank: RankKing, Suit: Spades},
	)

	kept := bestSix(pool, Hearts)
	assert.Len(t, kept, 6)
	for _, c := range kept {
		assert.True(t, IsTrump(c, Hearts), "expected %s to be trump", c)
	}
}

func TestDealerRobPrefersPointTrumpsOverNonPointTrumps(t *testing.T) {
	pointTrump := Card{Rank: RankAce, Suit: Hearts}   // 1 point
	nonPointTrump := Card{Rank: RankKing, Suit: Hearts} // 0 points
	assert.Greater(t, robScore(pointTrump, Hearts), robScore(nonPointTrump, Hearts))
}

func TestDealerRobNeverPrefersNonTrumpOverTrump(t *testing.T) {
	lowTrump := Card{Rank: RankTwo, Suit: Hearts}
	highNonTrump := Card{Rank: RankAce, Suit: Clubs}
	assert.Greater(t, robScore(lowTrump, Hearts), robScore(highNonTrump, Hearts))
}

func TestDiscardDealerNonTrumpFoldsLeftoverIntoDiscardedCards(t *testing.T) {
	state := NewGame(3)
	state.CurrentDealer = North
	state.TrumpSuit = Hearts
	state.HasTrump = true
	state.Players[North].Hand = []Card{
		{Rank: RankAce, Suit: Hearts},
		{Rank: RankKing, Suit: Clubs}, // non-trump, kept by a manual rob
	}

	next := discardDealerNonTrump(state)
	assert.Equal(t, []Card{{Rank: RankAce, Suit: Hearts}}, next.Players[North].Hand)
	assert.Contains(t, next.DiscardedCards, Card{Rank: RankKing, Suit: Clubs})

	found := false
	for _, e := range next.Events {
		if e.Kind == EventCardsDiscarded && e.Position == North {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDiscardDealerNonTrumpNoOpWhenAllTrump(t *testing.T) {
	state := NewGame(3)
	state.CurrentDealer = North
	state.TrumpSuit = Hearts
	state.HasTrump = true
	state.Players[North].Hand = []Card{{Rank: RankAce, Suit: Hearts}}

	next := discardDealerNonTrump(state)
	assert.Equal(t, state.Players[North].Hand, next.Players[North].Hand)
	assert.Empty(t, next.Events)
}
