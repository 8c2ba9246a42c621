package engine

import "math/rand"

// NewDeck returns a deterministic shuffle of the 52-card deck. The same seed
// always yields the same ordering.
func NewDeck(seed int64) []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
		for rank := uint8(RankTwo); rank <= RankAce; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// HandSeed derives a per-hand shuffle seed from the game's root seed and the
// hand number, so every hand reshuffles deterministically.
func HandSeed(rootSeed int64, handNumber int) int64 {
	return rootSeed*1000003 + int64(handNumber)
}

// cutSeed derives the seed for the dealer-selection cut sequence, which is
// simulated from a sub-sequence independent of the dealing deck.
func cutSeed(rootSeed int64) int64 {
	return rootSeed*31 + 17
}
