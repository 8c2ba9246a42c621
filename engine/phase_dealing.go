package engine

// runDealing deals spec.config.InitialDeal (9) cards to each player, in
// three batches of three, clockwise starting left of the dealer, using a
// freshly shuffled deck seeded from (RNGSeed, HandNumber) (spec.md §4.3,
// §9 "derive per-hand seeds from (rng_seed, hand_number)").
func runDealing(state GameState) GameState {
	next := CloneState(state)
	next.Deck = NewDeck(HandSeed(next.RNGSeed, next.HandNumber))

	order := dealOrder(next.CurrentDealer)
	dealt := map[Position][]Card{}

	const batchSize = 3
	batches := next.Config.InitialDeal / batchSize
	for b := 0; b < batches; b++ {
		for _, pos := range order {
			for c := 0; c < batchSize; c++ {
				card := next.Deck[0]
				next.Deck = next.Deck[1:]
				next.player(pos).Hand = append(next.player(pos).Hand, card)
				dealt[pos] = append(dealt[pos], card)
			}
		}
	}

	next.emit(Event{Kind: EventCardsDealt, Cards: dealt})
	next.Phase = PhaseBidding
	next.CurrentTurn = next.LeftOf(next.CurrentDealer)
	return next
}

// dealOrder returns the four seats in clockwise order starting left of the
// dealer.
func dealOrder(dealer Position) []Position {
	order := make([]Position, 0, 4)
	pos := dealer.Next()
	for i := 0; i < 4; i++ {
		order = append(order, pos)
		pos = pos.Next()
	}
	return order
}
