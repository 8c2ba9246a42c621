package engine

import "sort"

// runSecondDealNonDealers tops up every non-dealer to config.HandSize (6)
// cards, in clockwise order starting left of the dealer, then proceeds to
// dealer robbing.
func runSecondDealNonDealers(state GameState) GameState {
	next := CloneState(state)

	counts := map[Position]int{}
	for _, pos := range dealOrder(next.CurrentDealer) {
		if pos == next.CurrentDealer {
			continue
		}
		player := next.player(pos)
		need := next.Config.HandSize - len(player.Hand)
		if need < 0 {
			need = 0
		}
		if need > len(next.Deck) {
			need = len(next.Deck)
		}
		if need > 0 {
			player.Hand = append(player.Hand, next.Deck[:need]...)
			next.Deck = next.Deck[need:]
		}
		next.CardsRequested[pos] = need
		counts[pos] = need
	}

	next.emit(Event{Kind: EventSecondDealComplete, Counts: counts})
	return runDealerRob(next)
}

// runDealerRob starts the robbing step: computes the pool and, in automatic
// mode, robs immediately; in manual mode, leaves the turn with the dealer to
// submit {select_cards, [Card;6]}. The deck is left intact
// until finishDealerRob actually resolves the rob, so a pending manual rob
// can still reconstruct the full pool.
func runDealerRob(state GameState) GameState {
	next := CloneState(state)
	pool := append(append([]Card{}, next.player(next.CurrentDealer).Hand...), next.Deck...)
	next.DealerPoolSize = len(pool)

	if !next.Config.AutoDealerRob {
		next.CurrentTurn = next.CurrentDealer
		return next
	}

	deckBefore := len(next.Deck)
	kept := bestSix(pool, next.TrumpSuit)
	return finishDealerRob(next, pool, kept, deckBefore)
}

// applySelectCards handles the manual {select_cards, [Card;6]} dealer-rob
// action.
func applySelectCards(state GameState, pos Position, cards []Card) (GameState, error) {
	if state.Phase != PhaseSecondDeal || state.Config.AutoDealerRob {
		return state, &InvalidPhaseError{Expected: PhaseSecondDeal, Got: state.Phase}
	}
	if pos != state.CurrentDealer || state.CurrentTurn != pos {
		return state, &NotDealerTurnError{Expected: state.CurrentDealer, Got: pos}
	}

	next := CloneState(state)
	pool := append(append([]Card{}, next.player(next.CurrentDealer).Hand...), next.Deck...)

	want := 6
	if len(pool) < want {
		want = len(pool)
	}
	if len(cards) != want {
		return state, &InvalidCardCountError{Expected: want, Got: len(cards)}
	}
	for _, c := range cards {
		if !containsCard(pool, c) {
			return state, &CardNotInHandError{Card: c}
		}
	}

	deckBefore := len(next.Deck)
	return finishDealerRob(next, pool, cards, deckBefore), nil
}

// finishDealerRob applies a resolved 6-card (or smaller, when the pool is
// short) keep-set: the rest of the pool goes to discarded_cards, the deck
// empties, and the hand-size invariant then feeds into the kill rule.
// taken_count reports |deck_before|, not the pool-minus-kept difference
// (which would double-count cards the dealer kept from their own hand
// rather than took from the deck).
func finishDealerRob(next GameState, pool, kept []Card, deckBefore int) GameState {
	keptSet := map[Card]bool{}
	for _, c := range kept {
		keptSet[c] = true
	}
	var discarded []Card
	for _, c := range pool {
		if !keptSet[c] {
			discarded = append(discarded, c)
		}
	}

	next.player(next.CurrentDealer).Hand = append([]Card{}, kept...)
	next.DiscardedCards = append(next.DiscardedCards, discarded...)
	next.Deck = nil
	next.emit(Event{
		Kind:       EventDealerRobbedPack,
		Position:   next.CurrentDealer,
		TakenCount: deckBefore,
		KeptCount:  len(kept),
		Cards:      map[Position][]Card{next.CurrentDealer: append([]Card{}, kept...)},
	})
	next.CurrentTurn = next.LeftOf(next.CurrentDealer)

	return runKill(discardDealerNonTrump(next))
}

// discardDealerNonTrump resolves Open Question 1: robbing
// selection is free to include non-trump Cards (the dealer's privilege), but
// the playing phase requires a trump-only hand, so any non-trump Cards the
// dealer kept are immediately folded back into discarded_cards, the same way
// every other player's non-trump Cards left hand at declaration.
func discardDealerNonTrump(next GameState) GameState {
	player := next.player(next.CurrentDealer)
	kept := player.Hand[:0:0]
	var discarded []Card
	for _, c := range player.Hand {
		if IsTrump(c, next.TrumpSuit) {
			kept = append(kept, c)
		} else {
			discarded = append(discarded, c)
		}
	}
	if len(discarded) == 0 {
		return next
	}
	player.Hand = kept
	next.DiscardedCards = append(next.DiscardedCards, discarded...)
	next.emit(Event{Kind: EventCardsDiscarded, Position: next.CurrentDealer, Count: len(discarded)})
	return next
}

// bestSix picks the 6 highest-scoring cards from pool by the deterministic
// scoring function below, breaking ties by suit then rank to keep the
// choice total and reproducible.
func bestSix(pool []Card, trump Suit) []Card {
	sorted := append([]Card{}, pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := robScore(sorted[i], trump), robScore(sorted[j], trump)
		if si != sj {
			return si > sj
		}
		if sorted[i].Suit != sorted[j].Suit {
			return sorted[i].Suit < sorted[j].Suit
		}
		return sorted[i].Rank > sorted[j].Rank
	})

	n := 6
	if len(sorted) < n {
		n = len(sorted)
	}
	return sorted[:n]
}

// robScore ranks c for dealer-robbing selection. The weights are chosen so
// every trump strictly outranks every non-trump, and every trump point-card
// strictly outranks every non-point trump, regardless of rank — otherwise a
// high non-trump (e.g. an ace) could edge out a low trump and break the
// "≥6 trumps in pool ⇒ all 6 selected are trump" guarantee.
func robScore(c Card, trump Suit) int {
	score := int(c.Rank)
	if IsTrump(c, trump) {
		score += 1000
		if PointValue(c, trump) > 0 {
			score += 100
		}
	}
	return score
}

func containsCard(cards []Card, target Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}
