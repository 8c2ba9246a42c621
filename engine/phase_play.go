package engine

// hasPlayedThisHand reports whether pos has already played a card this hand,
// across completed tricks and the trick in progress.
func hasPlayedThisHand(state GameState, pos Position) bool {
	for _, t := range state.Tricks {
		for _, p := range t.Plays {
			if p.Position == pos {
				return true
			}
		}
	}
	if state.HasCurrentTrick {
		for _, p := range state.CurrentTrick.Plays {
			if p.Position == pos {
				return true
			}
		}
	}
	return false
}

// owedKilledCard returns the card pos must play next, and true, if they owe
// an outstanding first-trick kill obligation.
func owedKilledCard(state GameState, pos Position) (Card, bool) {
	pile := state.KilledCards[pos]
	if len(pile) == 0 || hasPlayedThisHand(state, pos) {
		return Card{}, false
	}
	return pile[0], true
}

// legalPlayActions returns the cards pos may legally play right now.
func legalPlayActions(state GameState, pos Position) []Action {
	if state.Phase != PhasePlaying || state.CurrentTurn != pos {
		return nil
	}
	if owed, ok := owedKilledCard(state, pos); ok {
		return []Action{PlayCardAction(owed)}
	}
	actions := make([]Action, 0, len(state.Players[pos].Hand))
	for _, c := range state.Players[pos].Hand {
		actions = append(actions, PlayCardAction(c))
	}
	return actions
}

// applyPlayCard handles {play_card, card}.
func applyPlayCard(state GameState, pos Position, card Card) (GameState, error) {
	if state.Phase != PhasePlaying {
		return state, &InvalidPhaseError{Expected: PhasePlaying, Got: state.Phase}
	}
	if state.CurrentTurn != pos {
		return state, ErrNotYourTurn
	}

	next := CloneState(state)

	if owed, ok := owedKilledCard(next, pos); ok {
		if card != owed {
			return state, &MustPlayTopKilledCardFirstError{Card: owed}
		}
		next.KilledCards[pos] = next.KilledCards[pos][1:]
	} else {
		player := next.player(pos)
		idx := -1
		for i, c := range player.Hand {
			if c == card {
				idx = i
				break
			}
		}
		if idx == -1 {
			return state, &CardNotInHandError{Card: card}
		}
		player.Hand = append(player.Hand[:idx:idx], player.Hand[idx+1:]...)
	}

	next.emit(Event{Kind: EventCardPlayed, Position: pos, Card: card})
	next.CurrentTrick.Plays = append(next.CurrentTrick.Plays, TrickPlay{Position: pos, Card: card})

	if len(next.player(pos).Hand) == 0 {
		if _, owes := owedKilledCard(next, pos); !owes && len(next.KilledCards[pos]) == 0 {
			next.player(pos).Eliminated = true
			next.emit(Event{Kind: EventPlayerWentCold, Position: pos})
		}
	}

	if len(next.CurrentTrick.Plays) < len(next.ActivePositions()) {
		next.CurrentTurn = next.LeftOf(pos)
		return next, nil
	}

	return resolveTrick(next), nil
}

// resolveTrick determines the winner and point credit for a completed trick,
// then either opens the next trick or transitions to scoring.
func resolveTrick(next GameState) GameState {
	trick := next.CurrentTrick

	winner := trick.Plays[0].Position
	winningCard := trick.Plays[0].Card
	for _, p := range trick.Plays[1:] {
		if Compare(p.Card, winningCard, next.TrumpSuit) == Greater {
			winner = p.Position
			winningCard = p.Card
		}
	}

	points := 0
	twoCredit := NoTeam
	hasTwoCredit := false
	for _, p := range trick.Plays {
		points += PointValue(p.Card, next.TrumpSuit)
		if p.Card.Rank == RankTwo && p.Card.Suit == next.TrumpSuit {
			points--
			twoCredit = TeamOf(p.Position)
			hasTwoCredit = true
		}
	}

	trick.Winner = winner
	trick.HasWinner = true
	next.Tricks = append(next.Tricks, trick)
	next.HasCurrentTrick = false

	if hasTwoCredit {
		next.HandPoints[twoCredit] += 1
	}
	next.HandPoints[TeamOf(winner)] += points

	next.emit(Event{Kind: EventTrickWon, Position: winner, Points: points})

	if handOver(next) {
		next.Phase = PhaseScoring
		return next
	}

	leader := winner
	if next.Players[leader].Eliminated {
		leader = next.LeftOf(leader)
	}
	next.TrickNumber++
	next.CurrentTurn = leader
	next.CurrentTrick = Trick{Number: next.TrickNumber, Leader: leader}
	next.HasCurrentTrick = true
	return next
}

// handOver reports whether the hand must end: every player out of cards, or
// only one team has active players left.
func handOver(state GameState) bool {
	anyCards := false
	for _, pos := range Positions {
		if len(state.Players[pos].Hand) > 0 || len(state.KilledCards[pos]) > 0 {
			anyCards = true
			break
		}
	}
	if !anyCards {
		return true
	}
	return len(state.ActiveTeams()) <= 1
}
