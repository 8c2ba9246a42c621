package engine

// NewGame creates the initial GameState for a seed and optional config
// override, then runs whatever automatic prefix applies.
// Hand 1 always halts at PhaseDealerSelection awaiting :select_dealer.
func NewGame(seed int64, config ...Config) GameState {
	cfg := DefaultConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	cfg = cfg.normalize()

	state := GameState{
		Phase:            PhaseDealerSelection,
		HandNumber:       1,
		CurrentDealer:    NoPosition,
		CurrentTurn:      NoPosition,
		BiddingTeam:      NoTeam,
		KilledCards:      map[Position][]Card{},
		CardsRequested:   map[Position]int{},
		HandPoints:       map[Team]int{},
		CumulativeScores: map[Team]int{NorthSouth: 0, EastWest: 0},
		Config:           cfg,
		RNGSeed:          seed,
	}
	for _, pos := range Positions {
		state.Players[pos] = Player{Position: pos, Team: TeamOf(pos)}
	}

	return Advance(state)
}

// ApplyAction routes action to the phase rule that owns it and, on success,
// runs the resulting automatic phase chain before returning.
func ApplyAction(state GameState, pos Position, action Action) (GameState, error) {
	var next GameState
	var err error

	switch action.Kind {
	case ActionSelectDealer:
		next, err = applySelectDealer(state)
	case ActionBid:
		next, err = applyBid(state, pos, action.Amount)
	case ActionPass:
		next, err = applyPass(state, pos)
	case ActionDeclareTrump:
		next, err = applyDeclareTrump(state, pos, action.Suit)
	case ActionSelectCards:
		next, err = applySelectCards(state, pos, action.Cards)
	case ActionPlayCard:
		next, err = applyPlayCard(state, pos, action.Card)
	case ActionResign:
		next, err = applyResign(state, pos)
	default:
		return state, ErrWrongActionForPhase
	}

	if err != nil {
		return state, err
	}
	return Advance(next), nil
}

// LegalActions returns only actions that ApplyAction will accept for pos in
// state. select_cards is deliberately not enumerated here: the space of
// 6-card subsets of a robbing pool is combinatorial, so manual robbing is
// validated by ApplyAction's own checks rather than pre-listed.
func LegalActions(state GameState, pos Position) []Action {
	switch state.Phase {
	case PhaseDealerSelection:
		if state.HandNumber == 1 {
			return []Action{SelectDealerAction()}
		}
		return nil

	case PhaseBidding:
		if state.CurrentTurn != pos {
			return nil
		}
		return legalBidActions(state)

	case PhaseDeclaring:
		if state.CurrentTurn != pos || pos != state.HighestBid.Position {
			return nil
		}
		return []Action{
			DeclareTrumpAction(Hearts),
			DeclareTrumpAction(Diamonds),
			DeclareTrumpAction(Clubs),
			DeclareTrumpAction(Spades),
		}

	case PhasePlaying:
		actions := legalPlayActions(state, pos)
		if state.CurrentTurn == pos {
			actions = append(actions, ResignAction())
		}
		return actions

	default:
		return nil
	}
}

// GameOver reports whether the game has concluded.
func GameOver(state GameState) bool {
	return state.Phase == PhaseComplete
}

// Winner returns the winning team once the game is over.
func Winner(state GameState) (Team, bool) {
	for i := len(state.Events) - 1; i >= 0; i-- {
		if state.Events[i].Kind == EventGameWon {
			return state.Events[i].Team, true
		}
	}
	return NoTeam, false
}

// applyResign lets the acting player concede mid-hand. It reuses the same
// elimination and hand-end path as going cold from an empty hand.
func applyResign(state GameState, pos Position) (GameState, error) {
	if state.Phase != PhasePlaying {
		return state, &InvalidPhaseError{Expected: PhasePlaying, Got: state.Phase}
	}
	if state.CurrentTurn != pos {
		return state, ErrNotYourTurn
	}

	next := CloneState(state)
	player := next.player(pos)
	next.DiscardedCards = append(next.DiscardedCards, player.Hand...)
	player.Hand = nil
	player.Eliminated = true
	next.emit(Event{Kind: EventPlayerWentCold, Position: pos})

	if handOver(next) {
		if next.HasCurrentTrick && len(next.CurrentTrick.Plays) > 0 {
			next = resolveTrick(next)
		} else {
			next.Phase = PhaseScoring
		}
		return next, nil
	}

	if len(next.CurrentTrick.Plays) < len(next.ActivePositions()) {
		next.CurrentTurn = next.LeftOf(pos)
		return next, nil
	}
	return resolveTrick(next), nil
}

// ReplayEvents reconstructs a GameState by re-applying only the manual
// actions recorded in events, in order; every automatic side effect
// (dealing, discarding, killing, scoring) is regenerated deterministically
// by the same Advance chain that produced it the first time.
func ReplayEvents(initial GameState, events []Event) GameState {
	state := Advance(initial)

	for _, e := range events {
		switch e.Kind {
		case EventDealerSelected:
			state, _ = ApplyAction(state, e.Position, SelectDealerAction())
		case EventBidMade:
			state, _ = ApplyAction(state, e.Position, BidAction(e.Amount))
		case EventBidPassed:
			state, _ = ApplyAction(state, e.Position, PassAction())
		case EventTrumpDeclared:
			state, _ = ApplyAction(state, e.Position, DeclareTrumpAction(e.Suit))
		case EventDealerRobbedPack:
			if !state.Config.AutoDealerRob {
				state, _ = ApplyAction(state, e.Position, SelectCardsAction(e.Cards[e.Position]))
			}
		case EventCardPlayed:
			state, _ = ApplyAction(state, e.Position, PlayCardAction(e.Card))
			// player_went_cold from playing the last card is regenerated as a
			// side effect above, which already marks the position Eliminated
			// before the loop reaches that event's own entry.
		case EventPlayerWentCold:
			// A player_went_cold already applied as a card-exhaustion side
			// effect (above) leaves the position Eliminated; only a standalone
			// entry — a genuine :resign — still needs applying here.
			if !state.Players[e.Position].Eliminated {
				state, _ = ApplyAction(state, e.Position, ResignAction())
			}
		}
	}

	return state
}

// Undo returns the state obtained by replaying state.Events without its last
// entry, from a freshly constructed initial state with the same seed and
// config.
func Undo(state GameState) (GameState, error) {
	if len(state.Events) == 0 {
		return state, ErrNoHistory
	}
	initial := NewGame(state.RNGSeed, state.Config)
	return ReplayEvents(initial, state.Events[:len(state.Events)-1]), nil
}
