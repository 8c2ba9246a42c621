package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ToNotation renders the 9 serializable fields named in spec.md §6.4,
// separated by '/': phase, dealer, turn, trump, bid-position, bid-amount,
// ns-score, ew-score, hand/trick counter.
func ToNotation(state GameState) string {
	trump := "-"
	if state.HasTrump {
		trump = state.TrumpSuit.String()
	}
	bidPos := "-"
	bidAmt := "-"
	if state.HasBid {
		bidPos = state.HighestBid.Position.String()
		bidAmt = strconv.Itoa(state.HighestBid.Amount)
	}

	fields := []string{
		state.Phase.String(),
		state.CurrentDealer.String(),
		state.CurrentTurn.String(),
		trump,
		bidPos,
		bidAmt,
		strconv.Itoa(state.CumulativeScores[NorthSouth]),
		strconv.Itoa(state.CumulativeScores[EastWest]),
		fmt.Sprintf("%d.%d", state.HandNumber, state.TrickNumber),
	}
	return strings.Join(fields, "/")
}

// FromNotation parses the string produced by ToNotation back into a
// GameState skeleton carrying exactly those 9 fields.
func FromNotation(s string) (GameState, error) {
	fields := strings.Split(s, "/")
	if len(fields) != 9 {
		return GameState{}, fmt.Errorf("invalid notation %q: expected 9 fields, got %d", s, len(fields))
	}

	phase, ok := phaseFromString(fields[0])
	if !ok {
		return GameState{}, fmt.Errorf("invalid notation %q: unknown phase %q", s, fields[0])
	}
	dealer, ok := positionFromString(fields[1])
	if !ok {
		return GameState{}, fmt.Errorf("invalid notation %q: unknown dealer %q", s, fields[1])
	}
	turn, ok := positionFromString(fields[2])
	if !ok {
		return GameState{}, fmt.Errorf("invalid notation %q: unknown turn %q", s, fields[2])
	}

	state := GameState{
		Phase:            phase,
		CurrentDealer:    dealer,
		CurrentTurn:      turn,
		CumulativeScores: map[Team]int{},
		KilledCards:      map[Position][]Card{},
		CardsRequested:   map[Position]int{},
		HandPoints:       map[Team]int{},
	}

	if fields[3] != "-" {
		suit, ok := suitFromString(fields[3])
		if !ok {
			return GameState{}, fmt.Errorf("invalid notation %q: unknown trump suit %q", s, fields[3])
		}
		state.HasTrump = true
		state.TrumpSuit = suit
	}

	if fields[4] != "-" || fields[5] != "-" {
		bidPos, ok := positionFromString(fields[4])
		if !ok {
			return GameState{}, fmt.Errorf("invalid notation %q: unknown bid position %q", s, fields[4])
		}
		amount, err := strconv.Atoi(fields[5])
		if err != nil {
			return GameState{}, fmt.Errorf("invalid notation %q: bad bid amount %q", s, fields[5])
		}
		state.HasBid = true
		state.HighestBid = Bid{Position: bidPos, Amount: amount}
	}

	nsScore, err := strconv.Atoi(fields[6])
	if err != nil {
		return GameState{}, fmt.Errorf("invalid notation %q: bad north_south score %q", s, fields[6])
	}
	ewScore, err := strconv.Atoi(fields[7])
	if err != nil {
		return GameState{}, fmt.Errorf("invalid notation %q: bad east_west score %q", s, fields[7])
	}
	state.CumulativeScores[NorthSouth] = nsScore
	state.CumulativeScores[EastWest] = ewScore

	handTrick := strings.SplitN(fields[8], ".", 2)
	if len(handTrick) != 2 {
		return GameState{}, fmt.Errorf("invalid notation %q: bad hand.trick counter %q", s, fields[8])
	}
	handNumber, err := strconv.Atoi(handTrick[0])
	if err != nil {
		return GameState{}, fmt.Errorf("invalid notation %q: bad hand number %q", s, handTrick[0])
	}
	trickNumber, err := strconv.Atoi(handTrick[1])
	if err != nil {
		return GameState{}, fmt.Errorf("invalid notation %q: bad trick number %q", s, handTrick[1])
	}
	state.HandNumber = handNumber
	state.TrickNumber = trickNumber

	return state, nil
}

func positionFromString(s string) (Position, bool) {
	for _, p := range Positions {
		if p.String() == s {
			return p, true
		}
	}
	if s == "none" {
		return NoPosition, true
	}
	return NoPosition, false
}

func suitFromString(s string) (Suit, bool) {
	for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
		if suit.String() == s {
			return suit, true
		}
	}
	return 0, false
}
