package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for the simple, argument-free cases in spec.md §7.
var (
	ErrNotYourTurn          = errors.New("not_your_turn")
	ErrDealerMustBid        = errors.New("dealer_must_bid")
	ErrBidOutOfRange        = errors.New("bid_out_of_range")
	ErrWrongActionForPhase  = errors.New("wrong_action_for_phase")
	ErrMustPlayTrump        = errors.New("must_play_trump")
	ErrCannotKillPointCards = errors.New("cannot_kill_point_cards")
	ErrNoHistory            = errors.New("no_history")
)

// NotDealerTurnError is returned when a non-dealer action is attempted out
// of the dealer's designated step (e.g. select_cards during manual robbing).
type NotDealerTurnError struct {
	Expected Position
	Got      Position
}

func (e *NotDealerTurnError) Error() string {
	return fmt.Sprintf("not_dealer_turn: expected=%s got=%s", e.Expected, e.Got)
}

// BidTooLowError is returned when a bid does not strictly exceed the current
// high bid (except the 14-may-top-14 carve-out, spec.md §4.4).
type BidTooLowError struct {
	Current int
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid_too_low: current=%d", e.Current)
}

// AlreadyActedError is returned when a player who has already bid or passed
// this hand attempts to act again.
type AlreadyActedError struct {
	Position Position
}

func (e *AlreadyActedError) Error() string {
	return fmt.Sprintf("already_acted: position=%s", e.Position)
}

// CardNotInHandError is returned when an action names a card the acting
// player does not hold.
type CardNotInHandError struct {
	Card Card
}

func (e *CardNotInHandError) Error() string {
	return fmt.Sprintf("card_not_in_hand: card=%s", e.Card)
}

// InvalidCardCountError is returned when a select_cards action does not name
// exactly the expected number of cards.
type InvalidCardCountError struct {
	Expected int
	Got      int
}

func (e *InvalidCardCountError) Error() string {
	return fmt.Sprintf("invalid_card_count: expected=%d got=%d", e.Expected, e.Got)
}

// MustPlayTopKilledCardFirstError is returned when a player with an
// outstanding kill obligation tries to play any card other than the top
// killed card.
type MustPlayTopKilledCardFirstError struct {
	Card Card
}

func (e *MustPlayTopKilledCardFirstError) Error() string {
	return fmt.Sprintf("must_play_top_killed_card_first: card=%s", e.Card)
}

// InvalidPhaseError is returned when an action is attempted in a phase that
// cannot accept it.
type InvalidPhaseError struct {
	Expected Phase
	Got      Phase
}

func (e *InvalidPhaseError) Error() string {
	return fmt.Sprintf("invalid_phase: expected=%s got=%s", e.Expected, e.Got)
}

// NoDealerError is returned when an operation requires a chosen dealer and
// none exists yet.
type NoDealerError struct {
	Reason string
}

func (e *NoDealerError) Error() string {
	return fmt.Sprintf("no_dealer: %s", e.Reason)
}
