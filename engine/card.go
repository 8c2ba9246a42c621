package engine

import "fmt"

// Suit identifies one of the four card suits.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// code returns the single-character notation code for the suit.
func (s Suit) code() byte {
	switch s {
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	case Clubs:
		return 'c'
	case Spades:
		return 's'
	default:
		return '?'
	}
}

func suitFromCode(b byte) (Suit, bool) {
	switch b {
	case 'h':
		return Hearts, true
	case 'd':
		return Diamonds, true
	case 'c':
		return Clubs, true
	case 's':
		return Spades, true
	default:
		return 0, false
	}
}

// SameColorSuit returns the suit sharing this suit's color: hearts<->diamonds,
// clubs<->spades.
func SameColorSuit(s Suit) Suit {
	switch s {
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	case Clubs:
		return Spades
	case Spades:
		return Clubs
	default:
		return s
	}
}

// Rank values. 11=J, 12=Q, 13=K, 14=A.
const (
	RankTwo   = 2
	RankThree = 3
	RankFour  = 4
	RankFive  = 5
	RankSix   = 6
	RankSeven = 7
	RankEight = 8
	RankNine  = 9
	RankTen   = 10
	RankJack  = 11
	RankQueen = 12
	RankKing  = 13
	RankAce   = 14
)

// Card is a single playing card. There are exactly 52 unique (Rank, Suit)
// pairs in the domain.
type Card struct {
	Rank uint8
	Suit Suit
}

func rankCode(rank uint8) byte {
	switch rank {
	case RankTen:
		return 'T'
	case RankJack:
		return 'J'
	case RankQueen:
		return 'Q'
	case RankKing:
		return 'K'
	case RankAce:
		return 'A'
	default:
		return byte('0' + rank)
	}
}

func rankFromCode(b byte) (uint8, bool) {
	switch b {
	case 'T':
		return RankTen, true
	case 'J':
		return RankJack, true
	case 'Q':
		return RankQueen, true
	case 'K':
		return RankKing, true
	case 'A':
		return RankAce, true
	default:
		if b >= '2' && b <= '9' {
			return uint8(b - '0'), true
		}
		return 0, false
	}
}

// String renders a card as its two-character notation code, e.g. "Ah", "Td".
func (c Card) String() string {
	return fmt.Sprintf("%c%c", rankCode(c.Rank), c.Suit.code())
}

// EncodeCard renders a card as its two-character notation code.
func EncodeCard(c Card) string {
	return c.String()
}

// DecodeCard parses a two-character card code such as "Ah" into a Card.
func DecodeCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card code %q: expected 2 characters", s)
	}
	rank, ok := rankFromCode(s[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid card code %q: unknown rank %q", s, s[0])
	}
	suit, ok := suitFromCode(s[1])
	if !ok {
		return Card{}, fmt.Errorf("invalid card code %q: unknown suit %q", s, s[1])
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// IsTrump reports whether c counts as trump given trumpSuit: either it is of
// trumpSuit, or it is the "wrong-5" (the 5 of the same-color non-trump suit).
func IsTrump(c Card, trumpSuit Suit) bool {
	if c.Suit == trumpSuit {
		return true
	}
	return c.Rank == RankFive && c.Suit == SameColorSuit(trumpSuit)
}

// IsWrongFive reports whether c is specifically the wrong-5 for trumpSuit.
func IsWrongFive(c Card, trumpSuit Suit) bool {
	return c.Rank == RankFive && c.Suit == SameColorSuit(trumpSuit)
}

// IsRightFive reports whether c is the 5 of the trump suit itself.
func IsRightFive(c Card, trumpSuit Suit) bool {
	return c.Rank == RankFive && c.Suit == trumpSuit
}

// PointValue returns the trick-scoring value of c given trumpSuit. Non-trump
// cards are worth 0. The 15 trumps sum to 14 points.
func PointValue(c Card, trumpSuit Suit) int {
	if !IsTrump(c, trumpSuit) {
		return 0
	}
	switch c.Rank {
	case RankFive:
		return 5 // right-5 and wrong-5 are both worth 5
	case RankAce, RankJack, RankTen, RankTwo:
		return 1
	default:
		return 0
	}
}

// trumpWeight returns a strictly increasing strength value for a trump card
// under trumpSuit, imposing the total order:
// A > K > Q > J > 10 > 9 > 8 > 7 > 6 > right-5 > wrong-5 > 4 > 3 > 2.
// The result is meaningless for non-trump cards; callers must check IsTrump
// first.
func trumpWeight(c Card, trumpSuit Suit) int {
	switch {
	case c.Rank == RankFive && c.Suit == trumpSuit:
		return 5
	case c.Rank == RankFive:
		return 4 // wrong-5
	case c.Rank == RankFour:
		return 3
	case c.Rank == RankThree:
		return 2
	case c.Rank == RankTwo:
		return 1
	default:
		return int(c.Rank)
	}
}

// Ordering is the result of comparing two trump cards.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// Compare orders two trump cards under trumpSuit. Behavior is undefined if
// either card is not trump; the play phase never invokes it on non-trump
// cards.
func Compare(a, b Card, trumpSuit Suit) Ordering {
	wa, wb := trumpWeight(a, trumpSuit), trumpWeight(b, trumpSuit)
	switch {
	case wa > wb:
		return Greater
	case wa < wb:
		return Less
	default:
		return Equal
	}
}
