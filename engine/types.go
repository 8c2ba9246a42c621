package engine

// Player is one seat's visible state. Position and Team are fixed for the
// lifetime of a GameState.
type Player struct {
	Position   Position
	Team       Team
	Hand       []Card
	Eliminated bool
}

// Bid records one player's bidding action for the current hand.
type Bid struct {
	Position      Position
	Amount        int // 0 when Pass is true
	Pass          bool
	SequenceIndex int
}

// TrickPlay records one card played to a trick.
type TrickPlay struct {
	Position Position
	Card     Card
}

// Trick is one round of card play, one per active player.
type Trick struct {
	Number    int
	Leader    Position
	Plays     []TrickPlay
	Winner    Position // meaningful only once HasWinner is true
	HasWinner bool
}

// GameState is the root aggregate. It is never mutated in place: every
// engine operation takes a GameState by value and returns a new one.
type GameState struct {
	Phase         Phase
	HandNumber    int
	TrickNumber   int
	Players       [4]Player // indexed by Position
	CurrentDealer Position  // NoPosition before the first dealer is chosen
	CurrentTurn   Position  // NoPosition when no one is on turn

	Deck           []Card
	DiscardedCards []Card
	KilledCards    map[Position][]Card // index 0 is "top" (most recently killed)
	CardsRequested map[Position]int

	DealerPoolSize int

	Bids        []Bid
	HasBid      bool // true once HighestBid is meaningful
	HighestBid  Bid
	BiddingTeam Team // NoTeam until bidding closes; set again at trump declaration

	HasTrump  bool
	TrumpSuit Suit

	CurrentTrick    Trick
	HasCurrentTrick bool
	Tricks          []Trick

	HandPoints       map[Team]int
	CumulativeScores map[Team]int

	Events []Event

	Config  Config
	RNGSeed int64
}

// player returns a pointer into s.Players for convenient read access. Callers
// must not use this to mutate shared state; all mutation happens on a
// CloneState copy.
func (s *GameState) player(pos Position) *Player {
	return &s.Players[pos]
}

// Player returns a copy of the player at pos.
func (s GameState) Player(pos Position) Player {
	return s.Players[pos]
}

// ActivePositions returns the positions of all non-eliminated players, in
// clockwise order starting at North.
func (s GameState) ActivePositions() []Position {
	out := make([]Position, 0, 4)
	for _, p := range Positions {
		if !s.Players[p].Eliminated {
			out = append(out, p)
		}
	}
	return out
}

// ActiveTeams returns the set of teams that still have at least one active
// (non-eliminated) player.
func (s GameState) ActiveTeams() map[Team]bool {
	out := map[Team]bool{}
	for _, p := range Positions {
		if !s.Players[p].Eliminated {
			out[TeamOf(p)] = true
		}
	}
	return out
}

// LeftOf returns the next non-eliminated position clockwise from pos. If no
// other active position exists, pos itself is returned.
func (s GameState) LeftOf(pos Position) Position {
	cur := pos.Next()
	for i := 0; i < 4; i++ {
		if !s.Players[cur].Eliminated {
			return cur
		}
		cur = cur.Next()
	}
	return pos
}

// HandSizeFor reports the current hand size for a position.
func (s GameState) HandSizeFor(pos Position) int {
	return len(s.Players[pos].Hand)
}
