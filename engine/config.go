package engine

// Config holds the tunables for a game: a plain struct of rule constants
// rather than a file- or flag-driven loader, since the core has no I/O.
type Config struct {
	WinningScore  int  // cumulative score needed to win the game
	MinBid        int  // lowest legal bid amount
	MaxBid        int  // highest legal bid amount
	HandSize      int  // target hand size after second deal / robbing
	InitialDeal   int  // cards dealt to each player before bidding
	AutoDealerRob bool // if true, the engine picks the dealer's best 6 automatically

	// Clock supplies the logical timestamp recorded on each emitted event.
	// It defaults to a deterministic counter (not wall-clock time) so that
	// replay determinism holds exactly rather than only
	// "modulo timestamps". Callers that want real wall-clock stamps for
	// external persistence may override it; spec.md §8.3/§8.4 treat the
	// timestamp field as excluded from replay/notation equivalence either
	// way.
	Clock func(handNumber, sequence int) int64
}

// DefaultConfig returns the standard Finnish Pidro configuration.
func DefaultConfig() Config {
	return Config{
		WinningScore:  62,
		MinBid:        6,
		MaxBid:        14,
		HandSize:      6,
		InitialDeal:   9,
		AutoDealerRob: true,
		Clock:         logicalClock,
	}
}

// logicalClock is a pure, deterministic stand-in for a wall-clock timestamp:
// the engine itself performs no I/O, so by default events carry
// a logical sequence-derived clock instead of time.Now().
func logicalClock(handNumber, sequence int) int64 {
	return int64(handNumber)*1_000_000 + int64(sequence)
}

func (c Config) normalize() Config {
	if c.WinningScore == 0 {
		c.WinningScore = 62
	}
	if c.MinBid == 0 {
		c.MinBid = 6
	}
	if c.MaxBid == 0 {
		c.MaxBid = 14
	}
	if c.HandSize == 0 {
		c.HandSize = 6
	}
	if c.InitialDeal == 0 {
		c.InitialDeal = 9
	}
	if c.Clock == nil {
		c.Clock = logicalClock
	}
	return c
}
