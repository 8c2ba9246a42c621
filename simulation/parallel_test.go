package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunBatchParallelNAggregatesAllGames(t *testing.T) {
	stats := RunBatchParallelN(10, RandomAI, 0, 42, 4)
	assert.Equal(t, uint32(10), stats.TotalGames)
	assert.Equal(t, stats.TotalGames, stats.NorthSouthWins+stats.EastWestWins+stats.Undecided+stats.Errors)
}

func TestRunBatchAsymmetricParallelNAggregatesAllGames(t *testing.T) {
	stats := RunBatchAsymmetricParallelN(8, GreedyAI, RandomAI, 0, 9, 3)
	assert.Equal(t, uint32(8), stats.TotalGames)
}

func TestRunBatchParallelNDefaultsWorkersWhenZero(t *testing.T) {
	stats := RunBatchParallelN(3, RandomAI, 0, 1, 0)
	assert.Equal(t, uint32(3), stats.TotalGames)
}

func TestRunParallelMatchesSerialResultsForSameSeed(t *testing.T) {
	serial := RunBatch(5, RandomAI, 0, 123)
	parallel := RunBatchParallelN(5, RandomAI, 0, 123, 2)
	assert.Equal(t, serial.TotalGames, parallel.TotalGames)
	assert.Equal(t, serial.NorthSouthWins, parallel.NorthSouthWins)
	assert.Equal(t, serial.EastWestWins, parallel.EastWestWins)
	assert.Equal(t, serial.Undecided, parallel.Undecided)
}
