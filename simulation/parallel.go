package simulation

import (
	"math/rand"
	"runtime"
	"sync"
)

// GameJob is one queued simulation: a channel of jobs, a fixed worker count,
// a channel of results fanned back in and aggregated once every worker
// finishes.
type GameJob struct {
	SimID int
	Seed  int64
}

// RunBatchParallel runs numGames games across runtime.NumCPU() workers.
func RunBatchParallel(numGames int, aiType AIPlayerType, rolloutIterations int, seed uint64) AggregatedStats {
	return RunBatchParallelN(numGames, aiType, rolloutIterations, seed, runtime.NumCPU())
}

// RunBatchParallelN runs numGames games across numWorkers workers.
func RunBatchParallelN(numGames int, aiType AIPlayerType, rolloutIterations int, seed uint64, numWorkers int) AggregatedStats {
	return runParallel(numGames, seed, numWorkers, func(job GameJob) GameResult {
		return RunSingleGame(aiType, aiType, rolloutIterations, job.Seed)
	})
}

// RunBatchAsymmetricParallel runs numGames asymmetric games (different AI per
// team) across runtime.NumCPU() workers.
func RunBatchAsymmetricParallel(numGames int, northSouthAI, eastWestAI AIPlayerType, rolloutIterations int, seed uint64) AggregatedStats {
	return RunBatchAsymmetricParallelN(numGames, northSouthAI, eastWestAI, rolloutIterations, seed, runtime.NumCPU())
}

// RunBatchAsymmetricParallelN runs numGames asymmetric games across
// numWorkers workers.
func RunBatchAsymmetricParallelN(numGames int, northSouthAI, eastWestAI AIPlayerType, rolloutIterations int, seed uint64, numWorkers int) AggregatedStats {
	return runParallel(numGames, seed, numWorkers, func(job GameJob) GameResult {
		return RunSingleGame(northSouthAI, eastWestAI, rolloutIterations, job.Seed)
	})
}

// runParallel queues one GameJob per game with a deterministic per-game seed
// (derived from the batch seed, matching the serial runner's seed sequence),
// fans the work out across numWorkers goroutines, and aggregates once every
// worker has drained its share.
func runParallel(numGames int, seed uint64, numWorkers int, play func(GameJob) GameResult) AggregatedStats {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	jobs := make(chan GameJob, numGames)
	results := make(chan GameResult, numGames)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- play(job)
			}
		}()
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	for i := 0; i < numGames; i++ {
		jobs <- GameJob{SimID: i, Seed: rng.Int63()}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	allResults := make([]GameResult, 0, numGames)
	for r := range results {
		allResults = append(allResults, r)
	}
	return aggregateResults(allResults)
}
