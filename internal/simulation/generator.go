// Package simulation generates synthetic rosters and runs every ranking
// algorithm over them, cross-checking that the three selections agree.
package simulation

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/okian/decile/internal/domain/model"
	"github.com/okian/decile/pkg/logger"
)

// Level band boundaries for the synthetic population.
const (
	newcomerMin      = 1
	newcomerRange    = 9
	casualMin        = 10
	casualRange      = 30
	competitiveMin   = 40
	competitiveRange = 30
	veteranMin       = 70
	veteranRange     = 20
	eliteMin         = 90
	eliteRange       = 10
)

// Band selector cases.
const (
	caseCasualA = iota
	caseCasualB
	caseCasualC
	caseCompetitiveA
	caseCompetitiveB
	caseVeteran
	caseNewcomer
	caseElite
	bandCount
)

// randBelow returns a uniform value in [0, max) using crypto/rand.
func randBelow(max int64) int64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return n.Int64()
}

// GenerateRoster creates count players with unique IDs and a varied level
// distribution, splitting the work across the given number of goroutines.
func GenerateRoster(ctx context.Context, count, workers int) ([]model.Player, error) {
	if count == 0 {
		return []model.Player{}, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > count {
		workers = count
	}

	logger.Get().Info(ctx, "generating roster",
		logger.Int("players", count),
		logger.Int("workers", workers),
	)

	players := make([]model.Player, count)

	type genResult struct {
		index int
		err   error
	}
	resultChan := make(chan genResult, count)

	perWorker := count / workers
	for w := 0; w < workers; w++ {
		start := w * perWorker
		end := start + perWorker
		if w == workers-1 {
			end = count
		}

		go func(start, end int) {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					resultChan <- genResult{index: i, err: ctx.Err()}
					return
				default:
					players[i] = generatePlayer(i)
					resultChan <- genResult{index: i}
				}
			}
		}(start, end)
	}

	for i := 0; i < count; i++ {
		res := <-resultChan
		if res.err != nil {
			return nil, fmt.Errorf("generate player %d: %w", res.index, res.err)
		}
	}

	logger.Get().Info(ctx, "roster generated", logger.Int("players", count))
	return players, nil
}

// generatePlayer creates a single player with a banded random level.
func generatePlayer(index int) model.Player {
	return model.Player{
		ID:     uuid.New().String(),
		Handle: fmt.Sprintf("player-%d", index),
		Level:  generateBandedLevel(),
	}
}

// generateBandedLevel draws a level from a skewed distribution: mostly
// casual players, a thick competitive middle, and a thin elite tail.
func generateBandedLevel() uint64 {
	switch randBelow(bandCount) {
	case caseCasualA, caseCasualB, caseCasualC:
		return uint64(casualMin + randBelow(casualRange))
	case caseCompetitiveA, caseCompetitiveB:
		return uint64(competitiveMin + randBelow(competitiveRange))
	case caseVeteran:
		return uint64(veteranMin + randBelow(veteranRange))
	case caseNewcomer:
		return uint64(newcomerMin + randBelow(newcomerRange))
	case caseElite:
		return uint64(eliteMin + randBelow(eliteRange))
	default:
		return uint64(casualMin + randBelow(casualRange))
	}
}
