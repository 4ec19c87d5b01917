package systems

import (
	"context"
	"log"

	"github.com/automoto/solar-sprint/persistence"
)

var bestTimes = persistence.NewBestTimes(nil)

// InitPersistence opens the save directory and starts the background writer.
// The returned channel closes once pending writes are flushed after ctx ends.
// On failure best times stay in memory for the session.
func InitPersistence(ctx context.Context) (<-chan struct{}, error) {
	done := make(chan struct{})

	m, err := persistence.Open(persistence.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		close(done)
		return done, err
	}
	bestTimes = persistence.NewBestTimes(m)

	go func() {
		defer close(done)
		bestTimes.Run(ctx)
	}()
	return done, nil
}

// BestTimes returns the session's best time store.
func BestTimes() *persistence.BestTimes {
	return bestTimes
}
