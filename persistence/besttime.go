// Package persistence stores the best sprint time across sessions.
package persistence

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/quasilyte/gdata"
)

const (
	// AppName is the gdata application directory.
	AppName = "solar-sprint"
	// BestTimeKey holds the best time as a JSON number of milliseconds.
	BestTimeKey = "solar-sprint-best"
)

// ItemStore is the subset of *gdata.Manager used here.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Open opens the platform data directory for the game.
func Open(appName string) (*gdata.Manager, error) {
	return gdata.Open(gdata.Config{AppName: appName})
}

// BestTimes reads the stored best time and writes new bests in the
// background. A nil store gives an in-memory session that never persists.
type BestTimes struct {
	store   ItemStore
	pending chan time.Duration
}

func NewBestTimes(store ItemStore) *BestTimes {
	return &BestTimes{
		store:   store,
		pending: make(chan time.Duration, 1),
	}
}

// Load returns the stored best. Missing or malformed values count as no best.
func (b *BestTimes) Load() (time.Duration, bool) {
	if b.store == nil {
		return 0, false
	}

	data, err := b.store.LoadItem(BestTimeKey)
	if err != nil {
		log.Printf("Warning: Could not load best time: %v", err)
		return 0, false
	}
	if len(data) == 0 {
		return 0, false
	}

	return decodeBest(data)
}

func decodeBest(data []byte) (time.Duration, bool) {
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		log.Printf("Warning: Ignoring unreadable best time %q: %v", data, err)
		return 0, false
	}
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms <= 0 || ms > float64(math.MaxInt64/int64(time.Millisecond)) {
		return 0, false
	}
	return time.Duration(ms * float64(time.Millisecond)), true
}

func encodeBest(d time.Duration) ([]byte, error) {
	return json.Marshal(float64(d) / float64(time.Millisecond))
}

// Record queues d for writing and returns immediately. Only the newest
// queued value is kept.
func (b *BestTimes) Record(d time.Duration) {
	if d <= 0 {
		return
	}
	for {
		select {
		case b.pending <- d:
			return
		default:
		}
		select {
		case <-b.pending:
		default:
		}
	}
}

// Run writes queued values until ctx is cancelled, then flushes whatever is
// still pending.
func (b *BestTimes) Run(ctx context.Context) {
	for {
		select {
		case d := <-b.pending:
			b.write(d)
		case <-ctx.Done():
			select {
			case d := <-b.pending:
				b.write(d)
			default:
			}
			return
		}
	}
}

func (b *BestTimes) write(d time.Duration) {
	if b.store == nil {
		return
	}
	data, err := encodeBest(d)
	if err != nil {
		log.Printf("Warning: Could not serialize best time: %v", err)
		return
	}
	if err := b.store.SaveItem(BestTimeKey, data); err != nil {
		log.Printf("Warning: Could not save best time: %v", err)
	}
}
