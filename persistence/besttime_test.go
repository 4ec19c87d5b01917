package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type memStore struct {
	mu      sync.Mutex
	items   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) get(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key]
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name   string
		stored []byte
		want   time.Duration
		ok     bool
	}{
		{"missing", nil, 0, false},
		{"empty", []byte{}, 0, false},
		{"integer_ms", []byte("12345"), 12345 * time.Millisecond, true},
		{"fractional_ms", []byte("8123.5"), 8123500 * time.Microsecond, true},
		{"zero", []byte("0"), 0, false},
		{"negative", []byte("-40"), 0, false},
		{"garbage", []byte("fast"), 0, false},
		{"quoted", []byte(`"1200"`), 0, false},
		{"huge", []byte("1e300"), 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := newMemStore()
			if c.stored != nil {
				store.items[BestTimeKey] = c.stored
			}
			got, ok := NewBestTimes(store).Load()
			if got != c.want || ok != c.ok {
				t.Fatalf("Load() = %v, %v; want %v, %v", got, ok, c.want, c.ok)
			}
		})
	}
}

func TestLoadStoreError(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk gone")
	if _, ok := NewBestTimes(store).Load(); ok {
		t.Fatalf("Load with failing store reported a best")
	}
}

func TestNilStoreIsInMemory(t *testing.T) {
	b := NewBestTimes(nil)
	if _, ok := b.Load(); ok {
		t.Fatalf("nil store reported a best")
	}
	b.Record(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b.Run(ctx)
}

func TestRecordNeverBlocks(t *testing.T) {
	b := NewBestTimes(newMemStore())
	done := make(chan struct{})
	go func() {
		for i := 1; i <= 100; i++ {
			b.Record(time.Duration(i) * time.Second)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Record blocked without a writer")
	}

	// Only the newest value is pending.
	if got := <-b.pending; got != 100*time.Second {
		t.Fatalf("pending = %v, want newest", got)
	}
}

func TestRunFlushesOnCancel(t *testing.T) {
	store := newMemStore()
	b := NewBestTimes(store)
	b.Record(9876 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b.Run(ctx)

	if got := string(store.get(BestTimeKey)); got != "9876" {
		t.Fatalf("stored %q, want 9876", got)
	}
	if d, ok := b.Load(); !ok || d != 9876*time.Millisecond {
		t.Fatalf("round trip = %v, %v", d, ok)
	}
}

func TestRunWritesInBackground(t *testing.T) {
	store := newMemStore()
	b := NewBestTimes(store)

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(finished)
	}()

	b.Record(4200 * time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for store.get(BestTimeKey) == nil && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-finished

	if got := string(store.get(BestTimeKey)); got != "4200" {
		t.Fatalf("stored %q, want 4200", got)
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("read-only")
	b := NewBestTimes(store)
	b.Record(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b.Run(ctx)

	if store.saves != 1 {
		t.Fatalf("saves = %d, want a single attempt", store.saves)
	}
}

func TestRecordIgnoresNonPositive(t *testing.T) {
	b := NewBestTimes(newMemStore())
	b.Record(0)
	b.Record(-time.Second)
	select {
	case d := <-b.pending:
		t.Fatalf("queued %v", d)
	default:
	}
}
