package party

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkerblume/minotaur/conclist"
	"github.com/parkerblume/minotaur/workpool"
)

func intLess(a, b int) bool { return a < b }

type removalRecord struct {
	servant  int
	tag      int
	targeted bool
}

// recordRemovals installs the removal hook for the duration of the test and
// returns a mutex-guarded record slice.
func recordRemovals(t *testing.T) (*sync.Mutex, *[]removalRecord) {
	t.Helper()
	var mu sync.Mutex
	var records []removalRecord
	removedHook = func(servant, tag int, targeted bool) {
		mu.Lock()
		defer mu.Unlock()
		records = append(records, removalRecord{servant: servant, tag: tag, targeted: targeted})
	}
	t.Cleanup(func() { removedHook = nil })
	return &mu, &records
}

func TestSoloServantRemovesInAscendingOrder(t *testing.T) {
	_, records := recordRemovals(t)

	list := conclist.New[int](intLess)
	entries := make([]*conclist.Entry[int], 5)
	for i := range entries {
		entries[i] = conclist.NewEntry(i)
	}
	pool := workpool.New(entries)

	s := NewServant(0, list, pool, 5, 1, nil)
	s.Run()

	require.True(t, list.IsEmpty(), "structure must be empty after the run")
	assert.Equal(t, int64(5), s.inserted)
	assert.Equal(t, int64(5), s.minimum, "every removal should be a removeMin")
	assert.Zero(t, s.targeted)
	assert.Zero(t, s.drained)

	require.Len(t, *records, 5)
	for i, rec := range *records {
		assert.Equal(t, i, rec.tag, "removals should come out in ascending key order")
		assert.False(t, rec.targeted)
	}
}

func TestCoordinatorRunDrainsEveryPresentOnce(t *testing.T) {
	mu, records := recordRemovals(t)

	cfg := NewConfig(
		WithPresents(100),
		WithServants(4),
		WithSeed(20260829),
	)
	coord := NewCoordinator(cfg, nil)
	stats := coord.Run()

	require.True(t, coord.List().IsEmpty(), "structure must be empty after the run")
	assert.Equal(t, int64(100), stats.Inserted)
	assert.Equal(t, int64(100), stats.Removed(),
		"targeted + min + drain removals must cover the pool exactly")

	mu.Lock()
	defer mu.Unlock()
	counts := make(map[int]int, 100)
	for _, rec := range *records {
		counts[rec.tag]++
	}
	require.Len(t, counts, 100, "every tag must be removed")
	for tag, n := range counts {
		assert.Equal(t, 1, n, "tag %d removed %d times", tag, n)
	}
}

func TestServantSweepsResidueAfterPoolExhaustion(t *testing.T) {
	list := conclist.New[int](intLess)
	for _, k := range []int{2, 9, 4} {
		list.Add(conclist.NewEntry(k))
	}

	// Empty pool: the servant goes straight to the defensive drain.
	s := NewServant(0, list, workpool.New[int](nil), 10, 1, nil)
	s.Run()

	assert.True(t, list.IsEmpty())
	assert.Zero(t, s.inserted)
	assert.Equal(t, int64(3), s.drained, "leftover entries are swept by the final drain")
}

func TestServantUnderProbePressureLeavesNothingBehind(t *testing.T) {
	list := conclist.New[int](intLess)
	pool := workpool.New(func() []*conclist.Entry[int] {
		entries := make([]*conclist.Entry[int], 64)
		for i := range entries {
			entries[i] = conclist.NewEntry(i)
		}
		return entries
	}())

	s := NewServant(0, list, pool, 64, 99, nil)

	// Spam probes while the servant runs so some land exactly as the pool
	// empties; the final drain must still leave the structure empty.
	stop := make(chan struct{})
	var prober sync.WaitGroup
	prober.Add(1)
	go func() {
		defer prober.Done()
		for {
			select {
			case <-stop:
				return
			default:
				s.Probe()
			}
		}
	}()

	s.Run()
	close(stop)
	prober.Wait()

	assert.True(t, list.IsEmpty())
	assert.Equal(t, int64(64), s.inserted)
	assert.Equal(t, int64(64), s.targeted+s.minimum+s.drained)
}

func TestProbeTargetsRequestedTag(t *testing.T) {
	_, records := recordRemovals(t)

	list := conclist.New[int](intLess)
	pool := workpool.New([]*conclist.Entry[int]{conclist.NewEntry(0)})

	// keySpace of 1 forces the probe draw to hit the single inserted tag, so
	// the removal must be targeted.
	s := NewServant(0, list, pool, 1, 1, nil)
	s.Probe()
	s.Run()

	require.True(t, list.IsEmpty())
	assert.Equal(t, int64(1), s.targeted)
	require.Len(t, *records, 1)
	assert.True(t, (*records)[0].targeted)
}

func TestConfigDefaultsAndNormalization(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, DefaultPresents, cfg.Presents())
	assert.Equal(t, DefaultServants, cfg.Servants())

	cfg = NewConfig(WithPresents(-5), WithServants(0))
	assert.Equal(t, DefaultPresents, cfg.Presents(), "non-positive pool size falls back to default")
	assert.Equal(t, DefaultServants, cfg.Servants(), "non-positive worker count falls back to default")

	cfg = NewConfig(WithPresents(10), WithServants(2))
	assert.Equal(t, 10, cfg.Presents())
	assert.Equal(t, 2, cfg.Servants())
}
