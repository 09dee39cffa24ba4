package party

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/parkerblume/minotaur/conclist"
	"github.com/parkerblume/minotaur/workpool"
)

// Stats aggregates the outcome of a completed run.
type Stats struct {
	Presents     int
	Inserted     int64
	Targeted     int64
	Minimum      int64
	Drained      int64
	CASRetries   int64
	CASSuccesses int64
	Elapsed      time.Duration
}

// Removed returns the total number of successful removals.
func (st Stats) Removed() int64 {
	return st.Targeted + st.Minimum + st.Drained
}

// Coordinator seeds the pool, starts the servants, and keeps prodding random
// servants to probe for specific tags until the pool runs dry.
type Coordinator struct {
	cfg      Config
	list     *conclist.List[int]
	pool     *workpool.Pool[int]
	servants []*Servant
	rng      *rand.Rand
}

// NewCoordinator builds the shared list, the seeded-and-shuffled pool, and
// one servant per configured worker. log is used for step logging when the
// config enables it; it may be nil.
func NewCoordinator(cfg Config, log *slog.Logger) *Coordinator {
	list := conclist.New[int](func(a, b int) bool { return a < b })
	rng := rand.New(rand.NewPCG(cfg.seed, 0xda3e39cb94b95bdb))
	pool := workpool.NewSeeded(cfg.presents, rng)

	var stepLog *slog.Logger
	if cfg.logSteps {
		stepLog = log
	}

	servants := make([]*Servant, cfg.servants)
	for i := range servants {
		servants[i] = NewServant(i, list, pool, cfg.presents, cfg.seed, stepLog)
	}

	return &Coordinator{
		cfg:      cfg,
		list:     list,
		pool:     pool,
		servants: servants,
		rng:      rng,
	}
}

// Run executes the workload to completion and returns aggregate statistics.
// It blocks until every servant has finished its drain.
func (c *Coordinator) Run() Stats {
	start := time.Now()

	var wg sync.WaitGroup
	for _, s := range c.servants {
		wg.Add(1)
		go func(s *Servant) {
			defer wg.Done()
			s.Run()
		}(s)
	}

	// Busy-spin signaling loop, no backoff. The pool shrinks monotonically
	// so the loop terminates, but a flag set just as the pool empties may go
	// unconsumed; the drain in each servant covers any present that slips
	// through.
	for !c.pool.IsEmpty() {
		c.servants[c.rng.IntN(len(c.servants))].Probe()
	}

	wg.Wait()

	stats := Stats{
		Presents: c.cfg.presents,
		Elapsed:  time.Since(start),
	}
	for _, s := range c.servants {
		stats.Inserted += s.inserted
		stats.Targeted += s.targeted
		stats.Minimum += s.minimum
		stats.Drained += s.drained
	}
	stats.CASRetries, stats.CASSuccesses = c.list.CASStats()
	return stats
}

// List exposes the shared structure for post-run inspection.
func (c *Coordinator) List() *conclist.List[int] {
	return c.list
}
