// Package party runs the thank-you-note workload: a pool of tagged presents
// drained by servant goroutines that race to insert into and remove from a
// shared sorted list, while a coordinator prods random servants to look for
// specific tags.
package party

import (
	"log/slog"
	"math/rand/v2"

	"github.com/parkerblume/minotaur/conclist"
	"github.com/parkerblume/minotaur/workpool"
)

// Servant drains the shared pool, funnels every pulled present through the
// sorted list, and answers one-shot probe requests from the coordinator.
// Each servant owns its RNG so probe draws never contend.
type Servant struct {
	id       int
	list     *conclist.List[int]
	pool     *workpool.Pool[int]
	keySpace int
	rng      *rand.Rand
	log      *slog.Logger

	probe Flag

	// Counters are written only by the servant's own goroutine and read by
	// the coordinator after join.
	inserted int64
	targeted int64
	minimum  int64
	drained  int64
}

// NewServant returns a servant working against list and pool. Probe keys are
// drawn from [0, keySpace). log may be nil to disable step logging.
func NewServant(id int, list *conclist.List[int], pool *workpool.Pool[int], keySpace int, seed uint64, log *slog.Logger) *Servant {
	return &Servant{
		id:       id,
		list:     list,
		pool:     pool,
		keySpace: keySpace,
		rng:      rand.New(rand.NewPCG(seed, uint64(id)+1)),
		log:      log,
	}
}

// Probe requests that the servant's next removal target a random tag instead
// of the minimum. Consumed at most once per call.
func (s *Servant) Probe() {
	s.probe.Set()
}

// Run executes the servant loop until the pool is drained, then sweeps any
// presents still reachable in the list. Nothing in here is fatal: "not
// found" and "empty" are expected control outcomes.
func (s *Servant) Run() {
	for {
		e, ok := s.pool.PopFront()
		if !ok {
			break
		}

		s.list.Add(e)
		s.inserted++

		if s.probe.TestAndClear() {
			tag := s.rng.IntN(s.keySpace)
			if s.list.Contains(tag) {
				if removed, ok := s.list.Remove(tag); ok {
					s.targeted++
					s.noteRemoval(removed.Key(), true)
					continue
				}
				// Another remover won the race, or the Contains hint was
				// already stale. Take the minimum instead.
			}
			s.removeMin(&s.minimum)
			continue
		}

		s.removeMin(&s.minimum)
	}

	// The pool is empty. Every pulled present should already be matched by a
	// removal, but a probe racing with pool exhaustion can leave one behind;
	// sweep whatever is still reachable.
	for !s.list.IsEmpty() {
		s.removeMin(&s.drained)
	}
}

func (s *Servant) removeMin(counter *int64) {
	removed, ok := s.list.RemoveMin()
	if !ok {
		return
	}
	*counter++
	s.noteRemoval(removed.Key(), false)
}

func (s *Servant) noteRemoval(tag int, targeted bool) {
	if removedHook != nil {
		removedHook(s.id, tag, targeted)
	}
	if s.log == nil {
		return
	}
	if targeted {
		s.log.Info("wrote thank-you note for requested present", "servant", s.id, "tag", tag)
	} else {
		s.log.Info("wrote thank-you note", "servant", s.id, "tag", tag)
	}
}
