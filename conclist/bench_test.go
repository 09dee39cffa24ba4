package conclist

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"
)

func BenchmarkListWorkloads(b *testing.B) {
	workloads := []struct {
		name          string
		removePercent int
	}{
		{name: "InsertHeavy", removePercent: 10},
		{name: "Mixed", removePercent: 50},
		{name: "DrainHeavy", removePercent: 90},
	}

	threadCounts := []int{1, 2, 4, 8}
	const keyRange = 1 << 12

	less := func(a, b int) bool { return a < b }

	for _, workload := range workloads {
		workload := workload
		b.Run(workload.name, func(b *testing.B) {
			for _, threads := range threadCounts {
				threads := threads
				b.Run(fmt.Sprintf("P%d", threads), func(b *testing.B) {
					l := New[int](less)
					for i := 0; i < keyRange/2; i++ {
						l.Add(NewEntry(i))
					}

					retriesBefore, successesBefore := l.CASStats()
					opsPerThread := b.N / threads
					if opsPerThread == 0 {
						opsPerThread = 1
					}

					b.ResetTimer()

					var wg sync.WaitGroup
					wg.Add(threads)
					for tIdx := 0; tIdx < threads; tIdx++ {
						go func(worker int) {
							defer wg.Done()
							r := rand.New(rand.NewSource(int64(worker+1) * 1_000_003))
							for i := 0; i < opsPerThread; i++ {
								key := r.Intn(keyRange)
								if r.Intn(100) < workload.removePercent {
									if _, ok := l.Remove(key); !ok {
										_, _ = l.RemoveMin()
									}
								} else {
									l.Add(NewEntry(key))
								}
							}
						}(tIdx)
					}
					wg.Wait()

					b.StopTimer()
					retries, successes := l.CASStats()
					b.ReportMetric(float64(retries-retriesBefore), "cas-retries")
					b.ReportMetric(float64(successes-successesBefore), "cas-successes")
				})
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	l := New[int](func(a, b int) bool { return a < b })
	const keyRange = 1 << 12
	for i := 0; i < keyRange; i += 2 {
		l.Add(NewEntry(i))
	}

	b.RunParallel(func(pb *testing.PB) {
		key := 0
		for pb.Next() {
			l.Contains(key % keyRange)
			key++
		}
	})
}
