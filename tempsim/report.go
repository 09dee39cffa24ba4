package tempsim

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Report summarizes one reporting window.
type Report struct {
	Sequence int
	Count    int
	Highest  []Reading // descending by temperature, at most five
	Lowest   []Reading // ascending by temperature, at most five

	// The largest pairwise |ΔT| whose two samples were taken within the
	// difference window of each other.
	DiffStart Reading
	DiffEnd   Reading
	Diff      int
}

// buildReport sorts readings ascending by temperature and derives the
// extremes plus the largest qualifying temperature swing. The slice is
// reordered in place.
func buildReport(seq int, readings []Reading, window time.Duration) Report {
	slices.SortFunc(readings, func(a, b Reading) int {
		return cmp.Compare(a.Temperature, b.Temperature)
	})

	r := Report{Sequence: seq, Count: len(readings)}

	size := len(readings)
	for i := size - 1; i >= size-5 && i >= 0; i-- {
		r.Highest = append(r.Highest, readings[i])
	}
	for i := 0; i < 5 && i < size; i++ {
		r.Lowest = append(r.Lowest, readings[i])
	}

	if size == 0 {
		return r
	}

	// Brute-force pairwise scan over the temperature-sorted slice, keeping
	// the largest difference whose timestamps fall within the window.
	si, ei := 0, 0
	largest := -1
	for i := 0; i < size-1; i++ {
		for j := i + 1; j < size; j++ {
			diff := readings[j].Temperature - readings[i].Temperature
			if diff < 0 {
				diff = -diff
			}
			if diff > largest && readings[j].Timestamp.Sub(readings[i].Timestamp) <= window {
				largest = diff
				si, ei = i, j
			}
		}
	}
	if largest >= 0 {
		r.Diff = largest
	}
	r.DiffStart = readings[si]
	r.DiffEnd = readings[ei]
	return r
}

// Render writes the report as console tables.
func (r Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Temperature Report %d (%d samples)\n", r.Sequence, r.Count)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Temperature (F)", "Timestamp"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	for i, rd := range r.Highest {
		table.Append([]string{
			fmt.Sprintf("high %d", i+1),
			fmt.Sprintf("%d", rd.Temperature),
			rd.Timestamp.Format(time.RFC3339Nano),
		})
	}
	for i, rd := range r.Lowest {
		table.Append([]string{
			fmt.Sprintf("low %d", i+1),
			fmt.Sprintf("%d", rd.Temperature),
			rd.Timestamp.Format(time.RFC3339Nano),
		})
	}
	table.Render()

	fmt.Fprintf(w, "Largest swing: %dF (%dF at %s -> %dF at %s)\n\n",
		r.Diff,
		r.DiffStart.Temperature, r.DiffStart.Timestamp.Format(time.RFC3339Nano),
		r.DiffEnd.Temperature, r.DiffEnd.Timestamp.Format(time.RFC3339Nano),
	)
}

// Reporter periodically snapshots the shared log and renders reports until
// its quota is met or the context ends. A window that produced no samples is
// skipped without consuming the quota.
type Reporter struct {
	log      *Log
	interval time.Duration
	window   time.Duration
	quota    int
	out      io.Writer
}

// NewReporter returns a reporter writing rendered reports to out.
func NewReporter(log *Log, interval, window time.Duration, quota int, out io.Writer) *Reporter {
	return &Reporter{
		log:      log,
		interval: interval,
		window:   window,
		quota:    quota,
		out:      out,
	}
}

// Run blocks until the report quota is met or ctx is done.
func (r *Reporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	seq := 1
	for seq <= r.quota {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			readings := r.log.Snapshot()
			if len(readings) == 0 {
				continue
			}
			buildReport(seq, readings, r.window).Render(r.out)
			seq++
		}
	}
	return nil
}
