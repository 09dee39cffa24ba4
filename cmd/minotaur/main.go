// Command minotaur runs the thank-you-note workload: servants race to pull
// tagged presents from a shuffled pool, thread them through a concurrent
// sorted list, and write a note for every present removed, while the
// minotaur keeps asking random servants to look for specific tags.
//
// Usage:
//
//	minotaur [presents] [servants] [-p]
//
// presents and servants are optional positive integers (defaults 500000 and
// 4); -p anywhere enables per-removal step logging. Invalid values fall back
// to the defaults with a warning.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/parkerblume/minotaur/party"
)

func main() {
	cfg := parseArgs(os.Args[1:])

	fmt.Printf("The minotaur is starting to thank his guests: %d presents, %d servants.\n",
		cfg.Presents(), cfg.Servants())

	coord := party.NewCoordinator(cfg, party.NewTextLogger(slog.LevelInfo))
	stats := coord.Run()

	fmt.Println("The minotaur has thanked everyone.")
	printSummary(stats)
}

// parseArgs handles two optional positional values (present count, servant
// count) plus a -p flag anywhere. Malformed or non-positive numbers degrade
// to the defaults rather than aborting.
func parseArgs(args []string) party.Config {
	var positional []string
	logSteps := false
	for _, arg := range args {
		if arg == "-p" {
			logSteps = true
			continue
		}
		positional = append(positional, arg)
	}

	opts := []party.Option{party.WithStepLogging(logSteps)}
	if len(positional) >= 1 {
		if n, err := strconv.Atoi(positional[0]); err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "invalid present count %q, using default %d\n",
				positional[0], party.DefaultPresents)
		} else {
			opts = append(opts, party.WithPresents(n))
		}
	}
	if len(positional) >= 2 {
		if n, err := strconv.Atoi(positional[1]); err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "invalid servant count %q, using default %d\n",
				positional[1], party.DefaultServants)
		} else {
			opts = append(opts, party.WithServants(n))
		}
	}
	return party.NewConfig(opts...)
}

func printSummary(st party.Stats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.Append([]string{"presents", strconv.Itoa(st.Presents)})
	table.Append([]string{"inserted", strconv.FormatInt(st.Inserted, 10)})
	table.Append([]string{"targeted removals", strconv.FormatInt(st.Targeted, 10)})
	table.Append([]string{"min removals", strconv.FormatInt(st.Minimum, 10)})
	table.Append([]string{"drain removals", strconv.FormatInt(st.Drained, 10)})
	table.Append([]string{"total removed", strconv.FormatInt(st.Removed(), 10)})
	table.Append([]string{"cas retries", strconv.FormatInt(st.CASRetries, 10)})
	table.Append([]string{"cas successes", strconv.FormatInt(st.CASSuccesses, 10)})
	table.Append([]string{"elapsed", st.Elapsed.String()})
	table.Render()
}
