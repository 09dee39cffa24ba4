// Command tempreport runs the rover's atmospheric temperature simulation:
// eight sensor goroutines sample into a shared log while a reporter
// summarizes each window with the extremes and the largest short-window
// temperature swing.
//
// Usage:
//
//	tempreport [scale] [reports]
//
// scale multiplies every interval (default 1); reports is the number of
// reporting windows to monitor (default 1). Invalid values fall back to the
// defaults with a warning.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/parkerblume/minotaur/tempsim"
)

func main() {
	cfg := parseArgs(os.Args[1:])

	fmt.Printf("Monitoring for about %s; each report covers %s.\n",
		cfg.MonitorWindow(), cfg.ReportInterval())
	fmt.Println("Starting our cute rover, reports will be generated soon...")

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	station := tempsim.NewStation(cfg, log)
	if err := station.Run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "monitoring failed:", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) tempsim.Config {
	var opts []tempsim.Option
	if len(args) >= 1 {
		if scale, err := strconv.ParseFloat(args[0], 64); err != nil || scale <= 0 {
			fmt.Fprintf(os.Stderr, "invalid scale %q, using default %v\n",
				args[0], tempsim.DefaultScale)
		} else {
			opts = append(opts, tempsim.WithScale(scale))
		}
	}
	if len(args) >= 2 {
		if n, err := strconv.Atoi(args[1]); err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "invalid report count %q, using default %d\n",
				args[1], tempsim.DefaultReports)
		} else {
			opts = append(opts, tempsim.WithReports(n))
		}
	}
	return tempsim.NewConfig(opts...)
}
