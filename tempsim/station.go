package tempsim

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Station wires the sensors and the reporter together for one monitoring
// run.
type Station struct {
	cfg Config
	log *slog.Logger
}

// NewStation returns a station for the given configuration. log may be nil.
func NewStation(cfg Config, log *slog.Logger) *Station {
	return &Station{cfg: cfg, log: log}
}

// Run monitors for the configured window, rendering each report to out, and
// blocks until every sensor and the reporter have stopped. The run ends as
// soon as the reporter meets its quota; the deadline is a backstop one
// report interval past the nominal monitoring window.
func (st *Station) Run(ctx context.Context, out io.Writer) error {
	shared := &Log{}

	ctx, cancel := context.WithTimeout(ctx, st.cfg.MonitorWindow()+st.cfg.ReportInterval())
	defer cancel()

	if st.log != nil {
		st.log.Info("starting monitoring",
			"sensors", st.cfg.Sensors(),
			"reports", st.cfg.Reports(),
			"window", st.cfg.MonitorWindow(),
		)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < st.cfg.Sensors(); i++ {
		s := NewSensor(i, shared, st.cfg.SensorInterval(), st.cfg.seed)
		g.Go(func() error {
			return s.Run(ctx)
		})
	}

	reporter := NewReporter(shared, st.cfg.ReportInterval(), st.cfg.DiffWindow(), st.cfg.Reports(), out)
	g.Go(func() error {
		defer cancel() // quota met: stop the sensors
		return reporter.Run(ctx)
	})

	return g.Wait()
}
