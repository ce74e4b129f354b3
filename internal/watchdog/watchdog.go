// Package watchdog is a blunt liveness guard: if the run outlives its
// wall-clock budget the whole process is terminated, no cleanup, no partial
// results. It shares no state with the computation it supervises.
package watchdog

import (
	"log/slog"
	"time"
)

// Guard is an armed watchdog timer.
type Guard struct {
	timer *time.Timer
}

// Start arms a timer that, once budget elapses, logs a diagnostic and calls
// exit(1). Pass os.Exit in production; tests inject a recording func and a
// short budget.
func Start(budget time.Duration, log *slog.Logger, exit func(code int)) *Guard {
	t := time.AfterFunc(budget, func() {
		log.Error("run exceeded time budget, terminating", "budget", budget)
		exit(1)
	})
	return &Guard{timer: t}
}

// Stop disarms the watchdog on the normal completion path.
func (g *Guard) Stop() {
	g.timer.Stop()
}
