package report

import (
	"log"

	"github.com/katalvlaran/matops/matrix"
)

// logObserver writes one log line per Calculator event.
type logObserver struct {
	logger *log.Logger
}

func (o logObserver) Observe(ev matrix.Event) {
	switch {
	case ev.Err != nil:
		o.logger.Printf("%s %v failed after %s: %v", ev.Op, ev.Operands, ev.Elapsed, ev.Err)
	case ev.Result == (matrix.Shape{}):
		o.logger.Printf("%s %v = %g in %s", ev.Op, ev.Operands, ev.Value, ev.Elapsed)
	default:
		o.logger.Printf("%s %v -> %s in %s", ev.Op, ev.Operands, ev.Result, ev.Elapsed)
	}
}
