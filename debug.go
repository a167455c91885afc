package charm

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing and registry metrics.
// Only populated when the engine is in debug mode.
type debugStats struct {
	taskTime time.Duration
	stepTime time.Duration
	active   int
	pending  int
}

// debugLog prints timing and registry stats to the debug output.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(e.debugOut,
		"[charm] frame: %d | tasks: %v | step: %v | total: %v\n",
		e.frame, stats.taskTime, stats.stepTime, stats.taskTime+stats.stepTime)
	_, _ = fmt.Fprintf(e.debugOut,
		"[charm] tweens: %d | pending: %d\n",
		stats.active, stats.pending)
	if stats.active > debugMaxActive {
		_, _ = fmt.Fprintf(e.debugOut, "[charm] warning: %d active tweens exceeds %d\n",
			stats.active, debugMaxActive)
	}
}

// debugMaxActive is the registry size above which debug mode warns.
const debugMaxActive = 10000
