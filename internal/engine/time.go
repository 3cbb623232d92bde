package engine

import "time"

// shouldStop reports whether the search must terminate. The system clock is
// sampled only when the node count is a multiple of 2048 — this function
// checks nodes%2048 itself — to bound clock-syscall overhead while still
// guaranteeing termination within one batch of nodes.
func (e *Engine) shouldStop() bool {
	if e.stopSearch {
		return true
	}
	if e.nodes%2048 != 0 {
		return false
	}
	if time.Since(e.searchStart) >= time.Duration(e.searchTimeMs)*time.Millisecond {
		e.stopSearch = true
	}
	return e.stopSearch
}
