// Package engine implements the search and evaluation core: a negamax
// alpha-beta search with quiescence extension, a transposition cache, and
// killer/history move ordering, driven by iterative deepening under a
// wall-clock budget.
package engine

import (
	"fmt"
	"io"
	"time"

	"chesscore/internal/position"
)

// SearchResult is the outcome of one Search call.
type SearchResult struct {
	BestMove position.Move
	Score    Value
	Depth    int
	Nodes    uint64
}

// Engine owns the state a search session mutates: the transposition table,
// killer/history tables, and node/clock bookkeeping. The design note in the
// distilled specification calls for encapsulating what would otherwise be
// global variables into a session object; this is that object. An Engine is
// not safe for concurrent Search calls — the core is single-threaded and
// synchronous by design, matching the reference implementation.
type Engine struct {
	tt      *transpositionTable
	killers killerTable
	history historyTable

	nodes        uint64
	searchStart  time.Time
	searchTimeMs int
	stopSearch   bool

	// Log receives progress lines during iterative deepening ("info depth
	// ... nodes ... pv ..."), in the same spirit as the teacher's
	// fmt.Println-based search trace. Defaults to io.Discard.
	Log io.Writer
}

// NewEngine returns a ready-to-use Engine with a freshly allocated
// transposition table.
func NewEngine() *Engine {
	return &Engine{
		tt:  newTranspositionTable(),
		Log: io.Discard,
	}
}

// ResetTT clears the transposition table. Search never calls this itself —
// the table is intentionally persistent across calls, per the design's
// documented trade-off for single-game usage. A long-running self-play
// harness should call it between games, which is what cmd/chesscore does.
func (e *Engine) ResetTT() {
	e.tt.Reset()
}

func (e *Engine) log(format string, args ...any) {
	if e.Log == nil {
		return
	}
	fmt.Fprintf(e.Log, format, args...)
}
