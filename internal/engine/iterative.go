package engine

import (
	"time"

	"chesscore/internal/position"
)

// Search runs iterative deepening from depth 1 up to min(maxDepth, 20),
// respecting a wall-clock budget of timeMs, and returns the best move found
// at the last depth that completed before the clock (or the stop flag)
// tripped. Search is not safe to call concurrently on the same Engine.
func (e *Engine) Search(pos *position.Board, maxDepth, timeMs int) SearchResult {
	e.nodes = 0
	e.searchStart = time.Now()
	e.searchTimeMs = timeMs
	e.stopSearch = false
	e.killers.clear()
	e.history.clear()

	buf := make([]position.Move, 0, MaxMoves)
	rootMoves := pos.GenerateMovesInto(buf)
	if len(rootMoves) == 0 {
		return SearchResult{}
	}
	if len(rootMoves) == 1 {
		return SearchResult{BestMove: rootMoves[0]}
	}

	limit := maxDepth
	if limit > 20 {
		limit = 20
	}

	var result SearchResult
	var prevBest position.Move

	for depth := 1; depth <= limit; depth++ {
		if e.shouldStop() {
			break
		}

		alpha := -ValueInfinite
		bestScore := -ValueInfinite
		var bestMove position.Move

		scored := newScoredMoves(pos, rootMoves, prevBest, 0, &e.killers, &e.history)
		stopped := false
		for i := 0; i < scored.len(); i++ {
			m := scored.selectNext(i)
			undo, ok := pos.DoMove(m)
			if !ok {
				continue
			}
			score := -e.alphabeta(pos, depth-1, -ValueInfinite, -alpha, 1, true)
			pos.UndoMove(undo)

			if e.shouldStop() {
				stopped = true
				break
			}

			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			if score > alpha {
				alpha = score
			}
		}

		if stopped {
			break
		}

		result = SearchResult{BestMove: bestMove, Score: bestScore, Depth: depth, Nodes: e.nodes}
		prevBest = bestMove
		e.log("info depth %d score %d nodes %d pv %s\n", depth, bestScore, e.nodes, bestMove.String())

		if IsMateScore(bestScore) {
			break
		}
	}

	result.Nodes = e.nodes
	return result
}
