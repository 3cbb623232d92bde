package engine

import "chesscore/internal/position"

// qsearch resolves the tactical horizon by extending search through
// captures only (or, while in check, through every evasion), so that a
// nominal-depth leaf is never evaluated mid-exchange.
func (e *Engine) qsearch(pos *position.Board, alpha, beta Value, ply int) Value {
	if ply > MaxPly-1 {
		return Evaluate(pos)
	}
	e.nodes++

	standPat := Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	buf := make([]position.Move, 0, MaxMoves)
	inCheck := pos.InCheckNow()
	var candidates []position.Move
	if inCheck {
		candidates = pos.GenerateEvasions(buf)
	} else {
		candidates = pos.GenerateCapturesInto(buf)
	}

	scored := newScoredMoves(pos, candidates, 0, ply, &e.killers, &e.history)
	for i := 0; i < scored.len(); i++ {
		m := scored.selectNext(i)
		// The CAPTURES generator in this trusted collaborator already only
		// ever yields legal moves, same as LEGAL/EVASIONS, so Legal() here
		// is a redundant-but-harmless check — preserved because the
		// reference implementation gates EVASIONS on legality and the spec
		// it was distilled from documents this as intentional, not a bug to
		// silently "fix" by restricting it further.
		if inCheck && !pos.Legal(m) {
			continue
		}
		undo, ok := pos.DoMove(m)
		if !ok {
			continue
		}
		score := -e.qsearch(pos, -beta, -alpha, ply+1)
		pos.UndoMove(undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// alphabeta is the negamax search core: transposition-table probing,
// null-move pruning, ordered move enumeration, and recursive search of the
// remaining depth, bottoming out into qsearch at depth 0.
func (e *Engine) alphabeta(pos *position.Board, depth int, alpha, beta Value, ply int, allowNull bool) Value {
	if e.shouldStop() {
		return ValueZero
	}
	if ply > MaxPly-1 {
		return Evaluate(pos)
	}
	if depth <= 0 {
		return e.qsearch(pos, alpha, beta, ply)
	}
	e.nodes++

	if ply > 0 {
		if pos.IsDraw(ply) || pos.Rule50Count() >= 100 {
			return ValueDraw
		}
	}

	inCheck := pos.InCheckNow()
	originalAlpha := alpha

	ttMove, cutoff, ok := e.tt.probe(pos.Key(), depth, alpha, beta)
	if ok {
		return cutoff
	}

	if allowNull && !inCheck && depth >= 3 && ply > 0 {
		nu := pos.DoNullMove()
		score := -e.alphabeta(pos, depth-3, -beta, -beta+1, ply+1, false)
		pos.UndoNullMove(nu)
		if score >= beta {
			return beta
		}
	}

	buf := make([]position.Move, 0, MaxMoves)
	moves := pos.GenerateMovesInto(buf)
	if len(moves) == 0 {
		if inCheck {
			return matedIn(ply)
		}
		return ValueDraw
	}

	scored := newScoredMoves(pos, moves, ttMove, ply, &e.killers, &e.history)
	bestScore := -ValueInfinite
	var bestMove position.Move

	for i := 0; i < scored.len(); i++ {
		m := scored.selectNext(i)
		undo, ok := pos.DoMove(m)
		if !ok {
			continue
		}
		score := -e.alphabeta(pos, depth-1, -beta, -alpha, ply+1, true)
		pos.UndoMove(undo)

		if e.shouldStop() {
			return bestScore
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !pos.Capture(m) {
				e.killers.record(ply, m)
				e.history.add(pos.SideToMove(), m.From(), m.To(), depth)
			}
			break
		}
	}

	e.tt.store(pos.Key(), bestMove, bestScore, depth, originalAlpha, beta)
	return bestScore
}
