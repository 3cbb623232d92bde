package engine

import "chesscore/internal/position"

// Move-ordering priority bands. Larger wins; a transposition-table move is
// always tried first, then captures by MVV-LVA, then killers, then history.
const (
	orderTTMove    int32 = 1_000_000
	orderCaptureBase int32 = 900_000
	orderKiller0   int32 = 800_000
	orderKiller1   int32 = 799_000
)

// victimRank/attackerRank assign the MVV-LVA digits: the victim's value
// dominates (tens digit, pawn=10 .. queen=50) and the attacker contributes a
// units digit that favors the *weakest* attacker for a given victim (pawn
// attacker = +5, king attacker = +0), so PxQ outranks NxQ outranks ... KxQ,
// while any capture of a queen outranks any capture of a rook.
var victimRank = [7]int32{
	position.PieceTypeNone:   0,
	position.PieceTypePawn:   1,
	position.PieceTypeKnight: 2,
	position.PieceTypeBishop: 3,
	position.PieceTypeRook:   4,
	position.PieceTypeQueen:  5,
	position.PieceTypeKing:   0,
}

var attackerRank = [7]int32{
	position.PieceTypeNone:   0,
	position.PieceTypePawn:   0,
	position.PieceTypeKnight: 1,
	position.PieceTypeBishop: 2,
	position.PieceTypeRook:   3,
	position.PieceTypeQueen:  4,
	position.PieceTypeKing:   5,
}

// mvvLva reproduces the exact {10..15, 20..25, ..., 50..55} grid: higher
// victim always dominates, and within one victim a lower-valued attacker
// scores higher.
func mvvLva(attacker, victim position.PieceType) int32 {
	return victimRank[victim]*10 + (5 - attackerRank[attacker])
}

// killerTable holds, per ply, the two most recent non-capture moves that
// caused a beta cutoff.
type killerTable [MaxPly][2]position.Move

func (k *killerTable) clear() {
	for i := range k {
		k[i][0] = 0
		k[i][1] = 0
	}
}

// record inserts m into slot 0 at ply, demoting the previous slot 0 to slot
// 1, but only if m is not already the top killer there.
func (k *killerTable) record(ply int, m position.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k[ply][0] == m {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

// historyTable is indexed by (color, from-square, to-square) and
// incremented by depth^2 whenever a non-capture move causes a beta cutoff.
type historyTable [2][64][64]int32

func (h *historyTable) clear() {
	for c := range h {
		for f := range h[c] {
			for t := range h[c][f] {
				h[c][f][t] = 0
			}
		}
	}
}

func (h *historyTable) add(c position.Color, from, to position.Square, depth int) {
	h[c][from][to] += int32(depth * depth)
}

// scoreMove returns the ordering key for candidate move m per the
// precedence ladder: TT move, then capture MVV-LVA, then killers, then
// history.
func scoreMove(pos *position.Board, m position.Move, ttMove position.Move, ply int, killers *killerTable, history *historyTable) int32 {
	if ttMove != 0 && m == ttMove {
		return orderTTMove
	}
	if pos.Capture(m) {
		attacker := m.MovedPiece().Type()
		victim := m.CapturedPiece().Type()
		if m.Flags() == position.FlagEnPassant {
			victim = position.PieceTypePawn
		}
		return orderCaptureBase + 1000*mvvLva(attacker, victim)
	}
	if ply >= 0 && ply < MaxPly {
		if killers[ply][0] == m {
			return orderKiller0
		}
		if killers[ply][1] == m {
			return orderKiller1
		}
	}
	return history[pos.SideToMove()][m.From()][m.To()]
}

// scoredMoves pairs a candidate list with its ordering keys, scored once up
// front and then consumed by selectNext's lazy selection sort.
type scoredMoves struct {
	moves  []position.Move
	scores []int32
}

func newScoredMoves(pos *position.Board, moves []position.Move, ttMove position.Move, ply int, killers *killerTable, history *historyTable) scoredMoves {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(pos, m, ttMove, ply, killers, history)
	}
	return scoredMoves{moves: moves, scores: scores}
}

// selectNext performs one step of selection sort starting at index i: the
// highest-scoring move among i..end is swapped into position i and
// returned. Sorting the whole list up front is wasted work whenever a beta
// cutoff fires early, which is the common case.
func (s scoredMoves) selectNext(i int) position.Move {
	best := i
	for j := i + 1; j < len(s.moves); j++ {
		if s.scores[j] > s.scores[best] {
			best = j
		}
	}
	if best != i {
		s.moves[i], s.moves[best] = s.moves[best], s.moves[i]
		s.scores[i], s.scores[best] = s.scores[best], s.scores[i]
	}
	return s.moves[i]
}

func (s scoredMoves) len() int { return len(s.moves) }
