package position

import "math/bits"

// MoveState holds the minimal state needed to undo a move.
type MoveState struct {
	move          Move
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	rookFrom      Square // for castling undo
	rookTo        Square // for castling undo
}

// NullState stores the minimal information needed to undo a null move.
type NullState struct {
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	prevSide      Color
}

// castleRookMove describes the rook displacement that accompanies a king
// move to each of the four castling destination squares, keyed by the
// king's "to" square so MakeMove/UnmakeMove can look it up instead of
// branching on which corner is being castled into.
type castleRookMove struct {
	rookFrom, rookTo Square
	rook             Piece
}

var castleRookMoves = map[Square]castleRookMove{
	6:  {rookFrom: 7, rookTo: 5, rook: WhiteRook},  // O-O, white
	2:  {rookFrom: 0, rookTo: 3, rook: WhiteRook},  // O-O-O, white
	62: {rookFrom: 63, rookTo: 61, rook: BlackRook}, // O-O, black
	58: {rookFrom: 56, rookTo: 59, rook: BlackRook}, // O-O-O, black
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MakeMove applies m to the board. It returns ok=false if the move leaves
// the mover's own king in check, in which case the board is restored to
// its pre-call state before returning.
func (b *Board) MakeMove(m Move) (ok bool, st MoveState) {
	st.move = m
	st.prevCastling = b.castlingRights
	st.prevEnPassant = b.enPassantSquare
	st.prevHalfmove = b.halfmoveClock
	st.prevFullmove = b.fullmoveNumber
	st.prevZobrist = b.zobristKey
	st.rookFrom, st.rookTo = NoSquare, NoSquare

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()
	moverColor := b.sideToMove

	b.clearEnPassantZobrist()

	st.captured = b.applyCapture(to, flag, moverColor, captured)
	b.relocatePiece(from, to, moved, promo)
	if flag == FlagCastle {
		st.rookFrom, st.rookTo = b.applyCastleRook(to)
	}

	b.updateCastlingRights(moved, from, st.captured, to)
	b.setEnPassantIfDoublePush(moved, from, to, moverColor)

	b.sideToMove = 1 - b.sideToMove
	b.zobristKey ^= zobristSide

	if !b.moverKingIsSafe(moverColor, moved, flag, from) {
		b.UnmakeMove(m, st)
		return false, st
	}

	if typeOf(moved) == 1 || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if moverColor == Black {
		b.fullmoveNumber++
	}
	return true, st
}

// clearEnPassantZobrist removes the current en passant file from the
// Zobrist key, if one is set; every move clears the square itself.
func (b *Board) clearEnPassantZobrist() {
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[int(b.enPassantSquare%8)]
	}
	b.enPassantSquare = NoSquare
}

// applyCapture removes whatever m's encoded captured field says is taken by
// a move landing on to — on to itself for an ordinary capture, one rank
// behind/ahead of it for en passant — and returns that piece.
func (b *Board) applyCapture(to Square, flag uint8, moverColor Color, captured Piece) Piece {
	if captured == NoPiece {
		return NoPiece
	}
	capSq := to
	if flag == FlagEnPassant {
		if moverColor == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
	}
	b.zobristKey ^= zobristPiece[captured][int(capSq)]
	b.clearSquareAt(capSq)
	return captured
}

// relocatePiece moves the piece at from to to, promoting it to promo along
// the way when promo is set.
func (b *Board) relocatePiece(from, to Square, moved, promo Piece) {
	b.zobristKey ^= zobristPiece[moved][int(from)]
	b.clearSquareAt(from)

	landed := moved
	if promo != NoPiece {
		landed = promo
	}
	b.placePieceAt(to, landed)
	b.zobristKey ^= zobristPiece[landed][int(to)]
}

// applyCastleRook moves the rook that accompanies a castling king move to
// kingTo, returning the rook's origin/destination for UnmakeMove. kingTo
// alone determines which rook moves: it is one of four squares a king can
// only reach via a FlagCastle move, one per corner.
func (b *Board) applyCastleRook(kingTo Square) (rookFrom, rookTo Square) {
	cr, ok := castleRookMoves[kingTo]
	if !ok {
		return NoSquare, NoSquare
	}
	b.zobristKey ^= zobristPiece[cr.rook][int(cr.rookFrom)]
	b.clearSquareAt(cr.rookFrom)
	b.placePieceAt(cr.rookTo, cr.rook)
	b.zobristKey ^= zobristPiece[cr.rook][int(cr.rookTo)]
	return cr.rookFrom, cr.rookTo
}

// updateCastlingRights drops whichever rights the moving piece (king or
// rook leaving its home square) or a captured rook (taken on its home
// square) forfeits.
func (b *Board) updateCastlingRights(moved Piece, from Square, captured Piece, to Square) {
	newCR := b.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= CastlingWhiteK | CastlingWhiteQ
	case BlackKing:
		newCR &^= CastlingBlackK | CastlingBlackQ
	case WhiteRook:
		if from == 0 {
			newCR &^= CastlingWhiteQ
		} else if from == 7 {
			newCR &^= CastlingWhiteK
		}
	case BlackRook:
		if from == 56 {
			newCR &^= CastlingBlackQ
		} else if from == 63 {
			newCR &^= CastlingBlackK
		}
	}
	if captured != NoPiece && typeOf(captured) == 4 {
		switch to {
		case 0:
			newCR &^= CastlingWhiteQ
		case 7:
			newCR &^= CastlingWhiteK
		case 56:
			newCR &^= CastlingBlackQ
		case 63:
			newCR &^= CastlingBlackK
		}
	}
	if newCR != b.castlingRights {
		b.zobristKey ^= zobristCastle[int(b.castlingRights)]
		b.zobristKey ^= zobristCastle[int(newCR)]
		b.castlingRights = newCR
	}
}

// setEnPassantIfDoublePush records a fresh en passant target when moved is
// a pawn advancing two ranks.
func (b *Board) setEnPassantIfDoublePush(moved Piece, from, to Square, moverColor Color) {
	if typeOf(moved) != 1 || abs(int(to/8)-int(from/8)) != 2 {
		return
	}
	var ep Square
	if moverColor == White {
		ep = from + 8
	} else {
		ep = from - 8
	}
	b.enPassantSquare = ep
	b.zobristKey ^= zobristEnPassant[int(ep%8)]
}

// moverKingIsSafe reports whether moverColor's king is out of check after
// the move just applied. It only bothers computing attacks when the move
// could plausibly expose the king: a king move, an en passant capture (the
// one case that can uncover an attack without the moving piece itself
// being on a king ray), or a move originating on a square that lies on one
// of the king's rook/bishop rays (a potential discovered check).
func (b *Board) moverKingIsSafe(moverColor Color, moved Piece, flag uint8, from Square) bool {
	kingBB := b.kings[moverColor]
	if kingBB == 0 {
		return false
	}
	ks := bits.TrailingZeros64(kingBB)
	if typeOf(moved) != 6 && flag != FlagEnPassant {
		if (kingRaysUnion[ks]>>uint(from))&1 == 0 {
			return true
		}
	}
	occ := b.occupancy[White] | b.occupancy[Black]
	return !b.isSquareAttackedWithOcc(ks, 1-moverColor, occ)
}

// UnmakeMove undoes a previously made move, restoring board state exactly
// as it was before the matching MakeMove.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	b.sideToMove = 1 - b.sideToMove

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	flag := m.Flags()

	b.clearSquareAt(to)
	b.placePieceAt(from, moved)

	if flag == FlagCastle && st.rookFrom != NoSquare {
		cr := castleRookMoves[to]
		b.clearSquareAt(cr.rookTo)
		b.placePieceAt(cr.rookFrom, cr.rook)
	}

	if st.captured != NoPiece {
		if flag == FlagEnPassant {
			var capSq Square
			if b.sideToMove == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			b.placePieceAt(capSq, st.captured)
		} else {
			b.placePieceAt(to, st.captured)
		}
	}

	b.castlingRights = st.prevCastling
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.zobristKey = st.prevZobrist
}

// MakeNullMove switches the side to move without moving any piece: it
// clears any en passant square, toggles the Zobrist side key, and advances
// the clocks as if a reversible quiet half-move had been played.
func (b *Board) MakeNullMove() (st NullState) {
	st.prevEnPassant = b.enPassantSquare
	st.prevHalfmove = b.halfmoveClock
	st.prevFullmove = b.fullmoveNumber
	st.prevZobrist = b.zobristKey
	st.prevSide = b.sideToMove

	b.clearEnPassantZobrist()
	b.halfmoveClock++
	b.sideToMove = 1 - b.sideToMove
	b.zobristKey ^= zobristSide
	if st.prevSide == Black {
		b.fullmoveNumber++
	}
	return st
}

// UnmakeNullMove restores the board to the state prior to MakeNullMove.
func (b *Board) UnmakeNullMove(st NullState) {
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.sideToMove = st.prevSide
	b.zobristKey = st.prevZobrist
}

// Undo is the token returned by DoMove, passed back to UndoMove to restore
// the position exactly as it was before the move.
type Undo struct {
	state MoveState
	move  Move
}

// NullUndo is the token returned by DoNullMove, passed back to UndoNullMove.
type NullUndo struct {
	state NullState
}

// DoMove applies m, recording it on the position's history so GamePly and
// IsDraw stay correct, and returns a token that undoes exactly this move.
func (b *Board) DoMove(m Move) (Undo, bool) {
	ok, st := b.MakeMove(m)
	if !ok {
		return Undo{}, false
	}
	b.history = append(b.history, b.zobristKey)
	return Undo{state: st, move: m}, true
}

// UndoMove restores the position to what it was before the matching DoMove.
func (b *Board) UndoMove(u Undo) {
	b.history = b.history[:len(b.history)-1]
	b.UnmakeMove(u.move, u.state)
}

// DoNullMove passes the turn without moving a piece, used by null-move pruning.
func (b *Board) DoNullMove() NullUndo {
	st := b.MakeNullMove()
	b.history = append(b.history, b.zobristKey)
	return NullUndo{state: st}
}

// UndoNullMove restores the position to what it was before the matching DoNullMove.
func (b *Board) UndoNullMove(u NullUndo) {
	b.history = b.history[:len(b.history)-1]
	b.UnmakeNullMove(u.state)
}
