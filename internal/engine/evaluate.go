package engine

import "chesscore/internal/position"

// material value per piece type, indexed by position.PieceType (NoPiece=0
// is never looked up). These are the classic Michniewski-style values the
// distilled reference evaluator uses: pawn 100, knight 320, bishop 330,
// rook 500, queen 900, king 0.
var materialValue = [7]Value{
	position.PieceTypeNone:   0,
	position.PieceTypePawn:   100,
	position.PieceTypeKnight: 320,
	position.PieceTypeBishop: 330,
	position.PieceTypeRook:   500,
	position.PieceTypeQueen:  900,
	position.PieceTypeKing:   0,
}

// Piece-square tables, laid out from white's perspective with square 0 = a1
// and square 63 = h8 (rank-major, a-file first). A black piece at square s
// looks up index s^56 and negates its contribution.
var pawnTable = [64]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]Value{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddleTable = [64]Value{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

func pieceSquareTable(pt position.PieceType) *[64]Value {
	switch pt {
	case position.PieceTypePawn:
		return &pawnTable
	case position.PieceTypeKnight:
		return &knightTable
	case position.PieceTypeBishop:
		return &bishopTable
	case position.PieceTypeRook:
		return &rookTable
	case position.PieceTypeQueen:
		return &queenTable
	case position.PieceTypeKing:
		return &kingMiddleTable
	default:
		return nil
	}
}

// perspectiveSquare mirrors a square vertically for black's point of view.
func perspectiveSquare(sq position.Square, c position.Color) position.Square {
	if c == position.White {
		return sq
	}
	return sq ^ 56
}

// psqtValue returns the material-plus-placement contribution of piece pc on
// square sq, positive for white and negative for black.
func psqtValue(pc position.Piece, sq position.Square) Value {
	pt := pc.Type()
	c := pc.Color()
	value := materialValue[pt]
	if table := pieceSquareTable(pt); table != nil {
		value += table[perspectiveSquare(sq, c)]
	}
	if c == position.White {
		return value
	}
	return -value
}

// Evaluate returns the static score of pos from the perspective of the side
// to move: a pure function of board occupancy and side to move, with no
// allocation and no dependence on move history.
func Evaluate(pos *position.Board) Value {
	var score Value
	for sq := position.Square(0); sq < 64; sq++ {
		pc := pos.PieceOn(sq)
		if pc != position.NoPiece {
			score += psqtValue(pc, sq)
		}
	}
	if pos.SideToMove() == position.White {
		return score
	}
	return -score
}
