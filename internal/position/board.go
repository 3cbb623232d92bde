package position

import (
	"math/bits"
	"math/rand"
)

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color { return colorOf(p) }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	switch pt {
	case PieceTypePawn:
		if color == White {
			return WhitePawn
		}
		return BlackPawn
	case PieceTypeKnight:
		if color == White {
			return WhiteKnight
		}
		return BlackKnight
	case PieceTypeBishop:
		if color == White {
			return WhiteBishop
		}
		return BlackBishop
	case PieceTypeRook:
		if color == White {
			return WhiteRook
		}
		return BlackRook
	case PieceTypeQueen:
		if color == White {
			return WhiteQueen
		}
		return BlackQueen
	case PieceTypeKing:
		if color == White {
			return WhiteKing
		}
		return BlackKing
	default:
		return NoPiece
	}
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Square represents a board position (0-63).
type Square int

const NoSquare Square = -1

// Board represents the chess board state, including piece placement and game state.
type Board struct {
	// Piece bitboards for each piece type and color (index 0 = white, 1 = black)
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	// Occupancy bitboards for each side
	occupancy [2]uint64 // occupancy[White], occupancy[Black]
	// (overall occupancy can be derived as occupancy[White] | occupancy[Black])

	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant)
	pieces [64]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Zobrist hash key for the current position (for move repetition and hashing)
	zobristKey uint64

	// history holds the Zobrist key of the SetFEN starting position followed
	// by the key after each move currently applied (DoMove/DoNullMove push,
	// UndoMove/UndoNullMove pop); it backs GamePly and IsDraw.
	history []uint64
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Key returns the Zobrist fingerprint of the current position.
func (b *Board) Key() uint64 { return b.zobristKey }

// Rule50Count returns the half-move counter since the last capture or pawn push.
func (b *Board) Rule50Count() int { return b.halfmoveClock }

// GamePly returns the length of the key history: 1 right after SetFEN (the
// starting position itself), plus one for every half-move (including null
// moves) currently applied, real game history and in-search hypothetical
// lines alike (DoMove/DoNullMove both extend it; UndoMove/UndoNullMove
// retract it).
func (b *Board) GamePly() int { return len(b.history) }

// IsDraw reports a draw by repetition. It follows the common search-tree
// convention of flagging a draw as soon as the current key has occurred
// once before within the last Rule50Count plies (a "two-fold" inside the
// search horizon implies a draw is forceable by repeating moves), rather
// than waiting for the historical three-fold the rules require outside of
// search. ply is accepted for interface symmetry with the distilled
// specification but is not otherwise needed: the position's own history
// already encodes how far back repetition can reach.
func (b *Board) IsDraw(ply int) bool {
	_ = ply
	n := len(b.history)
	if n < 2 {
		return false
	}
	// history[n-1] is always today's zobristKey, appended by the move that
	// just reached this position (see DoMove/DoNullMove). A genuine repeat
	// requires one of the *earlier* entries to match it, so the scan starts
	// one step further back (n-2) and looks as far as halfmoveClock plies
	// before the current position, i.e. back to the last capture or pawn push.
	target := b.history[n-1]
	limit := b.halfmoveClock
	if limit > n-1 {
		limit = n - 1
	}
	for back := 1; back <= limit; back++ {
		if b.history[n-1-back] == target {
			return true
		}
	}
	return false
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	buf := make([]Move, 0, 64)
	moves := b.GenerateMovesInto(buf)
	return len(moves) > 0
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// ==========================
// Bitboard helpers
// ==========================

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	x := *mask & -(*mask)
	idx := bits.TrailingZeros64(x)
	*mask &= *mask - 1
	return idx
}

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[0] | b.occupancy[1] }

// PieceOn returns the piece occupying sq, or NoPiece if it is empty.
func (b *Board) PieceOn(sq Square) Piece { return b.pieces[int(sq)] }

// colorOf returns the color of a piece. NoPiece is treated as White.
func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// typeOf returns the piece type in [1..6] with color stripped.
func typeOf(p Piece) Piece { return p & 7 }

// pieceBitboard returns a pointer to the per-color bitboard that tracks pt,
// so a caller that already knows the piece type can update the matching
// bitboard without re-deriving it through a type switch at every call site.
func (b *Board) pieceBitboard(c Color, pt Piece) *uint64 {
	switch pt & 7 {
	case 1:
		return &b.pawns[c]
	case 2:
		return &b.knights[c]
	case 3:
		return &b.bishops[c]
	case 4:
		return &b.rooks[c]
	case 5:
		return &b.queens[c]
	case 6:
		return &b.kings[c]
	default:
		return nil
	}
}

// placePieceAt sets p on sq, updating pieces[], its per-type bitboard, and
// occupancy. It leaves the Zobrist key untouched — callers that need an
// incremental hash update handle that themselves around the call, since the
// XOR direction differs between a fresh placement and a piece being moved.
func (b *Board) placePieceAt(sq Square, p Piece) {
	b.pieces[sq] = p
	if p == NoPiece {
		return
	}
	c := colorOf(p)
	mask := bb(sq)
	b.occupancy[c] |= mask
	if slot := b.pieceBitboard(c, p); slot != nil {
		*slot |= mask
	}
}

// clearSquareAt empties sq, updating pieces[], the departing piece's
// per-type bitboard, and occupancy. A no-op on an already-empty square.
func (b *Board) clearSquareAt(sq Square) {
	p := b.pieces[sq]
	if p == NoPiece {
		return
	}
	c := colorOf(p)
	mask := bb(sq)
	b.occupancy[c] &^= mask
	if slot := b.pieceBitboard(c, p); slot != nil {
		*slot &^= mask
	}
	b.pieces[sq] = NoPiece
}

// Validate checks internal consistency between pieces[], per-piece bitboards, and occupancy.
// Returns true if consistent, false otherwise.
func (b *Board) Validate() bool {
	shadow := &Board{}
	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p != NoPiece {
			shadow.placePieceAt(Square(sq), p)
		}
	}
	if shadow.occupancy != b.occupancy {
		return false
	}
	if shadow.pawns != b.pawns || shadow.knights != b.knights || shadow.bishops != b.bishops ||
		shadow.rooks != b.rooks || shadow.queens != b.queens || shadow.kings != b.kings {
		return false
	}
	// Cross-check Zobrist
	if b.zobristKey != b.ComputeZobrist() {
		return false
	}
	return true
}

// ==========================
// Zobrist hashing
// ==========================

var zobristPiece [15][64]uint64 // Zobrist keys for piece (index by piece code) on each square
var zobristCastle [16]uint64    // Zobrist keys for each castling rights state (0-15)
var zobristEnPassant [8]uint64  // Zobrist keys for en passant file (file 0-7)
var zobristSide uint64          // Zobrist key for side to move (Black to move)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so repeated runs (and tests) hash identically.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the Zobrist hash for the current board state from scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64

	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[int(b.castlingRights)]
	if b.enPassantSquare != NoSquare {
		file := int(b.enPassantSquare % 8)
		key ^= zobristEnPassant[file]
	}
	return key
}
