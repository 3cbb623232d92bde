package position

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPieceChars pairs every piece with its single-letter FEN code; both
// pieceFromChar and charFromPiece drive off this one table instead of
// keeping two switches in sync by hand.
var fenPieceChars = [12]struct {
	piece Piece
	ch    byte
}{
	{WhitePawn, 'P'}, {WhiteKnight, 'N'}, {WhiteBishop, 'B'},
	{WhiteRook, 'R'}, {WhiteQueen, 'Q'}, {WhiteKing, 'K'},
	{BlackPawn, 'p'}, {BlackKnight, 'n'}, {BlackBishop, 'b'},
	{BlackRook, 'r'}, {BlackQueen, 'q'}, {BlackKing, 'k'},
}

func pieceFromChar(ch byte) Piece {
	for _, e := range fenPieceChars {
		if e.ch == ch {
			return e.piece
		}
	}
	return NoPiece
}

func charFromPiece(p Piece) byte {
	for _, e := range fenPieceChars {
		if e.piece == p {
			return e.ch
		}
	}
	return '?'
}

// castlingFENChars pairs every castling flag with its FEN letter, read by
// ParseFEN and written by ToFEN off the same table.
var castlingFENChars = [4]struct {
	flag CastlingRights
	ch   byte
}{
	{CastlingWhiteK, 'K'}, {CastlingWhiteQ, 'Q'},
	{CastlingBlackK, 'k'}, {CastlingBlackQ, 'q'},
}

// ParseFEN parses a FEN string into a freshly built Board. It does not
// touch history — SetFEN does that — so it is also the constructor used for
// scratch boards inside move-generation tests that never call Search.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Split(fen, " ")
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	b := &Board{enPassantSquare: NoSquare}

	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	if err := b.parseCastlingRights(fields[2]); err != nil {
		return nil, err
	}

	if err := b.parseEnPassant(fields[3]); err != nil {
		return nil, err
	}

	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		b.halfmoveClock = halfmove
	}
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		b.fullmoveNumber = fullmove
	}

	b.zobristKey = b.ComputeZobrist()
	return b, nil
}

func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return errors.New("invalid FEN: empty rank description")
		}
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(byte(ch))
			if piece == NoPiece {
				return errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return errors.New("invalid FEN: too many squares in rank")
			}
			b.placePieceAt(Square(rank*8+file), piece)
			file++
		}
		if file != 8 {
			return errors.New("invalid FEN: rank does not have 8 columns")
		}
	}
	return nil
}

func (b *Board) parseCastlingRights(field string) error {
	b.castlingRights = 0
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		found := false
		for _, e := range castlingFENChars {
			if byte(ch) == e.ch {
				b.castlingRights |= e.flag
				found = true
				break
			}
		}
		if !found {
			return errors.New("invalid FEN: invalid castling rights character")
		}
	}
	return nil
}

func (b *Board) parseEnPassant(field string) error {
	if field == "-" {
		b.enPassantSquare = NoSquare
		return nil
	}
	if len(field) != 2 {
		return errors.New("invalid FEN: invalid en passant square")
	}
	fileChar, rankChar := field[0], field[1]
	if fileChar < 'a' || fileChar > 'h' || rankChar < '1' || rankChar > '8' {
		return errors.New("invalid FEN: en passant square out of range")
	}
	file := int(fileChar - 'a')
	rank := int(rankChar - '1')
	b.enPassantSquare = Square(rank*8 + file)
	return nil
}

// ToFEN produces the FEN string representation of the board's current state.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[rank*8+file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		for _, e := range castlingFENChars {
			if b.castlingRights&e.flag != 0 {
				sb.WriteByte(e.ch)
			}
		}
	}
	sb.WriteByte(' ')

	if b.enPassantSquare != NoSquare {
		file := b.enPassantSquare % 8
		rank := b.enPassantSquare / 8
		sb.WriteByte('a' + byte(file))
		sb.WriteByte('1' + byte(rank))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}

// SetFEN parses fen and returns a freshly initialized Board, seeded with
// its own starting position on the history stack so GamePly and IsDraw
// have a baseline to measure from. Chess960 castling is not supported
// (Non-goal), so unlike the distilled specification's set() there is no
// chess960 flag to thread through.
func SetFEN(fen string) (*Board, error) {
	b, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	b.history = append(b.history, b.zobristKey)
	return b, nil
}

// StartPos returns a Board set to the standard initial position.
func StartPos() *Board {
	b, err := SetFEN(FENStartPos)
	if err != nil {
		panic("position: invalid built-in start FEN: " + err.Error())
	}
	return b
}
