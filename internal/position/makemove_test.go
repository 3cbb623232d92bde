package position

import "testing"

func TestMakeUnmakeRestoresZobrist(t *testing.T) {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := b.Key()

	moves := b.GenerateMovesInto(make([]Move, 0, 64))
	if len(moves) == 0 {
		t.Fatal("expected legal moves at startpos")
	}
	for _, m := range moves {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		b.UnmakeMove(m, st)
		if b.Key() != before {
			t.Fatalf("move %s: hash not restored after unmake: got %x want %x", m.String(), b.Key(), before)
		}
		if !b.Validate() {
			t.Fatalf("move %s: board inconsistent after unmake", m.String())
		}
	}
}

func TestMakeUnmakeNullMove(t *testing.T) {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := b.Key()
	st := b.MakeNullMove()
	if b.SideToMove() != Black {
		t.Fatalf("null move should flip side to move")
	}
	b.UnmakeNullMove(st)
	if b.Key() != before {
		t.Fatalf("hash not restored after null unmake: got %x want %x", b.Key(), before)
	}
}

func TestCastlingRoundTrip(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := b.ToFEN()
	kingside := NewMove(4, 6, WhiteKing, NoPiece, NoPiece, FlagCastle)
	ok, st := b.MakeMove(kingside)
	if !ok {
		t.Fatal("expected kingside castle to be legal")
	}
	if b.PieceOn(5) != WhiteRook || b.PieceOn(7) != NoPiece {
		t.Fatalf("rook did not move to f1 on castle")
	}
	b.UnmakeMove(kingside, st)
	if got := b.ToFEN(); got != before {
		t.Fatalf("FEN not restored after castle unmake: got %q want %q", got, before)
	}
}
