package position

import "testing"

func TestDoUndoMoveRestoresKeyAndGamePly(t *testing.T) {
	b, err := SetFEN(FENStartPos)
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	beforeKey := b.Key()
	beforePly := b.GamePly()

	moves := b.GenerateMovesInto(make([]Move, 0, 64))
	m := moves[0]
	undo, ok := b.DoMove(m)
	if !ok {
		t.Fatalf("expected %s to be applicable", m.String())
	}
	if b.GamePly() != beforePly+1 {
		t.Fatalf("GamePly not incremented: got %d want %d", b.GamePly(), beforePly+1)
	}
	b.UndoMove(undo)

	if b.Key() != beforeKey {
		t.Fatalf("Key not restored: got %x want %x", b.Key(), beforeKey)
	}
	if b.GamePly() != beforePly {
		t.Fatalf("GamePly not restored: got %d want %d", b.GamePly(), beforePly)
	}
}

func TestLegalRejectsNonMember(t *testing.T) {
	b, err := SetFEN(FENStartPos)
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	// e2e5 is not a legal pawn move from the start position.
	bogus := NewMove(Square(12), Square(36), WhitePawn, NoPiece, NoPiece, FlagNone)
	if b.Legal(bogus) {
		t.Fatalf("expected e2e5 to be illegal from the start position")
	}
	moves := b.GenerateMovesInto(make([]Move, 0, 64))
	if !b.Legal(moves[0]) {
		t.Fatalf("expected a generated legal move to report Legal() == true")
	}
}

func TestCheckersEmptyAtStartpos(t *testing.T) {
	b, err := SetFEN(FENStartPos)
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if b.Checkers() != 0 {
		t.Fatalf("expected no checkers at the start position")
	}
}

func TestCheckersNonEmptyWhenInCheck(t *testing.T) {
	// White king on e1 in check from a black rook on e8.
	b, err := SetFEN("4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	if b.Checkers() == 0 {
		t.Fatalf("expected checkers to be non-empty")
	}
	if !b.InCheckNow() {
		t.Fatalf("expected InCheckNow() to be true")
	}
}

// TestIsDrawByRepetitionWithinSearchHorizon shuffles the kings back and
// forth one full cycle and checks IsDraw at every step, not just the end:
// it must stay false for every intermediate position that has only been
// seen once, and only flip true once the shuffle returns to a position
// that was already on the history stack. A version of IsDraw that matches
// the just-appended entry against itself (rather than an earlier one)
// would report true starting at the very first half-move, which this test
// catches.
func TestIsDrawByRepetitionWithinSearchHorizon(t *testing.T) {
	b, err := SetFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	moves := []Move{
		NewMove(4, 3, WhiteKing, NoPiece, NoPiece, FlagNone),   // Ke1-d1
		NewMove(60, 59, BlackKing, NoPiece, NoPiece, FlagNone), // Ke8-d8
		NewMove(3, 4, WhiteKing, NoPiece, NoPiece, FlagNone),   // Kd1-e1
		NewMove(59, 60, BlackKing, NoPiece, NoPiece, FlagNone), // Kd8-e8, back to the start
	}
	wantDraw := []bool{false, false, false, true}

	var undos []Undo
	for i, m := range moves {
		u, ok := b.DoMove(m)
		if !ok {
			t.Fatalf("expected %s to be legal", m.String())
		}
		undos = append(undos, u)
		if got := b.IsDraw(b.GamePly()); got != wantDraw[i] {
			t.Fatalf("after move %d (%s): IsDraw() = %v, want %v", i+1, m.String(), got, wantDraw[i])
		}
	}
	for i := len(undos) - 1; i >= 0; i-- {
		b.UndoMove(undos[i])
	}
}
