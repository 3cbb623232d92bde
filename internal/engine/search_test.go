package engine

import (
	"testing"
	"time"

	"chesscore/internal/position"
)

func TestSearchReturnsLegalMoveFromStartpos(t *testing.T) {
	pos, err := position.SetFEN(position.FENStartPos)
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	e := NewEngine()
	result := e.Search(pos, 4, 100)

	if result.BestMove == 0 {
		t.Fatalf("expected a best move at the start position")
	}
	if !pos.Legal(result.BestMove) {
		t.Fatalf("best move %s is not legal", result.BestMove.String())
	}
	if result.Score < -50 || result.Score > 50 {
		t.Fatalf("expected a near-zero startpos score, got %d", result.Score)
	}
}

func TestSearchRestoresPositionAfterSearch(t *testing.T) {
	pos, err := position.SetFEN(position.FENStartPos)
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	key := pos.Key()
	rule50 := pos.Rule50Count()
	ply := pos.GamePly()
	stm := pos.SideToMove()

	e := NewEngine()
	e.Search(pos, 4, 100)

	if pos.Key() != key {
		t.Fatalf("Key changed across Search: %x != %x", pos.Key(), key)
	}
	if pos.Rule50Count() != rule50 {
		t.Fatalf("Rule50Count changed across Search: %d != %d", pos.Rule50Count(), rule50)
	}
	if pos.GamePly() != ply {
		t.Fatalf("GamePly changed across Search: %d != %d", pos.GamePly(), ply)
	}
	if pos.SideToMove() != stm {
		t.Fatalf("SideToMove changed across Search: %v != %v", pos.SideToMove(), stm)
	}
}

func TestSearchNoLegalMovesReturnsZeroResult(t *testing.T) {
	// Black is stalemated: king on a8 has no escape and no other piece to
	// move; white's queen and king enforce the box without giving check.
	pos, err := position.SetFEN("k7/8/1Q6/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	e := NewEngine()
	result := e.Search(pos, 4, 100)

	if result.BestMove != 0 {
		t.Fatalf("expected no best move in a stalemate, got %s", result.BestMove.String())
	}
	if result.Score != 0 || result.Depth != 0 {
		t.Fatalf("expected a zero-value result for a position with no legal moves, got %+v", result)
	}
}

func TestSearchSingleReplyFastPath(t *testing.T) {
	// White king on a1 is in check from a rook on a8 along the a-file; the
	// black king on b3 covers every flight square except b1, leaving
	// exactly one legal reply.
	pos, err := position.SetFEN("r7/8/8/8/8/1k6/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	legal := pos.GenerateMovesInto(make([]position.Move, 0, 32))
	if len(legal) != 1 {
		t.Skipf("fixture does not have exactly one legal move (has %d); skipping fast-path check", len(legal))
	}

	e := NewEngine()
	result := e.Search(pos, 10, 1000)
	if result.BestMove != legal[0] {
		t.Fatalf("expected the only legal move %s, got %s", legal[0].String(), result.BestMove.String())
	}
	if result.Depth != 0 {
		t.Fatalf("single-reply fast path should not report a searched depth, got %d", result.Depth)
	}
}

func TestSearchFindsMateInOneForWhite(t *testing.T) {
	// Classic back-rank mate: Ra1-a8#, black king boxed in by its own pawns.
	pos, err := position.SetFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	e := NewEngine()
	result := e.Search(pos, 4, 500)
	if !IsMateScore(result.Score) || result.Score <= 0 {
		t.Fatalf("expected a positive mate score, got %d", result.Score)
	}
}

func TestSearchFindsMateInOneForBlack(t *testing.T) {
	// Mirror of the white mate-in-one fixture, color-flipped: black to move
	// delivers Ra8-a1#.
	pos, err := position.SetFEN("r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	e := NewEngine()
	result := e.Search(pos, 4, 500)
	if !IsMateScore(result.Score) || result.Score <= 0 {
		t.Fatalf("expected a positive (side-to-move-relative) mate score, got %d", result.Score)
	}
}

func TestSearchRespectsTimeBudget(t *testing.T) {
	pos, err := position.SetFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	e := NewEngine()
	result := e.Search(pos, 64, 50)
	if result.BestMove == 0 {
		t.Fatalf("expected some move to be returned even under a tight time budget")
	}
}

func TestAlphaBetaNegamaxConsistency(t *testing.T) {
	pos, err := position.SetFEN("4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	e := NewEngine()
	e.searchStart, e.searchTimeMs = time.Now(), 10_000
	scoreWhite := e.alphabeta(pos, 2, -ValueInfinite, ValueInfinite, 0, true)

	pos2, err := position.SetFEN("4k3/8/8/8/8/8/4R3/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	e2 := NewEngine()
	e2.searchStart, e2.searchTimeMs = time.Now(), 10_000
	scoreBlack := e2.alphabeta(pos2, 2, -ValueInfinite, ValueInfinite, 0, true)

	if scoreWhite < 0 {
		t.Fatalf("white to move up a rook should not score negative, got %d", scoreWhite)
	}
	if scoreBlack >= 0 {
		t.Fatalf("negamax score is always side-to-move-relative; black to move facing a losing material deficit should score negative from its own perspective, got %d", scoreBlack)
	}
}
