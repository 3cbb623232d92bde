package engine

import (
	"testing"

	"chesscore/internal/position"
)

func TestMvvLvaGridMatchesDocumentedRanges(t *testing.T) {
	cases := []struct {
		attacker, victim position.PieceType
		wantTens         int32
	}{
		{position.PieceTypePawn, position.PieceTypePawn, 1},
		{position.PieceTypePawn, position.PieceTypeQueen, 5},
		{position.PieceTypeKing, position.PieceTypeQueen, 5},
		{position.PieceTypePawn, position.PieceTypeKnight, 2},
	}
	for _, c := range cases {
		got := mvvLva(c.attacker, c.victim)
		if got/10 != c.wantTens {
			t.Fatalf("mvvLva(%v,%v) = %d, want tens digit %d", c.attacker, c.victim, got, c.wantTens)
		}
	}
}

func TestMvvLvaPrefersWeakerAttackerForSameVictim(t *testing.T) {
	pawnTakesQueen := mvvLva(position.PieceTypePawn, position.PieceTypeQueen)
	kingTakesQueen := mvvLva(position.PieceTypeKing, position.PieceTypeQueen)
	if pawnTakesQueen <= kingTakesQueen {
		t.Fatalf("PxQ (%d) should outrank KxQ (%d)", pawnTakesQueen, kingTakesQueen)
	}
}

func TestMvvLvaHigherVictimAlwaysDominates(t *testing.T) {
	// Even the worst attacker taking a rook should outrank the best
	// attacker taking a bishop.
	kingTakesRook := mvvLva(position.PieceTypeKing, position.PieceTypeRook)
	pawnTakesBishop := mvvLva(position.PieceTypePawn, position.PieceTypeBishop)
	if kingTakesRook <= pawnTakesBishop {
		t.Fatalf("KxR (%d) should outrank PxB (%d)", kingTakesRook, pawnTakesBishop)
	}
}

func TestKillerTableRecordAndDemote(t *testing.T) {
	var k killerTable
	k.record(3, position.Move(1))
	k.record(3, position.Move(2))
	if k[3][0] != position.Move(2) || k[3][1] != position.Move(1) {
		t.Fatalf("expected slot0=2 slot1=1, got %v", k[3])
	}
	// Re-recording the current top killer must not duplicate it.
	k.record(3, position.Move(2))
	if k[3][0] != position.Move(2) || k[3][1] != position.Move(1) {
		t.Fatalf("re-recording top killer should be a no-op, got %v", k[3])
	}
}

func TestHistoryTableAccumulatesByDepthSquared(t *testing.T) {
	var h historyTable
	h.add(position.White, position.Square(12), position.Square(28), 3)
	h.add(position.White, position.Square(12), position.Square(28), 4)
	want := int32(3*3 + 4*4)
	if got := h[position.White][12][28]; got != want {
		t.Fatalf("history entry = %d, want %d", got, want)
	}
}

func TestScoreMoveOrdersTTMoveFirst(t *testing.T) {
	pos, err := position.SetFEN(position.FENStartPos)
	if err != nil {
		t.Fatalf("SetFEN: %v", err)
	}
	moves := pos.GenerateMovesInto(make([]position.Move, 0, 32))
	tt := moves[3]
	var killers killerTable
	var history historyTable
	got := scoreMove(pos, tt, tt, 0, &killers, &history)
	if got != orderTTMove {
		t.Fatalf("expected the TT move to score orderTTMove, got %d", got)
	}
}
