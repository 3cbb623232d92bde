package engine

import "testing"

func TestTranspositionStoreProbeExact(t *testing.T) {
	tt := newTranspositionTable()
	key := uint64(12345)
	tt.store(key, 0, Value(250), 4, Value(-100), Value(300))

	_, cutoff, ok := tt.probe(key, 4, Value(-100), Value(100))
	if !ok {
		t.Fatalf("expected a probe hit for an exact entry of sufficient depth")
	}
	if cutoff != 250 {
		t.Fatalf("expected cutoff 250, got %d", cutoff)
	}
}

func TestTranspositionProbeMissesOnKeyMismatch(t *testing.T) {
	tt := newTranspositionTable()
	tt.store(1, 0, Value(10), 4, Value(-100), Value(100))
	if _, _, ok := tt.probe(2, 4, Value(-100), Value(100)); ok {
		t.Fatalf("probe should miss for an unstored key even if it collides into the same slot's zero state")
	}
}

func TestTranspositionProbeRespectsDepth(t *testing.T) {
	tt := newTranspositionTable()
	tt.store(7, 0, Value(10), 2, Value(-100), Value(100))
	if _, _, ok := tt.probe(7, 5, Value(-100), Value(100)); ok {
		t.Fatalf("a shallower stored entry must not satisfy a deeper probe")
	}
	if _, _, ok := tt.probe(7, 2, Value(-100), Value(100)); !ok {
		t.Fatalf("an equal-depth probe should hit")
	}
}

func TestTranspositionBoundDerivation(t *testing.T) {
	tt := newTranspositionTable()

	// value <= originalAlpha -> upper bound; only usable as a cutoff when
	// the stored value is itself <= the probing alpha.
	tt.store(100, 0, Value(-50), 3, Value(0), Value(100))
	if _, _, ok := tt.probe(100, 3, Value(-100), Value(100)); ok {
		t.Fatalf("upper bound of -50 must not cut off against alpha -100")
	}
	if _, cutoff, ok := tt.probe(100, 3, Value(-40), Value(100)); !ok || cutoff != Value(-40) {
		t.Fatalf("upper bound of -50 should cut off at alpha -40 returning alpha, got %d ok=%v", cutoff, ok)
	}

	// value >= beta -> lower bound; usable as a cutoff when stored value
	// meets or exceeds the probing beta.
	tt.store(200, 0, Value(150), 3, Value(-100), Value(100))
	if _, cutoff, ok := tt.probe(200, 3, Value(-100), Value(120)); !ok || cutoff != Value(120) {
		t.Fatalf("lower bound of 150 should cut off at beta 120 returning beta, got %d ok=%v", cutoff, ok)
	}
}

func TestTranspositionResetClearsAllSlots(t *testing.T) {
	tt := newTranspositionTable()
	tt.store(9, 0, Value(5), 1, Value(-10), Value(10))
	tt.Reset()
	if _, _, ok := tt.probe(9, 1, Value(-10), Value(10)); ok {
		t.Fatalf("expected Reset to clear all previously stored entries")
	}
}
