package engine

// Value is a centipawn-denominated score, always reported from the
// perspective of the side to move.
type Value int32

const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInfinite Value = 32767

	// MaxPly bounds search depth and ply-indexed tables (killers, the
	// quiescence horizon). It must stay well above any max_depth a caller
	// passes to Search.
	MaxPly = 128

	// ValueMate is the score assigned to a forced mate delivered at ply 0;
	// mated_in/mate_in encode shallower mates as larger-magnitude scores by
	// subtracting/adding the ply at which the mate occurs.
	ValueMate = 32000

	// ValueMateInMaxPly is the threshold above (below, negated) which a
	// score is recognized as a mate score rather than a material score.
	ValueMateInMaxPly = ValueMate - MaxPly

	// MaxMoves bounds the capacity of a caller-provided move buffer.
	MaxMoves = 256
)

// matedIn encodes "checkmated in `ply` plies", from the perspective of the
// side being mated: shallower mates are more negative so they dominate
// deeper ones in alpha-beta comparisons.
func matedIn(ply int) Value { return -(ValueMate - Value(ply)) }

// mateIn encodes "delivers mate in `ply` plies" from the mating side's
// perspective — the mirror image of matedIn. Neither the search nor the
// CLI's score reporting calls it.
func mateIn(ply int) Value { return ValueMate - Value(ply) }

// IsMateScore reports whether v denotes a forced mate rather than a
// material/positional evaluation.
func IsMateScore(v Value) bool {
	return v >= ValueMateInMaxPly || v <= -ValueMateInMaxPly
}
