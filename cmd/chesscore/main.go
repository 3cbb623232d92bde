// Command chesscore is the CLI front-end for the search/evaluation core:
// a one-shot position analyzer and a self-play game generator, in the
// plain os.Args/strconv style the rest of this codebase uses instead of a
// flag/cobra dependency.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"chesscore/internal/archive"
	"chesscore/internal/engine"
	"chesscore/internal/position"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--analyze":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Error: FEN string required")
			os.Exit(1)
		}
		cmdAnalyze(strings.Join(os.Args[2:], " "))
	case "--play":
		if len(os.Args) < 6 {
			fmt.Fprintln(os.Stderr, "Error: required arguments: <GameCount> <MaxPly> <WhiteTimeMs> <BlackTimeMs>")
			os.Exit(1)
		}
		gameCount, err1 := strconv.Atoi(os.Args[2])
		maxPly, err2 := strconv.Atoi(os.Args[3])
		whiteTimeMs, err3 := strconv.Atoi(os.Args[4])
		blackTimeMs, err4 := strconv.Atoi(os.Args[5])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			fmt.Fprintln(os.Stderr, "Error: arguments must be integers")
			os.Exit(1)
		}
		cmdPlay(gameCount, maxPly, whiteTimeMs, blackTimeMs)
	default:
		fmt.Fprintln(os.Stderr, "Unknown command:", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  chesscore --analyze <FEN>")
	fmt.Fprintln(os.Stderr, "  chesscore --play <GameCount> <MaxPly> <WhiteMovetimeMs> <BlackMovetimeMs>")
}

// moveToUCI renders m in long algebraic notation, "0000" for the none move.
func moveToUCI(m position.Move) string {
	if m == 0 {
		return "0000"
	}
	return m.String()
}

// scoreString renders result.Score per the §6 reporting convention.
func scoreString(result engine.SearchResult) string {
	switch {
	case result.Score >= engine.ValueMateInMaxPly:
		return fmt.Sprintf("Mate in %d", (engine.ValueMate-result.Score+1)/2)
	case result.Score <= -engine.ValueMateInMaxPly:
		return fmt.Sprintf("Mated in %d", (engine.ValueMate+result.Score)/2)
	default:
		return fmt.Sprintf("%d", result.Score)
	}
}

func cmdAnalyze(fen string) {
	fmt.Println("Analyzing FEN:", fen)

	pos, err := position.SetFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error setting position:", err)
		os.Exit(1)
	}

	eval := engine.Evaluate(pos)
	fmt.Println("Static eval:", eval)

	e := engine.NewEngine()
	result := e.Search(pos, 10, 10)

	fmt.Println("Evaluation:", scoreString(result))
	fmt.Println("Best move:", moveToUCI(result.BestMove))
	fmt.Println("Depth:", result.Depth, "Nodes:", result.Nodes)
}

func cmdPlay(gameCount, maxPly, whiteTimeMs, blackTimeMs int) {
	var store *archive.Archive
	if a, err := archive.Open("chesscore-selfplay-db"); err == nil {
		store = a
		defer store.Close()
	} else {
		fmt.Fprintln(os.Stderr, "warning: self-play archive unavailable:", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	totalDepth := 0
	totalMoves := 0

	e := engine.NewEngine()

	for game := 0; game < gameCount; game++ {
		pos := position.StartPos()

		fmt.Println(`[Event "Engine Self-Play"]`)
		fmt.Println(`[Site "Minimal Traditional Engine"]`)
		fmt.Printf("[Date \"%s\"]\n", time.Now().Format("2006.01.02"))
		fmt.Printf("[Round \"%d\"]\n", game+1)
		fmt.Println(`[White "ChessCore"]`)
		fmt.Println(`[Black "ChessCore"]`)

		var pgn strings.Builder
		ply := 0
		result := "*"
		var lastResult engine.SearchResult

		for ply < maxPly {
			timeMs := whiteTimeMs
			if pos.SideToMove() != position.White {
				timeMs = blackTimeMs
			}

			if ply < 6 && rng.Intn(101) < 30 {
				buf := make([]position.Move, 0, engine.MaxMoves)
				legal := pos.GenerateMovesInto(buf)
				if len(legal) == 0 {
					break
				}
				randomMove := legal[rng.Intn(len(legal))]
				writePGNMove(&pgn, ply, randomMove)
				undo, ok := pos.DoMove(randomMove)
				if !ok {
					break
				}
				_ = undo
				ply++
				continue
			}

			lastResult = e.Search(pos, 10, timeMs)
			totalDepth += lastResult.Depth
			totalMoves++

			if lastResult.BestMove == 0 {
				if pos.InCheckmate() {
					if pos.SideToMove() == position.White {
						result = "0-1"
					} else {
						result = "1-0"
					}
				} else {
					// pos.InStalemate() is the only other way to run out of
					// legal moves.
					result = "1/2-1/2"
				}
				break
			}

			if pos.Rule50Count() >= 100 || pos.IsDraw(pos.GamePly()) {
				result = "1/2-1/2"
				break
			}

			writePGNMove(&pgn, ply, lastResult.BestMove)
			if _, ok := pos.DoMove(lastResult.BestMove); !ok {
				break
			}
			ply++
		}

		if ply >= maxPly {
			result = "1/2-1/2"
		}

		fmt.Printf("[Result \"%s\"]\n\n", result)
		fmt.Println(pgn.String() + result)
		fmt.Println()

		if store != nil {
			_, err := store.Save(archive.GameRecord{
				StartFEN:    position.FENStartPos,
				PGN:         pgn.String(),
				Result:      result,
				Plies:       ply,
				NodesSearch: lastResult.Nodes,
				FinalScore:  int32(lastResult.Score),
			})
			if err != nil {
				fmt.Fprintln(os.Stderr, "warning: failed to archive game:", err)
			}
		}

		// Open Question 1 (resolved): the TT is never cleared by Search
		// itself, so a long self-play run must clear it between games or
		// stale entries from one game bias the next.
		e.ResetTT()
	}

	if totalMoves > 0 {
		fmt.Printf("Average depth: %.2f\n", float64(totalDepth)/float64(totalMoves))
	}
}

func writePGNMove(pgn *strings.Builder, ply int, m position.Move) {
	if ply%2 == 0 {
		fmt.Fprintf(pgn, "%d. ", ply/2+1)
	}
	fmt.Fprintf(pgn, "%s ", moveToUCI(m))
}
