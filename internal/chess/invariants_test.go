package chess

import (
	"math/rand"
	"testing"
)

// TestRandomizedBoardInvariants drives the board through long random
// operation sequences and cross-checks the derived indices against the grid
// after every step. The seed is fixed so failures reproduce.
func TestRandomizedBoardInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	kinds := []string{"K", "Q", "R", "N", "P", "M", "V", "Y", "δ", "H"}
	colors := []Color{White, Black}

	for round := 0; round < 20; round++ {
		b := NewBoard(10, 10)

		for step := 0; step < 200; step++ {
			x, y := rng.Intn(10), rng.Intn(10)

			switch rng.Intn(5) {
			case 0:
				kind := kinds[rng.Intn(len(kinds))]
				if err := b.Place(x, y, kind, colors[rng.Intn(2)]); err != nil {
					t.Fatalf("round %d step %d: Place: %v", round, step, err)
				}
			case 1:
				if err := b.Clear(x, y); err != nil {
					t.Fatalf("round %d step %d: Clear: %v", round, step, err)
				}
			case 2:
				if b.at(x, y) != nil {
					if err := b.SetRoyal(x, y, rng.Intn(2) == 0); err != nil {
						t.Fatalf("round %d step %d: SetRoyal: %v", round, step, err)
					}
				}
			case 3:
				moves, err := b.CollectMoves(x, y)
				if err != nil {
					t.Fatalf("round %d step %d: CollectMoves: %v", round, step, err)
				}
				if len(moves) > 0 {
					mv := moves[rng.Intn(len(moves))]
					if err := b.ApplyMove(mv); err != nil {
						t.Fatalf("round %d step %d: ApplyMove(%v): %v", round, step, mv, err)
					}
				}
			case 4:
				moves, err := b.CollectMoves(x, y)
				if err != nil {
					t.Fatalf("round %d step %d: CollectMoves: %v", round, step, err)
				}
				if len(moves) > 0 {
					mv := moves[rng.Intn(len(moves))]
					if _, err := b.CausesSelfCheck(mv); err != nil {
						t.Fatalf("round %d step %d: CausesSelfCheck(%v): %v", round, step, mv, err)
					}
				}
			}

			checkIndexConsistency(t, b)
			if t.Failed() {
				t.Fatalf("round %d step %d: invariants broken", round, step)
			}
		}
	}
}

// TestRandomizedGamePlay plays random legal moves from the starting position
// and checks that game-layer state stays coherent.
func TestRandomizedGamePlay(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 5; round++ {
		g, err := NewDefaultGame()
		if err != nil {
			t.Fatal(err)
		}

		for ply := 0; ply < 60; ply++ {
			if g.ResultIfOver() != StatusActive {
				break
			}
			moves := g.Board().LegalMovesFor(g.Turn())
			if len(moves) == 0 {
				t.Fatalf("round %d ply %d: active game with no legal moves", round, ply)
			}
			mover := g.Turn()
			mv := moves[rng.Intn(len(moves))]
			if err := g.Play(mv); err != nil {
				t.Fatalf("round %d ply %d: Play(%v): %v", round, ply, mv, err)
			}
			if g.Turn() != mover.Opponent() {
				t.Fatalf("round %d ply %d: turn did not flip", round, ply)
			}
			if g.Board().IsInCheck(mover) {
				t.Fatalf("round %d ply %d: legal move %v left the mover in check", round, ply, mv)
			}
			checkIndexConsistency(t, g.Board())
			if t.Failed() {
				t.FailNow()
			}
		}
	}
}
