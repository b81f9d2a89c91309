package chess

import "testing"

func TestIsSquareAttacked(t *testing.T) {
	b := NewBoard(10, 10)
	mustPlace(t, b, 5, 0, "R", Black)
	mustPlace(t, b, 5, 4, "P", White) // blocks the rook beyond y=4
	mustPlace(t, b, 7, 7, "N", Black)

	tests := []struct {
		x, y     int
		byColor  Color
		attacked bool
	}{
		{5, 3, Black, true},  // rook along the open part of the rank
		{5, 4, Black, true},  // the blocker itself
		{5, 5, Black, false}, // behind the blocker
		{0, 0, Black, true},  // rook along the file
		{5, 6, Black, true},  // knight
		{4, 5, White, true},  // white pawn's forward diagonal
		{6, 5, White, false}, // white pawn never attacks backward
		{9, 9, Black, false},
	}

	for _, test := range tests {
		if got := b.IsSquareAttacked(test.x, test.y, test.byColor); got != test.attacked {
			t.Errorf("IsSquareAttacked(%d,%d,%s) = %v, expected %v", test.x, test.y, test.byColor, got, test.attacked)
		}
	}
}

func TestIsInCheck(t *testing.T) {
	b := NewBoard(10, 10)
	mustPlace(t, b, 9, 5, "K", White)
	if err := b.SetRoyal(9, 5, true); err != nil {
		t.Fatal(err)
	}
	mustPlace(t, b, 0, 5, "R", Black)

	if !b.IsInCheck(White) {
		t.Error("White should be in check from the rook")
	}
	if b.IsInCheck(Black) {
		t.Error("Black has no royal pieces and is never in check")
	}

	// Interpose a piece, check disappears.
	mustPlace(t, b, 4, 5, "N", White)
	if b.IsInCheck(White) {
		t.Error("Check should be blocked by the knight")
	}
}

func TestCheckWithMultipleRoyals(t *testing.T) {
	b := NewBoard(10, 10)
	mustPlace(t, b, 9, 0, "K", White)
	mustPlace(t, b, 9, 9, "K", White)
	for _, c := range []Coord{{9, 0}, {9, 9}} {
		if err := b.SetRoyal(c.X, c.Y, true); err != nil {
			t.Fatal(err)
		}
	}
	mustPlace(t, b, 0, 9, "R", Black)

	// Any attacked royal square puts the side in check.
	if !b.IsInCheck(White) {
		t.Error("Attack on either royal square is check")
	}
	if err := b.Clear(9, 9); err != nil {
		t.Fatal(err)
	}
	if b.IsInCheck(White) {
		t.Error("Remaining royal square is not attacked")
	}
}

func TestCausesSelfCheck(t *testing.T) {
	b := NewBoard(10, 10)
	mustPlace(t, b, 9, 5, "K", White)
	if err := b.SetRoyal(9, 5, true); err != nil {
		t.Fatal(err)
	}
	mustPlace(t, b, 7, 5, "R", White) // pinned against the king
	mustPlace(t, b, 0, 5, "R", Black)

	// Moving the pinned rook off the file exposes the king.
	selfCheck, err := b.CausesSelfCheck(Move{FromX: 7, FromY: 5, ToX: 7, ToY: 0})
	if err != nil {
		t.Fatalf("CausesSelfCheck: %v", err)
	}
	if !selfCheck {
		t.Error("Moving the pinned rook should expose the king")
	}

	// Sliding along the pin file is safe.
	selfCheck, err = b.CausesSelfCheck(Move{FromX: 7, FromY: 5, ToX: 5, ToY: 5})
	if err != nil {
		t.Fatalf("CausesSelfCheck: %v", err)
	}
	if selfCheck {
		t.Error("Staying on the pin file keeps the king covered")
	}

	// Capturing the pinner is safe too.
	selfCheck, err = b.CausesSelfCheck(Move{FromX: 7, FromY: 5, ToX: 0, ToY: 5})
	if err != nil {
		t.Fatalf("CausesSelfCheck: %v", err)
	}
	if selfCheck {
		t.Error("Capturing the attacker resolves the pin")
	}
}

func TestCausesSelfCheckLeavesBoardUntouched(t *testing.T) {
	b := NewBoard(10, 10)
	mustPlace(t, b, 9, 5, "K", White)
	if err := b.SetRoyal(9, 5, true); err != nil {
		t.Fatal(err)
	}
	mustPlace(t, b, 7, 5, "R", White)
	mustPlace(t, b, 0, 5, "R", Black)
	mustPlace(t, b, 7, 2, "P", Black)

	before := b.ASCII()
	beforeWhite, beforeBlack := len(b.pieces[White]), len(b.pieces[Black])

	// Successful simulations, including a capture.
	for _, mv := range []Move{
		{FromX: 7, FromY: 5, ToX: 7, ToY: 2},
		{FromX: 7, FromY: 5, ToX: 0, ToY: 5},
		{FromX: 9, FromY: 5, ToX: 9, ToY: 4},
	} {
		if _, err := b.CausesSelfCheck(mv); err != nil {
			t.Fatalf("CausesSelfCheck(%v): %v", mv, err)
		}
	}
	// A failing simulation must also leave nothing behind.
	if _, err := b.CausesSelfCheck(Move{FromX: 3, FromY: 3, ToX: 2, ToY: 3}); err == nil {
		t.Error("Expected error for empty source")
	}

	if after := b.ASCII(); after != before {
		t.Errorf("Board changed:\nbefore:\n%s\nafter:\n%s", before, after)
	}
	if len(b.pieces[White]) != beforeWhite || len(b.pieces[Black]) != beforeBlack {
		t.Error("Index length changed")
	}
	checkIndexConsistency(t, b)
}

func TestCausesSelfCheckRestoresEnPassantTarget(t *testing.T) {
	b := NewBoard(10, 10)
	mustPlace(t, b, 9, 5, "K", White)
	if err := b.SetRoyal(9, 5, true); err != nil {
		t.Fatal(err)
	}
	mustPlace(t, b, 3, 3, "P", White)
	mustPlace(t, b, 1, 4, "P", Black)

	if err := b.ApplyMove(Move{FromX: 1, FromY: 4, ToX: 3, ToY: 4, DoubleStep: true}); err != nil {
		t.Fatal(err)
	}
	armed := b.EnPassantTarget()
	if armed == nil {
		t.Fatal("Target should be armed")
	}

	if _, err := b.CausesSelfCheck(Move{FromX: 3, FromY: 3, ToX: 2, ToY: 4, EnPassant: true}); err != nil {
		t.Fatalf("CausesSelfCheck: %v", err)
	}

	restored := b.EnPassantTarget()
	if restored == nil || *restored != *armed {
		t.Errorf("Target not restored: %+v vs %+v", restored, armed)
	}
	if b.at(3, 4) == nil {
		t.Error("Victim pawn should be back on the board")
	}
	checkIndexConsistency(t, b)
}
