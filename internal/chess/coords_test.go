package chess

import "testing"

func TestToDisplay(t *testing.T) {
	tests := []struct {
		x, y     int
		expected string
	}{
		{9, 0, "A1"},
		{0, 9, "J10"},
		{0, 0, "A10"},
		{9, 9, "J1"},
		{5, 4, "E5"},
	}

	for _, test := range tests {
		got, err := ToDisplay(test.x, test.y, 10, 10)
		if err != nil {
			t.Fatalf("ToDisplay(%d,%d) returned error: %v", test.x, test.y, err)
		}
		if got != test.expected {
			t.Errorf("ToDisplay(%d,%d) = %s, expected %s", test.x, test.y, got, test.expected)
		}
	}
}

func TestToDisplayErrors(t *testing.T) {
	if _, err := ToDisplay(-1, 0, 10, 10); err == nil {
		t.Error("Expected error for negative x")
	}
	if _, err := ToDisplay(10, 0, 10, 10); err == nil {
		t.Error("Expected error for x out of range")
	}
	if _, err := ToDisplay(0, 0, 30, 27); err == nil {
		t.Error("Expected error for width > 26")
	}
}

func TestFromDisplay(t *testing.T) {
	tests := []struct {
		notation string
		x, y     int
	}{
		{"A1", 9, 0},
		{"a1", 9, 0},
		{"j10", 0, 9},
		{" F1 ", 9, 5},
		{"f10", 0, 5},
	}

	for _, test := range tests {
		x, y, err := FromDisplay(test.notation, 10, 10)
		if err != nil {
			t.Fatalf("FromDisplay(%q) returned error: %v", test.notation, err)
		}
		if x != test.x || y != test.y {
			t.Errorf("FromDisplay(%q) = (%d,%d), expected (%d,%d)", test.notation, x, y, test.x, test.y)
		}
	}
}

func TestFromDisplayErrors(t *testing.T) {
	invalid := []string{"", "A", "A0", "A11", "K1", "1A", "Axx", "?3"}
	for _, notation := range invalid {
		if _, _, err := FromDisplay(notation, 10, 10); err == nil {
			t.Errorf("FromDisplay(%q): expected error", notation)
		}
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	for width := 1; width <= 26; width++ {
		for x := 0; x < 10; x++ {
			for y := 0; y < width; y++ {
				notation, err := ToDisplay(x, y, 10, width)
				if err != nil {
					t.Fatalf("ToDisplay(%d,%d,10,%d) returned error: %v", x, y, width, err)
				}
				gx, gy, err := FromDisplay(notation, 10, width)
				if err != nil {
					t.Fatalf("FromDisplay(%q,10,%d) returned error: %v", notation, width, err)
				}
				if gx != x || gy != y {
					t.Fatalf("round trip (%d,%d) via %q = (%d,%d)", x, y, notation, gx, gy)
				}
			}
		}
	}
}
