package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// Board coordinates are 0-indexed with the origin at the top-left corner:
// x grows downward (0..height-1), y grows rightward (0..width-1).
//
// Display notation is standard file+rank: rank 1 is the bottom row
// (rank = height - x) and the file letter indexes the column (A..Z),
// which limits display conversion to boards at most 26 squares wide.

// Coord is a board square address.
type Coord struct {
	X int
	Y int
}

// ToDisplay converts (x, y) to file+rank notation for a height×width board,
// e.g. (9, 0) -> "A1" on a 10×10 board.
func ToDisplay(x, y, height, width int) (string, error) {
	if x < 0 || x >= height || y < 0 || y >= width {
		return "", fmt.Errorf("%w: (x=%d, y=%d) on %dx%d board", ErrOutOfBounds, x, y, height, width)
	}
	if width > 26 {
		return "", fmt.Errorf("display notation supports width <= 26, got %d", width)
	}
	return fmt.Sprintf("%c%d", 'A'+byte(y), height-x), nil
}

// FromDisplay converts file+rank notation back to (x, y). The file letter is
// case-insensitive.
func FromDisplay(notation string, height, width int) (int, int, error) {
	if width > 26 {
		return 0, 0, fmt.Errorf("display notation supports width <= 26, got %d", width)
	}
	s := strings.ToUpper(strings.TrimSpace(notation))
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("invalid square notation %q", notation)
	}
	file := s[0]
	if file < 'A' || file > 'Z' {
		return 0, 0, fmt.Errorf("invalid file in square notation %q", notation)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid rank in square notation %q", notation)
	}
	if rank < 1 || rank > height {
		return 0, 0, fmt.Errorf("rank %d out of range 1..%d", rank, height)
	}
	y := int(file - 'A')
	if y >= width {
		return 0, 0, fmt.Errorf("file %c out of range for board width %d", file, width)
	}
	return height - rank, y, nil
}
