package chess

import (
	"fmt"
	"strings"
)

// DefaultLayout is the variant's 10×10 starting position in the padded
// board-diagram mini-format: rows separated by '/', cells by ',', 'x' is
// padding, the literal token "10" is ten consecutive empty cells, and piece
// tokens are <color><kind> with r→white, y→black.
const DefaultLayout = `
x,x,x,x,x,x,x,x,x,x,x,x,x,x/
x,x,x,x,x,x,x,x,x,x,x,x,x,x/
x,x,yV,yY,yR,yH,yQ,yK,yH,yR,yY,yV,x,x/
x,x,yM,yδ,yN,yδ,yY,yY,yδ,yN,yδ,yM,x,x/
x,x,yK,yP,yP,yP,yP,yP,yP,yP,yP,yK,x,x/
x,x,10,x,x/
x,x,10,x,x/
x,x,10,x,x/
x,x,10,x,x/
x,x,rK,rP,rP,rP,rP,rP,rP,rP,rP,rK,x,x/
x,x,rM,rδ,rN,rδ,rY,rY,rδ,rN,rδ,rM,x,x/
x,x,rV,rY,rR,rH,rQ,rK,rH,rR,rY,rV,x,x/
x,x,x,x,x,x,x,x,x,x,x,x,x,x/
x,x,x,x,x,x,x,x,x,x,x,x,x,x
`

var layoutColors = map[rune]Color{
	'r': White,
	'y': Black,
}

// layoutCell is a parsed content cell: a piece, or nil for an empty square.
type layoutCell struct {
	kind  string
	color Color
}

// SetupFromLayout wipes the board and repopulates it from a layout string.
// After stripping padding, every content row must hold exactly Width cells
// and there must be exactly Height content rows. The default layout's two
// royal squares (F1 and F10) are marked whenever they hold a piece.
func (b *Board) SetupFromLayout(layout string) error {
	for x := 0; x < b.Height; x++ {
		for y := 0; y < b.Width; y++ {
			if err := b.Clear(x, y); err != nil {
				return err
			}
		}
	}
	b.epTarget = nil

	rows := strings.Split(strings.TrimSpace(layout), "/")
	boardX := 0
	for srcRow, row := range rows {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}

		var cells []*layoutCell
		for _, tok := range strings.Split(row, ",") {
			tok = strings.TrimSpace(tok)
			switch {
			case tok == "" || tok == "x":
				// padding
			case tok == "10":
				for i := 0; i < 10; i++ {
					cells = append(cells, nil)
				}
			default:
				runes := []rune(tok)
				color, ok := layoutColors[runes[0]]
				if !ok || len(runes) < 2 {
					return fmt.Errorf("invalid token %q in layout row %d", tok, srcRow)
				}
				cells = append(cells, &layoutCell{kind: string(runes[1:]), color: color})
			}
		}

		// Rows that were all padding carry no content.
		if len(cells) == 0 {
			continue
		}
		if len(cells) != b.Width {
			return fmt.Errorf("layout content row %d has %d cells, want %d", boardX, len(cells), b.Width)
		}
		if boardX >= b.Height {
			return fmt.Errorf("layout has more than %d content rows", b.Height)
		}

		for y, cell := range cells {
			if cell == nil {
				continue
			}
			if err := b.Place(boardX, y, cell.kind, cell.color); err != nil {
				return fmt.Errorf("invalid piece at layout row %d, column %d: %w", boardX, y, err)
			}
		}
		boardX++
	}

	if boardX != b.Height {
		return fmt.Errorf("layout has %d content rows, want %d", boardX, b.Height)
	}

	// The variant's reserved royal squares.
	for _, sq := range []string{"F1", "F10"} {
		if p, err := b.AtDisplay(sq); err == nil && p != nil {
			if err := b.SetRoyalDisplay(sq, true); err != nil {
				return err
			}
		}
	}
	return nil
}
