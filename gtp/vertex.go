package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frisbee-go/frisbee/board"
)

// GTP column letters; 'I' is skipped by convention.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// ParseVertex converts standard vertex notation ("C13") into a board
// point on a size×size board. Rows count from the bottom edge.
func ParseVertex(s string, size int) (board.Point, error) {
	if size < 1 || size > len(columnLetters) {
		return board.Point{}, fmt.Errorf("bad board size %d", size)
	}
	v := strings.ToUpper(strings.TrimSpace(s))
	if len(v) < 2 {
		return board.Point{}, fmt.Errorf("bad vertex %q", s)
	}
	col := strings.IndexByte(columnLetters, v[0])
	if col < 0 || col >= size {
		return board.Point{}, fmt.Errorf("bad vertex %q", s)
	}
	row, err := strconv.Atoi(v[1:])
	if err != nil || row < 1 || row > size {
		return board.Point{}, fmt.Errorf("bad vertex %q", s)
	}
	return board.Point{Row: row - 1, Col: col}, nil
}

func FormatVertex(p board.Point) string {
	return fmt.Sprintf("%c%d", columnLetters[p.Col], p.Row+1)
}

// FormatMove renders a committed move as a frisbee-play argument:
// a vertex, "pass", or "skip".
func FormatMove(m board.Move) string {
	switch m.Kind {
	case board.Pass:
		return "pass"
	case board.Skip:
		return "skip"
	default:
		return FormatVertex(m.Point)
	}
}
