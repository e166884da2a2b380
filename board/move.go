package board

import "fmt"

// Point identifies a board intersection. Rows are numbered from the
// bottom edge, columns from the left, both 0-based.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type MoveKind byte

const (
	Place MoveKind = iota
	Pass
	Skip
)

// Move is either a stone placement at a point, a voluntary pass, or a
// skip (the involuntary non-move recorded when a throw lands on an
// illegal point).
type Move struct {
	Kind  MoveKind
	Point Point
}

func PlaceMove(p Point) Move {
	return Move{Kind: Place, Point: p}
}

var (
	PassMove = Move{Kind: Pass}
	SkipMove = Move{Kind: Skip}
)
