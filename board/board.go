package board

import "errors"

var (
	ErrOffBoard = errors.New("point is off the board")
	ErrOccupied = errors.New("point is occupied")
)

// Board is an N×N grid of points. It implements simple Chinese-rules
// stone placement: playing a stone removes opponent groups left without
// liberties, self-capture is permitted, and a play that captures a
// single stone with a lone stone in atari reports that point as the
// simple-ko point.
type Board struct {
	size  int
	cells []Color
}

func New(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) OnBoard(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the color at p, or Empty for an off-board point.
func (b *Board) At(p Point) Color {
	if !b.OnBoard(p) {
		return Empty
	}
	return b.cells[p.Row*b.size+p.Col]
}

func (b *Board) set(p Point, c Color) {
	b.cells[p.Row*b.size+p.Col] = c
}

func (b *Board) Copy() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// neighbors enumerates the cardinal neighbors of p, including
// off-board ones; callers filter with OnBoard.
func neighbors(p Point) [4]Point {
	return [4]Point{
		{p.Row + 1, p.Col},
		{p.Row, p.Col + 1},
		{p.Row - 1, p.Col},
		{p.Row, p.Col - 1},
	}
}

// Play places a stone of color c at p, removes any opponent groups
// left without liberties, and removes the played group itself if the
// move was self-capturing. It fails on off-board or occupied points.
// The return value is the simple-ko point created by the move, if any:
// the point of a lone captured stone whose capturer is itself a lone
// stone with exactly one liberty.
func (b *Board) Play(p Point, c Color) (*Point, error) {
	if !b.OnBoard(p) {
		return nil, ErrOffBoard
	}
	if b.At(p) != Empty {
		return nil, ErrOccupied
	}
	b.set(p, c)

	captured := 0
	var lastCapture Point
	for _, d := range neighbors(p) {
		if !b.OnBoard(d) || b.At(d) != c.Flip() {
			continue
		}
		stones, libs := b.group(d)
		if libs > 0 {
			continue
		}
		for _, s := range stones {
			b.set(s, Empty)
		}
		captured += len(stones)
		lastCapture = d
	}

	own, libs := b.group(p)
	if captured == 1 && len(own) == 1 && libs == 1 {
		ko := lastCapture
		return &ko, nil
	}
	if libs == 0 {
		// Self-capture: the played group comes off again.
		for _, s := range own {
			b.set(s, Empty)
		}
	}
	return nil, nil
}

// group flood-fills the group containing p and counts its distinct
// liberties. p must hold a stone.
func (b *Board) group(p Point) (stones []Point, liberties int) {
	c := b.At(p)
	seen := make(map[Point]bool)
	libs := make(map[Point]bool)
	fringe := []Point{p}
	seen[p] = true
	for len(fringe) > 0 {
		q := fringe[len(fringe)-1]
		fringe = fringe[:len(fringe)-1]
		stones = append(stones, q)
		for _, d := range neighbors(q) {
			if !b.OnBoard(d) || seen[d] {
				continue
			}
			switch b.At(d) {
			case Empty:
				libs[d] = true
			case c:
				seen[d] = true
				fringe = append(fringe, d)
			}
		}
	}
	return stones, len(libs)
}
