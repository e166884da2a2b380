// Package sgf renders a finished game as a minimal SGF (FF[4]) record.
package sgf

import (
	"fmt"
	"strings"

	"github.com/frisbee-go/frisbee/board"
)

type node struct {
	color board.Color
	move  board.Move
}

// Record collects the committed moves of one game.
type Record struct {
	size  int
	komi  float64
	nodes []node
}

func New(size int, komi float64) *Record {
	return &Record{size: size, komi: komi}
}

func (r *Record) Add(c board.Color, m board.Move) {
	r.nodes = append(r.nodes, node{color: c, move: m})
}

// Render produces the SGF text. Passes become empty move properties;
// skips are recorded the same way, annotated so the record stays
// readable.
func (r *Record) Render() string {
	var out strings.Builder
	fmt.Fprintf(&out, "(;FF[4]GM[1]SZ[%d]KM[%.1f]", r.size, r.komi)
	for _, n := range r.nodes {
		switch n.move.Kind {
		case board.Pass:
			fmt.Fprintf(&out, ";%s[]", n.color)
		case board.Skip:
			fmt.Fprintf(&out, ";%s[]C[skip]", n.color)
		default:
			fmt.Fprintf(&out, ";%s[%s]", n.color, r.coords(n.move.Point))
		}
	}
	out.WriteString(")")
	return out.String()
}

// coords converts a board point to SGF letter-pair coordinates, which
// count columns left-to-right and rows top-down.
func (r *Record) coords(p board.Point) string {
	return fmt.Sprintf("%c%c", 'a'+p.Col, 'a'+(r.size-1-p.Row))
}
