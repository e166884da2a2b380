// Package referee implements the Frisbee Go rules: the move resolver
// that adjudicates an engine's raw proposal, and the turn-alternating
// game loop that drives two engines to a double-pass finish.
package referee

import (
	"fmt"
	"strings"

	"github.com/frisbee-go/frisbee/board"
	"github.com/frisbee-go/frisbee/gtp"
)

// Rand supplies the single uniform draw consumed per resolution.
// *rand.Rand satisfies it; tests substitute fixed draws.
type Rand interface {
	Float64() float64
}

// Resolver turns a raw move proposal into the move that actually gets
// committed. It never mutates the live board.
type Resolver struct {
	Epsilon      float64
	AllowInvalid bool
	Rand         Rand
}

// Resolution is the outcome of adjudicating one proposal.
type Resolution struct {
	Move    board.Move
	Matched bool // the committed move is the one the engine proposed
	// Rejected marks a proposal that was illegal while illegal
	// proposals were not permitted; the engine broke its contract.
	Rejected bool
}

// Cardinal deflection offsets, tried in this exact order. The
// cumulative-threshold walk below depends on the order: with
// 4·epsilon > 1 the mass beyond the first 1.0 is unreachable, not
// renormalized.
var deflections = [4]board.Point{
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
}

// Resolve applies the Frisbee rules to one proposal: pass recognition,
// the legality gate, a single randomized deflection, and the
// post-deflection legality gate.
func (r *Resolver) Resolve(bd *board.Board, ko *board.Point, c board.Color, proposal string) (Resolution, error) {
	if strings.EqualFold(strings.TrimSpace(proposal), "pass") {
		return Resolution{Move: board.PassMove, Matched: true}, nil
	}

	p, err := gtp.ParseVertex(proposal, bd.Size())
	if err != nil {
		return Resolution{}, fmt.Errorf("unparseable proposal: %w", err)
	}

	if !r.AllowInvalid && !r.legal(bd, ko, c, p) {
		return Resolution{Move: board.SkipMove, Rejected: true}, nil
	}

	moved := r.deflect(p)
	if !r.legal(bd, ko, c, moved) {
		return Resolution{Move: board.SkipMove}, nil
	}
	return Resolution{Move: board.PlaceMove(moved), Matched: moved == p}, nil
}

// legal checks a candidate against the ko point and probes the
// placement on a throwaway copy of the board.
func (r *Resolver) legal(bd *board.Board, ko *board.Point, c board.Color, p board.Point) bool {
	if ko != nil && p == *ko {
		return false
	}
	if _, err := bd.Copy().Play(p, c); err != nil {
		return false
	}
	return true
}

// deflect draws once and walks the four directions accumulating
// epsilon of mass each; the remainder keeps the stone where it was
// aimed.
func (r *Resolver) deflect(p board.Point) board.Point {
	sum, draw := 0.0, r.Rand.Float64()
	for _, d := range deflections {
		sum += r.Epsilon
		if draw <= sum {
			return board.Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		}
	}
	return p
}
