package referee

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/frisbee-go/frisbee/board"
	"github.com/frisbee-go/frisbee/gtp"
)

// Engine is one side's channel to an external engine. gtp.Client
// implements it; tests supply scripted fakes.
type Engine interface {
	// Interact sends one command and blocks for the framed response.
	Interact(cmd string) (ok bool, payload string, err error)
	// Send writes one command without awaiting a response; used only
	// for the final quit.
	Send(cmd string) error
	Name() string
}

type player struct {
	Engine
	color     board.Color
	hasPassed bool
}

type Config struct {
	Size         int
	Komi         float64
	Epsilon      float64
	AllowInvalid bool
	ShowBoard    bool

	Out  io.Writer // board renders; defaults to stdout
	Log  *zap.SugaredLogger
	Rand Rand // defaults to a time-seeded math/rand source
}

// MoveRecord is one committed move, in commit order.
type MoveRecord struct {
	Color board.Color
	Move  board.Move
}

// Game owns the live board, the ko point, and the two engine
// channels. All play is strictly sequential; nothing else ever
// touches the board.
type Game struct {
	cfg      Config
	log      *zap.SugaredLogger
	resolver Resolver

	board *board.Board
	ko    *board.Point
	moves []MoveRecord

	black, white *player
}

func NewGame(cfg Config, black, white Engine) *Game {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		cfg: cfg,
		log: cfg.Log,
		resolver: Resolver{
			Epsilon:      cfg.Epsilon,
			AllowInvalid: cfg.AllowInvalid,
			Rand:         cfg.Rand,
		},
		board: board.New(cfg.Size),
		black: &player{Engine: black, color: board.Black},
		white: &player{Engine: white, color: board.White},
	}
}

func (g *Game) Board() *board.Board {
	return g.board
}

// Moves returns the committed moves of the finished (or aborted) game.
func (g *Game) Moves() []MoveRecord {
	return g.moves
}

// setup sizes both engines and hands them the komi and epsilon. The
// protocol requires every one of these commands to succeed.
func (g *Game) setup() error {
	for _, p := range []*player{g.black, g.white} {
		for _, cmd := range []string{
			fmt.Sprintf("boardsize %d", g.cfg.Size),
			fmt.Sprintf("komi %.1f", g.cfg.Komi),
			fmt.Sprintf("frisbee-epsilon %v", g.cfg.Epsilon),
		} {
			if err := g.require(p, cmd); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) require(p *player, cmd string) error {
	ok, resp, err := p.Interact(cmd)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %q rejected: %s", p.color, cmd, resp)
	}
	return nil
}

// Play runs the game to the double-pass terminal state. Both engines
// are sent quit on every exit path, error exits included.
func (g *Game) Play() (err error) {
	defer func() {
		g.black.Send("quit")
		g.white.Send("quit")
	}()

	if err := g.setup(); err != nil {
		return err
	}

	current, opponent := g.black, g.white
	for {
		ok, proposal, err := current.Interact(fmt.Sprintf("frisbee-reg_genmove %s", current.color))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: frisbee-reg_genmove failed: %s", current.color, proposal)
		}

		res, err := g.resolver.Resolve(g.board, g.ko, current.color, proposal)
		if err != nil {
			return fmt.Errorf("%s: %w", current.color, err)
		}
		if res.Rejected {
			g.log.Warnf("%s proposed invalid move %q even though invalid moves are not allowed",
				current.color, proposal)
		}

		mv := res.Move
		current.hasPassed = mv.Kind == board.Pass
		if mv.Kind == board.Place {
			ko, err := g.board.Play(mv.Point, current.color)
			if err != nil {
				// The resolver vetted this placement; a rejection
				// here is a resolver/board mismatch.
				return fmt.Errorf("%s: board rejected resolved move %s: %w",
					current.color, gtp.FormatMove(mv), err)
			}
			g.ko = ko
		} else {
			g.ko = nil
		}
		g.moves = append(g.moves, MoveRecord{Color: current.color, Move: mv})

		report := fmt.Sprintf("frisbee-play %s %s", current.color, gtp.FormatMove(mv))
		for _, p := range []*player{current, opponent} {
			if err := g.require(p, report); err != nil {
				return err
			}
		}

		if g.cfg.ShowBoard {
			board.Render(g.cfg.Out, g.board)
		}

		if g.black.hasPassed && g.white.hasPassed {
			return nil
		}
		current, opponent = opponent, current
	}
}
