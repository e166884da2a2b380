package play

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/frisbee-go/frisbee/board"
	"github.com/frisbee-go/frisbee/cmd/internal/logging"
	"github.com/frisbee-go/frisbee/gtp"
	"github.com/frisbee-go/frisbee/referee"
	"github.com/frisbee-go/frisbee/sgf"
)

type Command struct {
	black string
	white string

	size    int
	komi    float64
	epsilon float64

	allowInvalid bool
	printBoard   bool

	out  string
	seed int64
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Referee a Frisbee Go game between two engines" }
func (*Command) Usage() string {
	return `play -black CMD -white CMD [flags]

Spawn two engine processes, drive them through a Frisbee Go game over
the GTP-style pipe protocol, and stop at the double pass.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.black, "black", "", "black engine command line")
	flags.StringVar(&c.white, "white", "", "white engine command line")
	flags.IntVar(&c.size, "size", 19, "board size")
	flags.Float64Var(&c.komi, "komi", 7.5, "komi")
	flags.Float64Var(&c.epsilon, "epsilon", 0.2, "frisbee deflection probability per direction")
	flags.BoolVar(&c.allowInvalid, "allow-invalid-moves", false, "tolerate engines proposing invalid moves")
	flags.BoolVar(&c.printBoard, "print-board", false, "print the board after each move")
	flags.StringVar(&c.out, "out", "", "write an SGF record of the game to this file")
	flags.Int64Var(&c.seed, "seed", 0, "random seed for deflections (0 seeds from the clock)")
}

// Commands both engines must have declared in list_commands for the
// referee to drive them.
var requiredCommands = []string{
	"frisbee-epsilon",
	"frisbee-reg_genmove",
	"frisbee-play",
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logging.New()
	defer log.Sync()

	if c.black == "" || c.white == "" {
		log.Error("both -black and -white engine commands are required")
		return subcommands.ExitUsageError
	}

	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	black, err := gtp.NewClient(strings.Fields(c.black), board.Black, log)
	if err != nil {
		log.Errorf("spawn black: %v", err)
		return subcommands.ExitFailure
	}
	defer black.Close()

	white, err := gtp.NewClient(strings.Fields(c.white), board.White, log)
	if err != nil {
		log.Errorf("spawn white: %v", err)
		return subcommands.ExitFailure
	}
	defer white.Close()

	log.Infof("black: %s, white: %s", black.Name(), white.Name())
	for _, cl := range []*gtp.Client{black, white} {
		for _, cmd := range requiredCommands {
			if !cl.Supports(cmd) {
				log.Warnf("%s (%s) does not list %q in list_commands",
					cl.Color(), cl.Name(), cmd)
			}
		}
	}

	game := referee.NewGame(referee.Config{
		Size:         c.size,
		Komi:         c.komi,
		Epsilon:      c.epsilon,
		AllowInvalid: c.allowInvalid,
		ShowBoard:    c.printBoard,
		Out:          os.Stdout,
		Log:          log,
		Rand:         rand.New(rand.NewSource(seed)),
	}, black, white)

	if err := game.Play(); err != nil {
		log.Errorf("game aborted: %v", err)
		return subcommands.ExitFailure
	}
	log.Infof("game over after %d moves", len(game.Moves()))

	if c.out != "" {
		record := sgf.New(c.size, c.komi)
		for _, m := range game.Moves() {
			record.Add(m.Color, m.Move)
		}
		if err := os.WriteFile(c.out, []byte(record.Render()), 0644); err != nil {
			log.Errorf("write %s: %v", c.out, err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}
