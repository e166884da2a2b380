// Package bot implements a minimal Frisbee GTP engine on
// stdin/stdout. It answers from a canned move list, which makes it a
// deterministic opponent for exercising the referee end to end.
package bot

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/frisbee-go/frisbee/cmd/internal/logging"
)

type Command struct {
	moves string
	name  string
}

func (*Command) Name() string     { return "bot" }
func (*Command) Synopsis() string { return "Run a canned-move Frisbee GTP engine on stdin/stdout" }
func (*Command) Usage() string {
	return `bot [flags]

Speak the Frisbee GTP dialect on stdin/stdout, proposing moves from a
fixed list in rotation. Intended as a test opponent:

    frisbee play -black "frisbee bot" -white "frisbee bot -moves pass"
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.moves, "moves", "C10,C9,C8,C7,C6,pass", "comma-separated move rotation")
	flags.StringVar(&c.name, "name", "frisbee-bot", "name to report to the referee")
}

func (c *Command) Execute(ctx context.Context, flags *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logging.New()
	defer log.Sync()

	eng := newEngine(c.name, strings.Split(c.moves, ","))
	if err := eng.run(os.Stdin, os.Stdout); err != nil {
		log.Errorf("bot: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
