package bot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var knownCommands = []string{
	"name",
	"list_commands",
	"boardsize",
	"komi",
	"clear_board",
	"frisbee-epsilon",
	"frisbee-reg_genmove",
	"frisbee-play",
	"quit",
}

type engine struct {
	name    string
	moves   []string
	movenum int
}

func newEngine(name string, moves []string) *engine {
	return &engine{name: name, moves: moves}
}

// run serves commands until quit or EOF. Each response is framed the
// GTP way: a marker line followed by a blank line.
func (e *engine) run(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		id, cmd, args := splitCommand(line)
		if cmd == "" {
			continue
		}

		ok, reply := e.handle(cmd, args)
		marker := "="
		if !ok {
			marker = "?"
		}
		fmt.Fprintf(out, "%s%s %s\n\n", marker, id, reply)

		if cmd == "quit" && ok {
			return nil
		}
	}
}

// splitCommand strips comments and whitespace and peels off the
// optional numeric command id.
func splitCommand(line string) (id, cmd string, args []string) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", "", nil
	}
	if isDigits(fields[0]) {
		id, fields = fields[0], fields[1:]
		if len(fields) == 0 {
			return id, "", nil
		}
	}
	args = fields[1:]
	if len(args) == 0 {
		args = nil
	}
	return id, strings.ToLower(fields[0]), args
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func (e *engine) handle(cmd string, args []string) (ok bool, reply string) {
	switch cmd {
	case "name":
		return true, e.name
	case "list_commands":
		return true, strings.Join(knownCommands, "\n")
	case "frisbee-reg_genmove":
		move := e.moves[e.movenum%len(e.moves)]
		e.movenum++
		return true, strings.TrimSpace(move)
	case "clear_board":
		e.movenum = 0
		return true, ""
	case "boardsize", "komi", "frisbee-epsilon", "frisbee-play", "quit":
		return true, ""
	}
	return false, "unknown command"
}
