package gtp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/frisbee-go/frisbee/board"
)

// maxResponseBytes bounds how much a misbehaving engine can make us
// buffer before the exchange is declared malformed.
const maxResponseBytes = 1 << 20

var errResponseTooLong = errors.New("response too long")

// Client owns one engine subprocess and its two pipes. All exchanges
// are strictly one command at a time; Receive blocks until the engine
// finishes its response or its output stream closes.
type Client struct {
	cmd   *exec.Cmd
	color board.Color
	log   *zap.SugaredLogger

	stdinPipe  io.WriteCloser
	stdoutPipe io.ReadCloser

	read  *bufio.Reader
	write io.Writer

	name     string
	commands []string
}

// NewClient spawns the engine and performs the capability and name
// handshake. Both queries must succeed; an engine that cannot answer
// them cannot be refereed.
func NewClient(cmdline []string, color board.Color, log *zap.SugaredLogger) (*Client, error) {
	if len(cmdline) == 0 {
		return nil, fmt.Errorf("%s: empty engine command", color)
	}
	cmd := &exec.Cmd{
		Args: cmdline,
	}
	if path, err := exec.LookPath(cmdline[0]); err != nil {
		return nil, fmt.Errorf("%s: %w", color, err)
	} else {
		cmd.Path = path
	}

	cl := &Client{
		cmd:   cmd,
		color: color,
		log:   log,
	}

	if stdin, err := cmd.StdinPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdinPipe = stdin
		cl.write = stdin
	}

	if stdout, err := cmd.StdoutPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdoutPipe = stdout
		cl.read = bufio.NewReader(stdout)
	}

	if err := cl.cmd.Start(); err != nil {
		cl.Close()
		return nil, fmt.Errorf("%s: start %q: %w", color, cmdline[0], err)
	}

	if resp, err := cl.handshake("list_commands"); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.commands = strings.Split(resp, "\n")
	}

	if resp, err := cl.handshake("name"); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.name = resp
	}

	return cl, nil
}

func (c *Client) handshake(cmd string) (string, error) {
	ok, resp, err := c.Interact(cmd)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s: handshake %q failed: %s", c.color, cmd, resp)
	}
	return resp, nil
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Color() board.Color {
	return c.color
}

// Supports reports whether the engine listed cmd in its
// list_commands response.
func (c *Client) Supports(cmd string) bool {
	for _, known := range c.commands {
		if strings.TrimSpace(known) == cmd {
			return true
		}
	}
	return false
}

// Send writes one command line to the engine. The pipe is unbuffered,
// so the bytes reach the engine immediately.
func (c *Client) Send(cmd string) error {
	c.log.Debugf("%s << %q", c.color, cmd)
	if _, err := fmt.Fprintf(c.write, "%s\n", cmd); err != nil {
		return fmt.Errorf("%s: send %q: %w", c.color, cmd, err)
	}
	return nil
}

// Receive reads the engine's next response: lines up to a blank line
// following at least one earlier line. If the stream closes first,
// whatever accumulated is handed to the framer, which generally
// rejects it. This call blocks the whole referee.
func (c *Client) Receive() (bool, string, error) {
	var buf strings.Builder
	seen := false
	for {
		line, err := c.readLine(buf.Len())
		buf.WriteString(line)
		if errors.Is(err, errResponseTooLong) {
			return false, "", fmt.Errorf("%s: response exceeded %d bytes: %w",
				c.color, maxResponseBytes, ErrFormat)
		}
		if err != nil {
			break
		}
		if line == "\n" && seen {
			break
		}
		seen = true
	}
	raw := buf.String()
	c.log.Debugf("%s >> %q", c.color, raw)
	ok, payload, err := CutResponse(raw)
	if err != nil {
		return false, "", fmt.Errorf("%s: %w", c.color, err)
	}
	return ok, payload, nil
}

// readLine reads one line, newline included, keeping the running
// response below maxResponseBytes. ReadLine hands long lines back in
// buffer-sized chunks, so a single endless line cannot grow the
// buffer without bound either.
func (c *Client) readLine(sofar int) (string, error) {
	var line []byte
	for {
		chunk, isPrefix, err := c.read.ReadLine()
		line = append(line, chunk...)
		if sofar+len(line) > maxResponseBytes {
			return string(line), errResponseTooLong
		}
		if err != nil {
			return string(line), err
		}
		if !isPrefix {
			return string(line) + "\n", nil
		}
	}
}

// Interact is the one way the referee talks to an engine during play:
// a single Send followed by a blocking Receive.
func (c *Client) Interact(cmd string) (bool, string, error) {
	if err := c.Send(cmd); err != nil {
		return false, "", err
	}
	return c.Receive()
}

// Close releases the subprocess. The quit command is the game loop's
// job; Close only tears the pipes down and reaps the process.
func (c *Client) Close() {
	if c.stdinPipe != nil {
		c.stdinPipe.Close()
	}
	if c.stdoutPipe != nil {
		c.stdoutPipe.Close()
	}
	if c.cmd.Process != nil {
		c.cmd.Process.Kill()
	}
	c.cmd.Wait()
}
