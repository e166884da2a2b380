package bot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	e := newEngine("test-bot", []string{"C10", "pass"})

	ok, reply := e.handle("name", nil)
	assert.True(t, ok)
	assert.Equal(t, "test-bot", reply)

	ok, reply = e.handle("list_commands", nil)
	assert.True(t, ok)
	assert.Contains(t, reply, "frisbee-reg_genmove")
	assert.Contains(t, reply, "frisbee-play")

	// Moves rotate.
	for _, want := range []string{"C10", "pass", "C10"} {
		ok, reply = e.handle("frisbee-reg_genmove", []string{"B"})
		assert.True(t, ok)
		assert.Equal(t, want, reply)
	}

	ok, reply = e.handle("clear_board", nil)
	assert.True(t, ok)
	ok, reply = e.handle("frisbee-reg_genmove", []string{"B"})
	assert.True(t, ok)
	assert.Equal(t, "C10", reply)

	ok, reply = e.handle("shout", nil)
	assert.False(t, ok)
	assert.Equal(t, "unknown command", reply)
}

func TestSplitCommand(t *testing.T) {
	cases := []struct {
		line string
		id   string
		cmd  string
		args []string
	}{
		{"name\n", "", "name", nil},
		{"17 boardsize 19\n", "17", "boardsize", []string{"19"}},
		{"  KOMI   7.5  \n", "", "komi", []string{"7.5"}},
		{"play B C3 # trailing comment\n", "", "play", []string{"B", "C3"}},
		{"# just a comment\n", "", "", nil},
		{"\n", "", "", nil},
	}
	for _, tc := range cases {
		id, cmd, args := splitCommand(tc.line)
		assert.Equal(t, tc.id, id, "line %q", tc.line)
		assert.Equal(t, tc.cmd, cmd, "line %q", tc.line)
		assert.Equal(t, tc.args, args, "line %q", tc.line)
	}
}

func TestRunFraming(t *testing.T) {
	in := strings.NewReader("list_commands\n5 frisbee-reg_genmove B\nbogus\nquit\n")
	var out bytes.Buffer

	e := newEngine("test-bot", []string{"C10"})
	require.NoError(t, e.run(in, &out))

	responses := strings.Split(out.String(), "\n\n")
	require.Len(t, responses, 5) // four replies plus a trailing empty chunk
	assert.True(t, strings.HasPrefix(responses[0], "= "))
	assert.Equal(t, "=5 C10", responses[1])
	assert.Equal(t, "? unknown command", responses[2])
	assert.Equal(t, "= ", responses[3])
	assert.Equal(t, "", responses[4])
}
