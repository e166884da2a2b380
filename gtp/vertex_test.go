package gtp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frisbee-go/frisbee/board"
)

func TestParseVertex(t *testing.T) {
	cases := []struct {
		in   string
		size int
		want board.Point
	}{
		{"A1", 19, board.Point{Row: 0, Col: 0}},
		{"C13", 19, board.Point{Row: 12, Col: 2}},
		{"c13", 19, board.Point{Row: 12, Col: 2}},
		{"J1", 19, board.Point{Row: 0, Col: 8}},
		{"T19", 19, board.Point{Row: 18, Col: 18}},
		{" E5 ", 9, board.Point{Row: 4, Col: 4}},
	}
	for _, tc := range cases {
		got, err := ParseVertex(tc.in, tc.size)
		if err != nil {
			t.Errorf("ParseVertex(%q, %d): %v", tc.in, tc.size, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseVertex(%q, %d) = %v, want %v", tc.in, tc.size, got, tc.want)
		}
	}
}

func TestParseVertexRejects(t *testing.T) {
	for _, tc := range []struct {
		in   string
		size int
	}{
		{"", 19},
		{"I5", 19},
		{"Z3", 19},
		{"C0", 19},
		{"C20", 19},
		{"K5", 9},
		{"pass", 19},
		{"5C", 19},
	} {
		if _, err := ParseVertex(tc.in, tc.size); err == nil {
			t.Errorf("ParseVertex(%q, %d): expected error", tc.in, tc.size)
		}
	}
}

func TestFormatVertex(t *testing.T) {
	assert.Equal(t, "C13", FormatVertex(board.Point{Row: 12, Col: 2}))
	assert.Equal(t, "A1", FormatVertex(board.Point{Row: 0, Col: 0}))
	assert.Equal(t, "J9", FormatVertex(board.Point{Row: 8, Col: 8}))
}

func TestFormatMove(t *testing.T) {
	assert.Equal(t, "pass", FormatMove(board.PassMove))
	assert.Equal(t, "skip", FormatMove(board.SkipMove))
	assert.Equal(t, "Q16", FormatMove(board.PlaceMove(board.Point{Row: 15, Col: 15})))
}
