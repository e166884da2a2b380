package gtp

import (
	"errors"
	"testing"
)

func TestCutResponse(t *testing.T) {
	cases := []struct {
		raw     string
		ok      bool
		payload string
	}{
		{"=123 foo", true, "foo"},
		{"?77 bad", false, "bad"},
		{"= C13\n\n", true, "C13"},
		{"=", true, ""},
		{"?", false, ""},
		{"=99", true, ""},
		{"= name\nfrisbee-reg_genmove\nlist_commands\n\n", true,
			"name\nfrisbee-reg_genmove\nlist_commands"},
	}
	for _, tc := range cases {
		ok, payload, err := CutResponse(tc.raw)
		if err != nil {
			t.Errorf("CutResponse(%q): unexpected error %v", tc.raw, err)
			continue
		}
		if ok != tc.ok || payload != tc.payload {
			t.Errorf("CutResponse(%q) = (%v, %q), want (%v, %q)",
				tc.raw, ok, payload, tc.ok, tc.payload)
		}
	}
}

func TestCutResponseFormatError(t *testing.T) {
	for _, raw := range []string{"", "hello", " = ok", "!1 ok"} {
		_, _, err := CutResponse(raw)
		if !errors.Is(err, ErrFormat) {
			t.Errorf("CutResponse(%q): got %v, want ErrFormat", raw, err)
		}
	}
}
