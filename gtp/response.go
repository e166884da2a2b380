// Package gtp implements the referee's side of the GTP-style engine
// protocol: response framing, vertex notation, and a client that
// drives one engine subprocess over its stdin/stdout pipes.
package gtp

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrFormat reports a response that does not follow the protocol's
// `[=?][0-9]*<payload>` framing.
var ErrFormat = errors.New("invalid GTP response format")

var responseRE = regexp.MustCompile(`(?s)^([=?])[0-9]*(.*)$`)

// CutResponse splits one raw response into its success marker and
// payload, with the echoed command id and surrounding whitespace
// stripped. The raw text must begin with '=' or '?'.
func CutResponse(raw string) (ok bool, payload string, err error) {
	m := responseRE.FindStringSubmatch(raw)
	if m == nil {
		return false, "", fmt.Errorf("%w: %q", ErrFormat, raw)
	}
	return m[1] == "=", strings.TrimSpace(m[2]), nil
}
