package svg

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	tokNumber tokenKind = iota
	tokCommand
	tokJunk
)

// token is one field of a path data string, classified as a numeric
// literal, a single-letter command, or junk.
type token struct {
	kind tokenKind
	cmd  byte
	num  float64
}

// splitPathData splits a path data string on commas and whitespace. The
// same rule is used by the wall filter's segment probe and the path
// interpreter, so both see identical field positions.
func splitPathData(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func tokenize(d string) []token {
	fields := splitPathData(d)
	toks := make([]token, len(fields))
	for i, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			toks[i] = token{kind: tokNumber, num: v}
		} else if len(f) == 1 {
			toks[i] = token{kind: tokCommand, cmd: f[0]}
		} else {
			toks[i] = token{kind: tokJunk}
		}
	}
	return toks
}
