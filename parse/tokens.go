package parse

import (
	"regexp"

	"github.com/arr-ai/kindtree/value"
)

//nolint:gochecknoglobals
var (
	tokenRE    = regexp.MustCompile(`\A[` + value.Whitespace + `]*([^` + value.Whitespace + `]+)`)
	trailingRE = regexp.MustCompile(`\A[` + value.Whitespace + `]*`)
)

// Tokens splits a scanner into whitespace-delimited tokens and remembers
// where the most recent one came from.
type Tokens struct {
	rest Scanner
	last Scanner
}

var _ value.TokenSource = (*Tokens)(nil)

func NewTokens(s *Scanner) *Tokens {
	return &Tokens{rest: *s, last: *s.Slice(0, 0)}
}

// Next returns the next token, or false once only whitespace remains. After a
// false result, Position reports the end of the input.
func (t *Tokens) Next() (string, bool) {
	var captures [1]Scanner
	if _, ok := t.rest.EatRegexp(tokenRE, nil, captures[:]); ok {
		t.last = captures[0]
		return t.last.String(), true
	}
	t.rest.EatRegexp(trailingRE, nil, nil)
	t.last = *t.rest.Slice(0, 0)
	return "", false
}

// Last is the scanner holding the most recent token.
func (t *Tokens) Last() Scanner {
	return t.last
}

// Rest is whatever has not been tokenised yet.
func (t *Tokens) Rest() Scanner {
	return t.rest
}

// The 1-indexed line and column of the most recent token.
func (t *Tokens) Position() (int, int) {
	return t.last.Position()
}

func (t *Tokens) Filename() string {
	return t.rest.Filename()
}
