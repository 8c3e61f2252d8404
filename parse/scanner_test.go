package parse

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerLineColumn(t *testing.T) {
	t.Parallel()

	scanner := NewScannerWithFilename("one\ntwo\nthree\nfour", "")

	// test the scanner starts at position 1,1
	assertLineColumn(t, scanner, 1, 1)

	// skip within the same line
	assertLineColumn(t, scanner.Skip(1), 1, 2)

	// a slice starts where it was cut from
	assertLineColumn(t, scanner.Slice(4, 7), 2, 1)
	assert.Equal(t, "two", scanner.Slice(4, 7).String())

	// skip multiple lines and into a column
	assertLineColumn(t, scanner.Skip(16), 4, 3)
}

func TestScannerEatRegexp(t *testing.T) {
	t.Parallel()

	scanner := NewScannerWithFilename("12 abc", "in.txt")
	var match Scanner
	captures := make([]Scanner, 1)
	n, ok := scanner.EatRegexp(regexp.MustCompile(`\A(\d+) `), &match, captures)
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, "12 ", match.String())
	assert.Equal(t, "12", captures[0].String())
	assert.Equal(t, "abc", scanner.String())
	assert.Equal(t, "in.txt", scanner.Filename())
	assertLineColumn(t, scanner, 1, 4)

	_, ok = scanner.EatRegexp(regexp.MustCompile(`\A\d`), nil, nil)
	assert.False(t, ok)
	assert.Equal(t, "abc", scanner.String())

	assert.Panics(t, func() {
		scanner.EatRegexp(regexp.MustCompile(`c`), nil, nil)
	})
}

func TestScannerZeroValue(t *testing.T) {
	t.Parallel()

	var s Scanner
	assert.Equal(t, "", s.String())
	assert.Equal(t, "", s.Filename())
	l, c := s.Position()
	assert.Zero(t, l)
	assert.Zero(t, c)
}

func assertLineColumn(t *testing.T, scanner *Scanner, line, column int) {
	l, c := scanner.Position()
	assert.Equal(t, line, l)
	assert.Equal(t, column, c)
}
