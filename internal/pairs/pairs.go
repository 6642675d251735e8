// Package pairs reads two lists of integers from text holding one pair per
// line. Malformed lines are skipped with a diagnostic and never abort a read.
package pairs

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// ErrInvalidUTF8 is reported for a line that is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

type Pair struct {
	Left, Right int64
}

// Lists holds the left and right columns in file order. Add is the only way
// values get in, so both slices always have the same length.
type Lists struct {
	Left  []int64
	Right []int64
}

func (l *Lists) Add(p Pair) {
	l.Left = append(l.Left, p.Left)
	l.Right = append(l.Right, p.Right)
}

func (l Lists) Len() int {
	return len(l.Left)
}

type Status int

const (
	Recorded Status = iota
	Blank
	WrongTokenCount
	BadToken
	ReadFailure
)

func (s Status) String() string {
	switch s {
	case Recorded:
		return "recorded"
	case Blank:
		return "blank"
	case WrongTokenCount:
		return "wrong token count"
	case BadToken:
		return "bad token"
	case ReadFailure:
		return "read failure"
	default:
		return "unknown"
	}
}

// Outcome is what happened to a single line.
type Outcome struct {
	Line   int
	Text   string // trimmed line
	Status Status
	Pair   Pair

	// Set for BadToken: 1 or 2, and the token as written.
	Token int
	Raw   string

	// Set for BadToken and ReadFailure.
	Err error
}

// ParseLine classifies one raw line. num is the 1-based line number.
func ParseLine(num int, raw string) Outcome {
	if !utf8.ValidString(raw) {
		return Outcome{Line: num, Status: ReadFailure, Err: ErrInvalidUTF8}
	}

	o := Outcome{Line: num, Text: strings.TrimSpace(raw)}
	if o.Text == "" {
		o.Status = Blank
		return o
	}

	fields := strings.Fields(o.Text)
	if len(fields) != 2 {
		o.Status = WrongTokenCount
		return o
	}

	var vals [2]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			o.Status = BadToken
			o.Token = i + 1
			o.Raw = f
			o.Err = err
			return o
		}
		vals[i] = v
	}

	o.Status = Recorded
	o.Pair = Pair{Left: vals[0], Right: vals[1]}
	return o
}

// Scan calls fn with the outcome of every line of r, in order. A failing
// reader produces one ReadFailure outcome and ends the scan.
func Scan(r io.Reader, fn func(Outcome)) {
	br := bufio.NewReader(r)
	for num := 1; ; num++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fn(Outcome{Line: num, Status: ReadFailure, Err: err})
			return
		}
		if line == "" && err != nil {
			return
		}
		fn(ParseLine(num, line))
		if err != nil {
			return
		}
	}
}

// Read collects every valid pair from r. Skipped lines are logged to log.
func Read(r io.Reader, log zerolog.Logger) Lists {
	var lists Lists
	Scan(r, func(o Outcome) {
		switch o.Status {
		case Recorded:
			lists.Add(o.Pair)
		case WrongTokenCount:
			log.Warn().
				Int("line", o.Line).
				Str("text", o.Text).
				Msg("line does not contain exactly two numbers separated by whitespace, skipping")
		case BadToken:
			log.Error().
				Err(o.Err).
				Int("line", o.Line).
				Str("token", o.Raw).
				Msgf("could not parse %s number, skipping", ordinal(o.Token))
		case ReadFailure:
			log.Error().
				Err(o.Err).
				Int("line", o.Line).
				Msg("could not read line, skipping")
		}
	})
	return lists
}

func ordinal(token int) string {
	if token == 1 {
		return "first"
	}
	return "second"
}
