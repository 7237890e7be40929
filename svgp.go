// Copyright 2017 The okdraw Authors. All rights reserved.

// svgp.go implements the path mini-language: tokenizing a path string into
// Commands and serializing Commands back to a string.

package okdraw

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

type (
	ErrorMode uint8

	// Command is one path instruction. Letter is one of MLHVCSQTAZ, lower case
	// when the coordinates are relative to the current point.
	Command struct {
		Letter byte
		Args   []float64
	}

	// Path is an ordered list of Commands.
	Path []Command

	// PathInput is what Parse accepts: a RawPath to tokenize or a Path that
	// was parsed before and only needs cloning.
	PathInput interface {
		pathInput()
	}

	// RawPath is a path in its string form, e.g. "M0,0L10,10".
	RawPath string

	pathScanner struct {
		src       []byte
		pos       int
		ErrorMode ErrorMode
		path      Path
		err       error
	}
)

var (
	ErrParamMismatch  = errors.New("param mismatch")
	ErrCommandUnknown = errors.New("unknown command")
	ErrZeroLengthID   = errors.New("zero length id")
	ErrBadStop        = errors.New("bad gradient stop")
	ErrGradientType   = errors.New("unknown gradient type")
)

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

func (RawPath) pathInput() {}
func (Path) pathInput()    {}

// argCount returns the fixed number of arguments taken by a command letter.
func argCount(letter byte) (int, bool) {
	switch letter | 0x20 {
	case 'a':
		return 7, true
	case 'c':
		return 6, true
	case 'q', 's':
		return 4, true
	case 'l', 'm', 't':
		return 2, true
	case 'h', 'v':
		return 1, true
	case 'z':
		return 0, true
	}
	return 0, false
}

func isCommand(b byte) bool {
	_, ok := argCount(b)
	return ok
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\n' || b == '\r' || b == '\t' || b == '\f'
}

// ParsePath parses a path string leniently. Unrecognized input is skipped
// and an empty string gives a nil Path.
func ParsePath(s string) Path {
	p, _ := Parse(RawPath(s))
	return p
}

// Parse turns a PathInput into a Path. A Path input is deep copied. If errMode
// is provided, the first value determines whether unrecognized input is
// ignored (the default), logged, or reported as an error.
func Parse(in PathInput, errMode ...ErrorMode) (Path, error) {
	switch v := in.(type) {
	case nil:
		return nil, nil
	case Path:
		return v.Clone(), nil
	case RawPath:
		if len(v) == 0 {
			return nil, nil
		}
		s := &pathScanner{src: []byte(v)}
		if len(errMode) > 0 {
			s.ErrorMode = errMode[0]
		}
		return s.scan()
	}
	return nil, nil
}

func (s *pathScanner) scan() (Path, error) {
	for s.pos < len(s.src) && s.err == nil {
		b := s.src[s.pos]
		if isCommand(b) {
			s.pos++
			s.addSeg(b, s.readArgs())
			continue
		}
		start := s.pos
		for s.pos < len(s.src) && !isCommand(s.src[s.pos]) {
			s.pos++
		}
		s.skip(s.src[start:s.pos])
	}
	if s.err != nil {
		return s.path, s.err
	}
	return s.path, nil
}

// readArgs reads the run of numbers following a command letter. The run ends
// at the next command letter or at the first byte that cannot start a number.
func (s *pathScanner) readArgs() []float64 {
	var args []float64
	for {
		for s.pos < len(s.src) && isSeparator(s.src[s.pos]) {
			s.pos++
		}
		if s.pos >= len(s.src) || isCommand(s.src[s.pos]) {
			return args
		}
		f, n := pstrconv.ParseFloat(s.src[s.pos:])
		if n == 0 {
			return args
		}
		args = append(args, f)
		s.pos += n
	}
}

// readNumbers reads a comma or space separated list of numbers as found in
// points, viewBox and transform attributes.
func readNumbers(v string) ([]float64, error) {
	src := []byte(v)
	var nums []float64
	for i := 0; i < len(src); {
		if isSeparator(src[i]) {
			i++
			continue
		}
		f, n := pstrconv.ParseFloat(src[i:])
		if n == 0 {
			return nums, fmt.Errorf("bad number list %q: %w", v, ErrParamMismatch)
		}
		nums = append(nums, f)
		i += n
	}
	return nums, nil
}

// skip handles bytes that are neither commands nor part of an argument run.
func (s *pathScanner) skip(junk []byte) {
	if len(strings.TrimFunc(string(junk), func(r rune) bool {
		return r < 0x80 && isSeparator(byte(r))
	})) == 0 {
		return
	}
	switch s.ErrorMode {
	case StrictErrorMode:
		s.err = ErrCommandUnknown
	case WarnErrorMode:
		log.Println("Ignoring path data " + strconv.Quote(string(junk)))
	}
}

// addSeg emits the commands for one letter and its argument run. A move with
// more than one pair is followed by implicit line commands, and any command is
// repeated while a full set of arguments remains.
func (s *pathScanner) addSeg(k byte, args []float64) {
	n, _ := argCount(k)
	if k|0x20 == 'm' && len(args) > 2 {
		s.path = append(s.path, Command{Letter: k, Args: args[0:2:2]})
		args = args[2:]
		k = k - 'm' + 'l'
	}
	if n == 0 {
		s.path = append(s.path, Command{Letter: k})
	} else {
		if len(args) < n {
			s.mismatch(k, args)
			return
		}
		for len(args) >= n {
			s.path = append(s.path, Command{Letter: k, Args: args[0:n:n]})
			args = args[n:]
		}
	}
	if len(args) > 0 {
		s.mismatch(k, args)
	}
}

func (s *pathScanner) mismatch(k byte, left []float64) {
	switch s.ErrorMode {
	case StrictErrorMode:
		s.err = ErrParamMismatch
	case WarnErrorMode:
		log.Printf("Ignoring %d dangling values after %c command", len(left), k)
	}
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	c := make(Path, len(p))
	for i, cmd := range p {
		c[i] = cmd.Clone()
	}
	return c
}

// Clone returns a copy of the command that does not share its argument slice.
func (c Command) Clone() Command {
	if c.Args == nil {
		return Command{Letter: c.Letter}
	}
	return Command{Letter: c.Letter, Args: append([]float64(nil), c.Args...)}
}

// end returns the last coordinate pair of the command.
func (c Command) end() (x, y float64, ok bool) {
	if l := len(c.Args); l >= 2 {
		return c.Args[l-2], c.Args[l-1], true
	}
	return 0, 0, false
}

// String serializes the path, e.g. "M0,0L10,10Z". Parsing the result yields
// the same commands. NaN and infinite arguments are written as 0.
func (p Path) String() string {
	var b strings.Builder
	for _, c := range p {
		b.WriteString(c.String())
	}
	return b.String()
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteByte(c.Letter)
	for i, a := range c.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		if math.IsNaN(a) || math.IsInf(a, 0) {
			a = 0
		}
		b.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
	}
	return b.String()
}
