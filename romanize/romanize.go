/*
Package romanize is the driver for universal romanization.

Typical Usage

A Romanizer is constructed once — loading the embedded descriptor and
rule tables — and is then shared, read-only, by any number of
concurrent callers:

	rz, err := romanize.New()
	if err != nil { … }
	out := rz.RomanizeString("ᚺᚨᛚᛚᛟ ᚹᛟᚱᛚᛞ", "")
	// out == "hallo world"

Romanize processes one logical line per call; newlines are the
caller's boundary. Besides the plain string form, callers may request
richer shapes carrying the lattice edges with their offsets:

	res := rz.Romanize("二千五百", "zho", romanize.Edges)
	for _, e := range res.Edges {
		fmt.Println(e.Start, e.End, e.Txt)
	}

How it works

Per line, the driver borrows a lattice, lets the rule-table matcher
populate it, runs the script augmenters in a fixed order (Braille,
Hangul, Indic, Han, numerals, kana, diacritic stripping), extracts the
best path, and releases the lattice. All per-line state lives in the
lattice; the driver itself is immutable after construction, which is
what makes concurrent calls safe.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package romanize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/uroman"
	"github.com/npillmayer/uroman/braille"
	"github.com/npillmayer/uroman/han"
	"github.com/npillmayer/uroman/hangul"
	"github.com/npillmayer/uroman/indic"
	"github.com/npillmayer/uroman/internal/ucd"
	"github.com/npillmayer/uroman/kana"
	"github.com/npillmayer/uroman/numeral"
	"github.com/npillmayer/uroman/rules"
)

// tracer traces to uroman.core .
func tracer() tracing.Trace {
	return tracing.Select("uroman.core")
}

// Shape selects the output form of a romanization call.
type Shape int

const (
	String  Shape = iota // canonical romanized string only
	Edges                // edges of the best path
	Alts                 // best path plus near-scoring alternatives
	Lattice              // the full edge set
)

// Result of one Romanize call. Str is always the canonical
// romanization (the concatenation of the best path's edge texts);
// Edges is populated for the richer shapes and ordered by
// (start, end, descending score).
type Result struct {
	Shape Shape
	Str   string
	Edges []uroman.Edge
}

// DefaultAltMargin is the score distance within which a competing
// edge is reported as an alternative.
const DefaultAltMargin = 0.5

// Romanizer owns the descriptor table, the rule table and the
// augmenter chain. It is immutable after construction; concurrent
// calls to Romanize are safe and share no mutable state beyond the
// internal lattice pool and the Hangul augmenter's mutex-guarded
// syllable cache.
type Romanizer struct {
	rules  *rules.Table
	augs   []uroman.Augmenter
	margin float64
}

// Option configures a Romanizer at construction time.
type Option func(*Romanizer)

// WithAltMargin sets the score margin for the Alts output shape.
func WithAltMargin(margin float64) Option {
	return func(rz *Romanizer) { rz.margin = margin }
}

// New loads the embedded data tables and builds the augmenter chain.
// Construction is the only fallible operation of the engine; a
// non-nil error means the embedded data is corrupt.
func New(opts ...Option) (*Romanizer, error) {
	u, err := ucd.Load()
	if err != nil {
		return nil, fmt.Errorf("romanize: descriptor table: %w", err)
	}
	tb, err := rules.Load(u)
	if err != nil {
		return nil, fmt.Errorf("romanize: rule table: %w", err)
	}
	num, err := numeral.New(u, tb)
	if err != nil {
		return nil, fmt.Errorf("romanize: numeric properties: %w", err)
	}
	rz := &Romanizer{
		rules:  tb,
		margin: DefaultAltMargin,
		augs: []uroman.Augmenter{
			braille.New(),
			hangul.New(),
			indic.New(u, tb),
			han.New(tb),
			num,
			kana.New(),
			newStripPass(u),
		},
	}
	for _, opt := range opts {
		opt(rz)
	}
	tracer().Infof("romanizer ready: %d rules, %d augmenters", tb.NumRules(), len(rz.augs))
	return rz, nil
}

// RomanizeString romanizes one line and returns the canonical string.
// lcode is an optional ISO 639 language hint; unknown hints are
// treated as absent.
func (rz *Romanizer) RomanizeString(line, lcode string) string {
	return rz.Romanize(line, lcode, String).Str
}

// Romanize romanizes one line into the requested output shape. It
// never fails: ill-formed byte sequences are replaced with U+FFFD
// before entering the lattice, and every code point is guaranteed an
// edge.
func (rz *Romanizer) Romanize(line, lcode string, shape Shape) Result {
	input := []rune(line) // invalid UTF-8 bytes become U+FFFD here
	lat := uroman.NewLattice(input, rules.NormLang(lcode))
	defer uroman.ReleaseLattice(lat)
	rz.rules.Populate(lat)
	for _, a := range rz.augs {
		a.Augment(lat)
	}
	path := lat.BestPath()
	res := Result{Shape: shape, Str: uroman.Text(path)}
	switch shape {
	case Edges:
		res.Edges = path
	case Alts:
		res.Edges = lat.Alternatives(path, rz.margin)
	case Lattice:
		res.Edges = lat.AllEdges()
	}
	return res
}

// --- Line loop --------------------------------------------------------

// FileOptions configure RomanizeFile.
type FileOptions struct {
	Lcode    string // default language hint for all lines
	Shape    Shape  // output shape per line
	MaxLines int    // stop after this many lines, 0 = no limit
}

// lcodeDirective switches the language hint for a single line:
// "::lcode yid אבי" romanizes the rest of the line as Yiddish.
const lcodeDirective = "::lcode "

// RomanizeFile reads lines from r, romanizes each and writes the
// chosen serialization to w, one line of output per line of input.
// Edge shapes serialize as JSON arrays. I/O errors are returned; data
// never causes an error.
func (rz *Romanizer) RomanizeFile(r io.Reader, w io.Writer, opts FileOptions) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	out := bufio.NewWriter(w)
	nlines := 0
	for scanner.Scan() {
		nlines++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lcode := opts.Lcode
		prefix := ""
		if rest, ok := strings.CutPrefix(line, lcodeDirective); ok {
			code, text, _ := strings.Cut(rest, " ")
			lcode, line = code, text
			prefix = lcodeDirective + code + " "
		}
		res := rz.Romanize(line, lcode, opts.Shape)
		var err error
		if opts.Shape == String {
			_, err = fmt.Fprintln(out, prefix+res.Str)
		} else {
			var buf []byte
			buf, err = MarshalEdges(res.Edges, lcode)
			if err == nil {
				_, err = fmt.Fprintln(out, string(buf))
			}
		}
		if err != nil {
			return err
		}
		if nlines%1000 == 0 {
			tracer().Infof("romanized %d lines", nlines)
		}
		if opts.MaxLines > 0 && nlines >= opts.MaxLines {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return out.Flush()
}
