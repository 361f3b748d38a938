// Package isr implements a small in-memory information-retrieval engine: a
// streaming tokenizer, a hash-bucketed vocabulary store, a permuterm B-tree
// for wildcard lookups, and a conjunctive query evaluator tying them
// together.
//
// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Tokens are produced directly from a byte stream, one word at a time:
//
//  1. Skip a run of whitespace and the separator bytes ' \' ', '-', '$'.
//  2. Read a contiguous alphanumeric run, silently dropping any interior
//     '\'', '-', '$' bytes, stopping on whitespace/EOF/other punctuation.
//  3. Hand the accumulated bytes to the configured Stemmer, which reports
//     how many of them to keep.
//
// Unlike a typical full-text analyzer, there is no lowercasing, stopword
// removal, or length filtering stage here — the spec intentionally keeps the
// tokenizer to exactly these three steps, and stemming is the only
// normalization applied.
// ═══════════════════════════════════════════════════════════════════════════════

package isr

import (
	"bufio"
	"io"

	snowballeng "github.com/kljensen/snowball/english"
)

// Stemmer reduces the bytes in buf[lo:hi+1] to their root form, operating in
// place, and returns the index of the last retained byte (so the new length
// is the return value plus one). This is the "black box" stemmer contract
// from the spec: callers never need to know the algorithm, only this shape.
type Stemmer interface {
	Stem(buf []byte, lo, hi int) int
}

// SnowballStemmer adapts github.com/kljensen/snowball/english (a Porter2
// stemmer) to the Stem(buf, lo, hi) contract. It has to copy through a
// string because the snowball package only operates on strings, but the
// result is written back into buf in place like the contract requires.
type SnowballStemmer struct{}

func (SnowballStemmer) Stem(buf []byte, lo, hi int) int {
	if hi < lo {
		return hi
	}
	stemmed := snowballeng.Stem(string(buf[lo:hi+1]), false)
	n := copy(buf[lo:], stemmed)
	return lo + n - 1
}

// IdentityStemmer performs no normalization; it is the stub used by the
// spec's §8 test scenarios ("the stemmer is configured as identity for
// these inputs").
type IdentityStemmer struct{}

func (IdentityStemmer) Stem(buf []byte, lo, hi int) int {
	return hi
}

// isSeparator reports whether b is treated as inter-token noise: whitespace
// or one of the punctuation bytes the original ISR tokenizer strips before a
// word starts.
func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r', '\'', '-', '$':
		return true
	}
	return false
}

// isWordByte reports whether b may appear inside a token body once the word
// has started.
func isWordByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isInteriorNoise reports whether b should be silently dropped from inside a
// token (rather than terminating it).
func isInteriorNoise(b byte) bool {
	return b == '\'' || b == '-' || b == '$'
}

// Tokenizer streams stemmed tokens out of a byte source. A single Tokenizer
// reuses one scratch buffer across Next calls — callers that need to retain
// a token must copy it (the vocabulary store always does, since it owns the
// word's bytes for the life of the program).
type Tokenizer struct {
	r       *bufio.Reader
	stemmer Stemmer
	scratch []byte
}

// NewTokenizer wraps r for tokenization using stemmer.
func NewTokenizer(r io.Reader, stemmer Stemmer) *Tokenizer {
	return &Tokenizer{
		r:       bufio.NewReader(r),
		stemmer: stemmer,
		scratch: make([]byte, 0, 64),
	}
}

// Next returns the next stemmed token, or (nil, io.EOF) once the stream is
// exhausted. The returned slice aliases the Tokenizer's internal scratch
// buffer and is only valid until the next call to Next.
func (t *Tokenizer) Next() ([]byte, error) {
	for {
		// Step 1: skip whitespace/noise separators.
		var c byte
		var err error
		for {
			c, err = t.r.ReadByte()
			if err != nil {
				return nil, err
			}
			if !isSeparator(c) {
				break
			}
		}

		// Step 2: read the word body, dropping interior noise bytes,
		// stopping on whitespace/EOF/non-alphanumeric.
		t.scratch = t.scratch[:0]
		eof := false

		for {
			if isWordByte(c) {
				t.scratch = append(t.scratch, c)
			} else if isInteriorNoise(c) {
				// silently discarded, word continues
			} else {
				break
			}

			c, err = t.r.ReadByte()
			if err != nil {
				eof = true
				break
			}
		}

		if !eof {
			// c terminated the word: it is whitespace or some other
			// non-alphanumeric byte (noise bytes never terminate a word).
			// Put it back so the next separator-skip sees it; whitespace is
			// skipped there, and other punctuation is consumed by the
			// empty-body branch below.
			_ = t.r.UnreadByte()
		}

		if len(t.scratch) == 0 {
			if eof {
				return nil, io.EOF
			}
			// The byte we stopped on was itself non-word and non-noise
			// (e.g. punctuation); there's no token body yet, keep scanning.
			// Consume it and loop back to step 1.
			if _, err := t.r.ReadByte(); err != nil {
				return nil, err
			}
			continue
		}

		// Step 3: apply the stemmer, trimming to its reported length.
		last := t.stemmer.Stem(t.scratch, 0, len(t.scratch)-1)
		if last < 0 {
			if eof {
				return nil, io.EOF
			}
			continue
		}
		t.scratch = t.scratch[:last+1]

		if len(t.scratch) == 0 {
			if eof {
				return nil, io.EOF
			}
			continue
		}

		return t.scratch, nil
	}
}
