// ═══════════════════════════════════════════════════════════════════════════════
// QUERY EVALUATOR
// ═══════════════════════════════════════════════════════════════════════════════
// A query is one line of whitespace-separated terms; the result is the set
// of documents satisfying every term (a conjunction). Each term carries at
// most two '*' wildcards and is rewritten into at most two permuterm prefix
// searches (none for an empty or fully degenerate term) before being run
// against the PermutermTree:
//
//	zero wildcards   w        -> prefix  stem(w)
//	one wildcard     X*Y      -> prefix  Y$X
//	two wildcards    X*Y*Z    -> prefix  Z$X   (if X or Z non-empty)
//	                          and prefix  Y    (if Y non-empty)
//
// Conjunction is implemented without ever materializing an intermediate
// document set, using a generation-counter scheme: a per-document integer
// array G starts at zero, and a counter sid increments once per prefix
// search issued (so a two-wildcard term can increment it twice). Each
// search's callback only advances a document from generation sid-1 to sid,
// so a document can only reach the final generation if it survived every
// search. Because a word's rotations can each match a prefix independently,
// the same WordEntry may be visited more than once per search; the "only
// advance from sid-1" rule makes repeat visits harmless.
// ═══════════════════════════════════════════════════════════════════════════════

package isr

import (
	"bytes"
	"log/slog"
	"strings"
)

// rewriteTerm turns a single query term into zero, one, or two permuterm
// prefix searches. stemmer is only consulted for wildcard-free terms, since
// stemming a wildcard pattern would mangle its structure.
//
// The two-wildcard edge cases intentionally mirror the original C program's
// behavior rather than a "cleaner" classical permuterm handling (see
// DESIGN.md): if both the leading and trailing segments are empty, the
// first search is skipped outright (no sid increment for it); if the middle
// segment is empty, a diagnostic is logged and only the second search is
// skipped.
func rewriteTerm(term []byte, stemmer Stemmer, logger *slog.Logger) ([][]byte, error) {
	stars := bytes.Count(term, []byte{'*'})

	switch stars {
	case 0:
		buf := append([]byte(nil), term...)
		if len(buf) == 0 {
			return nil, nil
		}
		last := stemmer.Stem(buf, 0, len(buf)-1)
		if last < 0 {
			return nil, nil
		}
		return [][]byte{buf[:last+1]}, nil

	case 1:
		star := bytes.IndexByte(term, '*')
		x, y := term[:star], term[star+1:]
		prefix := make([]byte, 0, len(x)+len(y)+1)
		prefix = append(prefix, y...)
		prefix = append(prefix, '$')
		prefix = append(prefix, x...)
		return [][]byte{prefix}, nil

	case 2:
		first := bytes.IndexByte(term, '*')
		second := first + 1 + bytes.IndexByte(term[first+1:], '*')

		x := term[:first]
		y := term[first+1 : second]
		z := term[second+1:]

		var tasks [][]byte

		if len(x)+len(z) > 0 {
			prefix := make([]byte, 0, len(x)+len(z)+1)
			prefix = append(prefix, z...)
			prefix = append(prefix, '$')
			prefix = append(prefix, x...)
			tasks = append(tasks, prefix)
		}

		if len(y) == 0 {
			if logger != nil {
				logger.Warn("degenerate two-wildcard term: empty middle segment, skipping inner search", slog.String("term", string(term)))
			}
			return tasks, nil
		}

		tasks = append(tasks, append([]byte(nil), y...))
		return tasks, nil

	default:
		return nil, ErrTooManyWildcards
	}
}

// evaluateQuery parses line into terms, rewrites and runs each one against tree,
// and returns the document ids satisfying every term, in ascending order.
// numDocs is the size of the generation-counter array (the number of
// documents ingested).
func evaluateQuery(line string, tree *PermutermTree, stemmer Stemmer, numDocs int, logger *slog.Logger) ([]int, error) {
	gen := make([]int, numDocs)
	sid := 0

	for _, term := range strings.Fields(line) {
		tasks, err := rewriteTerm([]byte(term), stemmer, logger)
		if err != nil {
			return nil, err
		}

		for _, prefix := range tasks {
			sid++
			want := sid - 1
			target := sid

			tree.Search(prefix, func(entry *WordEntry) {
				it := entry.Postings.Iterator()
				for it.HasNext() {
					d := int(it.Next())
					if d < len(gen) && gen[d] == want {
						gen[d] = target
					}
				}
			})
		}
	}

	// If no prefix search ever ran (an empty/whitespace-only line, or every
	// term rewrote to zero tasks), sid is still 0, which is also gen's
	// zero-initialized value: without this guard every document would
	// appear to have "survived" a conjunction of zero searches. Treat that
	// case as matching nothing rather than everything.
	if sid == 0 {
		return nil, nil
	}

	results := make([]int, 0)
	for d := 0; d < numDocs; d++ {
		if gen[d] == sid {
			results = append(results, d)
		}
	}
	return results, nil
}
