// ═══════════════════════════════════════════════════════════════════════════════
// ENGINE
// ═══════════════════════════════════════════════════════════════════════════════
// Engine wires the tokenizer, vocabulary store, permuterm tree, and query
// evaluator together into the driver-facing surface: ingest documents, build
// the permuterm index once, then evaluate queries against it.
// ═══════════════════════════════════════════════════════════════════════════════

package isr

import (
	"io"
	"log/slog"
)

// Engine is a fully self-contained search index: vocabulary, permuterm
// tree, and the document names referenced by result sets.
type Engine struct {
	cfg    Config
	vocab  *VocabularyStore
	tree   *PermutermTree
	names  []string
	built  bool
	logger *slog.Logger
}

// NewEngine returns an empty Engine ready for Ingest calls.
func NewEngine(cfg Config) *Engine {
	if cfg.Stemmer == nil {
		cfg.Stemmer = DefaultConfig().Stemmer
	}
	return &Engine{
		cfg:    cfg,
		vocab:  NewVocabularyStore(),
		tree:   NewPermutermTree(),
		logger: slog.Default(),
	}
}

// NumDocs returns the number of documents ingested so far.
func (e *Engine) NumDocs() int {
	return len(e.names)
}

// DocName returns the name recorded for docID.
func (e *Engine) DocName(docID int) string {
	return e.names[docID]
}

// Ingest tokenizes r, assigns it the next sequential document id, and
// inserts every resulting stemmed token into the vocabulary store. Must be
// called before Build; calling it after Build is a programming error (the
// permuterm tree would not reflect the new document).
func (e *Engine) Ingest(name string, r io.Reader) error {
	docID := len(e.names)
	tok := NewTokenizer(r, e.cfg.Stemmer)

	for {
		word, err := tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		e.vocab.Insert(word, docID)
	}

	e.names = append(e.names, name)
	e.logger.Info("ingested document", slog.String("name", name), slog.Int("docID", docID))
	return nil
}

// Build sorts the vocabulary's global chain and inserts every rotation of
// every word into the permuterm tree. Must run exactly once, after all
// Ingest calls and before any Evaluate call.
func (e *Engine) Build() {
	e.vocab.SortAll()

	for _, entry := range e.vocab.IterAll() {
		for _, rot := range rotations(entry.Word) {
			e.tree.Insert(rot, entry)
		}
	}

	e.built = true
	e.logger.Info("permuterm index built", slog.Int("words", e.vocab.Len()))
}

// rotations returns the |word|+1 rotations of word+"$", in rotation order
// (0 = word$ itself, through the rotation that starts with '$').
//
// The original C implementation (gen_permuterm in isr-prog3.c) builds these
// with two memcpy calls against a word$-sized scratch buffer; the same
// shape is kept here, just expressed with Go slices instead of raw pointer
// arithmetic.
func rotations(word []byte) [][]byte {
	base := make([]byte, len(word)+1)
	copy(base, word)
	base[len(word)] = '$'

	out := make([][]byte, len(base))
	for i := range base {
		rot := make([]byte, len(base))
		n := copy(rot, base[i:])
		copy(rot[n:], base[:i])
		out[i] = rot
	}
	return out
}

// DocsContaining stems word the same way ingestion does and returns the
// names of every document whose vocabulary contains it. Returns
// ErrWordNotFound if the stemmed word never occurs in any ingested
// document.
func (e *Engine) DocsContaining(word string) ([]string, error) {
	buf := []byte(word)
	if len(buf) == 0 {
		return nil, ErrWordNotFound
	}
	last := e.cfg.Stemmer.Stem(buf, 0, len(buf)-1)
	if last < 0 {
		return nil, ErrWordNotFound
	}
	buf = buf[:last+1]

	entry, err := e.vocab.Lookup(buf)
	if err != nil {
		return nil, err
	}

	var names []string
	it := entry.Postings.Iterator()
	for it.HasNext() {
		names = append(names, e.names[int(it.Next())])
	}
	return names, nil
}

// Evaluate parses line as a conjunctive query (see query.go) and returns the
// names of documents satisfying every term, in document-id order.
func (e *Engine) Evaluate(line string) ([]string, error) {
	if !e.built {
		return nil, ErrIndexNotBuilt
	}
	if e.NumDocs() == 0 {
		return nil, ErrNoDocuments
	}

	ids, err := evaluateQuery(line, e.tree, e.cfg.Stemmer, e.NumDocs(), e.logger)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = e.names[id]
	}
	return out, nil
}
