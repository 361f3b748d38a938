// Command isrsearch ingests a set of plain-text documents, builds a
// permuterm-backed search index over their stemmed vocabulary, and serves
// an interactive conjunctive-query REPL.
//
// Usage:
//
//	isrsearch doc1 doc2 ... docN
//
// Each query line is whitespace-separated terms, each carrying up to two
// '*' wildcards; matching document names are printed one per line. An
// empty line exits.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	isr "github.com/codeandkey/isr-permuterm"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: isrsearch <file1> <file2> ... <fileN>")
		return 1
	}

	engine := isr.NewEngine(isr.DefaultConfig())

	for _, path := range args {
		if err := ingestFile(engine, path); err != nil {
			fmt.Fprintf(os.Stderr, "isrsearch: %v\n", err)
			return 1
		}
	}

	engine.Build()

	return repl(engine, os.Stdin, os.Stdout)
}

func ingestFile(engine *isr.Engine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %q for reading: %w", path, err)
	}
	defer f.Close()

	return engine.Ingest(path, f)
}

// repl implements spec.md §6: print the prompt, read one line capped at
// isr.MaxQueryLineBytes (including the terminator), exit cleanly on an
// empty line, otherwise evaluate and print one matching document name per
// line.
func repl(engine *isr.Engine, in *os.File, out *os.File) int {
	reader := bufio.NewReaderSize(in, isr.MaxQueryLineBytes)

	for {
		fmt.Fprint(out, "Search string: ")

		line, err := readQueryLine(reader)
		if err != nil {
			return 0
		}
		if line == "" {
			return 0
		}

		matches, err := engine.Evaluate(line)
		if err != nil {
			if err == isr.ErrTooManyWildcards {
				fmt.Fprintf(os.Stderr, "isrsearch: %v\n", err)
				return 1
			}
			slog.Error("query evaluation failed", slog.String("query", line), slog.Any("err", err))
			continue
		}

		for _, name := range matches {
			fmt.Fprintln(out, name)
		}
	}
}

// readQueryLine reads up to MaxQueryLineBytes-1 bytes of input (leaving room
// for the implicit terminator the spec budgets for) or until a newline,
// whichever comes first, and returns the trimmed line.
func readQueryLine(r *bufio.Reader) (string, error) {
	buf := make([]byte, 0, isr.MaxQueryLineBytes)

	for len(buf) < isr.MaxQueryLineBytes-1 {
		b, err := r.ReadByte()
		if err != nil {
			if len(buf) == 0 {
				return "", err
			}
			break
		}
		if b == '\n' {
			break
		}
		buf = append(buf, b)
	}

	return string(buf), nil
}
