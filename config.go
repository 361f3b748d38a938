package isr

// ═══════════════════════════════════════════════════════════════════════════════
// ENGINE CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════
// Mirrors the teacher's AnalyzerConfig/DefaultConfig pattern: a small struct
// of knobs plus a constructor for the sane defaults, so callers (and tests)
// can override just the bits they care about.
// ═══════════════════════════════════════════════════════════════════════════════

// MaxQueryLineBytes bounds a single REPL query line, including its
// terminating newline (spec: "max 512 bytes including terminator").
const MaxQueryLineBytes = 512

// Config holds the tunables for an Engine.
type Config struct {
	// Stemmer normalizes tokens during ingestion and for wildcard-free query
	// terms. Defaults to SnowballStemmer{}.
	Stemmer Stemmer
}

// DefaultConfig returns the standard engine configuration: Snowball English
// stemming, matching the teacher's default analyzer pipeline.
func DefaultConfig() Config {
	return Config{
		Stemmer: SnowballStemmer{},
	}
}
