package ulight

// Options carries the language-agnostic flags every highlighter reads. A
// specific language package may define its own additional options, but the
// fields here are the ones the registry's dispatch contract guarantees are
// honored.
type Options struct {
	// Coalescing merges adjacent same-HighlightKind tokens into one span.
	// Enabled by default; the zero value of Options has it off, so callers
	// that want the default behavior should start from DefaultOptions().
	Coalescing bool
}

// DefaultOptions returns the default options: coalescing enabled.
func DefaultOptions() Options {
	return Options{Coalescing: true}
}

// Language identifies a source language by its conventional short name
// ("js", "jsx", "html", ...). Highlighters register themselves against one
// or more Language values; this package does not hardcode which languages
// exist.
type Language string
