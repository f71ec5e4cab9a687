// Package ulight provides the shared token model for a portable, dependency-free
// syntax-highlighting engine: a HighlightKind enumeration, the non-overlapping
// Token record the engine emits, an append-only Sink that tokens are emitted
// onto, and a small per-language registry so a concrete highlighter (such as
// the js package) can be invoked by language name without this package
// importing it.
package ulight
