// Package tokenize adapts morphological segmenters to the byte-offset
// token model used throughout the pipeline.
package tokenize

import "github.com/japaniel/tokanalyze/pkg/token"

// Segmenter splits already-normalized text into tokens positioned by
// byte offset within that text. Implementations must be safe to Clone
// for concurrent use (see AnalyzeBatch), since the underlying dictionary
// data is typically shared read-only state.
type Segmenter interface {
	// Tokenize splits text into tokens without populating Details.
	Tokenize(text string) ([]token.Token, error)
	// TokenizeWithDetails splits text into tokens, populating Details
	// with the dictionary's per-token feature vector. Callers only
	// request this when a configured token filter needs it, since
	// extracting features is measurably more expensive.
	TokenizeWithDetails(text string) ([]token.Token, error)
	// Clone returns an independent Segmenter sharing the same
	// underlying dictionary, safe to use concurrently with the
	// original.
	Clone() Segmenter
}
