// Package texttile segments documents into topically coherent blocks using
// lexical cohesion, following the TextTiling method.
//
// Text is broken into fixed-size pseudo-sentences and a similarity score is
// computed at every gap between consecutive pseudo-sentences by comparing the
// vocabulary of the window just before the gap to the window just after it.
// Low-similarity gaps are candidate topic shifts.
//
// # Quick Start
//
//	seg, err := texttile.New(
//	    texttile.WithGroupSize(20), // pseudo-sentence size
//	    texttile.WithBlockSize(10), // comparison window half-width
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	boundaries, err := seg.Segment(document)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// boundaries holds token indices of paragraph breaks where topics shift
//
// Callers that run their own boundary decision can stop at the raw score
// curve:
//
//	scores, err := seg.GapScores(document)
//
// # Pipeline
//
// Segment runs the stages in strict sequence: tokenize (pseudo-sentences,
// vocabulary, paragraph breaks) → cohesion (per-gap similarity scores) →
// boundary (smoothing, depth scores, selection, snapping to paragraph breaks).
// The tokenize and cohesion packages are usable on their own; each stage only
// consumes the previous stage's output.
//
// # Language Services
//
// Stop-word filtering and lemmatization are injected function values. By
// default the english package supplies both; substitute any implementation via
// WithStopwords and WithLemmatizer:
//
//	seg, err := texttile.New(
//	    texttile.WithStopwords(myStopwords),
//	    texttile.WithLemmatizer(func(w string) string { return w }),
//	)
package texttile
