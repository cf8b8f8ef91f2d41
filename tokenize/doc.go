// Package tokenize turns raw text into the inputs of the block scorer.
//
// The tokenizer case-folds the input, splits it into paragraphs on line
// boundaries, extracts word tokens, and packs them into fixed-size
// pseudo-sentences of w raw tokens each. Stop words are removed from each
// pseudo-sentence by surface form, the survivors are lemmatized, and a trailing
// group with fewer than w tokens is dropped entirely.
//
// The returned vocabulary is built from the raw (non-lemmatized) tokens while
// the pseudo-sentence contents are lemmatized. Both normalization forms are
// visible to the scorer, which indexes into both, so the asymmetry is part of
// the contract and is preserved here on purpose.
package tokenize
