// Package model defines the shared types passed between the pipeline stages.
//
// Counts is the word-frequency accumulator used both for pseudo-sentence
// contents and for window aggregates during scoring. Vocabulary is the set of
// distinct content words that forms the dimensional basis of the similarity
// computation.
//
// StopwordFunc and LemmaFunc are the capability types through which callers
// inject language services. They are plain function values so tests can
// substitute minimal fakes (identity lemmatizer, fixed stopword set) without
// pulling in any corpus.
package model
