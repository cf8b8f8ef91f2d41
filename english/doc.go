// Package english provides ready-made English language services for the
// tokenizer: a stop-word predicate backed by a fixed high-frequency word list
// and a lemmatizer backed by the Snowball (Porter2) stemmer.
//
// Both functions satisfy the model capability types and are the defaults used
// by texttile.New. Stemming is an approximation of dictionary lemmatization
// ("running" → "run", but also "studies" → "studi"); callers needing exact
// lemmas can inject their own model.LemmaFunc instead.
package english
