package english

import (
	snowballeng "github.com/kljensen/snowball/english"
)

// Lemma reduces word to its Snowball (Porter2) stem, the canonical form used
// when comparing pseudo-sentence contents.
func Lemma(word string) string {
	return snowballeng.Stem(word, false)
}
