package model

// Counts is a word→count mapping with summation semantics: absent words count
// as zero, Merge adds counts pairwise, Subtract removes them and drops entries
// that reach zero.
type Counts map[string]int

// Add increments the count for word by n.
func (c Counts) Add(word string, n int) {
	c[word] += n
}

// Merge adds every count in other to c.
func (c Counts) Merge(other Counts) {
	for word, n := range other {
		c[word] += n
	}
}

// Subtract removes every count in other from c. Entries that reach zero (or
// below) are deleted so that iteration only visits words actually present.
func (c Counts) Subtract(other Counts) {
	for word, n := range other {
		rest := c[word] - n
		if rest <= 0 {
			delete(c, word)
			continue
		}
		c[word] = rest
	}
}

// Clone returns an independent copy of c.
func (c Counts) Clone() Counts {
	out := make(Counts, len(c))
	for word, n := range c {
		out[word] = n
	}
	return out
}

// Vocabulary is a set of distinct content words.
type Vocabulary map[string]struct{}

// Add inserts word into the set.
func (v Vocabulary) Add(word string) {
	v[word] = struct{}{}
}

// Contains reports whether word is in the set.
func (v Vocabulary) Contains(word string) bool {
	_, ok := v[word]
	return ok
}

// StopwordFunc reports whether a word is a stop word. A nil StopwordFunc
// means no word is a stop word.
type StopwordFunc func(word string) bool

// LemmaFunc maps a word to its canonical dictionary form. A nil LemmaFunc
// means every word is its own lemma.
type LemmaFunc func(word string) string
