// Package cohesion scores the lexical cohesion at every gap between
// consecutive pseudo-sentences.
//
// For each internal gap the scorer aggregates a window of up to k groups on
// either side into word-count vectors and computes a cosine-style similarity
// over the vocabulary basis. Windows shrink near the ends of the sequence so
// they never reach outside it. A low score marks a candidate topic shift;
// turning scores into boundaries is the boundary package's job.
package cohesion
