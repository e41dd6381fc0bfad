// Package normalizer detects the character encoding of an arbitrary byte
// sequence: it probes a prioritised list of candidate encodings, scores each
// decode attempt for chaos (mess) and coherence (language fit), and returns
// a ranked CharsetMatches.
package normalizer

import "errors"

// ErrRead is returned by FromPath when the file cannot be opened or read.
var ErrRead = errors.New("normalizer: failed to read input")
