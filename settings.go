package normalizer

const (
	// TooSmallSequence is the layer length at or below which CoherenceRatio
	// does not score a layer (package cd keeps its own copy of the value);
	// such layers carry too little signal.
	TooSmallSequence = 32
	// TooBigSequence bounds how large a payload can be before CharsetMatches
	// will still fold it into an existing peer as a submatch.
	TooBigSequence = 65536
	// MaxProcessedBytes caps how much of a very large single-byte input is
	// materialised as decoded text; bytes beyond it are probed lazily.
	MaxProcessedBytes = 1 << 20
)

// Settings configures the probe pipeline. The zero value is not ready to
// use; call DefaultSettings and override fields as needed.
type Settings struct {
	// Steps is the number of probe chunks taken per candidate encoding.
	Steps int
	// ChunkSize is the length of each probe chunk, counted in characters of
	// the decoded text; it is clamped against the input's byte length.
	ChunkSize int
	// Threshold is the chaos ceiling; a candidate whose mean chaos reaches
	// or exceeds it is demoted to a fallback candidate only.
	Threshold float32
	// IncludeEncodings restricts probing to these canonical names, if
	// non-empty. Invalid labels are dropped silently.
	IncludeEncodings []string
	// ExcludeEncodings removes these canonical names from consideration.
	ExcludeEncodings []string
	// PreemptiveBehaviour enables scanning the first 4096 bytes for a
	// declarative charset=/encoding=/coding: hint.
	PreemptiveBehaviour bool
	// LanguageThreshold is the minimum per-layer Jaro score CoherenceRatio
	// will keep.
	LanguageThreshold float32
	// EnableFallback allows the declared/utf-8/ascii fallback when no
	// candidate's chaos stays under Threshold.
	EnableFallback bool
}

// DefaultSettings returns the pipeline's default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Steps:               5,
		ChunkSize:           512,
		Threshold:           0.2,
		PreemptiveBehaviour: true,
		LanguageThreshold:   0.1,
		EnableFallback:      true,
	}
}

// normalizedLabels resolves a label list through the encoding registry,
// dropping anything that doesn't resolve, and returns canonical names.
func normalizedLabels(labels []string) map[string]bool {
	out := make(map[string]bool, len(labels))
	for _, l := range labels {
		if e, ok := lookupEncoding(l); ok {
			out[e] = true
		}
	}
	return out
}
