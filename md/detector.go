package md

import (
	"fmt"

	"github.com/badu/normalizer/internal/cache"
	"github.com/rs/zerolog/log"
)

// ratioCache memoizes MessRatio per (decoded text, threshold) pair — the
// same candidate string is frequently re-scored across probe iterations
// sharing a threshold.
var ratioCache = cache.New(2048)

// MessRatio scores how chaotic decodedSequence looks, in [0, +inf): the sum
// of every plugin's ratio. A result below 0.2 (the pipeline's default
// Threshold) is the usual signal of "not mess"; callers pick their own
// threshold via maximumThreshold and the scan exits early at the first
// checkpoint where the running sum reaches it, the same way
// the plugins below are fed incrementally rather than scored once at the
// end.
func MessRatio(decodedSequence string, maximumThreshold float32) float32 {
	cacheKey := fmt.Sprintf("%s\x00%.6f", decodedSequence, maximumThreshold)
	if v, ok := ratioCache.Get(cacheKey); ok {
		return v.(float32)
	}
	ratio := computeMessRatio(decodedSequence, maximumThreshold)
	ratioCache.Set(cacheKey, ratio)
	return ratio
}

func computeMessRatio(decodedSequence string, maximumThreshold float32) float32 {
	detectors := newPlugins()

	runes := []rune(decodedSequence)
	length := len(runes)

	var calcInterval int
	switch {
	case length <= 510:
		calcInterval = 32
	case length <= 1023:
		calcInterval = 64
	default:
		calcInterval = 128
	}

	var meanMessRatio float32

	// Feed one trailing newline past the real content, mirroring how a
	// plugin like SuperWeirdWordPlugin needs a final separator to flush
	// its in-progress word buffer.
	total := length + 1
	for index := 0; index < total; index++ {
		var r rune
		if index < length {
			r = runes[index]
		} else {
			r = '\n'
		}
		c := newChar(r)
		for _, d := range detectors {
			if d.eligible(c) {
				d.feed(c)
			}
		}

		if (index > 0 && index%calcInterval == 0) || index == length {
			meanMessRatio = 0
			for _, d := range detectors {
				meanMessRatio += d.ratio()
			}
			if meanMessRatio >= maximumThreshold {
				break
			}
		}
	}

	for _, d := range detectors {
		if r := d.ratio(); r > 0 {
			log.Trace().Str("plugin", d.name()).Float32("ratio", r).Msg("mess plugin contribution")
		}
	}

	return meanMessRatio
}
