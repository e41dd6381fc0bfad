package cd

// jaroSimilarity computes the Jaro string similarity between a and b, in
// [0, 1]. No string-similarity library appears anywhere in the example
// pack, so this is a direct, from-scratch implementation of the standard
// algorithm rather than a port of a dependency.
func jaroSimilarity(a, b string) float32 {
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	matchDistance := maxInt(la, lb)/2 - 1
	if matchDistance < 0 {
		matchDistance = 0
	}

	aMatches := make([]bool, la)
	bMatches := make([]bool, lb)

	var matches int
	for i := 0; i < la; i++ {
		start := maxInt(0, i-matchDistance)
		end := minInt(i+matchDistance+1, lb)
		for j := start; j < end; j++ {
			if bMatches[j] || ra[i] != rb[j] {
				continue
			}
			aMatches[i] = true
			bMatches[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	var transpositions int
	k := 0
	for i := 0; i < la; i++ {
		if !aMatches[i] {
			continue
		}
		for !bMatches[k] {
			k++
		}
		if ra[i] != rb[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	m := float32(matches)
	return (m/float32(la) + m/float32(lb) + (m-float32(transpositions))/m) / 3
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
