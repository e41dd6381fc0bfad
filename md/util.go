package md

import "github.com/badu/normalizer/unicodeinfo"

func isSuspiciousSuccessiveRange(a, b char) bool {
	return unicodeinfo.IsSuspiciousSuccessiveRange(a.rangeName, a.hasRange, b.rangeName, b.hasRange)
}
