package engine

// BuildDiff computes the minimal Diff that turns a host's currently
// displayed sequence (prev) into next, by cutting their common prefix and
// backspacing/typing only the differing suffix (spec §4.9).
func BuildDiff(prev, next []rune) Diff {
	common := 0
	for common < len(prev) && common < len(next) && prev[common] == next[common] {
		common++
	}
	backspace := len(prev) - common
	chars := next[common:]
	return clampDiff(backspace, chars)
}
