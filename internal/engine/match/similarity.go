package match

// Similarity thresholds used by the skills analyzer. At or above
// simExact two names count as the same skill; between simSimilar and
// simExact they count as a partial match worth 70% of an exact one.
const (
	simExact   = 0.9
	simSimilar = 0.7
)

// Similarity computes the Ratcliff/Obershelp ratio between two strings:
// twice the number of matching characters over the total length, where
// matches come from the longest common substring and, recursively, the
// text on either side of it. 1.0 means identical, 0.0 means disjoint.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingRunes(ra, rb)) / float64(total)
}

func matchingRunes(a, b []rune) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	n := size
	n += matchingRunes(a[:ai], b[:bi])
	n += matchingRunes(a[ai+size:], b[bi+size:])
	return n
}

// longestCommonSubstring returns the start offsets and length of the
// longest run of runes common to a and b. On equal-length candidates
// the earliest pair wins, keeping the ratio deterministic.
func longestCommonSubstring(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, size
}
