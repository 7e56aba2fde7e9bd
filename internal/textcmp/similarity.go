package textcmp

// Similarity computes a sequence-alignment similarity ratio between two
// strings on the scale [0,100]: 200*LCS(a,b)/(len(a)+len(b)), measured in
// runes. The score is symmetric, bounded, and exactly 100 for identical
// inputs (including two empty strings).
func Similarity(a, b string) float64 {
	if a == b {
		return 100
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	matched := lcsLength(ra, rb)
	return 200 * float64(matched) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest common subsequence length with a
// two-row dynamic program.
func lcsLength(a, b []rune) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
