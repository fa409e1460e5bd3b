// Package fuzzy picks "did you mean" candidates for unknown option and
// subcommand diagnostics using edit distance.
package fuzzy

import "strings"

// minInputLen guards against suggesting on very short inputs, where almost
// every candidate is within a small edit distance.
const minInputLen = 2

// Best returns the candidate closest to input within maxDistance edits, or
// the empty string when nothing qualifies. Comparison is case-insensitive;
// ties break toward the candidate sharing the longest prefix with the
// input, then toward the earlier candidate.
func Best(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLen {
		return ""
	}
	needle := strings.ToLower(input)

	best := ""
	bestDist := maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == needle {
			continue // exact matches are handled before suggestions
		}
		dist := distance(needle, lower)
		if dist > maxDistance {
			continue
		}
		prefix := commonPrefix(needle, lower)
		if dist < bestDist || (dist == bestDist && prefix > bestPrefix) {
			best = candidate
			bestDist = dist
			bestPrefix = prefix
		}
	}
	return best
}

// distance computes Levenshtein edit distance with a two-row table.
func distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
