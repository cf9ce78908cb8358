// SPDX-License-Identifier: GPL-2.0-only
// Copyright (c) 2026 Wrench Mod Tools

package wad

// matchFinderMaxLookback bounds the search window; this is the bigger-match
// bound. Matches that end up shorter are downgraded to the little/big match
// encoding at emission time based on their actual lookback, not here.
const matchFinderMaxLookback = biggerMatchMaxLookback

// findMatch scans src for the best packet to emit starting at position p
// (with the buffer logically ending at e). It returns (literalSize,
// matchOffset, matchSize): emit literalSize raw bytes first, then a match of
// matchSize at absolute source offset matchOffset. If no match is found
// within the literal budget, matchSize is 0 and literalSize is
// min(maxLiteral, e-p).
//
// endOfBuffer distinguishes the tail region, where every bound must be
// clamped against e instead of assumed safe to overread by a couple of bytes.
func findMatch(src []byte, p, e int, endOfBuffer bool) (literalSize, matchOffset, matchSize int) {
	budget := maxLiteral
	if room := e - p; room < budget {
		budget = room
	}

	for i := 0; i < budget; i++ {
		cur := p + i
		bestLen, bestPos := 0, 0

		windowStart := 0
		if cur-matchFinderMaxLookback > windowStart {
			windowStart = cur - matchFinderMaxLookback
		}

		capLen := encoderMaxMatch
		if room := e - cur; room < capLen {
			capLen = room
		}

		// Scan from the nearest candidate (smallest lookback) outward, so
		// that among equal-length matches the smallest lookback wins: later
		// (farther) candidates of the same length fail the strict '>' test
		// and never overwrite it, which keeps the cheaper little-match
		// encoding available whenever it is an option.
		for j := cur - 1; j >= windowStart; j-- {
			if !endOfBuffer && cur+1 < len(src) && j+1 < len(src) {
				if src[j] != src[cur] || src[j+1] != src[cur+1] {
					continue
				}
			}

			n := commonPrefixLen(src, j, cur, capLen)
			if n > bestLen {
				bestLen = n
				bestPos = j
			}
		}

		if bestLen >= minMatch {
			return i, bestPos, bestLen
		}
	}

	return budget, 0, 0
}

// commonPrefixLen returns how many leading bytes of src[a:] and src[b:] are
// equal, capped at max.
func commonPrefixLen(src []byte, a, b, max int) int {
	n := 0
	for n < max && b+n < len(src) && src[a+n] == src[b+n] {
		n++
	}

	return n
}
