package wad

import "testing"

func TestFindMatch_PrefersShortestLookbackOnTie(t *testing.T) {
	// "abc" occurs at offsets 0, 10 and 20. Scanning at offset 20 (the start
	// of the third occurrence), the nearest earlier copy (offset 10,
	// lookback 10) ties in length with the farther one (offset 0, lookback
	// 20) and should win.
	src := []byte("abc.......abc.......abc")
	p := 20
	literalSize, matchOffset, matchSize := findMatch(src, p, len(src), true)

	if literalSize != 0 {
		t.Fatalf("literalSize=%d, want 0 (a match starts immediately)", literalSize)
	}
	if matchSize < minMatch {
		t.Fatalf("matchSize=%d, want >= %d", matchSize, minMatch)
	}
	if got, want := p-matchOffset, 10; got != want {
		t.Fatalf("lookback=%d, want %d (nearest candidate)", got, want)
	}
}

func TestFindMatch_NoMatchWhenAllBytesDistinct(t *testing.T) {
	// Every byte value appears at most once, so no two positions can ever
	// share a byte, which rules out a match of any length by construction.
	src := make([]byte, 200)
	for i := range src {
		src[i] = byte(i)
	}

	literalSize, _, matchSize := findMatch(src, 0, len(src), false)
	if matchSize != 0 {
		t.Fatalf("matchSize=%d, want 0: no byte repeats in src", matchSize)
	}
	if literalSize != len(src) {
		t.Fatalf("literalSize=%d, want %d", literalSize, len(src))
	}
}
