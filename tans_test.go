package lzans

import (
	"math/rand"
	"testing"
)

func TestNormalizeHistogramSumsToTableSize(t *testing.T) {
	counts := make([]int, byteAlphabetSize)
	rng := rand.New(rand.NewSource(1))
	for i := range counts {
		if rng.Intn(3) != 0 {
			counts[i] = rng.Intn(5000) + 1
		}
	}

	h := normalizeHistogram(counts)
	var sum int32
	for s, v := range h {
		if counts[s] > 0 && v < 1 {
			t.Fatalf("symbol %d has source frequency %d but H=%d", s, counts[s], v)
		}
		sum += v
	}
	if sum != int32(tableSize) {
		t.Fatalf("sum(H) = %d, want %d", sum, tableSize)
	}
}

func TestHistogramSerializeRoundTrip(t *testing.T) {
	counts := make([]int, tokenAlphabetSize)
	counts[0] = 100
	counts[5] = 4000
	counts[27] = 50
	h := normalizeHistogram(counts)

	var buf []byte
	buf = appendHistogram(buf, h)

	got, pos, err := readHistogram(buf, 0, tokenAlphabetSize)
	if err != nil {
		t.Fatalf("readHistogram: %v", err)
	}
	if pos != len(buf) {
		t.Fatalf("readHistogram consumed %d bytes, want %d", pos, len(buf))
	}
	for s := range h {
		if got[s] != h[s] {
			t.Fatalf("symbol %d: got %d, want %d", s, got[s], h[s])
		}
	}
}

func TestTansEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	symbols := make([]byte, 5000)
	for i := range symbols {
		// Skewed distribution so the entropy coder has real work to do.
		switch {
		case rng.Intn(2) == 0:
			symbols[i] = 'a'
		case rng.Intn(3) == 0:
			symbols[i] = 'b'
		default:
			symbols[i] = byte(rng.Intn(256))
		}
	}

	counts := countSymbols(symbols, byteAlphabetSize)
	h := normalizeHistogram(counts)
	enc := buildEncodeTable(h)

	var coded []byte
	coded = tansEncodeSymbols(coded, symbols, enc)

	dec := buildDecodeTable(h)
	got, err := tansDecodeSymbols(coded, len(symbols), dec)
	if err != nil {
		t.Fatalf("tansDecodeSymbols: %v", err)
	}
	if string(got) != string(symbols) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestTansBlockRoundTripEmpty(t *testing.T) {
	var buf []byte
	buf = appendTansBlock(buf, nil, byteAlphabetSize)

	got, pos, err := readTansBlock(buf, 0, byteAlphabetSize)
	if err != nil {
		t.Fatalf("readTansBlock: %v", err)
	}
	if pos != len(buf) {
		t.Fatalf("consumed %d bytes, want %d", pos, len(buf))
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 symbols, got %d", len(got))
	}
}

func TestTansBlockRoundTripSingleSymbol(t *testing.T) {
	symbols := []byte{42, 42, 42, 42, 42}
	var buf []byte
	buf = appendTansBlock(buf, symbols, byteAlphabetSize)

	got, pos, err := readTansBlock(buf, 0, byteAlphabetSize)
	if err != nil {
		t.Fatalf("readTansBlock: %v", err)
	}
	if pos != len(buf) {
		t.Fatalf("consumed %d bytes, want %d", pos, len(buf))
	}
	if string(got) != string(symbols) {
		t.Fatalf("got %v, want %v", got, symbols)
	}
}
