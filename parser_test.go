package lzans

import (
	"bytes"
	"testing"
)

// replayPackets reconstructs the original bytes from a packet sequence, the
// same way decodeChunkPayload does, to check parser legality directly.
func replayPackets(t *testing.T, data []byte, packets []packet) []byte {
	t.Helper()
	out := make([]byte, 0, len(data))
	cursor := 0
	for _, p := range packets {
		out = append(out, data[cursor:cursor+p.litLen]...)
		cursor += p.litLen
		if p.offset == 0 {
			continue
		}
		outPos := len(out)
		if p.offset < 1 || p.offset > outPos {
			t.Fatalf("illegal offset %d at position %d", p.offset, outPos)
		}
		if p.length < minMatch {
			t.Fatalf("match shorter than MIN_MATCH: %d", p.length)
		}
		out = append(out, make([]byte, p.length)...)
		expandMatch(out, outPos, p.offset, p.length)
		cursor += p.length
	}
	return out
}

func testParserRoundTrips(t *testing.T, parser func([]byte, levelParams) []packet) {
	t.Helper()
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("abc"),
		[]byte("abcabcabcabcabcabc"),
		bytes.Repeat([]byte{0}, 1000),
		[]byte("the quick brown fox jumps over the lazy dog. the quick brown fox jumps again."),
	}
	for _, params := range fixedLevels {
		for _, in := range inputs {
			packets := parser(in, params)
			got := replayPackets(t, in, packets)
			if !bytes.Equal(got, in) {
				t.Fatalf("replay mismatch for input %q: got %q", in, got)
			}
		}
	}
}

func TestParseGreedyRoundTrip(t *testing.T) {
	testParserRoundTrips(t, parseGreedy)
}

func TestParseOptimalRoundTrip(t *testing.T) {
	testParserRoundTrips(t, parseOptimal)
}

func TestParseGreedyFindsRepeatMatch(t *testing.T) {
	data := []byte("abcabcabcabcabcabc")
	packets := parseGreedy(data, levelParamsFor(1))
	found := false
	for _, p := range packets {
		if p.offset == 3 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected at least one match with offset 3, got %+v", packets)
	}
}

func TestOptimalCostNotWorseThanGreedy(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 40)
	params := levelParamsFor(9)

	greedy := parseGreedy(data, params)
	optimal := parseOptimal(data, params)

	var greedyCost, optimalCost float64
	for _, p := range greedy {
		greedyCost += costLiteral(p.litLen)
		if p.offset > 0 {
			greedyCost += costMatch(p.offset, p.length)
		}
	}
	for _, p := range optimal {
		optimalCost += costLiteral(p.litLen)
		if p.offset > 0 {
			optimalCost += costMatch(p.offset, p.length)
		}
	}
	if optimalCost > greedyCost {
		t.Fatalf("optimal cost %f exceeds greedy cost %f", optimalCost, greedyCost)
	}
}
