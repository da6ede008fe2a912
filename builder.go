package fsst

import "container/heap"

// Fixed support schedule; see spec design note: do not change without
// retuning. The first four generations also consider pairwise merges;
// the fifth tightens the minimum-support threshold and skips merges.
var generationSchedule = [5]int{8, 38, 68, 98, 128}

// TrainOption adjusts Train's default behavior.
type TrainOption func(*trainConfig)

type trainConfig struct {
	sampleLimit int
}

// WithSampleLimit overrides the sampler's default 16 KiB target sample
// size. Larger limits see more of the corpus per generation at the cost
// of slower training; smaller limits trade accuracy for speed. Mainly
// useful for experimentation — the default is tuned for typical corpora.
func WithSampleLimit(bytes int) TrainOption {
	return func(c *trainConfig) { c.sampleLimit = bytes }
}

// Train builds a frozen symbol table from a corpus of lines. It samples
// the corpus down to a bounded working set, then runs five generations of
// (count, rebuild): each generation parses the sample greedily with the
// table from the previous round, gathers unigram/bigram frequencies, and
// rebuilds the table from gain-ranked candidates. Train is deterministic:
// identical corpus bytes and options always produce the same table.
func Train(lines [][]byte, opts ...TrainOption) *Table {
	cfg := trainConfig{sampleLimit: sampleTarget}
	for _, opt := range opts {
		opt(&cfg)
	}

	sample := makeSample(lines, cfg.sampleLimit)
	table := newTable()
	var c counters

	for _, frac := range generationSchedule {
		c.clear()
		for _, line := range sample {
			compressCount(table, &c, line)
		}
		makeTableFromCounters(table, &c, frac)
	}
	return table
}

// compressCount walks line with a greedy longest-match parse against the
// table's current contents, recording unigram and bigram code
// frequencies used to rank the next generation's candidates.
//
// Every real learned-symbol match (code >= codeBase) also credits its
// first byte as if the base byte had been chosen instead — without this
// "shadow" count, a base byte that is only ever covered by a learned
// symbol would starve in the gain ranking and a regression that drops
// the symbol would have nothing to fall back to.
//
// prev starts at the sentinel value 0 and the first bigram increment
// uses it as-is, matching the reference implementation's behavior.
func compressCount(t *Table, c *counters, line []byte) {
	if len(line) == 0 {
		return
	}
	prev := uint16(0)
	for pos := 0; pos < len(line); {
		window := loadWindow(line, pos)
		code := t.findLongestSymbol(window)

		c.incC1(int(code))
		c.incC2(int(prev), int(code))

		if code >= codeBase {
			first := uint16(window.first())
			c.incC1(int(first))
			c.incC2(int(prev), int(first))
		}

		pos += t.symbols[code].nbytes()
		prev = code
	}
}

// candidate is a symbol ranked by estimated gain for the next table.
type candidate struct {
	sym  symbol
	gain uint32
}

// candidateHeap is a max-heap on gain, with ties broken toward the
// longer symbol.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].gain != h[j].gain {
		return h[i].gain > h[j].gain
	}
	return h[i].sym.length > h[j].sym.length
}
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x any)        { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// makeTableFromCounters rebuilds t from the frequencies gathered by
// compressCount during this generation: existing codes are scored by
// gain = length * count (an 8x boost for base byte codes, to keep them
// from starving against a rich learned vocabulary), merges of two
// symbols (at most 8 bytes combined) are proposed from bigram counts (skipped entirely in the final
// generation, sampleFrac>=128, and for any code already at length 8),
// and the highest-gain candidates are reinserted up to the 254-symbol
// cap.
func makeTableFromCounters(t *Table, c *counters, sampleFrac int) {
	minCount := (5 * sampleFrac) / 128
	h := &candidateHeap{}
	heap.Init(h)

	upper := int(codeBase) + int(t.nSymbols)
	for code1 := 0; code1 < upper; code1++ {
		count := c.getC1(code1)
		if int(count) < minCount {
			continue
		}
		s1 := t.symbols[code1]
		len1 := s1.nbytes()
		gain := uint32(len1) * count
		if code1 < 256 {
			gain *= 8
		}
		heap.Push(h, candidate{sym: s1, gain: gain})

		if sampleFrac >= 128 || len1 == 8 {
			continue
		}
		for code2 := 0; code2 < upper; code2++ {
			count2 := c.getC2(code1, code2)
			if int(count2) < minCount {
				continue
			}
			s2 := t.symbols[code2]
			if len1+s2.nbytes() > 8 {
				continue
			}
			merged := extend(s1, s2)
			gain2 := uint32(merged.nbytes()) * count2
			heap.Push(h, candidate{sym: merged, gain: gain2})
		}
	}

	t.clear()
	for h.Len() > 0 && int(t.nSymbols) < maxSymbol {
		cand := heap.Pop(h).(candidate)
		t.insert(cand.sym)
	}
}
