package fsst

const (
	sampleTarget = 1 << 14 // 16 KiB: default sample size target
	sampleChunk  = 512     // lines are split into chunks of this many bytes
	sampleSeed   = 4637947
)

// makeSample extracts a deterministic, bounded sample from the corpus for
// use as the frequency-counting input during training. target is the
// sample-size goal in bytes (callers normally pass sampleTarget; Train's
// WithSampleLimit option overrides it). If the corpus is already smaller
// than target, the whole thing is the sample. Otherwise makeSample
// repeatedly picks a pseudo-random non-empty line, then a pseudo-random
// 512-byte chunk of that line, copying chunks into one backing buffer
// (capped at 2*target) until the sample reaches target bytes or the
// buffer is full. The same rng seed and selection order make build
// deterministic for identical corpus bytes and identical target.
func makeSample(lines [][]byte, target int) [][]byte {
	var total int
	for _, l := range lines {
		total += len(l)
	}
	if total < target || len(lines) == 0 {
		return lines
	}

	maxBuf := 2 * target
	buf := make([]byte, maxBuf)
	sample := make([][]byte, 0, len(lines))
	pos := 0
	rnd := fsstHash(sampleSeed)

	for pos < target {
		rnd = fsstHash(rnd)
		lineNr := int(rnd % uint64(len(lines)))
		line := lines[lineNr]
		if len(line) == 0 {
			line = nextNonEmpty(lines, lineNr)
			if line == nil {
				break
			}
		}

		numChunks := (len(line) + sampleChunk - 1) / sampleChunk
		rnd = fsstHash(rnd)
		chunkIdx := int(rnd % uint64(numChunks))
		off := chunkIdx * sampleChunk
		n := min(len(line)-off, sampleChunk)
		if pos+n > maxBuf {
			n = maxBuf - pos
		}
		if n <= 0 {
			break
		}

		copy(buf[pos:pos+n], line[off:off+n])
		sample = append(sample, buf[pos:pos+n:pos+n])
		pos += n
	}
	return sample
}

// nextNonEmpty scans forward from (and wrapping past) start for the next
// non-empty line, returning nil if every line is empty.
func nextNonEmpty(lines [][]byte, start int) []byte {
	for i := 1; i <= len(lines); i++ {
		idx := (start + i) % len(lines)
		if len(lines[idx]) > 0 {
			return lines[idx]
		}
	}
	return nil
}
