package fsst_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsst-go/fsst"
)

// syntheticAccessLog builds a corpus of repetitive, structured lines —
// the kind of data FSST is meant for — so the round trip below exercises
// real learned symbols rather than an all-escape encoding.
func syntheticAccessLog(n int) [][]byte {
	lines := make([][]byte, n)
	for i := range lines {
		lines[i] = []byte(fmt.Sprintf(
			"GET /api/v1/users/%d/orders HTTP/1.1 200 %dms", i%500, 1+i%40))
	}
	return lines
}

func TestIntegrationRoundTripLargeStructuredCorpus(t *testing.T) {
	corpus := syntheticAccessLog(4000)
	tbl := fsst.Train(corpus)
	require.NotNil(t, tbl)

	var totalIn, totalOut int
	for _, line := range corpus {
		encoded := tbl.Encode(line)
		decoded, err := tbl.Decode(encoded)
		require.NoError(t, err)
		require.True(t, bytes.Equal(decoded, line), "round trip mismatch for line %q", line)

		totalIn += len(line)
		totalOut += len(encoded)
	}

	// A trained table on this kind of repetitive structured text should
	// compress meaningfully, not just round-trip correctly.
	assert.Less(t, totalOut, totalIn,
		"expected the learned table to shrink the corpus, got %d -> %d bytes", totalIn, totalOut)
}

func TestIntegrationRoundTripConcurrentReaders(t *testing.T) {
	corpus := syntheticAccessLog(1000)
	tbl := fsst.Train(corpus)

	const goroutines = 8
	errs := make(chan error, goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			for i, line := range corpus {
				if i%goroutines != g {
					continue
				}
				encoded := tbl.Encode(line)
				decoded, err := tbl.Decode(encoded)
				if err != nil {
					errs <- err
					return
				}
				if !bytes.Equal(decoded, line) {
					errs <- fmt.Errorf("mismatch for line %q", line)
					return
				}
			}
			errs <- nil
		}(g)
	}

	for g := 0; g < goroutines; g++ {
		require.NoError(t, <-errs, "concurrent Encode/Decode against a frozen table must be safe")
	}
}

func TestIntegrationDecodeErrorOnMalformedStream(t *testing.T) {
	tbl := fsst.Train(syntheticAccessLog(10))

	encoded := tbl.Encode([]byte("GET /api/v1/users/1/orders HTTP/1.1 200 5ms"))
	truncated := append(append([]byte{}, encoded...), 0xFF)

	_, err := tbl.Decode(truncated)
	assert.ErrorIs(t, err, fsst.ErrTruncatedEscape)
}
