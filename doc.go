// Package fsst provides fast string compression via learned symbol tables.
//
// # Overview
//
// FSST (Fast Static Symbol Table) is a compression algorithm optimized for
// short, repetitive strings — database column values, log lines,
// identifiers. It learns up to 254 symbols (1-8 bytes each) from training
// data and encodes text by replacing matches with single-byte codes.
//
// # Choosing a Corpus to Train On
//
// A Table only compresses well against data that resembles what it was
// trained on: a table learned from access logs will not help much on a
// column of UUIDs. Good candidates share a lot of byte-level structure
// across records — request paths, SQL query shapes, stack trace lines,
// CSV rows with a fixed schema — where the same substrings recur over and
// over. Train on a representative sample rather than the full dataset;
// Train already bounds how much of its input it actually scans (see
// sampler.go), so handing it gigabytes of input wastes time without
// improving the resulting table.
//
// FSST is the wrong tool for data without shared structure: already-
// compressed or encrypted bytes, random identifiers, or a one-off blob
// that will only ever be encoded once (the training pass costs more than
// it saves on a single string). For general-purpose streaming
// compression of arbitrary binary data, reach for gzip or zstd instead —
// FSST trades away their compression ratio for much faster, allocation-
// free decoding against a small, fixed dictionary.
//
// # Basic Usage
//
//	// Train on representative data
//	paths := [][]byte{
//	    []byte("/api/v1/users/8231/orders"),
//	    []byte("/api/v1/users/44/orders"),
//	    []byte("/api/v1/users/8231/profile"),
//	}
//	tbl := fsst.Train(paths)
//
//	// Compress and decompress
//	compressed := tbl.Encode([]byte("/api/v1/users/900/profile"))
//	original, err := tbl.Decode(compressed)
//
//	// Or reuse buffers across many calls against the same frozen table
//	dst := make([]byte, 0, 4096)
//	dst, err = tbl.DecodeInto(dst[:0], compressed)
//
// # What's Out of Scope
//
// Symbol-table serialization, argument parsing, file I/O, and throughput
// reporting are not part of this package — they belong to a caller (see
// cmd/fsstbench for a reference driver). A Table is an in-memory,
// process-lifetime artifact: trained once, then shared read-only across
// any number of concurrent Encode/Decode callers.
//
// # Performance Characteristics
//
// Training: O(n × k) where n is sample size, k is the number of
// generations (5, fixed).
// Encoding/decoding: O(m) where m is the input/output size — a handful of
// array lookups per matched symbol, no allocation beyond output growth.
package fsst
