package fsst

// Encode compresses input into a newly allocated buffer.
func (t *Table) Encode(input []byte) []byte {
	return t.EncodeInto(make([]byte, 0, 2*len(input)), input)
}

// EncodeInto compresses input, appending to and returning dst. This is
// the reuse path for repeated calls against a frozen table: the worst
// case output is 2 bytes per input byte (every byte escapes), so callers
// that pre-size dst to cap 2*len(input) avoid any reallocation.
//
// The loop mirrors compressCount's greedy longest-match parse but emits
// bytes instead of counting: a learned-symbol match emits its code byte
// directly; anything else emits the escape byte 255 followed by the
// literal input byte.
func (t *Table) EncodeInto(dst, input []byte) []byte {
	for pos := 0; pos < len(input); {
		window := loadWindow(input, pos)
		code := t.findLongestSymbol(window)

		if code >= codeBase {
			dst = append(dst, byte(code-codeBase))
		} else {
			dst = append(dst, escape, byte(code))
		}
		pos += t.symbols[code].nbytes()
	}
	return dst
}

// Decode decompresses src into a newly allocated buffer.
func (t *Table) Decode(src []byte) ([]byte, error) {
	return t.DecodeInto(make([]byte, 0, 8*len(src)), src)
}

// DecodeInto decompresses src, appending to and returning dst. Worst
// case output is 8 bytes per source byte (every code is a full 8-byte
// learned symbol), so pre-sizing dst to cap 8*len(src) avoids
// reallocation on the hot path.
//
// Each source byte is either a code in [0,254] meaning "emit
// symbols[256+code]", or the escape byte 255 meaning "the next source
// byte is a literal". A trailing escape byte with nothing following it
// is malformed input and reported as ErrTruncatedEscape rather than
// silently dropped or read out of bounds.
func (t *Table) DecodeInto(dst, src []byte) ([]byte, error) {
	for i := 0; i < len(src); {
		b := src[i]
		if b == escape {
			if i+1 >= len(src) {
				return dst, ErrTruncatedEscape
			}
			dst = append(dst, src[i+1])
			i += 2
			continue
		}
		sym := t.symbols[codeBase+uint16(b)]
		dst = appendSymbol(dst, sym)
		i++
	}
	return dst, nil
}

// appendSymbol appends the nbytes() leading bytes of sym's packed value
// to dst, low byte first — the inverse of symbolFromBytes.
func appendSymbol(dst []byte, sym symbol) []byte {
	v := sym.value
	for i := 0; i < sym.nbytes(); i++ {
		dst = append(dst, byte(v))
		v >>= 8
	}
	return dst
}
