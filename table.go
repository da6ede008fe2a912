package fsst

// Table holds a trained symbol table: the 256 base byte codes plus up to
// 254 learned symbols, and the three-tier lookup structure used to find
// the longest symbol starting at any position. A Table is produced by
// Train and is immutable afterward; Encode/Decode may be called
// concurrently against a frozen Table from any number of goroutines, as
// long as each call writes to its own output.
type Table struct {
	nSymbols uint16 // number of learned entries, 0..254

	symbols [codeMax]symbol // code -> symbol; [0,256) are the base bytes

	oneByte [256]phtEntry   // byte value -> learned 1-byte symbol code
	twoByte [65536]phtEntry // first 2 bytes -> learned 2-byte symbol code
	phs     lossyPHT        // first 3 bytes -> learned 3..8-byte symbol code
}

// newTable returns an empty table: just the 256 base byte identities.
func newTable() *Table {
	t := &Table{}
	for i := 0; i < 256; i++ {
		t.symbols[i] = symbolFromByte(byte(i))
	}
	return t
}

// insert registers a learned symbol, assigning it the next learned code.
// 1-byte symbols always overwrite any existing entry in oneByte; 2-byte
// symbols likewise overwrite in twoByte. 3..8-byte symbols go through the
// lossy perfect hash and are silently dropped — n_symbols is NOT
// incremented — if their slot is already taken.
func (t *Table) insert(s symbol) bool {
	if t.nSymbols >= maxSymbol {
		return false
	}
	code := codeBase + t.nSymbols
	switch s.nbytes() {
	case 1:
		t.oneByte[s.first()] = phtEntry{code: code, used: true}
	case 2:
		t.twoByte[s.first2()] = phtEntry{code: code, used: true}
	default:
		if !t.phs.add(s.first3(), code) {
			return false
		}
	}
	t.symbols[code] = s
	t.nSymbols++
	return true
}

// clear removes every learned symbol, freeing its registration from
// whichever of the three lookup tiers holds it, and resets n_symbols to
// 0. The 256 base byte symbols are untouched.
func (t *Table) clear() {
	for i := uint16(0); i < t.nSymbols; i++ {
		s := t.symbols[codeBase+i]
		switch s.nbytes() {
		case 1:
			t.oneByte[s.first()] = phtEntry{}
		case 2:
			t.twoByte[s.first2()] = phtEntry{}
		default:
			t.phs.remove(s.first3())
		}
	}
	t.nSymbols = 0
}

// findLongestSymbol returns the code of the longest symbol that is a
// prefix of window. window must be a full 8-byte (64-bit) load for
// in-bounds probing; callers load the final, shorter tail with a
// zero-padded symbolFromBytes (see loadWindow), which still yields a
// correct 1-byte escape or learned-symbol match.
//
// Order: LPHT (3..8 byte symbols) first, re-validated by prefix compare
// since the hash is lossy; then the unique 2-byte table; then the
// 1-byte table; finally the escape code equal to the first byte. A
// symbol longer than the window never matches, so a short tail window
// is not extended by the zero padding.
func (t *Table) findLongestSymbol(window symbol) uint16 {
	if e := t.phs.get(window.first3()); e.used && t.symbols[e.code].length <= window.length && window.startsWith(t.symbols[e.code]) {
		return e.code
	}
	if e := t.twoByte[window.first2()]; e.used && window.length >= 16 {
		return e.code
	}
	if e := t.oneByte[window.first()]; e.used {
		return e.code
	}
	return uint16(window.first())
}
