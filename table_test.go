package fsst

import "testing"

func TestNewTableHasBaseBytes(t *testing.T) {
	tbl := newTable()
	if tbl.nSymbols != 0 {
		t.Fatalf("fresh table should have no learned symbols")
	}
	for i := 0; i < 256; i++ {
		if tbl.symbols[i].first() != byte(i) || tbl.symbols[i].nbytes() != 1 {
			t.Fatalf("base symbol %d malformed: %+v", i, tbl.symbols[i])
		}
	}
}

func TestInsertOneTwoThreeByteSymbols(t *testing.T) {
	tbl := newTable()

	if !tbl.insert(symbolFromBytes([]byte("x"))) {
		t.Fatalf("insert 1-byte symbol")
	}
	if !tbl.insert(symbolFromBytes([]byte("ab"))) {
		t.Fatalf("insert 2-byte symbol")
	}
	if !tbl.insert(symbolFromBytes([]byte("abc"))) {
		t.Fatalf("insert 3-byte symbol")
	}
	if tbl.nSymbols != 3 {
		t.Fatalf("nSymbols = %d, want 3", tbl.nSymbols)
	}

	code := tbl.findLongestSymbol(loadWindow([]byte("abcd1234"), 0))
	got := tbl.symbols[code]
	if got.nbytes() < 3 {
		t.Fatalf("expected the 3-byte match to win, got length %d", got.nbytes())
	}
}

func TestInsertRefusesPastCapacity(t *testing.T) {
	tbl := newTable()
	for i := 0; i < maxSymbol; i++ {
		// 2-byte symbols always register, so the fill reaches the cap
		// without lossy-hash collisions dropping any of them.
		s := symbolFromBytes([]byte{'a' + byte(i%26), 'a' + byte(i/26)})
		tbl.insert(s)
	}
	if int(tbl.nSymbols) != maxSymbol {
		t.Fatalf("nSymbols = %d, want %d", tbl.nSymbols, maxSymbol)
	}
	if tbl.insert(symbolFromBytes([]byte("zzz"))) {
		t.Fatalf("insert beyond capacity must fail")
	}
}

func TestClearFreesRegistrationsButKeepsBaseBytes(t *testing.T) {
	tbl := newTable()
	tbl.insert(symbolFromBytes([]byte("x")))
	tbl.insert(symbolFromBytes([]byte("yz")))
	tbl.insert(symbolFromBytes([]byte("abc")))
	tbl.clear()

	if tbl.nSymbols != 0 {
		t.Fatalf("clear should reset nSymbols, got %d", tbl.nSymbols)
	}
	if tbl.oneByte['x'].used {
		t.Fatalf("clear should free the 1-byte registration")
	}
	if tbl.twoByte[symbolFromBytes([]byte("yz")).first2()].used {
		t.Fatalf("clear should free the 2-byte registration")
	}
	if e := tbl.phs.get(symbolFromBytes([]byte("abc")).first3()); e.used {
		t.Fatalf("clear should free the LPHT registration")
	}
	// base bytes must still resolve after clear.
	code := tbl.findLongestSymbol(loadWindow([]byte("xxxxxxxx"), 0))
	if code != uint16('x') {
		t.Fatalf("expected escape for base byte after clear, got code %d", code)
	}
}

func TestFindLongestSymbolFallsBackToEscape(t *testing.T) {
	tbl := newTable()
	code := tbl.findLongestSymbol(loadWindow([]byte("Q-------"), 0))
	if code != uint16('Q') {
		t.Fatalf("code = %d, want escape for 'Q' (%d)", code, 'Q')
	}
}

func TestFindLongestSymbolPrefersLongerMatch(t *testing.T) {
	tbl := newTable()
	tbl.insert(symbolFromBytes([]byte("a")))
	tbl.insert(symbolFromBytes([]byte("ab")))
	tbl.insert(symbolFromBytes([]byte("abc")))

	code := tbl.findLongestSymbol(loadWindow([]byte("abcxxxxx"), 0))
	if tbl.symbols[code].nbytes() != 3 {
		t.Fatalf("expected the 3-byte symbol to win, got length %d", tbl.symbols[code].nbytes())
	}
}
