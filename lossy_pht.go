package fsst

// lossyPHT is a fixed-capacity, open-addressed map from a 3-byte symbol
// prefix to a learned code, with at most one entry per hash slot.
// There is no chaining and no probing: a colliding insert is simply
// refused. Lookups are branch-free and never fail outright; callers
// must check the returned entry's used flag, then re-validate the
// match themselves (the hash is lossy, not exact).
type lossyPHT struct {
	slots [hashTabSize]phtEntry
}

type phtEntry struct {
	code uint16
	used bool
}

// add stores code under key's low 3 bytes. It returns false, leaving
// the table unchanged, if that slot is already occupied.
func (t *lossyPHT) add(key uint64, code uint16) bool {
	idx := fsstHash(key) & (hashTabSize - 1)
	if t.slots[idx].used {
		return false
	}
	t.slots[idx] = phtEntry{code: code, used: true}
	return true
}

// get returns the entry for key's slot. The caller must check used.
func (t *lossyPHT) get(key uint64) phtEntry {
	return t.slots[fsstHash(key)&(hashTabSize-1)]
}

// remove clears the slot that key hashes to, regardless of what it
// currently holds — callers only ever remove a key they previously
// added, so there is nothing to compare against.
func (t *lossyPHT) remove(key uint64) {
	t.slots[fsstHash(key)&(hashTabSize-1)] = phtEntry{}
}
