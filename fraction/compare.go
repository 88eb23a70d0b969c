package fraction

import (
	"cmp"
	"encoding/binary"
	"math/bits"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Compare returns -1, 0 or 1 as f is less than, equal to or greater than o.
// The comparison is exact: the cross products are computed in 128 bits.
func (f Fraction) Compare(o Fraction) int {
	if f == o {
		return 0
	}
	fs, os := f.Sign(), o.Sign()
	if fs != os {
		return cmp.Compare(fs, os)
	}

	// same nonzero sign: compare |n1|*d2 with |n2|*d1
	ahi, alo := bits.Mul64(uint64(abs(f.num)), uint64(o.Denominator()))
	bhi, blo := bits.Mul64(uint64(abs(o.num)), uint64(f.Denominator()))
	c := cmp.Compare(ahi, bhi)
	if c == 0 {
		c = cmp.Compare(alo, blo)
	}
	if fs < 0 {
		return -c
	}
	return c
}

func (f Fraction) Less(o Fraction) bool {
	return f.Compare(o) < 0
}

// Equal reports whether f and o hold the same value. Since both are
// normalized this is the same as f == o.
func (f Fraction) Equal(o Fraction) bool {
	return f == o
}

// Hash returns a hash of the normalized components; Equal values hash alike.
func (f Fraction) Hash() uint64 {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], uint64(f.num))
	binary.BigEndian.PutUint64(b[8:], uint64(f.Denominator()))
	return xxhash.Sum64(b[:])
}

// Sort sorts fs in ascending order.
func Sort(fs []Fraction) {
	slices.SortFunc(fs, Fraction.Compare)
}

// Compact returns a sorted copy of fs with duplicate values removed.
func Compact(fs []Fraction) []Fraction {
	tmp := make([]Fraction, len(fs))
	copy(tmp, fs)

	slices.SortStableFunc(tmp, Fraction.Compare)
	return slices.CompactFunc(tmp, Fraction.Equal)
}

// Min returns the smallest of its arguments.
func Min(first Fraction, rest ...Fraction) Fraction {
	m := first
	for _, f := range rest {
		if f.Less(m) {
			m = f
		}
	}
	return m
}

// Max returns the largest of its arguments.
func Max(first Fraction, rest ...Fraction) Fraction {
	m := first
	for _, f := range rest {
		if m.Less(f) {
			m = f
		}
	}
	return m
}
