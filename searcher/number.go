package searcher

import (
	"math"
	"strconv"
)

// Number is a proof or disproof number. Infinity marks a node that can never
// be proven (or disproven) and absorbs any addition.
type Number uint64

const Infinity Number = math.MaxUint64

func (n Number) IsInfinite() bool {
	return n == Infinity
}

// Add saturates at Infinity instead of wrapping.
func (n Number) Add(m Number) Number {
	if n == Infinity || m == Infinity {
		return Infinity
	}
	sum := n + m
	if sum < n || sum == Infinity {
		return Infinity
	}
	return sum
}

func (n Number) String() string {
	if n == Infinity {
		return "inf"
	}
	return strconv.FormatUint(uint64(n), 10)
}

func atLeastOne(n int) Number {
	if n < 1 {
		return 1
	}
	return Number(n)
}
