package chain

// limitWord packs the per-buffer limit and the allocate-to-limit flag into
// a single machine word. The low bit holds the flag, so limits are always
// even; setLimit masks the low bit off and floors the result at 2.
type limitWord uint

const (
	flagMask limitWord = 1
	sizeMask limitWord = ^flagMask
)

func newLimitWord(limit int, flag bool) limitWord {
	word := limitWord(0)
	word.setLimit(limit)
	word.setFlag(flag)

	return word
}

func (word limitWord) limit() int {
	return int(word & sizeMask)
}

func (word limitWord) flag() bool {
	return word&flagMask != 0
}

func (word *limitWord) setLimit(limit int) {
	if limit < 0 {
		panic("limit must not be negative")
	}

	normalized := limitWord(limit) & sizeMask
	if normalized < 2 {
		normalized = 2
	}

	*word = normalized | (*word & flagMask)
}

func (word *limitWord) setFlag(flag bool) {
	if flag {
		*word |= flagMask
	} else {
		*word &= sizeMask
	}
}
